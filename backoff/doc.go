// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package backoff provides policies which decide how long to wait
// after a failed attempt before retrying it.
//
// The interface Policy defines a backoff policy. The constructors
// Constant, Linear, Exponential, and Fibonacci build the common
// growth curves; Select picks a policy per error; and Randomized
// decorates any policy with uniform jitter:
//
//	p := backoff.Randomized(backoff.Exponential(50*time.Millisecond),
//		-25*time.Millisecond, 25*time.Millisecond, time.Now())
//
// If the built-in functionality is insufficient, implement Policy
// directly or adapt an ordinary function with PolicyFunc.
package backoff
