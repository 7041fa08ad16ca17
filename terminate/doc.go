// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package terminate provides policies which decide when a retrying
// operation should stop being retried.
//
// The interface Policy defines a termination policy. Policies built
// from the constructors MaxAttempts and MaxElapsed, and the built-in
// policies Immediately and Never, cover the common cases. Use
// PolicyFunc to convert an ordinary function into a Policy, and the
// combinators Both and Either (or the equivalent PolicyFunc.And and
// PolicyFunc.Or) to compose policies logically:
//
//	// Stop after 5 attempts or 30 seconds, whichever comes first.
//	p := terminate.Either(terminate.MaxAttempts(5), terminate.MaxElapsed(30*time.Second))
//
//	// Stop after 5 attempts, but never before 30 seconds have passed.
//	q := terminate.Both(terminate.MaxAttempts(5), terminate.MaxElapsed(30*time.Second))
package terminate
