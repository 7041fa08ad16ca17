// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package classify tags the errors of failed attempts so the retry
// driver can tell fatal failures from recoverable ones, and noisy
// recoverable failures from silent ones.
//
// A Classifier maps every error to one of three classifications:
// Recoverable (retry, with a retrying event), SilentlyRecoverable
// (retry, no event), or Fatal (stop immediately). The constructors Is
// and As build classifiers from error values and error types, and
// First composes partial classifiers by fallback:
//
//	c := classify.First(
//		classify.Is(classify.Fatal, errBadCredentials),
//		classify.As[*net.DNSError](classify.SilentlyRecoverable),
//	)
package classify
