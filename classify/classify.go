// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package classify

import (
	"errors"
)

// A Classification is the retry driver's three-way tag for a failed
// attempt's error, as reported by a Classifier.
type Classification int

const (
	// Recoverable indicates an error worth retrying. It is the zero
	// value, and the classification every classifier falls back to
	// for errors it has no opinion about.
	Recoverable Classification = iota
	// Fatal indicates an error that retrying cannot cure. The driver
	// stops immediately and propagates the error without consulting
	// the termination or backoff policies.
	Fatal
	// SilentlyRecoverable indicates an expected, noise-level error.
	// The driver retries exactly as for Recoverable but suppresses the
	// retrying event, so monitors stay quiet.
	SilentlyRecoverable
)

var classificationNames = []string{
	"Recoverable",
	"Fatal",
	"SilentlyRecoverable",
}

// String returns the name of the classification.
func (c Classification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return "Classification(invalid)"
	}
	return classificationNames[c]
}

// A Classifier tags a failed attempt's error with a Classification.
//
// Implementations of Classifier must be safe for concurrent use by
// multiple goroutines, and must be total: Classify never fails, and
// classifiers with no opinion about an error return Recoverable.
type Classifier interface {
	Classify(err error) Classification
}

// The ClassifierFunc type is an adapter to allow the use of ordinary
// functions as classifiers.
//
// Every ClassifierFunc must be safe for concurrent use by multiple
// goroutines.
type ClassifierFunc func(err error) Classification

// Classify returns f(err).
func (f ClassifierFunc) Classify(err error) Classification {
	return f(err)
}

// Default is the default classifier. It classifies every error as
// Recoverable.
var Default Classifier = ClassifierFunc(func(_ error) Classification {
	return Recoverable
})

// Is constructs a classifier that tags errors matching any of the
// given targets, in the errors.Is sense, with class. Errors matching
// none of the targets are Recoverable.
//
// Is panics if no target is given.
func Is(class Classification, targets ...error) ClassifierFunc {
	if len(targets) == 0 {
		panic("atmos/classify: no target errors")
	}
	ts := make([]error, len(targets))
	copy(ts, targets)
	return func(err error) Classification {
		for _, t := range ts {
			if errors.Is(err, t) {
				return class
			}
		}
		return Recoverable
	}
}

// As constructs a classifier that tags errors assignable to the type
// parameter, in the errors.As sense, with class. Other errors are
// Recoverable.
func As[T error](class Classification) ClassifierFunc {
	return func(err error) Classification {
		var target T
		if errors.As(err, &target) {
			return class
		}
		return Recoverable
	}
}

// First composes classifiers by fallback: each classifier is consulted
// in order and the first classification other than Recoverable wins.
// If every classifier returns Recoverable, so does the composition.
//
// Because Recoverable doubles as the "no opinion" answer, First is
// exactly first-match-wins over partial classifiers such as those
// built with Is and As.
func First(cs ...Classifier) ClassifierFunc {
	cs2 := make([]Classifier, len(cs))
	copy(cs2, cs)
	return func(err error) Classification {
		for _, c := range cs2 {
			if class := c.Classify(err); class != Recoverable {
				return class
			}
		}
		return Recoverable
	}
}
