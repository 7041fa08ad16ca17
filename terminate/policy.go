// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package terminate

import (
	"time"
)

// A Policy decides whether a retrying operation should stop.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
//
// ShouldStop is consulted after a failed attempt, before the next
// attempt would begin. Parameter next is the 1-based index of the
// attempt that would run next (so it is at least 2 on the first
// consultation), and elapsed is the wall-clock time since the first
// attempt began. The return value true suppresses the next attempt.
//
// The retry driver never consults the policy before the first attempt,
// so every policy permits at least one attempt.
type Policy interface {
	ShouldStop(next uint, elapsed time.Duration) bool
}

// The PolicyFunc type is an adapter to allow the use of ordinary
// functions as termination policies. It implements the Policy
// interface, and also provides the logical composition methods And
// and Or.
//
// Every PolicyFunc must be safe for concurrent use by multiple
// goroutines.
type PolicyFunc func(next uint, elapsed time.Duration) bool

// ShouldStop returns true if retrying should stop, and false
// otherwise.
func (f PolicyFunc) ShouldStop(next uint, elapsed time.Duration) bool {
	return f(next, elapsed)
}

// And composes two termination policies into a new policy which stops
// only when both sub-policies stop.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// false.
func (f PolicyFunc) And(g Policy) PolicyFunc {
	if g == nil {
		panic("atmos/terminate: nil policy")
	}
	return func(next uint, elapsed time.Duration) bool {
		return f(next, elapsed) && g.ShouldStop(next, elapsed)
	}
}

// Or composes two termination policies into a new policy which stops
// as soon as either sub-policy stops.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// true.
func (f PolicyFunc) Or(g Policy) PolicyFunc {
	if g == nil {
		panic("atmos/terminate: nil policy")
	}
	return func(next uint, elapsed time.Duration) bool {
		return f(next, elapsed) || g.ShouldStop(next, elapsed)
	}
}

// Immediately is a policy that always stops. An operation retried
// under Immediately runs exactly once: the first attempt is made, and
// any retry is suppressed.
var Immediately Policy = PolicyFunc(func(_ uint, _ time.Duration) bool {
	return true
})

// Never is a policy that never stops of its own accord. Retrying under
// Never ends only when an attempt succeeds or an error is classified
// as fatal.
var Never Policy = PolicyFunc(func(_ uint, _ time.Duration) bool {
	return false
})

// DefaultAttempts is the attempt limit of the default termination
// policy.
const DefaultAttempts = 3

// DefaultPolicy is the default termination policy. It allows up to
// DefaultAttempts attempts.
var DefaultPolicy Policy = MaxAttempts(DefaultAttempts)

// MaxAttempts constructs a policy that stops once n attempts have been
// made. The returned policy reports stop when the prospective attempt
// index exceeds n, so exactly n attempts run if every one of them
// fails.
//
// MaxAttempts panics if n is zero, since a policy that permits no
// attempt at all is meaningless: the driver always runs the first
// attempt. Use Immediately for a policy that never retries.
func MaxAttempts(n uint) PolicyFunc {
	if n < 1 {
		panic("atmos/terminate: attempt limit must be at least 1")
	}
	return func(next uint, _ time.Duration) bool {
		return next > n
	}
}

// MaxElapsed constructs a policy that stops once the cumulative
// wall-clock time since the first attempt began reaches or exceeds d.
//
// The elapsed time is measured at attempt boundaries only, so an
// attempt that is already running when the limit passes is not
// interrupted.
//
// MaxElapsed panics if d is not positive.
func MaxElapsed(d time.Duration) PolicyFunc {
	if d <= 0 {
		panic("atmos/terminate: elapsed limit must be positive")
	}
	return func(_ uint, elapsed time.Duration) bool {
		return elapsed >= d
	}
}

// Both composes two termination policies into a policy that stops only
// when both a and b stop. Use Both to express constraints like "stop
// after 5 attempts, but not before 30 seconds have passed".
func Both(a, b Policy) Policy {
	if a == nil || b == nil {
		panic("atmos/terminate: nil policy")
	}
	return PolicyFunc(func(next uint, elapsed time.Duration) bool {
		return a.ShouldStop(next, elapsed) && b.ShouldStop(next, elapsed)
	})
}

// Either composes two termination policies into a policy that stops as
// soon as either a or b stops. Use Either to express constraints like
// "stop after 5 attempts or 30 seconds, whichever comes first".
func Either(a, b Policy) Policy {
	if a == nil || b == nil {
		panic("atmos/terminate: nil policy")
	}
	return PolicyFunc(func(next uint, elapsed time.Duration) bool {
		return a.ShouldStop(next, elapsed) || b.ShouldStop(next, elapsed)
	})
}
