// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// A Policy decides how long to wait before the next attempt of a
// retrying operation.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
//
// Backoff receives the 1-based index of the attempt that just failed
// and the error it failed with, and returns a non-negative wait
// duration. Built-in policies are pure functions of their inputs,
// except for the jitter drawn by Randomized.
type Policy interface {
	Backoff(attempt uint, err error) time.Duration
}

// The PolicyFunc type is an adapter to allow the use of ordinary
// functions as backoff policies.
//
// Every PolicyFunc must be safe for concurrent use by multiple
// goroutines.
type PolicyFunc func(attempt uint, err error) time.Duration

// Backoff returns f(attempt, err).
func (f PolicyFunc) Backoff(attempt uint, err error) time.Duration {
	return f(attempt, err)
}

// DefaultBase is the base duration used by DefaultPolicy.
const DefaultBase = 100 * time.Millisecond

// Ceiling is the saturation limit for computed backoff durations.
// Growth curves whose value would exceed Ceiling, including by
// floating-point overflow, return Ceiling instead.
const Ceiling = 365 * 24 * time.Hour

// DefaultPolicy is the default backoff policy: Fibonacci growth from a
// base of DefaultBase.
var DefaultPolicy Policy = Fibonacci(DefaultBase)

// goldenRatio approximates the growth rate of the Fibonacci sequence.
const goldenRatio = 8.0 / 5.0

// Constant constructs a policy that always waits base.
//
// Constant panics if base is negative.
func Constant(base time.Duration) Policy {
	checkBase(base)
	return PolicyFunc(func(_ uint, _ error) time.Duration {
		return base
	})
}

// Linear constructs a policy whose wait grows linearly: the wait
// before retrying attempt k is base * k.
//
// Linear panics if base is negative.
func Linear(base time.Duration) Policy {
	checkBase(base)
	return PolicyFunc(func(attempt uint, _ error) time.Duration {
		return scale(base, float64(clampAttempt(attempt)))
	})
}

// Exponential constructs a policy whose wait doubles with each
// attempt: the wait before retrying attempt k is base * 2**(k-1).
//
// Exponential panics if base is negative.
func Exponential(base time.Duration) Policy {
	checkBase(base)
	return PolicyFunc(func(attempt uint, _ error) time.Duration {
		return scale(base, math.Pow(2, float64(clampAttempt(attempt)-1)))
	})
}

// Fibonacci constructs a policy whose wait grows like the Fibonacci
// sequence, approximated by the golden ratio: the wait before retrying
// attempt k is base * (8/5)**(k-1).
//
// Fibonacci panics if base is negative.
func Fibonacci(base time.Duration) Policy {
	checkBase(base)
	return PolicyFunc(func(attempt uint, _ error) time.Duration {
		return scale(base, math.Pow(goldenRatio, float64(clampAttempt(attempt)-1)))
	})
}

// Select constructs a policy that delegates the choice of policy to
// the function f, which receives the error the attempt failed with.
// The function is consulted on every call; its result is never
// cached, so f may return a different policy for each error.
//
// Select panics if f is nil. The policy returned by f must be non-nil.
func Select(f func(err error) Policy) Policy {
	if f == nil {
		panic("atmos/backoff: nil selector")
	}
	return PolicyFunc(func(attempt uint, err error) time.Duration {
		p := f(err)
		if p == nil {
			panic("atmos/backoff: selector returned nil policy")
		}
		return p.Backoff(attempt, err)
	})
}

// Randomized decorates inner with uniform jitter. On each call it
// evaluates inner, draws a duration uniformly from [lo, hi], and
// returns the sum, clamped to the range [0, Ceiling]. lo may be
// negative; if lo > hi the endpoints are swapped.
//
// Parameter jitter seeds the random draw. Pass nil to use a source
// seeded from the current time, or specify a seed value (as a
// time.Time, int, or int64), a rand.Source, or a *rand.Rand.
//
// Randomized panics if inner is nil or jitter has an unsupported type.
func Randomized(inner Policy, lo, hi time.Duration, jitter interface{}) Policy {
	if inner == nil {
		panic("atmos/backoff: nil policy")
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return &randomized{
		inner: inner,
		lo:    lo,
		hi:    hi,
		rand:  jitterToRand(jitter),
	}
}

// RandomizedBy is shorthand for Randomized with the range between zero
// and bound: Randomized(inner, 0, bound, jitter) when bound is
// non-negative, and Randomized(inner, bound, 0, jitter) otherwise.
func RandomizedBy(inner Policy, bound time.Duration, jitter interface{}) Policy {
	if bound < 0 {
		return Randomized(inner, bound, 0, jitter)
	}
	return Randomized(inner, 0, bound, jitter)
}

type randomized struct {
	inner  Policy
	lo, hi time.Duration
	rand   *rand.Rand
	lock   sync.Mutex
}

func (p *randomized) Backoff(attempt uint, err error) time.Duration {
	d := p.inner.Backoff(attempt, err)
	d += p.draw()
	if d < 0 {
		return 0
	}
	if d > Ceiling {
		return Ceiling
	}
	return d
}

func (p *randomized) draw() time.Duration {
	span := int64(p.hi - p.lo)
	if span == 0 {
		return p.lo
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.lo + time.Duration(p.rand.Int63n(span+1))
}

func checkBase(base time.Duration) {
	if base < 0 {
		panic("atmos/backoff: base must be non-negative")
	}
}

func clampAttempt(attempt uint) uint {
	if attempt < 1 {
		return 1
	}
	return attempt
}

// scale multiplies base by m in floating point, rounds to the nearest
// nanosecond, and saturates at Ceiling.
func scale(base time.Duration, m float64) time.Duration {
	d := float64(base) * m
	if d >= float64(Ceiling) || math.IsInf(d, 1) {
		return Ceiling
	}
	return time.Duration(math.Round(d))
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		s = rand.NewSource(time.Now().UnixNano())
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("atmos/backoff: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		if j == nil {
			panic("atmos/backoff: jitter may not be a typed nil")
		}
		s = j
	default:
		panic("atmos/backoff: invalid jitter type")
	}
	return rand.New(s)
}
