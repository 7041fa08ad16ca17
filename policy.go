// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package atmos

import (
	"github.com/lpryor/atmos/backoff"
	"github.com/lpryor/atmos/classify"
	"github.com/lpryor/atmos/monitor"
	"github.com/lpryor/atmos/terminate"
)

// A Policy bundles the four axes of a retry strategy: a termination
// policy, a backoff policy, an event monitor, and an error classifier.
// Its zero value is a valid configuration using the documented default
// for every axis.
//
// Policy is an immutable value: the With methods return a copy with
// one field replaced and never modify their receiver, so policies can
// be shared freely across goroutines and derived from one another.
//
// The zero value policy uses terminate.DefaultPolicy (three attempts),
// backoff.DefaultPolicy (Fibonacci growth from 100ms), monitor.Nop,
// and classify.Default (everything recoverable), with the system clock
// and scheduler.
type Policy struct {
	termination terminate.Policy
	backoff     backoff.Policy
	monitor     monitor.Monitor
	classifier  classify.Classifier
	clock       Clock
	scheduler   Scheduler
}

// New returns the default policy: up to three attempts, Fibonacci
// backoff from a 100ms base, no monitoring, and every error treated
// as recoverable.
func New() Policy {
	return Policy{}
}

// RetryFor returns the default policy with its termination policy
// replaced by t.
func RetryFor(t terminate.Policy) Policy {
	return New().WithTermination(t)
}

// NeverRetry returns a policy that never retries: the operation runs
// exactly once and any failure propagates immediately, after an
// aborted event.
func NeverRetry() Policy {
	return RetryFor(terminate.Immediately)
}

// RetryForever returns a policy that retries until an attempt succeeds
// or an error is classified as fatal.
func RetryForever() Policy {
	return RetryFor(terminate.Never)
}

// Termination returns the policy's termination policy.
func (p Policy) Termination() terminate.Policy {
	if p.termination == nil {
		return terminate.DefaultPolicy
	}
	return p.termination
}

// Backoff returns the policy's backoff policy.
func (p Policy) Backoff() backoff.Policy {
	if p.backoff == nil {
		return backoff.DefaultPolicy
	}
	return p.backoff
}

// Monitor returns the policy's event monitor.
func (p Policy) Monitor() monitor.Monitor {
	if p.monitor == nil {
		return monitor.Nop
	}
	return p.monitor
}

// Classifier returns the policy's error classifier.
func (p Policy) Classifier() classify.Classifier {
	if p.classifier == nil {
		return classify.Default
	}
	return p.classifier
}

// Clock returns the policy's clock.
func (p Policy) Clock() Clock {
	if p.clock == nil {
		return SystemClock
	}
	return p.clock
}

// Scheduler returns the policy's scheduler.
func (p Policy) Scheduler() Scheduler {
	if p.scheduler == nil {
		return SystemScheduler
	}
	return p.scheduler
}

// WithTermination returns a copy of the policy whose termination
// policy is t. It panics if t is nil.
func (p Policy) WithTermination(t terminate.Policy) Policy {
	if t == nil {
		panic("atmos: nil termination policy")
	}
	p.termination = t
	return p
}

// WithBackoff returns a copy of the policy whose backoff policy is b.
// It panics if b is nil.
func (p Policy) WithBackoff(b backoff.Policy) Policy {
	if b == nil {
		panic("atmos: nil backoff policy")
	}
	p.backoff = b
	return p
}

// WithMonitor returns a copy of the policy whose event monitor is m.
// It panics if m is nil.
func (p Policy) WithMonitor(m monitor.Monitor) Policy {
	if m == nil {
		panic("atmos: nil monitor")
	}
	p.monitor = m
	return p
}

// WithClassifier returns a copy of the policy whose error classifier
// is c. It panics if c is nil.
func (p Policy) WithClassifier(c classify.Classifier) Policy {
	if c == nil {
		panic("atmos: nil classifier")
	}
	p.classifier = c
	return p
}

// WithClock returns a copy of the policy whose clock is c. It panics
// if c is nil.
func (p Policy) WithClock(c Clock) Policy {
	if c == nil {
		panic("atmos: nil clock")
	}
	p.clock = c
	return p
}

// WithScheduler returns a copy of the policy whose scheduler is s. It
// panics if s is nil.
func (p Policy) WithScheduler(s Scheduler) Policy {
	if s == nil {
		panic("atmos: nil scheduler")
	}
	p.scheduler = s
	return p
}
