// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package monitor

import (
	"time"
)

// A Monitor observes the attempt-boundary events of a retrying
// operation.
//
// The retry driver serializes the events of a single invocation, but a
// Monitor may be shared across many policies and invocations, so
// implementations must be safe for concurrent use by multiple
// goroutines.
//
// The driver swallows anything a Monitor panics with, so a misbehaving
// monitor cannot change the outcome of a retried operation.
type Monitor interface {
	// Retrying reports that attempt number attempt of the named
	// operation failed with err, and that the driver will wait backoff
	// before the next attempt. It is not called for errors classified
	// as silently recoverable.
	Retrying(name string, err error, attempt uint, backoff time.Duration, willRetry bool)
	// Interrupted reports that the wait after failed attempt number
	// attempt was cut short by cancellation. No retry follows.
	Interrupted(name string, err error, attempt uint)
	// Aborted reports that the driver is giving up after failed
	// attempt number attempt, either because err was classified as
	// fatal or because the termination policy stopped retrying. The
	// error escapes to the caller.
	Aborted(name string, err error, attempt uint)
}

// Nop is a monitor that ignores every event. It is the default monitor
// of a retry policy.
var Nop Monitor = nop{}

type nop struct{}

func (nop) Retrying(_ string, _ error, _ uint, _ time.Duration, _ bool) {}
func (nop) Interrupted(_ string, _ error, _ uint)                       {}
func (nop) Aborted(_ string, _ error, _ uint)                           {}

// Chain composes monitors into a single monitor which forwards every
// event to each of them, in order.
//
// Chain panics if any monitor is nil.
func Chain(ms ...Monitor) Monitor {
	ms2 := make([]Monitor, len(ms))
	for i, m := range ms {
		if m == nil {
			panic("atmos/monitor: nil monitor")
		}
		ms2[i] = m
	}
	return chain(ms2)
}

type chain []Monitor

func (c chain) Retrying(name string, err error, attempt uint, backoff time.Duration, willRetry bool) {
	for _, m := range c {
		m.Retrying(name, err, attempt, backoff, willRetry)
	}
}

func (c chain) Interrupted(name string, err error, attempt uint) {
	for _, m := range c {
		m.Interrupted(name, err, attempt)
	}
}

func (c chain) Aborted(name string, err error, attempt uint) {
	for _, m := range c {
		m.Aborted(name, err, attempt)
	}
}
