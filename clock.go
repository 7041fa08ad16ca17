// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package atmos

import (
	"context"
	"time"
)

// A Clock supplies the current time to the retry driver. The driver
// uses it only to measure the elapsed time fed to the termination
// policy, so any monotonically non-decreasing source will do.
//
// Implementations of Clock must be safe for concurrent use by
// multiple goroutines. The system clock is used unless a policy
// carries a replacement (see Policy.WithClock).
type Clock interface {
	Now() time.Time
}

// A Scheduler supplies the retry driver's delay primitives: a blocking
// sleep for the synchronous driver and a deferred-task timer for the
// asynchronous one.
//
// Implementations of Scheduler must be safe for concurrent use by
// multiple goroutines. The system timer implementation is used unless
// a policy carries a replacement (see Policy.WithScheduler).
type Scheduler interface {
	// Sleep blocks for the duration d, or until ctx is cancelled,
	// whichever comes first. It returns nil after a full sleep and
	// ctx.Err() if the sleep was cut short.
	Sleep(ctx context.Context, d time.Duration) error
	// AfterFunc arranges for f to run in its own goroutine after the
	// duration d, and returns a stop function with time.Timer.Stop
	// semantics: stop reports true if it prevented f from running.
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SystemClock is the Clock used by default: time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemScheduler is the Scheduler used by default, backed by the
// runtime timers of package time.
var SystemScheduler Scheduler = systemScheduler{}

type systemScheduler struct{}

func (systemScheduler) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		// Zero-length sleeps still observe cancellation.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (systemScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}
