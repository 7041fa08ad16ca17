// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package atmos

import (
	"context"
	"time"

	"github.com/lpryor/atmos/classify"
	"github.com/lpryor/atmos/monitor"
)

// An Operation is a fallible unit of work the driver runs once per
// attempt. The context passed to the operation is the one given to the
// driver (for the asynchronous driver, a cancellable child of it), so
// a cooperative operation stops promptly on cancellation.
//
// The driver never mutates or rebuilds the operation between attempts.
type Operation func(ctx context.Context) error

// An OperationWithResult is an Operation that produces a value on
// success.
type OperationWithResult[T any] func(ctx context.Context) (T, error)

// Retry runs op under the policy, blocking the calling goroutine
// until an attempt succeeds or the policy gives up.
//
// The first attempt always runs. After a failed attempt the error is
// classified; fatal errors propagate immediately, and otherwise the
// termination policy decides whether another attempt is allowed. If it
// is, the driver waits for the backoff duration and tries again. The
// returned error is always the last error the operation failed with,
// except when the backoff wait is interrupted by cancellation of ctx,
// in which case the context's error is returned and no further attempt
// is made.
//
// The name is passed through to monitor events to identify the
// operation; it may be empty.
//
// Retry panics if op is nil.
func (p Policy) Retry(ctx context.Context, name string, op Operation) error {
	if op == nil {
		panic("atmos: nil operation")
	}
	_, err := run(ctx, p, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, nil)
	return err
}

// RetryWithResult runs op under the policy exactly as Policy.Retry
// does, returning the value of the first successful attempt. On
// failure it returns the zero value of T along with the error.
//
// RetryWithResult panics if op is nil.
func RetryWithResult[T any](ctx context.Context, p Policy, name string, op OperationWithResult[T]) (T, error) {
	if op == nil {
		panic("atmos: nil operation")
	}
	return run(ctx, p, name, op, nil)
}

// run is the driver shared by the synchronous and asynchronous entry
// points. The sleep parameter overrides the blocking wait between
// attempts; nil means the scheduler's Sleep.
func run[T any](ctx context.Context, p Policy, name string, op OperationWithResult[T], sleep func(context.Context, time.Duration) error) (T, error) {
	termination := p.Termination()
	backoffPolicy := p.Backoff()
	classifier := p.Classifier()
	ev := events{p.Monitor()}
	clock := p.Clock()
	if sleep == nil {
		sleep = p.Scheduler().Sleep
	}

	var zero T
	start := clock.Now()
	attempt := uint(1)
	for {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		cls := classifier.Classify(err)
		if cls == classify.Fatal {
			ev.aborted(name, err, attempt)
			return zero, err
		}
		elapsed := clock.Now().Sub(start)
		if termination.ShouldStop(attempt+1, elapsed) {
			ev.aborted(name, err, attempt)
			return zero, err
		}
		wait := backoffPolicy.Backoff(attempt, err)
		if cls != classify.SilentlyRecoverable {
			ev.retrying(name, err, attempt, wait, true)
		}
		if serr := sleep(ctx, wait); serr != nil {
			ev.interrupted(name, err, attempt)
			return zero, serr
		}
		attempt++
	}
}

// events wraps a monitor so that whatever it panics with cannot alter
// the outcome of the retried operation.
type events struct {
	m monitor.Monitor
}

func (e events) retrying(name string, err error, attempt uint, backoff time.Duration, willRetry bool) {
	defer swallow()
	e.m.Retrying(name, err, attempt, backoff, willRetry)
}

func (e events) interrupted(name string, err error, attempt uint) {
	defer swallow()
	e.m.Interrupted(name, err, attempt)
}

func (e events) aborted(name string, err error, attempt uint) {
	defer swallow()
	e.m.Aborted(name, err, attempt)
}

func swallow() {
	_ = recover()
}
