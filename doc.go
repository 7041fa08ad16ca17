// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package atmos builds and executes retry policies: declarative
descriptions of how a fallible operation should be re-attempted when
it fails.

Create a Policy to begin retrying. The zero value is a useful default
(three attempts, Fibonacci backoff from 100ms):

	p := atmos.New()
	err := p.Retry(ctx, "refresh-token", func(ctx context.Context) error {
		return client.Refresh(ctx)
	})

Operations that produce a value use the generic entry point:

	token, err := atmos.RetryWithResult(ctx, p, "refresh-token",
		func(ctx context.Context) (Token, error) {
			return client.Token(ctx)
		})

A policy is assembled from four independent axes, each with its own
package. The termination policy decides when to stop, the backoff
policy how long to wait, the classifier which errors are worth
retrying, and the monitor observes attempt-boundary events:

	p := atmos.RetryFor(terminate.Either(terminate.MaxAttempts(5), terminate.MaxElapsed(30*time.Second))).
		WithBackoff(backoff.Randomized(backoff.Exponential(50*time.Millisecond), 0, 25*time.Millisecond, nil)).
		WithClassifier(classify.Is(classify.Fatal, errBadCredentials)).
		WithMonitor(monitor.NewZerolog(log))

Policies are immutable values: each With method returns a copy, so a
base policy can be shared and specialized freely across goroutines.

For non-blocking use, RetryAsync runs the same state machine on its
own goroutine and returns a future:

	f := p.RetryAsync(ctx, "refresh-token", op)
	...
	if _, err := f.Result(); err != nil {
		...
	}

Cancellation is context cancellation throughout: cancelling the
context passed to Retry (or calling Cancel on a future) cuts a pending
backoff wait short, emits an interrupted event, and stops retrying.
*/
package atmos
