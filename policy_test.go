// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package atmos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpryor/atmos/backoff"
	"github.com/lpryor/atmos/classify"
	"github.com/lpryor/atmos/monitor"
	"github.com/lpryor/atmos/terminate"
)

func TestZeroValueDefaults(t *testing.T) {
	var p Policy
	assert.NotNil(t, p.Termination())
	assert.NotNil(t, p.Backoff())
	assert.NotNil(t, p.Monitor())
	assert.NotNil(t, p.Classifier())
	assert.NotNil(t, p.Clock())
	assert.NotNil(t, p.Scheduler())
	assert.True(t, p.Termination().ShouldStop(4, 0))
	assert.False(t, p.Termination().ShouldStop(3, time.Hour))
	assert.Equal(t, backoff.DefaultBase, p.Backoff().Backoff(1, errBoom))
	assert.Equal(t, classify.Recoverable, p.Classifier().Classify(errBoom))
}

func TestNewEqualsZeroValue(t *testing.T) {
	// New is the zero value.
	p := New()
	var zero Policy
	assert.Equal(t, zero, p)
}

func TestConstructors(t *testing.T) {
	t.Run("RetryFor", func(t *testing.T) {
		p := RetryFor(terminate.MaxAttempts(7))
		assert.False(t, p.Termination().ShouldStop(7, 0))
		assert.True(t, p.Termination().ShouldStop(8, 0))
	})
	t.Run("NeverRetry", func(t *testing.T) {
		assert.True(t, NeverRetry().Termination().ShouldStop(2, 0))
	})
	t.Run("RetryForever", func(t *testing.T) {
		assert.False(t, RetryForever().Termination().ShouldStop(1<<20, time.Hour))
	})
}

func TestWithReplacement(t *testing.T) {
	// Each With method returns a copy; the receiver is untouched.
	base := New()
	m := &recordingMonitor{}
	derived := base.
		WithTermination(terminate.Never).
		WithBackoff(backoff.Constant(time.Second)).
		WithMonitor(m).
		WithClassifier(classify.Is(classify.Fatal, errBoom)).
		WithClock(&fakeClock{}).
		WithScheduler(&fakeScheduler{})

	assert.Equal(t, New(), base)
	assert.False(t, derived.Termination().ShouldStop(1<<20, time.Hour))
	assert.Equal(t, time.Second, derived.Backoff().Backoff(3, errBoom))
	assert.Equal(t, classify.Fatal, derived.Classifier().Classify(errBoom))
}

func TestWithNilPanics(t *testing.T) {
	p := New()
	assert.PanicsWithValue(t, "atmos: nil termination policy", func() { p.WithTermination(nil) })
	assert.PanicsWithValue(t, "atmos: nil backoff policy", func() { p.WithBackoff(nil) })
	assert.PanicsWithValue(t, "atmos: nil monitor", func() { p.WithMonitor(nil) })
	assert.PanicsWithValue(t, "atmos: nil classifier", func() { p.WithClassifier(nil) })
	assert.PanicsWithValue(t, "atmos: nil clock", func() { p.WithClock(nil) })
	assert.PanicsWithValue(t, "atmos: nil scheduler", func() { p.WithScheduler(nil) })
}

func TestRoundTripReplacement(t *testing.T) {
	// Replacing each field with its current value yields a policy that
	// behaves identically.
	m := &recordingMonitor{}
	clock := &fakeClock{}
	sched := &fakeScheduler{clock: clock}
	p := New().
		WithTermination(terminate.MaxAttempts(2)).
		WithBackoff(backoff.Constant(time.Millisecond)).
		WithMonitor(m).
		WithClassifier(classify.Default).
		WithClock(clock).
		WithScheduler(sched)
	q := p.
		WithTermination(p.Termination()).
		WithBackoff(p.Backoff()).
		WithMonitor(p.Monitor()).
		WithClassifier(p.Classifier()).
		WithClock(p.Clock()).
		WithScheduler(p.Scheduler())

	run := func(p Policy) (int, error) {
		calls := 0
		err := p.Retry(context.Background(), "op", func(_ context.Context) error {
			calls++
			return errBoom
		})
		return calls, err
	}
	pCalls, pErr := run(p)
	qCalls, qErr := run(q)
	assert.Equal(t, pCalls, qCalls)
	assert.Equal(t, pErr, qErr)
	assert.Equal(t, []string{"retrying", "aborted", "retrying", "aborted"}, m.kinds())
}

func TestPolicyImplementsRetryer(t *testing.T) {
	var r Retryer = New().WithScheduler(&fakeScheduler{})
	err := r.Retry(context.Background(), "op", func(_ context.Context) error { return nil })
	require.NoError(t, err)

	var a AsyncRetryer = New().WithScheduler(&fakeScheduler{})
	f := a.RetryAsync(context.Background(), "op", func(_ context.Context) error { return nil })
	_, err = f.Result()
	require.NoError(t, err)
}

func TestMonitorChainWithPolicy(t *testing.T) {
	// A chained monitor sees the same events as its members.
	a, b := &recordingMonitor{}, &recordingMonitor{}
	p, _ := testPolicy(nil)
	p = p.WithMonitor(monitor.Chain(a, b)).WithTermination(terminate.MaxAttempts(2))

	err := p.Retry(context.Background(), "op", func(_ context.Context) error {
		return errBoom
	})

	assert.Equal(t, errBoom, err)
	assert.Equal(t, []string{"retrying", "aborted"}, a.kinds())
	assert.Equal(t, a.recorded(), b.recorded())
}

func TestDefaultClassifierUnknownErrors(t *testing.T) {
	// Unmatched errors default to recoverable end to end.
	m := &recordingMonitor{}
	p, _ := testPolicy(m)
	p = p.WithClassifier(classify.Is(classify.Fatal, errors.New("never seen")))
	op, calls := failTimes(1, errBoom, 1)

	_, err := RetryWithResult(context.Background(), p, "op", op)

	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
	assert.Equal(t, []string{"retrying"}, m.kinds())
}
