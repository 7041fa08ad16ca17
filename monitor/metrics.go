// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package monitor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a monitor that counts events in Prometheus metrics,
// labeled by operation name. It records a retries counter, an
// interrupts counter, an aborts counter, and a histogram of backoff
// durations in seconds.
//
// Metrics is safe for concurrent use by multiple goroutines.
type Metrics struct {
	retries    *prometheus.CounterVec
	interrupts *prometheus.CounterVec
	aborts     *prometheus.CounterVec
	backoff    *prometheus.HistogramVec
}

// NewMetrics constructs a Metrics monitor whose metric names carry the
// given namespace prefix, registered with reg.
//
// NewMetrics panics if reg is nil or a metric with the same name is
// already registered.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		panic("atmos/monitor: nil registerer")
	}
	f := promauto.With(reg)
	labels := []string{"name"}
	return &Metrics{
		retries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retries_total",
			Help:      "Total number of retried attempts.",
		}, labels),
		interrupts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interrupts_total",
			Help:      "Total number of retry waits cut short by cancellation.",
		}, labels),
		aborts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aborts_total",
			Help:      "Total number of retried operations given up on.",
		}, labels),
		backoff: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backoff_seconds",
			Help:      "Backoff wait durations in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}
}

// Retrying counts a retried attempt and observes its backoff duration.
func (m *Metrics) Retrying(name string, _ error, _ uint, backoff time.Duration, _ bool) {
	m.retries.WithLabelValues(name).Inc()
	m.backoff.WithLabelValues(name).Observe(backoff.Seconds())
}

// Interrupted counts an interrupted retry wait.
func (m *Metrics) Interrupted(name string, _ error, _ uint) {
	m.interrupts.WithLabelValues(name).Inc()
}

// Aborted counts an abandoned operation.
func (m *Metrics) Aborted(name string, _ error, _ uint) {
	m.aborts.WithLabelValues(name).Inc()
}
