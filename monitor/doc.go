// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package monitor provides observers for the attempt-boundary events
// of a retrying operation: retrying, interrupted, and aborted.
//
// The interface Monitor defines the observer. Built-in implementations
// render events to an io.Writer (NewWriter), log them through zerolog
// (NewZerolog) or slog (NewSlog), or count them in Prometheus metrics
// (NewMetrics). Chain fans one event stream out to several monitors:
//
//	m := monitor.Chain(
//		monitor.NewZerolog(log),
//		monitor.NewMetrics("atmos", prometheus.DefaultRegisterer),
//	)
//
// Writer and logger monitors take a per-event-kind action or level, so
// the noise of each event kind can be tuned independently.
package monitor
