// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package monitor

import (
	"context"
	"log/slog"
	"math"
	"time"
)

// SlogNothing is a sentinel level which suppresses an event kind in a
// slog-backed monitor. It is never passed to the underlying handler.
const SlogNothing slog.Level = slog.Level(math.MinInt32)

// NewSlog constructs a monitor that logs events through log with the
// default levels: retrying at info, interrupted at warn, and aborted
// at error.
func NewSlog(log *slog.Logger) Monitor {
	return NewSlogWithLevels(log, slog.LevelInfo, slog.LevelWarn, slog.LevelError)
}

// NewSlogWithLevels constructs a monitor that logs events through log,
// with one level per event kind. Use SlogNothing to suppress an event
// kind entirely.
//
// NewSlogWithLevels panics if log is nil.
func NewSlogWithLevels(log *slog.Logger, retrying, interrupted, aborted slog.Level) Monitor {
	if log == nil {
		panic("atmos/monitor: nil logger")
	}
	return &slogMonitor{
		log:         log,
		retrying:    retrying,
		interrupted: interrupted,
		aborted:     aborted,
	}
}

type slogMonitor struct {
	log         *slog.Logger
	retrying    slog.Level
	interrupted slog.Level
	aborted     slog.Level
}

func (m *slogMonitor) Retrying(name string, err error, attempt uint, backoff time.Duration, willRetry bool) {
	m.emit(m.retrying, "retrying", name, err, attempt,
		slog.Duration("backoff", backoff), slog.Bool("will_retry", willRetry))
}

func (m *slogMonitor) Interrupted(name string, err error, attempt uint) {
	m.emit(m.interrupted, "interrupted", name, err, attempt)
}

func (m *slogMonitor) Aborted(name string, err error, attempt uint) {
	m.emit(m.aborted, "aborted", name, err, attempt)
}

func (m *slogMonitor) emit(level slog.Level, msg, name string, err error, attempt uint, extra ...slog.Attr) {
	if level == SlogNothing {
		return
	}
	attrs := make([]slog.Attr, 0, 4+len(extra))
	if name != "" {
		attrs = append(attrs, slog.String("name", name))
	}
	attrs = append(attrs, slog.Uint64("attempt", uint64(attempt)))
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	attrs = append(attrs, extra...)
	m.log.LogAttrs(context.Background(), level, msg, attrs...)
}
