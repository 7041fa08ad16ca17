// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package monitor

import (
	"time"

	"github.com/rs/zerolog"
)

// NewZerolog constructs a monitor that logs events through log with
// the default levels: retrying at info, interrupted at warn, and
// aborted at error.
func NewZerolog(log zerolog.Logger) Monitor {
	return NewZerologWithLevels(log, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel)
}

// NewZerologWithLevels constructs a monitor that logs events through
// log, with one level per event kind. Use zerolog.Disabled to
// suppress an event kind entirely.
func NewZerologWithLevels(log zerolog.Logger, retrying, interrupted, aborted zerolog.Level) Monitor {
	return &zerologMonitor{
		log:         log,
		retrying:    retrying,
		interrupted: interrupted,
		aborted:     aborted,
	}
}

type zerologMonitor struct {
	log         zerolog.Logger
	retrying    zerolog.Level
	interrupted zerolog.Level
	aborted     zerolog.Level
}

func (m *zerologMonitor) Retrying(name string, err error, attempt uint, backoff time.Duration, willRetry bool) {
	m.event(m.retrying, name, err, attempt).
		Dur("backoff", backoff).
		Bool("will_retry", willRetry).
		Msg("retrying")
}

func (m *zerologMonitor) Interrupted(name string, err error, attempt uint) {
	m.event(m.interrupted, name, err, attempt).Msg("interrupted")
}

func (m *zerologMonitor) Aborted(name string, err error, attempt uint) {
	m.event(m.aborted, name, err, attempt).Msg("aborted")
}

func (m *zerologMonitor) event(level zerolog.Level, name string, err error, attempt uint) *zerolog.Event {
	ev := m.log.WithLevel(level).Err(err).Uint("attempt", attempt)
	if name != "" {
		ev = ev.Str("name", name)
	}
	return ev
}
