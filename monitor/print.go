// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package monitor

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// A PrintAction controls how a writer monitor renders one kind of
// event.
type PrintAction int

const (
	// PrintNothing suppresses the event.
	PrintNothing PrintAction = iota
	// PrintMessage writes a single-line summary of the event.
	PrintMessage
	// PrintMessageAndChain writes the summary line followed by one
	// line per wrapped cause in the error's chain.
	PrintMessageAndChain
)

// NewWriter constructs a monitor that renders events to w with the
// default actions: retrying events print a message, and interrupted
// and aborted events print the message and the error's cause chain.
//
// Each event is rendered with a single call to w.Write, so the
// returned monitor is safe for concurrent use whenever w is.
//
// NewWriter panics if w is nil.
func NewWriter(w io.Writer) Monitor {
	return NewWriterWithActions(w, PrintMessage, PrintMessageAndChain, PrintMessageAndChain)
}

// NewWriterWithActions constructs a monitor that renders events to w,
// with one PrintAction per event kind.
//
// NewWriterWithActions panics if w is nil.
func NewWriterWithActions(w io.Writer, retrying, interrupted, aborted PrintAction) Monitor {
	if w == nil {
		panic("atmos/monitor: nil writer")
	}
	return &writerMonitor{
		w:           w,
		retrying:    retrying,
		interrupted: interrupted,
		aborted:     aborted,
	}
}

type writerMonitor struct {
	w           io.Writer
	retrying    PrintAction
	interrupted PrintAction
	aborted     PrintAction
}

func (m *writerMonitor) Retrying(name string, err error, attempt uint, _ time.Duration, _ bool) {
	m.print(m.retrying, name, err, attempt)
}

func (m *writerMonitor) Interrupted(name string, err error, attempt uint) {
	m.print(m.interrupted, name, err, attempt)
}

func (m *writerMonitor) Aborted(name string, err error, attempt uint) {
	m.print(m.aborted, name, err, attempt)
}

func (m *writerMonitor) print(action PrintAction, name string, err error, attempt uint) {
	if action == PrintNothing {
		return
	}
	var b strings.Builder
	writeSummary(&b, name, err, attempt)
	if action == PrintMessageAndChain {
		writeChain(&b, err)
	}
	_, _ = io.WriteString(m.w, b.String())
}

func writeSummary(b *strings.Builder, name string, err error, attempt uint) {
	if name != "" {
		b.WriteString(name)
		b.WriteByte(' ')
	}
	fmt.Fprintf(b, "attempt %d failed: %s\n", attempt, errorMessage(err))
}

func writeChain(b *strings.Builder, err error) {
	for err = errors.Unwrap(err); err != nil; err = errors.Unwrap(err) {
		fmt.Fprintf(b, "  caused by: %s\n", err.Error())
	}
}

func errorMessage(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
