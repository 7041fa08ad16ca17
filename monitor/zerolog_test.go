// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package monitor

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewZerolog(t *testing.T) {
	var b strings.Builder
	m := NewZerolog(zerolog.New(&b))
	m.Retrying("fetch", errTest, 1, 250*time.Millisecond, true)
	line := b.String()
	assert.Contains(t, line, `"level":"info"`)
	assert.Contains(t, line, `"message":"retrying"`)
	assert.Contains(t, line, `"name":"fetch"`)
	assert.Contains(t, line, `"attempt":1`)
	assert.Contains(t, line, `"error":"test error"`)
	assert.Contains(t, line, `"will_retry":true`)

	b.Reset()
	m.Interrupted("fetch", errTest, 2)
	assert.Contains(t, b.String(), `"level":"warn"`)
	assert.Contains(t, b.String(), `"message":"interrupted"`)

	b.Reset()
	m.Aborted("fetch", errTest, 3)
	assert.Contains(t, b.String(), `"level":"error"`)
	assert.Contains(t, b.String(), `"message":"aborted"`)
}

func TestNewZerologWithLevels(t *testing.T) {
	t.Run("custom levels", func(t *testing.T) {
		var b strings.Builder
		m := NewZerologWithLevels(zerolog.New(&b), zerolog.DebugLevel, zerolog.InfoLevel, zerolog.FatalLevel)
		m.Retrying("x", errTest, 1, time.Second, true)
		assert.Contains(t, b.String(), `"level":"debug"`)
	})
	t.Run("disabled kind", func(t *testing.T) {
		var b strings.Builder
		m := NewZerologWithLevels(zerolog.New(&b), zerolog.Disabled, zerolog.WarnLevel, zerolog.ErrorLevel)
		m.Retrying("x", errTest, 1, time.Second, true)
		assert.Empty(t, b.String())
		m.Aborted("x", errTest, 1)
		assert.NotEmpty(t, b.String())
	})
	t.Run("no name", func(t *testing.T) {
		var b strings.Builder
		m := NewZerologWithLevels(zerolog.New(&b), zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel)
		m.Aborted("", errTest, 1)
		assert.NotContains(t, b.String(), `"name"`)
	})
}
