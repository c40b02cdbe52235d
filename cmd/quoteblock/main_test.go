// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliBlock = `<div class="quotes"><div data-aue-resource="urn:row0"><div><p>A</p></div><div>Ann</div></div></div>`

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestDecorateCommand(t *testing.T) {
	out := run(t, cliBlock, "decorate")

	assert.Contains(t, out, `<div class="quote-item" data-quote-index="0" data-aue-resource="urn:row0">`)
	assert.Contains(t, out, `<cite data-quote-field="author">- Ann</cite>`)
}

func TestNormalizeCommand(t *testing.T) {
	out := run(t, cliBlock, "normalize")

	assert.Contains(t, out, "variant: per-row-fields")
	assert.Contains(t, out, "author: Ann")
	assert.NotContains(t, out, "urn:row0")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	fallback := newLogger(&buf, "nonsense")
	assert.True(t, fallback.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, fallback.Enabled(context.Background(), slog.LevelDebug))
}
