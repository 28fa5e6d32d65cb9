package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: slog.LevelWarn, Output: &buf})

	l.Info("hidden")
	l.Warn("shown", "component", "test")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "component=test")

	buf.Reset()
	NewLogger(LoggerConfig{Level: slog.LevelInfo, Output: &buf, JSON: true}).Info("json")
	assert.Contains(t, buf.String(), `"msg":"json"`)
}

func TestNilOutputDiscards(t *testing.T) {
	l := NewLogger(LoggerConfig{})
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLoggerFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.log")

	l, closeFn, err := LoggerFromConfig("debug", path, nil)
	require.NoError(t, err)
	l.Debug("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	var buf bytes.Buffer
	l, closeFn, err = LoggerFromConfig("info", "", &buf)
	require.NoError(t, err)
	l.Info("fallback")
	assert.NoError(t, closeFn())
	assert.Contains(t, buf.String(), "fallback")

	_, _, err = LoggerFromConfig("info", filepath.Join(t.TempDir(), "missing", "x.log"), nil)
	var opErr *OperationError
	assert.ErrorAs(t, err, &opErr)
}
