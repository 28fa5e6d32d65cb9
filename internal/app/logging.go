package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel parses a level name. Unknown names fall back to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum level written.
	Level slog.Level
	// Output is where logs are written. Nil discards them.
	Output io.Writer
	// JSON selects the JSON handler instead of text.
	JSON bool
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  slog.LevelInfo,
		Output: os.Stderr,
	}
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	if cfg.Output == nil {
		return DiscardLogger()
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(cfg.Output, opts))
	}
	return slog.New(slog.NewTextHandler(cfg.Output, opts))
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OpenLogOutput resolves where logs go. An empty path yields fallback,
// which may be nil. The returned close function is never nil.
func OpenLogOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, NewOperationError("open log", path, err)
	}
	return f, f.Close, nil
}

// LoggerFromConfig builds a logger for a log level and file. It is the
// single place CLI commands turn log settings into a *slog.Logger.
func LoggerFromConfig(level, path string, fallback io.Writer) (*slog.Logger, func() error, error) {
	out, closeFn, err := OpenLogOutput(path, fallback)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	return NewLogger(LoggerConfig{Level: ParseLogLevel(level), Output: out}), closeFn, nil
}
