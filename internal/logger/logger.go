// Package logger configures structured logging for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a configured level name onto a slog level.
// ok is false for unknown names, in which case info is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds the application logger writing to stdout and installs it as
// the slog default.
func Setup(level, format string) *slog.Logger {
	return SetupWithWriter(os.Stdout, level, format)
}

// SetupWithWriter is Setup with an explicit destination
func SetupWithWriter(w io.Writer, level, format string) *slog.Logger {
	parsed, ok := ParseLevel(level)

	opts := &slog.HandlerOptions{Level: parsed}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}

	return logger
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
