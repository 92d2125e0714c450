// Package logger configures structured logging for the shell.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"
)

// NewStructuredLogger creates a JSON logger writing to w at the given level.
// Module name and version are attached to every record. AddSource is
// enabled for debug level logging only.
func NewStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	lev := ParseLogLevel(level)

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	})).With("module", module, "version", version)
}

// NewLogLogger returns a standard library logger that writes through
// slog's text handler at the given level. Used where a dependency expects
// a *log.Logger, such as http.Server.ErrorLog.
func NewLogLogger(level slog.Level) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return slog.NewLogLogger(handler, level)
}

// SetDefaultLogger sets the default logger at the level taken from LOG_LEVEL.
func SetDefaultLogger(module, version string) *slog.Logger {
	return SetDefaultLoggerWithLevel(module, version, os.Getenv(EnvVarLogLevel))
}

// SetDefaultLoggerWithLevel sets a stderr JSON logger with the given level
// as the slog default and returns it.
func SetDefaultLoggerWithLevel(module, version, level string) *slog.Logger {
	l := NewStructuredLogger(os.Stderr, module, version, level)
	slog.SetDefault(l)
	return l
}

// ParseLogLevel converts a level name into a slog.Level.
// Unrecognized names map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
