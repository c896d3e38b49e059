// Package log provides a structured logging interface for noisegen.
//
// The Logger interface is slog-compatible so that backends can be switched without
// touching call sites. Two backends ship with the package: a log/slog JSON logger
// whose handler extracts cockroachdb/errors stacktraces, and a zerolog logger
// that can render either JSON or a human-readable console format.
//
// Example usage:
//
//	logger := log.NewSlogLogger(os.Stderr, log.LevelInfo).With(
//	    log.ComponentKey, "noise",
//	)
//	logger.Info("Noise injected",
//	    log.RowsKey, 1000,
//	    log.ColumnsKey, 5,
//	    log.RatioKey, 0.1,
//	)
package log

import (
	"context"
	"strings"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key-value pairs. Error additionally accepts an error
// value as its first field, which backends log under ErrAttrKey.
type Logger interface {
	// Debug logs detailed diagnostic information, such as per-column statistics.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that don't stop processing.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If the first field is an error it is
	// attached under ErrAttrKey together with its stacktrace when available.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.NewValidationError("log_level", "must be one of debug, info, warn, error", name)
	}
}

// splitError pulls a leading error value out of fields.
func splitError(fields []any) (error, []any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			return err, fields[1:]
		}
	}
	return nil, fields
}
