package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = &SlogLogger{logger: slog.Default()}
)

// SetupLogger installs a JSON slog logger writing to w as both the slog default
// and the process Logger. Pass stderr: stdout carries the transformed dataset.
func SetupLogger(w io.Writer, level Level) {
	l := slog.New(newJSONHandler(w, level))
	slog.SetDefault(l)
	SetDefault(&SlogLogger{logger: l})
}

// SetDefault replaces the process Logger returned by Default.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the process Logger, so late failures are reported with
// the backend chosen for the run.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

func newJSONHandler(w io.Writer, level Level) slog.Handler {
	ops := slog.HandlerOptions{
		Level: slog.Level(level),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr.Key = "severity"
			case slog.MessageKey:
				attr.Key = "message"
			}
			return attr
		},
	}
	return WrapByErrFmtHandler(slog.NewJSONHandler(w, &ops))
}

// SlogLogger implements Logger on top of log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger writing JSON lines to w.
func NewSlogLogger(w io.Writer, level Level) *SlogLogger {
	return &SlogLogger{logger: slog.New(newJSONHandler(w, level))}
}

func (l *SlogLogger) Debug(msg string, fields ...any) {
	l.logger.Debug(msg, fields...)
}

func (l *SlogLogger) Info(msg string, fields ...any) {
	l.logger.Info(msg, fields...)
}

func (l *SlogLogger) Warn(msg string, fields ...any) {
	l.logger.Warn(msg, fields...)
}

func (l *SlogLogger) Error(msg string, fields ...any) {
	err, rest := splitError(fields)
	if err != nil {
		rest = append([]any{ErrAttr(err)}, rest...)
	}
	l.logger.Error(msg, rest...)
}

func (l *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{logger: l.logger.With(fields...)}
}

func (l *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.logger.Enabled(ctx, slog.Level(level))
}

// NopLogger discards everything.
type NopLogger struct{}

// NewNopLogger returns a Logger that drops all records.
func NewNopLogger() Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }
func (NopLogger) Enabled(context.Context, Level) bool { return false }
