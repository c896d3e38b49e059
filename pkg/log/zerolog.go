package log

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// ZerologLogger implements Logger on top of rs/zerolog.
//
// Errors implementing zerolog.LogObjectMarshaler (every structured error in
// pkg/errors does) are logged as nested objects instead of flat strings.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a Logger writing to w. With console set, records are
// rendered by zerolog.ConsoleWriter for terminals; otherwise one JSON object per line.
func NewZerologLogger(w io.Writer, level Level, console bool) *ZerologLogger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{logger: zl}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (l *ZerologLogger) Debug(msg string, fields ...any) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Info(msg string, fields ...any) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, fields ...any) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, fields ...any) {
	err, rest := splitError(fields)
	event := l.logger.Error()
	if err != nil {
		var marshaler zerolog.LogObjectMarshaler
		if errors.As(err, &marshaler) {
			event = event.Object(ErrAttrKey, marshaler).Str("message_detail", err.Error())
		} else {
			event = event.AnErr(ErrAttrKey, err)
		}
		if stacktrace := extractStacktrace(err); stacktrace != "" {
			event = event.Str(StacktraceAttrKey, stacktrace)
		}
	}
	event.Fields(rest).Msg(msg)
}

func (l *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{logger: l.logger.With().Fields(fields).Logger()}
}

func (l *ZerologLogger) Enabled(ctx context.Context, level Level) bool {
	return toZerologLevel(level) >= l.logger.GetLevel()
}
