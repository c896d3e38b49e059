package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

var _ Logger = (*TestLogger)(nil)

// TestLogger records every entry as a JSON line in memory so tests can assert
// on what the noise pipeline logged.
//
//	logger, _ := log.NewTestLogger(log.LevelDebug)
//	noise.AddNoise(rows, 0.1, noise.WithLogger(logger))
//	if !logger.ContainsField(log.OperationKey, log.OperationAddNoise) {
//	    t.Error("expected add_noise operation in logs")
//	}
type TestLogger struct {
	buffer *bytes.Buffer
	level  Level
	fields map[string]any
}

// NewTestLogger returns a TestLogger that drops entries below level, and the
// buffer it writes to. Loggers derived with With share the buffer.
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{buffer: buffer, level: level, fields: map[string]any{}}, buffer
}

func (t *TestLogger) Debug(msg string, fields ...any) { t.write(LevelDebug, msg, fields) }
func (t *TestLogger) Info(msg string, fields ...any) { t.write(LevelInfo, msg, fields) }
func (t *TestLogger) Warn(msg string, fields ...any) { t.write(LevelWarn, msg, fields) }

func (t *TestLogger) Error(msg string, fields ...any) {
	if err, rest := splitError(fields); err != nil {
		fields = append([]any{ErrAttrKey, err}, rest...)
	}
	t.write(LevelError, msg, fields)
}

func (t *TestLogger) With(fields ...any) Logger {
	merged := make(map[string]any, len(t.fields)+len(fields)/2)
	for k, v := range t.fields {
		merged[k] = v
	}
	addPairs(merged, fields)
	return &TestLogger{buffer: t.buffer, level: t.level, fields: merged}
}

func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return t.level <= level
}

func (t *TestLogger) write(level Level, msg string, fields []any) {
	if level < t.level {
		return
	}
	entry := map[string]any{"level": level.String(), "message": msg}
	for k, v := range t.fields {
		entry[k] = v
	}
	addPairs(entry, fields)

	line, _ := json.Marshal(entry)
	t.buffer.Write(line)
	t.buffer.WriteByte('\n')
}

// addPairs copies alternating key-value fields into m. Errors are stored as
// their message; a trailing key without a value is ignored.
func addPairs(m map[string]any, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		if err, ok := fields[i+1].(error); ok {
			m[key] = err.Error()
			continue
		}
		m[key] = fields[i+1]
	}
}

// Entries decodes the captured JSON lines. Numbers come back as float64.
func (t *TestLogger) Entries() ([]map[string]any, error) {
	var entries []map[string]any
	for _, line := range strings.Split(t.buffer.String(), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ContainsMessage reports whether any entry's message contains message.
func (t *TestLogger) ContainsMessage(message string) bool {
	entries, err := t.Entries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if msg, _ := entry["message"].(string); strings.Contains(msg, message) {
			return true
		}
	}
	return false
}

// ContainsField reports whether any entry has key set to value. Numbers must be
// given as float64 and slices as []any.
func (t *TestLogger) ContainsField(key string, value any) bool {
	entries, err := t.Entries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if v, ok := entry[key]; ok && reflect.DeepEqual(v, value) {
			return true
		}
	}
	return false
}

// Reset discards everything captured so far.
func (t *TestLogger) Reset() {
	t.buffer.Reset()
}
