package testutil

import (
	"sync"

	"github.com/backupify/cassava/types"
)

// LogEntry is one message captured by a RecordingLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// RecordingLogger is a types.Logger that keeps every message in memory.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ types.Logger = (*RecordingLogger)(nil)

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) Debug(msg string, args ...any) { l.log("debug", msg, args) }
func (l *RecordingLogger) Info(msg string, args ...any)  { l.log("info", msg, args) }
func (l *RecordingLogger) Warn(msg string, args ...any)  { l.log("warn", msg, args) }
func (l *RecordingLogger) Error(msg string, args ...any) { l.log("error", msg, args) }

// Entries returns the captured messages in order.
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]LogEntry(nil), l.entries...)
}

// ByLevel returns the captured messages at level.
func (l *RecordingLogger) ByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}

	return out
}

func (l *RecordingLogger) log(level, msg string, args []any) {
	fields := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}
