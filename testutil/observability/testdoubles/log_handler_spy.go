package testdoubles

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switchable to log to stdout, which helps when debugging a test.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdout,
	}
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. Attributes added this way are not captured.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecordCount returns the number of captured log records.
func (s *LogHandlerSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// GetRecords returns a copy of all captured log records.
func (s *LogHandlerSpy) GetRecords() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]slog.Record, len(s.records))
	copy(records, s.records)

	return records
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// HasLog checks if there's a record with the level and message.
func (s *LogHandlerSpy) HasLog(level slog.Level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// HasLogWithAttr checks if there's a record with the level and message
// that carries the attribute key with the value's string form.
func (s *LogHandlerSpy) HasLogWithAttr(level slog.Level, message, key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level != level || record.Message != message {
			continue
		}

		found := false
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key && attr.Value.String() == value {
				found = true
				return false
			}

			return true
		})

		if found {
			return true
		}
	}

	return false
}
