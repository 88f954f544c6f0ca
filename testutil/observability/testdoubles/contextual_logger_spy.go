package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// ContextualLoggerSpy captures the calls a catalog.ContextualLogger receives.
type ContextualLoggerSpy struct {
	records     []SpyContextualLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyContextualLogRecord represents a recorded contextual log call.
type SpyContextualLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// Arg returns the value following key in the record's args.
func (r SpyContextualLogRecord) Arg(key string) (any, bool) {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if k, ok := r.Args[i].(string); ok && k == key {
			return r.Args[i+1], true
		}
	}

	return nil, false
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{recordCalls: recordCalls}
}

// DebugContext implements catalog.ContextualLogger.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements catalog.ContextualLogger.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements catalog.ContextualLogger.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements catalog.ContextualLogger.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyContextualLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Context: ctx,
	})
}

// Reset clears all recorded log calls.
func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// GetRecords returns a copy of the records of the given level.
func (s *ContextualLoggerSpy) GetRecords(level string) []SpyContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []SpyContextualLogRecord
	for _, record := range s.records {
		if record.Level == level {
			records = append(records, record)
		}
	}

	return records
}

// GetTotalRecordCount returns the number of log records across all levels.
func (s *ContextualLoggerSpy) GetTotalRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// HasLog checks if a record with the level and message exists.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

var _ catalog.ContextualLogger = (*ContextualLoggerSpy)(nil)
