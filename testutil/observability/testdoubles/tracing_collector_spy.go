package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// SpySpanContext is the catalog.SpanContext handed out by TracingCollectorSpy.
type SpySpanContext struct {
	status     string
	attributes map[string]string
	mu         sync.Mutex
}

// SetStatus implements catalog.SpanContext.
func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

// AddAttribute implements catalog.SpanContext.
func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

// GetStatus returns the status set through SetStatus.
func (c *SpySpanContext) GetStatus() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// TracingCollectorSpy captures the calls a catalog.TracingCollector receives.
type TracingCollectorSpy struct {
	spanRecords []SpySpanRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpySpanRecord represents one started, and possibly finished, span.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	Finished        bool
	SpanContext     *SpySpanContext
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy(recordCalls bool) *TracingCollectorSpy {
	return &TracingCollectorSpy{recordCalls: recordCalls}
}

// StartSpan implements catalog.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, catalog.SpanContext) {
	if !s.recordCalls {
		return ctx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	spanCtx := &SpySpanContext{}

	s.spanRecords = append(s.spanRecords, SpySpanRecord{
		Name:            name,
		StartAttributes: maps.Clone(attrs),
		SpanContext:     spanCtx,
	})

	return ctx, spanCtx
}

// FinishSpan implements catalog.TracingCollector.
func (s *TracingCollectorSpy) FinishSpan(spanCtx catalog.SpanContext, status string, attrs map[string]string) {
	if !s.recordCalls || spanCtx == nil {
		return
	}

	spySpanCtx, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.spanRecords {
		if s.spanRecords[i].SpanContext == spySpanCtx {
			s.spanRecords[i].Status = status
			s.spanRecords[i].EndAttributes = maps.Clone(attrs)
			s.spanRecords[i].Finished = true
			break
		}
	}
}

// GetSpanRecords returns a copy of all captured span records.
func (s *TracingCollectorSpy) GetSpanRecords() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpySpanRecord(nil), s.spanRecords...)
}

// Reset clears all captured span records.
func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spanRecords = s.spanRecords[:0]
}

// SpanRecordMatcher provides a fluent interface for checking span records.
type SpanRecordMatcher struct {
	found  bool
	record SpySpanRecord
}

// HasSpanRecordForName starts a fluent chain to check the first span with the name.
func (s *TracingCollectorSpy) HasSpanRecordForName(name string) *SpanRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.spanRecords {
		if record.Name == name {
			return &SpanRecordMatcher{found: true, record: record}
		}
	}

	return &SpanRecordMatcher{}
}

// WithStatus requires the finish status.
func (m *SpanRecordMatcher) WithStatus(status string) *SpanRecordMatcher {
	if m.found && m.record.Status != status {
		m.found = false
	}

	return m
}

// WithStartAttribute requires the start attribute.
func (m *SpanRecordMatcher) WithStartAttribute(key, value string) *SpanRecordMatcher {
	if m.found && m.record.StartAttributes[key] != value {
		m.found = false
	}

	return m
}

// WithEndAttribute requires the finish attribute.
func (m *SpanRecordMatcher) WithEndAttribute(key, value string) *SpanRecordMatcher {
	if m.found && m.record.EndAttributes[key] != value {
		m.found = false
	}

	return m
}

// Assert returns true if all conditions in the fluent chain were met.
func (m *SpanRecordMatcher) Assert() bool {
	return m.found
}

var _ catalog.TracingCollector = (*TracingCollectorSpy)(nil)
