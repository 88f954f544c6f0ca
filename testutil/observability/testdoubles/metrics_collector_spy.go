package testdoubles

import (
	"maps"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// MetricsCollectorSpy captures the calls a catalog.MetricsCollector receives.
type MetricsCollectorSpy struct {
	durationRecords []SpyDurationRecord
	counterRecords  []SpyCounterRecord
	valueRecords    []SpyValueRecord
	mu              sync.Mutex
	recordCalls     bool
}

// SpyDurationRecord represents a recorded duration metric call.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents a recorded counter increment call.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// SpyValueRecord represents a recorded value metric call.
type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{recordCalls: recordCalls}
}

// RecordDuration implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, SpyDurationRecord{
		Metric:   metric,
		Duration: duration,
		Labels:   maps.Clone(labels),
	})
}

// IncrementCounter implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, SpyCounterRecord{
		Metric: metric,
		Labels: maps.Clone(labels),
	})
}

// RecordValue implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, SpyValueRecord{
		Metric: metric,
		Value:  value,
		Labels: maps.Clone(labels),
	})
}

// GetDurationRecords returns a copy of all captured duration records.
func (s *MetricsCollectorSpy) GetDurationRecords() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyDurationRecord(nil), s.durationRecords...)
}

// GetCounterRecords returns a copy of all captured counter records.
func (s *MetricsCollectorSpy) GetCounterRecords() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyCounterRecord(nil), s.counterRecords...)
}

// GetValueRecords returns a copy of all captured value records.
func (s *MetricsCollectorSpy) GetValueRecords() []SpyValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyValueRecord(nil), s.valueRecords...)
}

// LastValue returns the most recently recorded value of the gauge metric.
func (s *MetricsCollectorSpy) LastValue(metric string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.valueRecords) - 1; i >= 0; i-- {
		if s.valueRecords[i].Metric == metric {
			return s.valueRecords[i].Value, true
		}
	}

	return 0, false
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = s.durationRecords[:0]
	s.counterRecords = s.counterRecords[:0]
	s.valueRecords = s.valueRecords[:0]
}

// MetricRecordMatcher provides a fluent interface for checking metric records.
type MetricRecordMatcher struct {
	candidates []map[string]string
	wanted     map[string]string
}

// HasDurationRecordForMetric starts a fluent chain to check a duration record.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{wanted: map[string]string{}}
	for _, record := range s.durationRecords {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record.Labels)
		}
	}

	return m
}

// HasCounterRecordForMetric starts a fluent chain to check a counter record.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{wanted: map[string]string{}}
	for _, record := range s.counterRecords {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record.Labels)
		}
	}

	return m
}

// WithOperation requires the operation label.
func (m *MetricRecordMatcher) WithOperation(operation string) *MetricRecordMatcher {
	return m.WithLabel(catalog.LogAttrOperation, operation)
}

// WithStatus requires the status label.
func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel(catalog.LogAttrStatus, status)
}

// WithLabel requires the label key with the given value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	m.wanted[key] = value
	return m
}

// Assert returns true if at least one record meets all conditions of the chain.
func (m *MetricRecordMatcher) Assert() bool {
	for _, labels := range m.candidates {
		matches := true
		for k, v := range m.wanted {
			if labels[k] != v {
				matches = false
				break
			}
		}

		if matches {
			return true
		}
	}

	return false
}

// CountCounterRecordsForMetric counts the counter records of the metric.
func (s *MetricsCollectorSpy) CountCounterRecordsForMetric(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.counterRecords {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

var _ catalog.MetricsCollector = (*MetricsCollectorSpy)(nil)
