package catalog

import (
	"io"
	"time"
)

// Option defines a functional option for configuring a Catalog.
type Option func(*Catalog) error

// WithLogger sets the logger for the Catalog.
// Info level: copies added, borrowed, returned.
// Warn level: Borrow or Return found no eligible copy.
// Error level: Add rejected its input.
func WithLogger(logger Logger) Option {
	return func(c *Catalog) error {
		c.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger, which takes precedence over WithLogger.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(c *Catalog) error {
		c.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Catalog.
func WithMetrics(collector MetricsCollector) Option {
	return func(c *Catalog) error {
		c.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Catalog.
func WithTracing(collector TracingCollector) Option {
	return func(c *Catalog) error {
		c.tracingCollector = collector
		return nil
	}
}

// WithClock replaces time.Now as the source of event timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) error {
		if now == nil {
			return ErrNilClock
		}

		c.now = now

		return nil
	}
}

// WithTranscript makes the Catalog write one human-readable line per operation to w.
func WithTranscript(w io.Writer) Option {
	return func(c *Catalog) error {
		if w == nil {
			return ErrNilTranscriptWriter
		}

		c.transcript = newTranscript(w)

		return nil
	}
}
