package catalog

import (
	"context"
	"time"
)

// Logger is the minimal leveled logger the Catalog reports to. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger is a Logger variant that receives the operation's context,
// so implementations can correlate records with the active trace span.
// When both are configured, the Catalog prefers the ContextualLogger.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector receives operation durations, call counts and copy gauges.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector is an optional extension of MetricsCollector.
// The Catalog uses the context-aware methods when the collector implements them.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext is an active span handed out by a TracingCollector.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector opens one span per catalog operation.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}
