package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// TracingCollector implements catalog.TracingCollector with an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector that starts its spans with tracer.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts an internal span and returns the context carrying it.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, catalog.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(toAttributes(attrs)...),
	)

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan adds attrs, sets the status and ends the span.
// Spans not started by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx catalog.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ catalog.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext wraps an OpenTelemetry span as a catalog.SpanContext.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps "success" to codes.Ok and "error" to codes.Error.
// Any other status is kept as the span attribute "status".
func (s *OTelSpanContext) SetStatus(status string) {
	switch status {
	case "success":
		s.span.SetStatus(codes.Ok, "")
	case "error":
		s.span.SetStatus(codes.Error, "catalog operation failed")
	default:
		s.span.SetAttributes(toAttributes(map[string]string{catalog.LogAttrStatus: status})...)
	}
}

func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(toAttributes(map[string]string{key: value})...)
}

var _ catalog.SpanContext = (*OTelSpanContext)(nil)
