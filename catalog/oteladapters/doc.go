// Package oteladapters connects the observability ports of the catalog package to OpenTelemetry.
//
// SlogBridgeLogger and OTelLogger implement catalog.ContextualLogger,
// MetricsCollector implements catalog.ContextualMetricsCollector,
// TracingCollector implements catalog.TracingCollector.
//
// Wiring them against the global providers:
//
//	c, err := catalog.NewCatalog(
//		catalog.WithContextualLogger(oteladapters.NewSlogBridgeLogger("library")),
//		catalog.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter("library"))),
//		catalog.WithTracing(oteladapters.NewTracingCollector(otel.Tracer("library"))),
//	)
package oteladapters
