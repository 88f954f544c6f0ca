// Package testdoubles provides spies for the observability ports of the catalog package.
//
//   - MetricsCollectorSpy: captures durations, counters and gauge values
//   - TracingCollectorSpy: captures started and finished spans
//   - ContextualLoggerSpy: captures context-aware log calls per level
//   - LogHandlerSpy: a slog.Handler that captures records and their attributes
//
// All spies are safe for concurrent use.
package testdoubles
