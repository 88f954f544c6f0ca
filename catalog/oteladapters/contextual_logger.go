package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// SlogBridgeLogger implements catalog.ContextualLogger on top of log/slog.
// Built with NewSlogBridgeLogger, records go to the global OpenTelemetry LoggerProvider
// and carry the trace and span ID of the context they are logged with.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger backed by the otelslog bridge.
func NewSlogBridgeLogger(name string) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogBridgeLoggerWithHandler creates a logger that writes to handler as-is, without trace correlation.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var _ catalog.ContextualLogger = (*SlogBridgeLogger)(nil)

// OTelLogger implements catalog.ContextualLogger by emitting records through the OpenTelemetry log API.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates a contextual logger that emits to logger.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

func (l *OTelLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityDebug, msg, args)
}

func (l *OTelLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityInfo, msg, args)
}

func (l *OTelLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityWarn, msg, args)
}

func (l *OTelLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityError, msg, args)
}

func (l *OTelLogger) emit(ctx context.Context, severity log.Severity, msg string, args []any) {
	var record log.Record
	record.SetSeverity(severity)
	record.SetSeverityText(severity.String())
	record.SetBody(log.StringValue(msg))

	// args are slog-style key/value pairs, a dangling key is dropped
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		record.AddAttributes(toKeyValue(key, args[i+1]))
	}

	l.logger.Emit(ctx, record)
}

// toKeyValue keeps the numeric and boolean types the catalog logs, everything else becomes a string.
func toKeyValue(key string, v any) log.KeyValue {
	switch value := v.(type) {
	case string:
		return log.String(key, value)
	case int:
		return log.Int(key, value)
	case int64:
		return log.Int64(key, value)
	case float64:
		return log.Float64(key, value)
	case bool:
		return log.Bool(key, value)
	case error:
		return log.String(key, value.Error())
	default:
		return log.String(key, slog.AnyValue(v).String())
	}
}

var _ catalog.ContextualLogger = (*OTelLogger)(nil)
