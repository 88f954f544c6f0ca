package config

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ObservabilityProviders holds the OpenTelemetry providers of a process.
type ObservabilityProviders struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	Resource       *resource.Resource
}

// NewObservabilityProviders creates tracer, meter and logger providers that export to w
// and registers them as the global OpenTelemetry providers.
//
// Everything is exported in process, spans and log records in batches and metrics on Shutdown
// at the latest. Call Shutdown before the process exits.
func NewObservabilityProviders(ctx context.Context, serviceName string, w io.Writer) (*ObservabilityProviders, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	logExporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create log exporter: %w", err)
	}

	p := &ObservabilityProviders{
		TracerProvider: trace.NewTracerProvider(
			trace.WithBatcher(traceExporter),
			trace.WithResource(res),
		),
		MeterProvider: metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(metricExporter)),
			metric.WithResource(res),
		),
		LoggerProvider: sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
			sdklog.WithResource(res),
		),
		Resource: res,
	}

	otel.SetTracerProvider(p.TracerProvider)
	otel.SetMeterProvider(p.MeterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	global.SetLoggerProvider(p.LoggerProvider)

	return p, nil
}

// Shutdown flushes and stops all providers. It reports every failure, not only the first.
func (p *ObservabilityProviders) Shutdown(ctx context.Context) error {
	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
		p.LoggerProvider.Shutdown(ctx),
	)
}
