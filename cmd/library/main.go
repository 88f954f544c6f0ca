// Command library runs the fixed lending sequence against an in-memory catalog
// and prints what happens to stdout.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	"github.com/AntonStoeckl/library-catalog-go/internal/config"
	"github.com/AntonStoeckl/library-catalog-go/internal/demo"
)

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	options := []catalog.Option{
		catalog.WithTranscript(os.Stdout),
		catalog.WithLogger(logger),
	}

	if cfg.ObservabilityEnabled {
		providers, err := config.NewObservabilityProviders(ctx, serviceName, os.Stderr)
		if err != nil {
			log.Fatalf("Failed to set up observability: %v", err)
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := providers.Shutdown(shutdownCtx); err != nil {
				log.Printf("Observability shutdown failed: %v", err)
			}
		}()

		options = append(options,
			catalog.WithContextualLogger(oteladapters.NewSlogBridgeLogger(serviceName)),
			catalog.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(serviceName))),
			catalog.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(serviceName))),
		)
	}

	c, err := catalog.NewCatalog(options...)
	if err != nil {
		log.Fatalf("Failed to create catalog: %v", err)
	}

	if err := demo.Run(ctx, c, os.Stdout); err != nil {
		log.Printf("Lending sequence failed: %v", err)
		return
	}

	if cfg.HistoryJSON != "" {
		if err := writeHistory(cfg.HistoryJSON, c.History()); err != nil {
			log.Printf("Writing history failed: %v", err)
		}
	}
}

func writeHistory(path string, events catalog.DomainEvents) error {
	var w io.Writer = os.Stdout

	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		w = f
	}

	return demo.WriteHistoryJSON(w, events)
}
