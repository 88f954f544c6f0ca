package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/AntonStoeckl/library-catalog-go/internal/config"
)

const serviceName = "library-catalog"

// Config holds the command line configuration of the library command.
type Config struct {
	LogLevel             slog.Level
	LogFormat            string
	ObservabilityEnabled bool
	HistoryJSON          string // path, "-" for stdout, empty for none
}

// parseFlags parses the command line, taking defaults from the environment.
func parseFlags() Config {
	config.LoadEnvFiles()

	var (
		logLevel      = flag.String("log-level", config.GetEnv("LIBRARY_LOG_LEVEL", "warn"), "Minimum log level: debug, info, warn, error")
		logFormat     = flag.String("log-format", config.GetEnv("LIBRARY_LOG_FORMAT", config.LogFormatText), "Log format: text or json")
		observability = flag.Bool("observability-enabled", config.GetEnvBool("LIBRARY_OBSERVABILITY_ENABLED", false), "Export traces, metrics and logs through OpenTelemetry to stderr")
		historyJSON   = flag.String("history-json", config.GetEnv("LIBRARY_HISTORY_JSON", ""), "Write the event history as JSON to this file, - for stdout")
	)

	flag.Parse()

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	return Config{
		LogLevel:             level,
		LogFormat:            *logFormat,
		ObservabilityEnabled: *observability,
		HistoryJSON:          *historyJSON,
	}
}
