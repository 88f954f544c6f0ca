package main

import (
	"flag"
	"log"
	"log/slog"
	"strings"

	"github.com/AntonStoeckl/library-catalog-go/internal/config"
	"github.com/AntonStoeckl/library-catalog-go/internal/hangman"
)

// Config holds the command line configuration of the hangman command.
type Config struct {
	Words         []string
	Seed          uint64
	InputEncoding string
	LogLevel      slog.Level
}

// parseFlags parses the command line, taking defaults from the environment.
func parseFlags() Config {
	config.LoadEnvFiles()

	var (
		words         = flag.String("words", config.GetEnv("HANGMAN_WORDS", strings.Join(hangman.DefaultWords, ",")), "Comma-separated words to choose from")
		seed          = flag.Uint64("seed", uint64(config.GetEnvInt("HANGMAN_SEED", 0)), "Seed for the word choice, 0 for a random one")
		inputEncoding = flag.String("input-encoding", config.GetEnv("HANGMAN_INPUT_ENCODING", hangman.EncodingUTF8), "Encoding of stdin: utf-8 or cp866")
		logLevel      = flag.String("log-level", config.GetEnv("HANGMAN_LOG_LEVEL", "warn"), "Minimum log level: debug, info, warn, error")
	)

	flag.Parse()

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	return Config{
		Words:         strings.Split(*words, ","),
		Seed:          *seed,
		InputEncoding: *inputEncoding,
		LogLevel:      level,
	}
}
