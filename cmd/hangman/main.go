// Command hangman plays one round of the word guessing game on the console.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/internal/config"
	"github.com/AntonStoeckl/library-catalog-go/internal/hangman"
)

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.LogLevel, config.LogFormatText, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	runner, err := hangman.NewRunner(
		hangman.WithWords(cfg.Words),
		hangman.WithSeed(seed),
		hangman.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to set up the game: %v", err)
	}

	in, err := hangman.DecodeInput(os.Stdin, cfg.InputEncoding)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	if _, err := runner.Play(ctx, in, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Game aborted: %v", err)
	}
}
