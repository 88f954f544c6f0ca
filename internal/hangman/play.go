// Package hangman is a console word guessing game: guess the hidden word one letter at a time
// before the gallows drawing is complete.
package hangman

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	promptWord  = "Слово: "
	promptGuess = "Введите вашу догадку (одна буква): "
	msgWon      = "Поздравляю! Вы выиграли! Загаданное слово: "
	msgLost     = "Вы проиграли! Загаданное слово было: "
)

var (
	ErrNoWords     = errors.New("no words to choose from")
	ErrInputClosed = errors.New("input closed before the game was decided")
	ErrNilRand     = errors.New("nil random source supplied")
)

// DefaultWords are used unless WithWords supplies others.
var DefaultWords = []string{"джава", "питон", "виселица", "программирование", "разработчик"}

// Result is the outcome of a played game.
type Result struct {
	Word         string
	Won          bool
	WrongGuesses int
}

// Runner picks words and plays games on a console.
type Runner struct {
	words  []string
	rand   *rand.Rand
	logger *slog.Logger
}

// Option defines a functional option for configuring a Runner.
type Option func(*Runner) error

// WithWords replaces DefaultWords. Words are trimmed and lower-cased, blank ones are dropped.
func WithWords(words []string) Option {
	return func(r *Runner) error {
		normalized := make([]string, 0, len(words))
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				normalized = append(normalized, w)
			}
		}

		if len(normalized) == 0 {
			return ErrNoWords
		}

		r.words = normalized

		return nil
	}
}

// WithRand makes the word choice reproducible.
func WithRand(rnd *rand.Rand) Option {
	return func(r *Runner) error {
		if rnd == nil {
			return ErrNilRand
		}

		r.rand = rnd

		return nil
	}
}

// WithSeed is WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger sets the logger for guesses (debug) and game results (info).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger != nil {
			r.logger = logger
		}

		return nil
	}
}

// NewRunner creates a Runner configured with the given options.
func NewRunner(options ...Option) (*Runner, error) {
	r := &Runner{
		words:  DefaultWords,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// PickWord draws one of the configured words.
func (r *Runner) PickWord() string {
	if r.rand == nil {
		return r.words[rand.IntN(len(r.words))]
	}

	return r.words[r.rand.IntN(len(r.words))]
}

// Play draws a word and plays one game, reading one guess per line from in.
//
// Lines are lower-cased and only their first letter counts, empty lines are skipped.
// Before every guess the current drawing and the masked word are written to out.
// The context is checked before each guess; a read that is already waiting is not interrupted.
// If in ends before the game is decided, Play returns ErrInputClosed.
func (r *Runner) Play(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	word := r.PickWord()

	game, err := NewGame(word)
	if err != nil {
		return Result{}, err
	}

	scanner := bufio.NewScanner(in)
	p := &printer{w: out}

	for !game.Over() {
		if err := ctx.Err(); err != nil {
			return resultOf(game), err
		}

		p.println(Stage(game.WrongGuesses()))
		p.println(promptWord + game.Masked())
		p.print(promptGuess)

		if p.err != nil {
			return resultOf(game), p.err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return resultOf(game), errors.Join(ErrInputClosed, err)
			}

			return resultOf(game), ErrInputClosed
		}

		line := strings.ToLower(scanner.Text())
		if line == "" {
			continue
		}

		letter, _ := utf8.DecodeRuneInString(line)
		hit := game.Guess(letter)

		r.logger.DebugContext(ctx, "guess", "letter", string(letter), "hit", hit, "wrong_guesses", game.WrongGuesses())
	}

	if game.Won() {
		p.println(msgWon + game.Word())
	}

	if game.Lost() {
		p.println(Stage(game.WrongGuesses()))
		p.println(msgLost + game.Word())
	}

	result := resultOf(game)
	r.logger.InfoContext(ctx, "game over", "won", result.Won, "wrong_guesses", result.WrongGuesses)

	return result, p.err
}

func resultOf(g *Game) Result {
	return Result{
		Word:         g.Word(),
		Won:          g.Won(),
		WrongGuesses: g.WrongGuesses(),
	}
}

// printer remembers the first write error and skips all later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) println(s string) {
	p.print(s)
	p.print("\n")
}
