package hangman_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/AntonStoeckl/library-catalog-go/internal/hangman"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/observability/testdoubles" //nolint:revive
)

func newRunner(t *testing.T, word string, options ...hangman.Option) *hangman.Runner {
	t.Helper()

	r, err := hangman.NewRunner(append([]hangman.Option{hangman.WithWords([]string{word})}, options...)...)
	require.NoError(t, err)

	return r
}

func Test_Play_WinningGame(t *testing.T) {
	// arrange
	runner := newRunner(t, "Питон")
	var out bytes.Buffer

	// act
	result, err := runner.Play(context.Background(), strings.NewReader("П\nи\nт\nо\nн\n"), &out)

	// assert
	require.NoError(t, err)
	assert.Equal(t, hangman.Result{Word: "питон", Won: true, WrongGuesses: 0}, result)
	assert.Contains(t, out.String(), "Слово: _____\n")
	assert.Contains(t, out.String(), "Слово: пито_\n")
	assert.Contains(t, out.String(), "Введите вашу догадку (одна буква): ")
	assert.True(t, strings.HasSuffix(out.String(), "Поздравляю! Вы выиграли! Загаданное слово: питон\n"))
	assert.Equal(t, 5, strings.Count(out.String(), "Введите вашу догадку"))
}

func Test_Play_LosingGame_PrintsTheFullFigure(t *testing.T) {
	// arrange
	runner := newRunner(t, "джава")
	var out bytes.Buffer

	// act
	result, err := runner.Play(context.Background(), strings.NewReader("я\nя\nб\nг\nе\nё\n"), &out)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, hangman.MaxWrongGuesses, result.WrongGuesses)
	assert.True(t, strings.HasSuffix(out.String(),
		hangman.Stage(hangman.MaxWrongGuesses)+"\n"+"Вы проиграли! Загаданное слово было: джава\n"))
	assert.NotContains(t, out.String(), "Поздравляю")
}

func Test_Play_SkipsEmptyLinesAndUsesTheFirstLetter(t *testing.T) {
	runner := newRunner(t, "питон")

	result, err := runner.Play(context.Background(), strings.NewReader("\n\nпит\nи\nт\nо\nн\n"), &bytes.Buffer{})

	require.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, 0, result.WrongGuesses)
}

func Test_Play_DecodesCP866Input(t *testing.T) {
	// arrange
	runner := newRunner(t, "питон")
	encoded, err := charmap.CodePage866.NewEncoder().String("П\nИ\nТ\nО\nН\n")
	require.NoError(t, err)

	in, err := hangman.DecodeInput(strings.NewReader(encoded), "cp866")
	require.NoError(t, err)

	// act
	result, err := runner.Play(context.Background(), in, &bytes.Buffer{})

	// assert
	require.NoError(t, err)
	assert.True(t, result.Won)
}

func Test_Play_FailsWhenInputEndsEarly(t *testing.T) {
	runner := newRunner(t, "питон")

	result, err := runner.Play(context.Background(), strings.NewReader("п\n"), &bytes.Buffer{})

	assert.ErrorIs(t, err, hangman.ErrInputClosed)
	assert.False(t, result.Won)
}

func Test_Play_StopsWhenContextIsCanceled(t *testing.T) {
	runner := newRunner(t, "питон")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Play(ctx, strings.NewReader("п\n"), &bytes.Buffer{})

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Play_LogsGuessesAndResult(t *testing.T) {
	handler := NewLogHandlerSpy(false)
	runner := newRunner(t, "он", hangman.WithLogger(slog.New(handler)))

	_, err := runner.Play(context.Background(), strings.NewReader("о\nх\nн\n"), &bytes.Buffer{})

	require.NoError(t, err)
	assert.True(t, handler.HasLogWithAttr(slog.LevelDebug, "guess", "hit", "false"))
	assert.True(t, handler.HasLogWithAttr(slog.LevelInfo, "game over", "won", "true"))
	assert.Equal(t, 4, handler.GetRecordCount())
}

func Test_NewRunner_RejectsEmptyWordList(t *testing.T) {
	_, err := hangman.NewRunner(hangman.WithWords([]string{" ", ""}))
	assert.ErrorIs(t, err, hangman.ErrNoWords)

	_, err = hangman.NewRunner(hangman.WithRand(nil))
	assert.ErrorIs(t, err, hangman.ErrNilRand)
}

func Test_PickWord_IsReproducibleWithASeed(t *testing.T) {
	first, err := hangman.NewRunner(hangman.WithSeed(42))
	require.NoError(t, err)
	second, err := hangman.NewRunner(hangman.WithSeed(42))
	require.NoError(t, err)

	for range 10 {
		word := first.PickWord()
		assert.Equal(t, word, second.PickWord())
		assert.Contains(t, hangman.DefaultWords, word)
	}
}

func Test_DecodeInput_RejectsUnknownEncoding(t *testing.T) {
	_, err := hangman.DecodeInput(strings.NewReader(""), "koi8-r")

	assert.ErrorIs(t, err, hangman.ErrUnknownInputEncoding)
}
