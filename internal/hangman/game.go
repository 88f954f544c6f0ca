package hangman

import (
	"errors"
	"strings"
)

var ErrEmptyWord = errors.New("word to guess is empty")

// Game is the state of one round: the hidden word, what is revealed and the wrong guesses so far.
// Letters are runes, so Cyrillic words work as expected.
type Game struct {
	word         []rune
	revealed     []bool
	hidden       int
	wrongGuesses int
}

// NewGame starts a round for word.
func NewGame(word string) (*Game, error) {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil, ErrEmptyWord
	}

	return &Game{
		word:     runes,
		revealed: make([]bool, len(runes)),
		hidden:   len(runes),
	}, nil
}

// Guess reveals every occurrence of letter and reports whether there was one.
// A miss costs one guess, also when the same letter missed before.
// Guesses after the game is over are ignored.
func (g *Game) Guess(letter rune) bool {
	if g.Over() {
		return false
	}

	hit := false
	for i, r := range g.word {
		if r != letter {
			continue
		}

		hit = true
		if !g.revealed[i] {
			g.revealed[i] = true
			g.hidden--
		}
	}

	if !hit {
		g.wrongGuesses++
	}

	return hit
}

// Masked returns the word with every unrevealed letter replaced by '_'.
func (g *Game) Masked() string {
	var b strings.Builder

	for i, r := range g.word {
		if g.revealed[i] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return b.String()
}

func (g *Game) Word() string      { return string(g.word) }
func (g *Game) WrongGuesses() int { return g.wrongGuesses }
func (g *Game) Won() bool         { return g.hidden == 0 }
func (g *Game) Lost() bool        { return g.wrongGuesses >= MaxWrongGuesses }
func (g *Game) Over() bool        { return g.Won() || g.Lost() }
