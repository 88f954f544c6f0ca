package hangman

// MaxWrongGuesses is the number of wrong guesses that loses a game.
const MaxWrongGuesses = 6

// stages is indexed by the remaining budget, stages[0] is the complete figure.
var stages = [MaxWrongGuesses + 1]string{
	`   -----
   |   |
   |   O
   |  /|\
   |  / \
   |
---------
`,
	`   -----
   |   |
   |   O
   |  /|\
   |  /
   |
---------
`,
	`   -----
   |   |
   |   O
   |  /|
   |
   |
---------
`,
	`   -----
   |   |
   |   O
   |   |
   |
   |
---------
`,
	`   -----
   |   |
   |   O
   |
   |
   |
---------
`,
	`   -----
   |   |
   |
   |
   |
   |
---------
`,
	`





---------
`,
}

// Stage returns the gallows drawing after wrongGuesses wrong guesses, clamped to [0, MaxWrongGuesses].
func Stage(wrongGuesses int) string {
	wrongGuesses = max(0, min(wrongGuesses, MaxWrongGuesses))

	return stages[MaxWrongGuesses-wrongGuesses]
}
