// Package referee is an in-memory game.Referee used by the "sim" CLI
// subcommand to play the strategy core against itself without a real
// external referee.
package referee

import (
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set"

	"github.com/aphyr/hangman/game"
)

// Score weights: one point per correctly or incorrectly guessed letter,
// plus a heavier per-wrong-guess penalty, matching the usual Hangman
// scoring feel.
const (
	letterWeight    = 1.0
	wrongGuessPenalty = 2.0
)

// Game is a single in-memory Hangman game against a fixed secret word.
type Game struct {
	mu              sync.Mutex
	secret          []rune
	maxWrongGuesses int
	revealed        []rune
	wrongLetters    mapset.Set
	wrongWords      mapset.Set
	allLetters      mapset.Set
	wrongGuesses    int
	won             bool
}

// New starts a game hiding secret, ending in a loss once maxWrongGuesses
// incorrect guesses have been made.
func New(secret string, maxWrongGuesses int) *Game {
	runes := []rune(strings.ToUpper(secret))
	revealed := make([]rune, len(runes))
	for i := range revealed {
		revealed[i] = game.Mystery
	}
	return &Game{
		secret:          runes,
		maxWrongGuesses: maxWrongGuesses,
		revealed:        revealed,
		wrongLetters:    mapset.NewSet(),
		wrongWords:      mapset.NewSet(),
		allLetters:      mapset.NewSet(),
	}
}

func (g *Game) SecretWordLength() uint { return uint(len(g.secret)) }

func (g *Game) GuessedSoFar() []rune {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]rune, len(g.revealed))
	copy(out, g.revealed)
	return out
}

func (g *Game) IncorrectlyGuessedLetters() mapset.Set {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.wrongLetters.Clone()
}

func (g *Game) IncorrectlyGuessedWords() mapset.Set {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.wrongWords.Clone()
}

func (g *Game) AllGuessedLetters() mapset.Set {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.allLetters.Clone()
}

// MakeGuess records guess against the secret word. A whole-word guess wins
// the game outright on an exact (case-insensitive) match; otherwise it
// counts as one wrong guess. A letter guess already made is a no-op.
func (g *Game) MakeGuess(guess game.Guess) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if guess.IsWord() {
		if strings.EqualFold(guess.Word(), string(g.secret)) {
			for i, c := range g.secret {
				g.revealed[i] = c
			}
			g.won = true
			return
		}
		g.wrongWords.Add(strings.ToUpper(guess.Word()))
		g.wrongGuesses++
		return
	}

	c := guess.Letter()
	if g.allLetters.Contains(c) {
		return
	}
	g.allLetters.Add(c)

	found := false
	for i, sc := range g.secret {
		if sc == c {
			g.revealed[i] = c
			found = true
		}
	}
	if !found {
		g.wrongLetters.Add(c)
		g.wrongGuesses++
	}
}

// Status reports the game's outcome.
func (g *Game) Status() game.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.wrongGuesses >= g.maxWrongGuesses {
		return game.Lost
	}
	if g.won {
		return game.Won
	}
	for _, c := range g.revealed {
		if c == game.Mystery {
			return game.KeepGuessing
		}
	}
	return game.Won
}

// CurrentScore reports the running score; higher is worse.
func (g *Game) CurrentScore() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return float64(g.allLetters.Cardinality())*letterWeight + float64(g.wrongGuesses)*wrongGuessPenalty
}
