// Package game defines the referee contract the strategy core consumes
// (spec.md §6), the Guess value it produces, and the canonical fingerprint
// encoding used as the cache key into lucache.
package game

import (
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// Mystery is the well-known sentinel GuessedSoFar uses for a position
// whose letter has not yet been revealed.
const Mystery rune = -1

// Sentinels used to build the canonical fingerprint string (spec.md §6).
const (
	fieldSep  = '\uFFFE' // FS
	recordSep = '\uFFFF' // RS
)

// Status is the outcome of a game in progress.
type Status int

const (
	KeepGuessing Status = iota
	Won
	Lost
)

// Guess is either a single letter or a whole word.
type Guess struct {
	letter rune
	word   string
	isWord bool
}

// GuessLetter builds a single-letter guess.
func GuessLetter(c rune) Guess { return Guess{letter: c} }

// GuessWord builds a whole-word guess.
func GuessWord(w string) Guess { return Guess{word: w, isWord: true} }

// IsWord reports whether g is a whole-word guess.
func (g Guess) IsWord() bool { return g.isWord }

// Letter returns the guessed letter; valid only when !IsWord().
func (g Guess) Letter() rune { return g.letter }

// Word returns the guessed word; valid only when IsWord().
func (g Guess) Word() string { return g.word }

func (g Guess) String() string {
	if g.isWord {
		return g.word
	}
	return string(g.letter)
}

// Referee is the external capability the strategy core consumes: it never
// retains referee state across calls, only reads it to compute a
// fingerprint and a query, then reports a guess back.
type Referee interface {
	// SecretWordLength returns the length of the hidden word.
	SecretWordLength() uint
	// GuessedSoFar returns one rune per position: the revealed letter, or
	// Mystery if that position has not yet been guessed correctly.
	GuessedSoFar() []rune
	// IncorrectlyGuessedLetters returns the set of letters guessed that do
	// not appear in the secret word.
	IncorrectlyGuessedLetters() mapset.Set
	// IncorrectlyGuessedWords returns the set of whole-word guesses that
	// were wrong.
	IncorrectlyGuessedWords() mapset.Set
	// AllGuessedLetters returns every letter guessed so far, right or
	// wrong.
	AllGuessedLetters() mapset.Set
	// MakeGuess records g against the hidden word.
	MakeGuess(g Guess)
	// Status reports whether the game is still in progress.
	Status() Status
	// CurrentScore returns the running score; higher is worse.
	CurrentScore() float64
}

// Fingerprint builds the canonical cache key for r's current state: two
// game states produce equal fingerprints iff their candidate sets
// (length, excluded letters, revealed positions) are identical.
func Fingerprint(r Referee) string {
	var b strings.Builder

	b.WriteRune(fieldSep)
	b.WriteString(strconv.FormatUint(uint64(r.SecretWordLength()), 10))
	b.WriteRune(recordSep)

	b.WriteRune(fieldSep)
	excluded := sortedRunes(r.IncorrectlyGuessedLetters())
	for _, c := range excluded {
		b.WriteRune(c)
	}
	b.WriteRune(recordSep)

	b.WriteRune(fieldSep)
	for i, c := range r.GuessedSoFar() {
		if c == Mystery {
			continue
		}
		b.WriteRune(fieldSep)
		b.WriteString(strconv.Itoa(i))
		b.WriteRune(recordSep)
		b.WriteRune(fieldSep)
		b.WriteRune(c)
		b.WriteRune(recordSep)
	}
	b.WriteRune(recordSep)

	return b.String()
}

func sortedRunes(s mapset.Set) []rune {
	if s == nil {
		return nil
	}
	out := make([]rune, 0, s.Cardinality())
	for _, v := range s.ToSlice() {
		out = append(out, v.(rune))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
