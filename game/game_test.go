package game

import (
	"testing"

	mapset "github.com/deckarep/golang-set"
	"github.com/stretchr/testify/assert"
)

type fakeReferee struct {
	length    uint
	revealed  []rune
	excluded  mapset.Set
	allLetter mapset.Set
	words     mapset.Set
	status    Status
	score     float64
	guesses   []Guess
}

func newFakeReferee(length uint, revealed []rune, excludedLetters ...rune) *fakeReferee {
	excluded := mapset.NewSet()
	for _, c := range excludedLetters {
		excluded.Add(c)
	}
	return &fakeReferee{
		length:    length,
		revealed:  revealed,
		excluded:  excluded,
		allLetter: mapset.NewSet(),
		words:     mapset.NewSet(),
	}
}

func (f *fakeReferee) SecretWordLength() uint                   { return f.length }
func (f *fakeReferee) GuessedSoFar() []rune                     { return f.revealed }
func (f *fakeReferee) IncorrectlyGuessedLetters() mapset.Set     { return f.excluded }
func (f *fakeReferee) IncorrectlyGuessedWords() mapset.Set       { return f.words }
func (f *fakeReferee) AllGuessedLetters() mapset.Set             { return f.allLetter }
func (f *fakeReferee) MakeGuess(g Guess)                         { f.guesses = append(f.guesses, g) }
func (f *fakeReferee) Status() Status                            { return f.status }
func (f *fakeReferee) CurrentScore() float64                     { return f.score }

func TestFingerprintStableRegardlessOfExcludedOrder(t *testing.T) {
	r1 := newFakeReferee(4, []rune{'C', Mystery, Mystery, Mystery}, 'Z', 'X')
	r2 := newFakeReferee(4, []rune{'C', Mystery, Mystery, Mystery}, 'X', 'Z')
	assert.Equal(t, Fingerprint(r1), Fingerprint(r2))
}

func TestFingerprintDiffersOnLength(t *testing.T) {
	r1 := newFakeReferee(4, []rune{Mystery, Mystery, Mystery, Mystery})
	r2 := newFakeReferee(5, []rune{Mystery, Mystery, Mystery, Mystery, Mystery})
	assert.NotEqual(t, Fingerprint(r1), Fingerprint(r2))
}

func TestFingerprintDiffersOnRevealedPositions(t *testing.T) {
	r1 := newFakeReferee(3, []rune{'C', Mystery, Mystery})
	r2 := newFakeReferee(3, []rune{Mystery, 'C', Mystery})
	assert.NotEqual(t, Fingerprint(r1), Fingerprint(r2))
}

func TestFingerprintDiffersOnExcludedLetters(t *testing.T) {
	r1 := newFakeReferee(3, []rune{Mystery, Mystery, Mystery}, 'Z')
	r2 := newFakeReferee(3, []rune{Mystery, Mystery, Mystery})
	assert.NotEqual(t, Fingerprint(r1), Fingerprint(r2))
}

func TestFingerprintContainsSentinels(t *testing.T) {
	r := newFakeReferee(3, []rune{'C', Mystery, Mystery}, 'Z')
	fp := Fingerprint(r)
	assert.Contains(t, fp, string(fieldSep))
	assert.Contains(t, fp, string(recordSep))
}

func TestGuessConstructors(t *testing.T) {
	lg := GuessLetter('E')
	assert.False(t, lg.IsWord())
	assert.Equal(t, 'E', lg.Letter())

	wg := GuessWord("APPLE")
	assert.True(t, wg.IsWord())
	assert.Equal(t, "APPLE", wg.Word())
}
