// Package strategy orchestrates the next-guess decision described in
// spec.md §4.9: fingerprint the game, consult the LU cache, build and
// evaluate a set-algebra query on a miss, sample the candidate set, and
// pick the letter or word closest to the configured target.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/aphyr/hangman/game"
	"github.com/aphyr/hangman/index"
	"github.com/aphyr/hangman/lucache"
	"github.com/aphyr/hangman/sample"
	"github.com/aphyr/hangman/setalgebra"
)

// ErrInvalidConfig reports a Config whose fields are out of their valid
// ranges (spec.md §7).
var ErrInvalidConfig = errors.New("strategy: invalid config")

// Config holds the tunables spec.md §3 enumerates for a Strategy. Rand is
// the sampler's random source: a nil Rand makes sample.Uniform use a fresh,
// randomly seeded generator on every call.
type Config struct {
	SampleSize  int     // max words inspected per move; default 65536
	CacheSize   int     // LU cache capacity; default 512
	TargetCharP float64 // target fraction in [0,1]; default 0.7
	Threads     int     // worker count for index builds; not guess-time parallelism
	Rand        *rand.Rand
}

// DefaultConfig returns spec.md §3's documented defaults.
func DefaultConfig() Config {
	return Config{SampleSize: 65536, CacheSize: 512, TargetCharP: 0.7, Threads: 1}
}

func (c Config) validate() error {
	if c.SampleSize < 1 {
		return fmt.Errorf("%w: sample_size %d < 1", ErrInvalidConfig, c.SampleSize)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("%w: cache_size %d < 1", ErrInvalidConfig, c.CacheSize)
	}
	if c.TargetCharP < 0 || c.TargetCharP > 1 {
		return fmt.Errorf("%w: target_char_p %f not in [0,1]", ErrInvalidConfig, c.TargetCharP)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads %d < 0", ErrInvalidConfig, c.Threads)
	}
	return nil
}

// charDist is the character distribution cache entry: how many words were
// sampled, how many of those sampled words contain each character
// (spec.md §3), and the order each character was first encountered while
// scanning the sample, used to make closest-to-target tiebreaks
// reproducible.
type charDist struct {
	sampledCount int
	counts       map[rune]int
	order        []rune
}

// Strategy holds everything next_guess needs: the corpus, its index, an
// LU cache of character distributions keyed by fingerprint, and the
// tunable Config.
type Strategy struct {
	corpus index.Corpus
	idx    *index.Index
	cache  *lucache.Cache[string, charDist]
	cfg    Config
}

// New builds a Strategy over corpus and idx (idx must have been built
// from corpus). Returns ErrInvalidConfig if cfg is out of range.
func New(corpus index.Corpus, idx *index.Index, cfg Config) (*Strategy, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Strategy{
		corpus: corpus,
		idx:    idx,
		cache:  lucache.New[string, charDist](cfg.CacheSize),
		cfg:    cfg,
	}, nil
}

// buildQuery constructs Intersect(Length(L), Position(i, c_i) for each
// known position, Complement(Union(Position(i, x) for every excluded
// letter x and every position i in [0, L)))) per spec.md §4.9.1a.
func buildQuery(g game.Referee) setalgebra.Expr {
	length := g.SecretWordLength()
	revealed := g.GuessedSoFar()
	excluded := g.IncorrectlyGuessedLetters()

	children := []setalgebra.Expr{setalgebra.TermRef(index.Length(length))}
	for i, c := range revealed {
		if c != game.Mystery {
			children = append(children, setalgebra.TermRef(index.Position(uint(i), c)))
		}
	}

	if excluded.Cardinality() > 0 {
		var excludedPositions []setalgebra.Expr
		for _, v := range excluded.ToSlice() {
			c := v.(rune)
			for i := uint(0); i < length; i++ {
				excludedPositions = append(excludedPositions, setalgebra.TermRef(index.Position(i, c)))
			}
		}
		children = append(children, setalgebra.Complement(setalgebra.Union(excludedPositions...)))
	}

	if len(children) == 1 {
		return children[0]
	}
	return setalgebra.Intersect(children...)
}

// candidateWords returns the corpus indices set in bits, in ascending order.
func candidateWords(bits setalgebra.BitsetLike) []int {
	var out []int
	bits.Iter(func(i uint) bool {
		out = append(out, int(i))
		return true
	})
	return out
}

// NextGuess implements spec.md §4.9's per-guess operation.
func (s *Strategy) NextGuess(ctx context.Context, g game.Referee) (game.Guess, error) {
	fp := game.Fingerprint(g)

	dist, hit := s.cache.Fetch(fp)
	if !hit {
		query := buildQuery(g)
		bits, err := setalgebra.Evaluate(query, setalgebra.NewIndexSpace(s.idx))
		if err != nil {
			return game.Guess{}, err
		}

		wordIdx := candidateWords(bits)
		if len(wordIdx) == 0 {
			return s.fallbackGuess(g), nil
		}

		sampled := sample.Uniform(s.cfg.SampleSize, wordIdx, s.cfg.Rand)
		words := make([]string, len(sampled))
		for i, wi := range sampled {
			words[i] = s.corpus[wi]
		}

		dist = charDist{
			sampledCount: len(sampled),
			counts:       sample.CharacterOccurrences(words),
			order:        sample.CharacterEncounterOrder(words),
		}
		s.cache.Store(fp, dist)
	}

	if dist.sampledCount == 1 {
		return s.firstUnguessedWord(g)
	}

	return s.pickLetter(g, dist), nil
}

// firstUnguessedWord re-evaluates the candidate set (the cache entry only
// stores the distribution, not the candidate list) and returns the first
// candidate word not already guessed as a word.
func (s *Strategy) firstUnguessedWord(g game.Referee) (game.Guess, error) {
	query := buildQuery(g)
	bits, err := setalgebra.Evaluate(query, setalgebra.NewIndexSpace(s.idx))
	if err != nil {
		return game.Guess{}, err
	}
	wrong := g.IncorrectlyGuessedWords()
	var guess game.Guess
	found := false
	bits.Iter(func(i uint) bool {
		w := s.corpus[i]
		if !wrong.Contains(w) {
			guess = game.GuessWord(w)
			found = true
			return false
		}
		return true
	})
	if !found {
		return s.fallbackGuess(g), nil
	}
	return guess, nil
}

// fallbackGuess implements spec.md §4.9's empty-candidate failure mode:
// any unguessed corpus word, smallest index first.
func (s *Strategy) fallbackGuess(g game.Referee) game.Guess {
	wrong := g.IncorrectlyGuessedWords()
	for _, w := range s.corpus {
		if !wrong.Contains(w) {
			return game.GuessWord(w)
		}
	}
	if len(s.corpus) > 0 {
		return game.GuessWord(s.corpus[0])
	}
	return game.GuessWord("")
}

// pickLetter removes already-guessed letters from dist and returns the
// letter whose sampled occurrence count is closest to
// sampledCount * TargetCharP. Candidates are walked in dist.order (each
// character's first-encounter position in the sample, not Go's randomized
// map order) so that ties are broken the same way on every run: later
// candidates win ties, matching spec.md §4.9's "iterator's encounter
// order" tiebreak.
func (s *Strategy) pickLetter(g game.Referee, dist charDist) game.Guess {
	guessed := g.AllGuessedLetters()
	target := float64(dist.sampledCount) * s.cfg.TargetCharP

	var (
		best      rune
		bestDelta float64
		found     bool
	)
	for _, c := range dist.order {
		if guessed.Contains(c) {
			continue
		}
		delta := abs(float64(dist.counts[c]) - target)
		if !found || delta <= bestDelta {
			best, bestDelta, found = c, delta, true
		}
	}
	if !found {
		return s.fallbackGuess(g)
	}
	return game.GuessLetter(best)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
