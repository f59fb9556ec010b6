// Package sample implements the reservoir-style uniform sampler and the
// character-occurrence counter described in spec.md §4.6.
package sample

import "math/rand/v2"

// Uniform yields at most n elements of seq (whose total known length is
// total), preserving input order, in one linear pass and constant extra
// space. At each step with needed > 0 and input remaining, it draws a
// uniform integer in [0, total); if that draw is < needed, the current
// element is emitted and needed decrements. Either branch decrements
// total. Over repeated calls the marginal probability any given element
// of seq is chosen is n / len(seq).
//
// rng may be nil, in which case a fresh rand.Rand is used; callers that
// need reproducible runs should pass their own.
func Uniform[T any](n int, seq []T, rng *rand.Rand) []T {
	if n <= 0 || len(seq) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	needed := n
	total := len(seq)
	out := make([]T, 0, min(n, len(seq)))
	for _, v := range seq {
		if needed <= 0 {
			break
		}
		if rng.IntN(total) < needed {
			out = append(out, v)
			needed--
		}
		total--
	}
	return out
}

// CharacterOccurrences counts, for each word, the set of distinct
// characters it contains and increments each of their counts by one: a
// per-character document frequency, not a raw character frequency.
func CharacterOccurrences(words []string) map[rune]int {
	counts := make(map[rune]int)
	seen := make(map[rune]bool)
	for _, w := range words {
		clear(seen)
		for _, c := range w {
			seen[c] = true
		}
		for c := range seen {
			counts[c]++
		}
	}
	return counts
}

// CharacterEncounterOrder lists every distinct character across words, in
// the order each was first seen while scanning words front to back and,
// within a word, left to right. Go's map iteration order is randomized, so
// callers that need spec.md §4.9's "iterator's encounter order" tiebreak
// to be reproducible across runs should drive it from this slice instead
// of ranging over a map[rune]int directly.
func CharacterEncounterOrder(words []string) []rune {
	var order []rune
	seen := make(map[rune]bool)
	for _, w := range words {
		for _, c := range w {
			if !seen[c] {
				seen[c] = true
				order = append(order, c)
			}
		}
	}
	return order
}
