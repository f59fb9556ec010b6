package index

import (
	"sync"

	"github.com/aphyr/hangman/bitset"
)

// Corpus is the ordered, immutable set of candidate words. Words are
// addressed by their zero-based position, which doubles as the bit index
// in every term's bitset.
type Corpus []string

// Index is a read-only (after Build returns) mapping from Term to the
// bitset of corpus positions matching it.
type Index struct {
	capacity uint
	mu       sync.Mutex // guards terms only during Build; unused afterward
	terms    map[Term]*bitset.Bitset
}

// Capacity returns the corpus size the index was built against.
func (idx *Index) Capacity() uint {
	return idx.capacity
}

// Get returns the bitset for t, or (nil, false) if no word matches it.
func (idx *Index) Get(t Term) (*bitset.Bitset, bool) {
	b, ok := idx.terms[t]
	return b, ok
}

func newIndex(capacity uint) *Index {
	return &Index{capacity: capacity, terms: make(map[Term]*bitset.Bitset)}
}

// getOrCreate returns the bitset for t, creating a zero-filled one of the
// index's capacity on first sight. Safe for concurrent callers during Build.
func (idx *Index) getOrCreate(t Term) *bitset.Bitset {
	idx.mu.Lock()
	b, ok := idx.terms[t]
	if !ok {
		b = bitset.New(idx.capacity)
		idx.terms[t] = b
	}
	idx.mu.Unlock()
	return b
}

// indexWord emits Length and Position terms for corpus word i and sets bit
// i in each of their bitsets.
func indexWord(idx *Index, i uint, word string) {
	runes := []rune(word)
	idx.getOrCreate(Length(uint(len(runes)))).Set(i)
	for pos, ch := range runes {
		idx.getOrCreate(Position(uint(pos), ch)).Set(i)
	}
}

// Build constructs an Index over corpus sequentially. Prefer BuildParallel
// for large corpora; Build is useful for tests and single-threaded tools.
func Build(corpus Corpus) *Index {
	idx := newIndex(uint(len(corpus)))
	for i, word := range corpus {
		indexWord(idx, uint(i), word)
	}
	return idx
}
