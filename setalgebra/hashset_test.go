package setalgebra

import (
	"fmt"

	"github.com/aphyr/hangman/index"
)

// hashBitset is the "test double" BitsetLike implementation spec.md §9
// calls for: a plain Go set, used to exercise the evaluator without
// involving the real Bitset at all.
type hashBitset map[uint]bool

func newHashBitset(members ...uint) hashBitset {
	h := make(hashBitset, len(members))
	for _, m := range members {
		h[m] = true
	}
	return h
}

func (h hashBitset) Clone() BitsetLike {
	c := make(hashBitset, len(h))
	for k := range h {
		c[k] = true
	}
	return c
}

func (h hashBitset) unwrap(other BitsetLike) (hashBitset, error) {
	o, ok := other.(hashBitset)
	if !ok {
		return nil, fmt.Errorf("hashBitset: cannot combine with %T", other)
	}
	return o, nil
}

func (h hashBitset) And(other BitsetLike) (BitsetLike, error) {
	o, err := h.unwrap(other)
	if err != nil {
		return nil, err
	}
	for k := range h {
		if !o[k] {
			delete(h, k)
		}
	}
	return h, nil
}

func (h hashBitset) Or(other BitsetLike) (BitsetLike, error) {
	o, err := h.unwrap(other)
	if err != nil {
		return nil, err
	}
	for k := range o {
		h[k] = true
	}
	return h, nil
}

func (h hashBitset) AndNot(other BitsetLike) (BitsetLike, error) {
	o, err := h.unwrap(other)
	if err != nil {
		return nil, err
	}
	for k := range o {
		delete(h, k)
	}
	return h, nil
}

func (h hashBitset) Cardinality() uint { return uint(len(h)) }

func (h hashBitset) Iter(yield func(i uint) bool) {
	for k := range h {
		if !yield(k) {
			return
		}
	}
}

type hashSpace struct{}

func (hashSpace) Resolve(t index.Term) (BitsetLike, bool) {
	return nil, false
}

func (hashSpace) Empty() BitsetLike { return newHashBitset() }

func (hashSpace) Universe() BitsetLike { return newHashBitset() }
