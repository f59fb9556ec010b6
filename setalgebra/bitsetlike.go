package setalgebra

import (
	"fmt"

	"github.com/aphyr/hangman/bitset"
	"github.com/aphyr/hangman/index"
)

// BitsetLike is the capability the evaluator needs from a set
// representation. Spec.md §9 calls for the evaluator to work over both a
// real Bitset and any test double (a hash set, say) that satisfies it.
type BitsetLike interface {
	Clone() BitsetLike
	And(other BitsetLike) (BitsetLike, error)
	Or(other BitsetLike) (BitsetLike, error)
	AndNot(other BitsetLike) (BitsetLike, error)
	Cardinality() uint
	Iter(yield func(i uint) bool)
}

// Space resolves Term leaves and builds the Empty/Universe sentinels for
// one evaluation. IndexSpace is the production implementation; tests can
// supply their own to exercise the evaluator against a non-Bitset
// representation.
type Space interface {
	Resolve(t index.Term) (BitsetLike, bool)
	Empty() BitsetLike
	Universe() BitsetLike
}

// bitsetAdapter lets *bitset.Bitset satisfy BitsetLike without exposing
// *bitset.Bitset itself as part of the interface (its own And/Or/AndNot
// return a concrete *Bitset, not a BitsetLike).
type bitsetAdapter struct {
	b *bitset.Bitset
}

// Wrap adapts a *bitset.Bitset to BitsetLike.
func Wrap(b *bitset.Bitset) BitsetLike { return bitsetAdapter{b} }

func (a bitsetAdapter) unwrap(other BitsetLike) (*bitset.Bitset, error) {
	o, ok := other.(bitsetAdapter)
	if !ok {
		return nil, fmt.Errorf("setalgebra: cannot combine bitsetAdapter with %T", other)
	}
	return o.b, nil
}

func (a bitsetAdapter) Clone() BitsetLike { return bitsetAdapter{a.b.Clone()} }

func (a bitsetAdapter) And(other BitsetLike) (BitsetLike, error) {
	o, err := a.unwrap(other)
	if err != nil {
		return nil, err
	}
	r, err := a.b.And(o)
	if err != nil {
		return nil, err
	}
	return bitsetAdapter{r}, nil
}

func (a bitsetAdapter) Or(other BitsetLike) (BitsetLike, error) {
	o, err := a.unwrap(other)
	if err != nil {
		return nil, err
	}
	r, err := a.b.Or(o)
	if err != nil {
		return nil, err
	}
	return bitsetAdapter{r}, nil
}

func (a bitsetAdapter) AndNot(other BitsetLike) (BitsetLike, error) {
	o, err := a.unwrap(other)
	if err != nil {
		return nil, err
	}
	r, err := a.b.AndNot(o)
	if err != nil {
		return nil, err
	}
	return bitsetAdapter{r}, nil
}

func (a bitsetAdapter) Cardinality() uint { return a.b.Cardinality() }

func (a bitsetAdapter) Iter(yield func(i uint) bool) { a.b.Iter(yield) }

// IndexSpace resolves Term leaves against an *index.Index and builds
// sentinels sized to its capacity.
type IndexSpace struct {
	Idx *index.Index
}

// NewIndexSpace returns a Space backed by idx.
func NewIndexSpace(idx *index.Index) IndexSpace { return IndexSpace{Idx: idx} }

func (s IndexSpace) Resolve(t index.Term) (BitsetLike, bool) {
	b, ok := s.Idx.Get(t)
	if !ok {
		return nil, false
	}
	return Wrap(b), true
}

func (s IndexSpace) Empty() BitsetLike { return Wrap(bitset.New(s.Idx.Capacity())) }

func (s IndexSpace) Universe() BitsetLike { return Wrap(bitset.Universe(s.Idx.Capacity())) }
