// Package bitset provides a fixed-capacity bit vector used by the index
// and the set-algebra evaluator. It wraps github.com/bits-and-blooms/bitset
// so that the rest of the engine only ever sees the narrow, spec-shaped
// contract: set/test, destructive and/or/andNot, cardinality, clone, and
// ascending iteration.
package bitset

import (
	"errors"
	"fmt"
	"sync"

	bb "github.com/bits-and-blooms/bitset"
)

// ErrCapacityMismatch is returned (or wrapped) whenever two bitsets with
// different capacities are combined.
var ErrCapacityMismatch = errors.New("bitset: capacity mismatch")

// Bitset is a bit vector fixed at construction to a logical size N. Bits
// are addressed 0..N-1. Set may be called concurrently by indexers building
// disjoint words of the corpus; all other operations assume single-writer,
// many-reader use once the index has been built.
type Bitset struct {
	mu       sync.Mutex
	capacity uint
	bits     *bb.BitSet
}

// New returns an empty Bitset with the given capacity.
func New(capacity uint) *Bitset {
	return &Bitset{capacity: capacity, bits: bb.New(capacity)}
}

// Universe returns a Bitset of the given capacity with every bit set.
func Universe(capacity uint) *Bitset {
	b := New(capacity)
	if capacity > 0 {
		b.bits.FlipRange(0, capacity)
	}
	return b
}

// Capacity returns the fixed logical size of the bitset.
func (b *Bitset) Capacity() uint {
	return b.capacity
}

// Set flips bit i to 1. Safe for concurrent callers targeting the same
// Bitset (e.g. parallel indexing workers), serialized by an internal lock.
func (b *Bitset) Set(i uint) *Bitset {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bits.Set(i)
	return b
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i uint) bool {
	return b.bits.Test(i)
}

func (b *Bitset) checkCapacity(other *Bitset) error {
	if b.capacity != other.capacity {
		return fmt.Errorf("%w: %d != %d", ErrCapacityMismatch, b.capacity, other.capacity)
	}
	return nil
}

// And mutates the receiver to the intersection of b and other. Both must
// share the same capacity.
func (b *Bitset) And(other *Bitset) (*Bitset, error) {
	if err := b.checkCapacity(other); err != nil {
		return nil, err
	}
	b.bits.InPlaceIntersection(other.bits)
	return b, nil
}

// Or mutates the receiver to the union of b and other.
func (b *Bitset) Or(other *Bitset) (*Bitset, error) {
	if err := b.checkCapacity(other); err != nil {
		return nil, err
	}
	b.bits.InPlaceUnion(other.bits)
	return b, nil
}

// AndNot mutates the receiver by removing every bit also set in other.
func (b *Bitset) AndNot(other *Bitset) (*Bitset, error) {
	if err := b.checkCapacity(other); err != nil {
		return nil, err
	}
	b.bits.InPlaceDifference(other.bits)
	return b, nil
}

// Cardinality returns the number of set bits.
func (b *Bitset) Cardinality() uint {
	return b.bits.Count()
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	return &Bitset{capacity: b.capacity, bits: b.bits.Clone()}
}

// Iter calls yield once per set bit, in ascending order, stopping early if
// yield returns false. It is a snapshot view: mutating the bitset while
// iterating is undefined.
func (b *Bitset) Iter(yield func(i uint) bool) {
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		if !yield(i) {
			return
		}
	}
}

// Indices collects every set bit into a slice, in ascending order.
func (b *Bitset) Indices() []uint {
	out := make([]uint, 0, b.Cardinality())
	b.Iter(func(i uint) bool {
		out = append(out, i)
		return true
	})
	return out
}
