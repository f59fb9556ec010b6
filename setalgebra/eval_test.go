package setalgebra

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(b BitsetLike) []uint {
	out := []uint{}
	b.Iter(func(i uint) bool { out = append(out, i); return true })
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestEvaluateUnion(t *testing.T) {
	e := Union(Leaf(newHashBitset(1)), Leaf(newHashBitset(2)), Leaf(newHashBitset(3)))
	got, err := Evaluate(e, hashSpace{})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, members(got))
}

func TestEvaluateIntersect(t *testing.T) {
	e := Intersect(Leaf(newHashBitset(1)), Leaf(newHashBitset(1, 2)), Leaf(newHashBitset(1, 6, 7)))
	got, err := Evaluate(e, hashSpace{})
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, members(got))
}

func TestEvaluateSubtract(t *testing.T) {
	e := Subtract(Leaf(newHashBitset(4, 5, 6)), Leaf(newHashBitset(5)), Leaf(newHashBitset(5, 7)))
	got, err := Evaluate(e, hashSpace{})
	require.NoError(t, err)
	assert.Equal(t, []uint{4, 6}, members(got))
}

func TestEvaluateIntersectWithComplementOfUnion(t *testing.T) {
	l1 := Leaf(newHashBitset(1, 2, 3, 4))
	l2 := Leaf(newHashBitset(2, 3, 4, 5))
	la := Leaf(newHashBitset(1))
	lb := Leaf(newHashBitset(2))
	e := Intersect(l1, l2, Complement(Union(la, lb)))
	got, err := Evaluate(e, hashSpace{})
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 4}, members(got))
}

func TestEvaluateDoesNotMutateLeafInputs(t *testing.T) {
	shared := newHashBitset(1, 2, 3)
	e := Intersect(Leaf(shared), Leaf(newHashBitset(2, 3)))
	_, err := Evaluate(e, hashSpace{})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, members(shared))
}

func TestEvaluateTermResolutionAgainstIndex(t *testing.T) {
	idx := buildTestIndex()
	space := NewIndexSpace(idx)
	e := Intersect(TermRef(lengthTerm(3)), TermRef(positionTerm(0, 'C')))
	got, err := Evaluate(e, space)
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 1, 2, 3}, members(got))
}

func TestEvaluateUnresolvedTermIsEmpty(t *testing.T) {
	idx := buildTestIndex()
	space := NewIndexSpace(idx)
	e := TermRef(positionTerm(0, 'Z'))
	got, err := Evaluate(e, space)
	require.NoError(t, err)
	assert.Equal(t, []uint{}, members(got))
}
