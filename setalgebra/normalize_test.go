package setalgebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDedupesAndSortsIntersect(t *testing.T) {
	a, b := newHashBitset(1), newHashBitset(2)
	la, lb := Leaf(a), Leaf(b)
	e := Intersect(lb, la, lb)
	n := Normalize(e)
	v, ok := n.(*intersectExpr)
	assert.True(t, ok)
	assert.Len(t, v.children, 2)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	la, lb, lc := Leaf(newHashBitset(1)), Leaf(newHashBitset(2)), Leaf(newHashBitset(3))
	e := Union(lc, la, lb, la)
	once := Normalize(e)
	twice := Normalize(once)
	assert.True(t, exprEqual(once, twice))
}

func TestNormalizeLeavesComplementChildAlone(t *testing.T) {
	inner := Union(Leaf(newHashBitset(2)), Leaf(newHashBitset(1)))
	e := Complement(inner)
	n := Normalize(e)
	v, ok := n.(*complementExpr)
	assert.True(t, ok)
	assert.True(t, exprEqual(v.child, inner))
}

func TestNormalizeSortsSubtrahends(t *testing.T) {
	minuend := Leaf(newHashBitset(9))
	s1, s2 := Leaf(newHashBitset(1)), Intersect(Leaf(newHashBitset(2)), Leaf(newHashBitset(3)))
	e := Subtract(minuend, s1, s2)
	n := Normalize(e).(*subtractExpr)
	assert.True(t, exprEqual(n.minuend, minuend))
	// the Intersect subtrahend (rank 10) sorts ahead of the leaf (rank 100)
	assert.True(t, exprEqual(n.subtrahends[0], s2))
	assert.True(t, exprEqual(n.subtrahends[1], s1))
}
