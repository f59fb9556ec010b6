package setalgebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeDoubleComplement(t *testing.T) {
	x := Leaf(newHashBitset(1))
	got := Optimize(Complement(Complement(x)))
	assert.True(t, exprEqual(x, got))
}

func TestOptimizeComplementToSubtractionNested(t *testing.T) {
	a, b, c := Leaf(newHashBitset(1)), Leaf(newHashBitset(2)), Leaf(newHashBitset(3))
	d, e, f := Leaf(newHashBitset(4)), Leaf(newHashBitset(5)), Leaf(newHashBitset(6))

	in := Intersect(a, Intersect(b, c), Complement(Union(d, e, f)))
	want := Subtract(Intersect(b, c, a), d, e, f)

	assert.True(t, exprEqual(want, Optimize(in)))
}

func TestOptimizeAbsorption(t *testing.T) {
	a, b, c := Leaf(newHashBitset(1)), Leaf(newHashBitset(2)), Leaf(newHashBitset(3))
	in := Union(a, Intersect(b, c, a))
	assert.True(t, exprEqual(a, Optimize(in)))
}

func TestOptimizeDeMorgan(t *testing.T) {
	a, b := Leaf(newHashBitset(1)), Leaf(newHashBitset(2))
	in := Intersect(Complement(a), Complement(b))
	want := Complement(Union(a, b))
	assert.True(t, exprEqual(want, Optimize(in)))
}

func TestOptimizeSingleComplementToSubtraction(t *testing.T) {
	x, y := Leaf(newHashBitset(1)), Leaf(newHashBitset(2))
	in := Intersect(x, Complement(y))
	want := Subtract(x, y)
	assert.True(t, exprEqual(want, Optimize(in)))
}

func TestOptimizeComplementOfUniverseAndEmpty(t *testing.T) {
	assert.True(t, exprEqual(Empty(), Optimize(Complement(UniverseExpr()))))
	assert.True(t, exprEqual(UniverseExpr(), Optimize(Complement(Empty()))))
}

func TestOptimizeUnionDomination(t *testing.T) {
	x := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(UniverseExpr(), Optimize(Union(x, UniverseExpr()))))
}

func TestOptimizeIntersectDomination(t *testing.T) {
	x := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(Empty(), Optimize(Intersect(x, Empty()))))
}

func TestOptimizeIntersectUniverseIdentity(t *testing.T) {
	x := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(x, Optimize(Intersect(x, UniverseExpr()))))
}

func TestOptimizeUnionEmptyIdentity(t *testing.T) {
	x := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(x, Optimize(Union(x, Empty()))))
}

func TestOptimizeComplementaryPairCollapsesIntersect(t *testing.T) {
	x := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(Empty(), Optimize(Intersect(x, Complement(x)))))
}

func TestOptimizeComplementaryPairCollapsesUnion(t *testing.T) {
	x := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(UniverseExpr(), Optimize(Union(x, Complement(x)))))
}

func TestOptimizeUnaryIntersectIdentity(t *testing.T) {
	a := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(a, Optimize(Intersect(a))))
}

func TestOptimizeUnionDropsEmptyMember(t *testing.T) {
	a, b := Leaf(newHashBitset(1)), Leaf(newHashBitset(2))
	want := Union(a, b)
	assert.True(t, exprEqual(want, Optimize(Union(a, Empty(), b))))
}

func TestOptimizeIntersectDropsUniverseMember(t *testing.T) {
	a, b := Leaf(newHashBitset(1)), Leaf(newHashBitset(2))
	want := Intersect(a, b)
	assert.True(t, exprEqual(want, Optimize(Intersect(a, UniverseExpr(), b))))
}

func TestOptimizeSubtractUniverseIsEmpty(t *testing.T) {
	x := Leaf(newHashBitset(1))
	assert.True(t, exprEqual(Empty(), Optimize(Subtract(x, UniverseExpr()))))
}

func TestOptimizeIsIdempotent(t *testing.T) {
	a, b, c := Leaf(newHashBitset(1)), Leaf(newHashBitset(2)), Leaf(newHashBitset(3))
	in := Intersect(a, Intersect(b, c), Complement(Union(a, b)))
	once := Optimize(in)
	twice := Optimize(once)
	assert.True(t, exprEqual(once, twice))
}
