// Package setalgebra implements the query expression AST described in
// spec.md §3–§5: a recursive value built from intersection, union,
// subtraction, complement, and the universe/empty sentinels, together with
// a normalizer, an optimizer, and an evaluator that executes the optimized
// expression against anything implementing BitsetLike.
package setalgebra

import (
	"fmt"
	"sync/atomic"

	"github.com/aphyr/hangman/index"
)

// Expr is a set expression node. The concrete types below are the tagged
// variant spec.md §9 calls for; callers branch on type via a type switch
// or, for most purposes, simply build trees with the constructors and pass
// them to Normalize/Optimize/Evaluate.
type Expr interface {
	isExpr()
}

type emptyExpr struct{}
type universeExpr struct{}

func (emptyExpr) isExpr()    {}
func (universeExpr) isExpr() {}

// Empty is the sentinel matching no words.
func Empty() Expr { return emptyExpr{} }

// UniverseExpr is the sentinel matching every word in the index's capacity.
func UniverseExpr() Expr { return universeExpr{} }

var leafCounter uint64

// leafExpr is a leaf wrapping a borrowed BitsetLike value directly (as
// opposed to a Term, which the evaluator resolves against an index). Its
// id gives each Leaf() result an identity: exprEqual treats two leaves as
// equal only when their ids match. Sorting does not use it; leaves of
// equal rank keep their arrival order.
type leafExpr struct {
	id    uint64
	value BitsetLike
}

func (*leafExpr) isExpr() {}

// Leaf wraps an already-computed bitset-like value as an expression leaf.
func Leaf(b BitsetLike) Expr {
	return &leafExpr{id: atomic.AddUint64(&leafCounter, 1), value: b}
}

// termExpr is a leaf resolved against an Index at evaluation time.
type termExpr struct {
	term index.Term
}

func (*termExpr) isExpr() {}

// TermRef builds an expression leaf that resolves to term's bitset when
// evaluated against an index.
func TermRef(term index.Term) Expr {
	return &termExpr{term: term}
}

type intersectExpr struct {
	children []Expr
}

func (*intersectExpr) isExpr() {}

// Intersect builds an n-ary intersection (n >= 1).
func Intersect(children ...Expr) Expr {
	return &intersectExpr{children: children}
}

type unionExpr struct {
	children []Expr
}

func (*unionExpr) isExpr() {}

// Union builds an n-ary union (n >= 1).
func Union(children ...Expr) Expr {
	return &unionExpr{children: children}
}

type subtractExpr struct {
	minuend     Expr
	subtrahends []Expr
}

func (*subtractExpr) isExpr() {}

// Subtract builds minuend minus every subtrahend (n >= 0 subtrahends).
func Subtract(minuend Expr, subtrahends ...Expr) Expr {
	return &subtractExpr{minuend: minuend, subtrahends: subtrahends}
}

type complementExpr struct {
	child Expr
}

func (*complementExpr) isExpr() {}

// Complement builds the complement of child.
func Complement(child Expr) Expr {
	return &complementExpr{child: child}
}

func (e *intersectExpr) String() string   { return fmt.Sprintf("Intersect%v", e.children) }
func (e *unionExpr) String() string       { return fmt.Sprintf("Union%v", e.children) }
func (e *subtractExpr) String() string {
	return fmt.Sprintf("Subtract(%v, %v)", e.minuend, e.subtrahends)
}
func (e *complementExpr) String() string { return fmt.Sprintf("Complement(%v)", e.child) }
func (e *termExpr) String() string       { return e.term.String() }
func (e *leafExpr) String() string       { return fmt.Sprintf("Leaf#%d", e.id) }
func (emptyExpr) String() string         { return "Empty" }
func (universeExpr) String() string      { return "Universe" }
