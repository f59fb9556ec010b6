package setalgebra

import "sort"

// rank orders node kinds for normalize's stable sort: Empty and Universe
// sort first, then the composite operators (so that, e.g., a nested
// Intersect sorts ahead of its sibling leaves and can be spotted by the
// flatten rule), then everything else (leaves and term refs) last.
func rank(e Expr) int {
	switch e.(type) {
	case emptyExpr:
		return 0
	case universeExpr:
		return 1
	case *intersectExpr:
		return 10
	case *unionExpr:
		return 11
	case *subtractExpr:
		return 12
	case *complementExpr:
		return 13
	default:
		return 100
	}
}

// exprEqual is deep structural equality, used for dedup and for detecting
// the optimizer's fixed point. Two leafExprs are equal only if they are
// literally the same Leaf() call's result; two termExprs are equal if
// their Term values are equal.
func exprEqual(a, b Expr) bool {
	switch av := a.(type) {
	case emptyExpr:
		_, ok := b.(emptyExpr)
		return ok
	case universeExpr:
		_, ok := b.(universeExpr)
		return ok
	case *termExpr:
		bv, ok := b.(*termExpr)
		return ok && av.term == bv.term
	case *leafExpr:
		bv, ok := b.(*leafExpr)
		return ok && av.id == bv.id
	case *intersectExpr:
		bv, ok := b.(*intersectExpr)
		return ok && exprSliceEqual(av.children, bv.children)
	case *unionExpr:
		bv, ok := b.(*unionExpr)
		return ok && exprSliceEqual(av.children, bv.children)
	case *subtractExpr:
		bv, ok := b.(*subtractExpr)
		return ok && exprEqual(av.minuend, bv.minuend) && exprSliceEqual(av.subtrahends, bv.subtrahends)
	case *complementExpr:
		bv, ok := b.(*complementExpr)
		return ok && exprEqual(av.child, bv.child)
	default:
		return false
	}
}

func exprSliceEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !exprEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// dedupAndSort removes duplicates (keeping the first occurrence) and then
// stable-sorts by rank. Ties (equal rank) keep whatever relative order they
// arrived in; the flatten rule in optimize.go relies on that stability to
// produce a deterministic child order without a separate leaf-identity
// comparator.
func dedupAndSort(children []Expr) []Expr {
	out := make([]Expr, 0, len(children))
	for _, c := range children {
		dup := false
		for _, o := range out {
			if exprEqual(c, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}

// Normalize puts a single node into canonical form: Intersect/Union
// children are deduplicated and sorted, Subtract's subtrahends are
// deduplicated and sorted (its minuend is left alone), and Complement's
// child and every leaf are returned unchanged. It is intentionally shallow
// (it does not recurse into children) so that Normalize(Normalize(e)) ==
// Normalize(e) regardless of what e's descendants look like.
func Normalize(e Expr) Expr {
	switch v := e.(type) {
	case *intersectExpr:
		return &intersectExpr{children: dedupAndSort(v.children)}
	case *unionExpr:
		return &unionExpr{children: dedupAndSort(v.children)}
	case *subtractExpr:
		return &subtractExpr{minuend: v.minuend, subtrahends: dedupAndSort(v.subtrahends)}
	default:
		return e
	}
}
