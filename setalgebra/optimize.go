package setalgebra

// Optimize rewrites e into an equivalent, simplified expression by running
// optimizePass up to five times, stopping early at a fixed point (spec.md
// §4.4). Five passes is generous headroom: in practice a single pass's
// internal recursion (flatten-then-recurse, unary unwrap, Subtract's
// "recursively optimize each argument") already drives most trees to their
// fixed point, and the outer loop exists to catch whatever a pass's
// top-level rewrite exposes one level up.
func Optimize(e Expr) Expr {
	cur := e
	for i := 0; i < 5; i++ {
		next := optimizePass(cur)
		if exprEqual(next, cur) {
			return next
		}
		cur = next
	}
	return cur
}

// optimizePass applies, in order: normalization, the complement laws,
// the complement-to-subtraction rewrite, and a single pattern-match step
// over whatever node the first three steps left behind.
func optimizePass(e Expr) Expr {
	cur := Normalize(e)
	cur = applyComplementLaws(cur)
	cur = applyComplementToSubtraction(cur)
	return applyPatternMatch(cur)
}

// isComplementOf reports whether a is literally Complement(b).
func isComplementOf(a, b Expr) bool {
	c, ok := a.(*complementExpr)
	return ok && exprEqual(c.child, b)
}

// applyComplementLaws handles the absorbing identities that fall out of
// complementation: Complement(Universe) = Empty, Complement(Empty) =
// Universe, and an Intersect/Union that directly contains both x and
// Complement(x) collapses to Empty/Universe respectively.
func applyComplementLaws(cur Expr) Expr {
	switch v := cur.(type) {
	case *complementExpr:
		switch v.child.(type) {
		case universeExpr:
			return emptyExpr{}
		case emptyExpr:
			return universeExpr{}
		}
		return cur
	case *intersectExpr:
		if hasComplementaryPair(v.children) {
			return emptyExpr{}
		}
		return cur
	case *unionExpr:
		if hasComplementaryPair(v.children) {
			return universeExpr{}
		}
		return cur
	default:
		return cur
	}
}

func hasComplementaryPair(children []Expr) bool {
	for i, a := range children {
		for j, b := range children {
			if i != j && isComplementOf(a, b) {
				return true
			}
		}
	}
	return false
}

// applyComplementToSubtraction rewrites an Intersect with at least one
// complemented child and at least one non-complemented child into
// Subtract(Intersect(non-complemented...), inner-of-complemented...).
func applyComplementToSubtraction(cur Expr) Expr {
	v, ok := cur.(*intersectExpr)
	if !ok {
		return cur
	}
	var plain, negated []Expr
	for _, c := range v.children {
		if comp, ok := c.(*complementExpr); ok {
			negated = append(negated, comp.child)
		} else {
			plain = append(plain, c)
		}
	}
	if len(negated) == 0 || len(plain) == 0 {
		return cur
	}
	return &subtractExpr{minuend: &intersectExpr{children: plain}, subtrahends: negated}
}

func applyPatternMatch(cur Expr) Expr {
	switch v := cur.(type) {
	case *complementExpr:
		if inner, ok := v.child.(*complementExpr); ok {
			return optimizePass(inner.child)
		}
		return &complementExpr{child: optimizePass(v.child)}
	case *unionExpr:
		return applyUnionPattern(v)
	case *intersectExpr:
		return applyIntersectPattern(v)
	case *subtractExpr:
		return optimizeSubtract(v.minuend, v.subtrahends)
	default:
		return cur
	}
}

func asUnion(e Expr) ([]Expr, bool) {
	v, ok := e.(*unionExpr)
	if !ok {
		return nil, false
	}
	return v.children, true
}

func asIntersect(e Expr) ([]Expr, bool) {
	v, ok := e.(*intersectExpr)
	if !ok {
		return nil, false
	}
	return v.children, true
}

// flattenSameOp splices any child matched by match in place, producing a
// flat child list. Reports whether anything changed.
func flattenSameOp(children []Expr, match func(Expr) ([]Expr, bool)) ([]Expr, bool) {
	changed := false
	out := make([]Expr, 0, len(children))
	for _, c := range children {
		if inner, ok := match(c); ok {
			out = append(out, inner...)
			changed = true
		} else {
			out = append(out, c)
		}
	}
	return out, changed
}

func containsSentinel(children []Expr, want Expr) bool {
	for _, c := range children {
		if exprEqual(c, want) {
			return true
		}
	}
	return false
}

func removeSentinel(children []Expr, unwanted Expr) []Expr {
	out := make([]Expr, 0, len(children))
	for _, c := range children {
		if !exprEqual(c, unwanted) {
			out = append(out, c)
		}
	}
	return out
}

// findAbsorption looks for a child matched by match (an inner Union or
// Intersect) such that some other sibling x is itself one of that child's
// elements, and returns x. This is the absorption law:
// Intersect(Union(xs...), x) == x when x ∈ xs, and symmetrically for Union
// over Intersect.
func findAbsorption(children []Expr, match func(Expr) ([]Expr, bool)) (Expr, bool) {
	for _, outer := range children {
		inner, ok := match(outer)
		if !ok {
			continue
		}
		for _, sibling := range children {
			if exprEqual(sibling, outer) {
				continue
			}
			if containsSentinel(inner, sibling) {
				return sibling, true
			}
		}
	}
	return nil, false
}

// allComplement returns the unwrapped children of every complement when
// every child of children is itself a Complement node (De Morgan's law).
func allComplement(children []Expr) ([]Expr, bool) {
	inner := make([]Expr, 0, len(children))
	for _, c := range children {
		comp, ok := c.(*complementExpr)
		if !ok {
			return nil, false
		}
		inner = append(inner, comp.child)
	}
	return inner, true
}

func applyUnionPattern(v *unionExpr) Expr {
	cs := v.children
	if len(cs) == 1 {
		return optimizePass(cs[0])
	}
	if flat, changed := flattenSameOp(cs, asUnion); changed {
		return optimizePass(&unionExpr{children: flat})
	}
	if containsSentinel(cs, emptyExpr{}) {
		return optimizePass(&unionExpr{children: removeSentinel(cs, emptyExpr{})})
	}
	if containsSentinel(cs, universeExpr{}) {
		return universeExpr{}
	}
	if x, ok := findAbsorption(cs, asIntersect); ok {
		return x
	}
	if inner, ok := allComplement(cs); ok {
		return &complementExpr{child: &intersectExpr{children: inner}}
	}
	return v
}

func applyIntersectPattern(v *intersectExpr) Expr {
	cs := v.children
	if len(cs) == 1 {
		return optimizePass(cs[0])
	}
	if flat, changed := flattenSameOp(cs, asIntersect); changed {
		return optimizePass(&intersectExpr{children: flat})
	}
	if containsSentinel(cs, universeExpr{}) {
		return optimizePass(&intersectExpr{children: removeSentinel(cs, universeExpr{})})
	}
	if containsSentinel(cs, emptyExpr{}) {
		return emptyExpr{}
	}
	if x, ok := findAbsorption(cs, asUnion); ok {
		return x
	}
	if inner, ok := allComplement(cs); ok {
		return &complementExpr{child: &unionExpr{children: inner}}
	}
	return v
}

// flattenUnionSubtrahends expands any subtrahend that is itself a Union
// into separate sibling subtrahends. It expands one level only: a Union
// nested inside a Union subtrahend stays a single subtrahend.
func flattenUnionSubtrahends(subtrahends []Expr) ([]Expr, bool) {
	return flattenSameOp(subtrahends, asUnion)
}

// optimizeSubtract implements the Subtract-specific rules: dropping Empty
// subtrahends, the Empty-minuend shortcut, the shortcut to Empty when the
// minuend, one of an Intersect minuend's children, or Universe appears as
// a subtrahend, flattening Union subtrahends,
// and finally recursively optimizing whatever minuend and subtrahends
// remain.
func optimizeSubtract(minuend Expr, subtrahends []Expr) Expr {
	kept := make([]Expr, 0, len(subtrahends))
	for _, s := range subtrahends {
		if !exprEqual(s, emptyExpr{}) {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return minuend
	}
	if exprEqual(minuend, emptyExpr{}) {
		return emptyExpr{}
	}
	if mi, ok := minuend.(*intersectExpr); ok {
		for _, c := range mi.children {
			if containsSentinel(kept, c) {
				return emptyExpr{}
			}
		}
	}
	if containsSentinel(kept, minuend) || containsSentinel(kept, universeExpr{}) {
		return emptyExpr{}
	}
	if flat, changed := flattenUnionSubtrahends(kept); changed {
		kept = flat
	}
	optMinuend := optimizePass(minuend)
	optSubs := make([]Expr, len(kept))
	for i, s := range kept {
		optSubs[i] = optimizePass(s)
	}
	return &subtractExpr{minuend: optMinuend, subtrahends: optSubs}
}
