package setalgebra

// Evaluate optimizes e and then walks it post-order, resolving leaves
// against space and folding Intersect/Union/Subtract destructively: the
// first operand is cloned, and every subsequent operand is folded into
// that clone via And/Or/AndNot. A Term that space cannot resolve evaluates
// to space.Empty() rather than an error, matching the "reference absent"
// case in spec.md §4.5.
func Evaluate(e Expr, space Space) (BitsetLike, error) {
	return evaluate(Optimize(e), space)
}

func evaluate(e Expr, space Space) (BitsetLike, error) {
	switch v := e.(type) {
	case emptyExpr:
		return space.Empty(), nil
	case universeExpr:
		return space.Universe(), nil
	case *leafExpr:
		return v.value, nil
	case *termExpr:
		b, ok := space.Resolve(v.term)
		if !ok {
			return space.Empty(), nil
		}
		return b, nil
	case *intersectExpr:
		return foldChildren(v.children, space, BitsetLike.And)
	case *unionExpr:
		return foldChildren(v.children, space, BitsetLike.Or)
	case *subtractExpr:
		return evaluateSubtract(v, space)
	default:
		return nil, ErrUnknownOperator
	}
}

func foldChildren(children []Expr, space Space, op func(acc BitsetLike, b BitsetLike) (BitsetLike, error)) (BitsetLike, error) {
	if len(children) == 0 {
		return nil, ErrUnknownOperator
	}
	first, err := evaluate(children[0], space)
	if err != nil {
		return nil, err
	}
	acc := first.Clone()
	for _, c := range children[1:] {
		b, err := evaluate(c, space)
		if err != nil {
			return nil, err
		}
		acc, err = op(acc, b)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func evaluateSubtract(v *subtractExpr, space Space) (BitsetLike, error) {
	minuend, err := evaluate(v.minuend, space)
	if err != nil {
		return nil, err
	}
	acc := minuend.Clone()
	for _, s := range v.subtrahends {
		b, err := evaluate(s, space)
		if err != nil {
			return nil, err
		}
		acc, err = acc.AndNot(b)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
