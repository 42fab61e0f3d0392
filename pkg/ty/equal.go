package ty

// Resolver follows alias chains down to a base Named, Hole, or Function
// type. Resolution fails when an alias chain loops back on itself.
type Resolver interface {
	ResolveAlias(t Type) (Type, error)
}

// Equal reports whether two types are compatible: a Hole on either side
// matches anything, and otherwise both sides are resolved through alias
// chains and compared structurally. A nil resolver skips alias resolution.
func Equal(a, b Type, r Resolver) (bool, error) {
	if isHole(a) || isHole(b) {
		return true, nil
	}

	var err error
	if r != nil {
		a, err = r.ResolveAlias(a)
		if err != nil {
			return false, err
		}
		b, err = r.ResolveAlias(b)
		if err != nil {
			return false, err
		}
	}

	// Resolution can surface a hole hidden behind an alias.
	if isHole(a) || isHole(b) {
		return true, nil
	}

	if fa, ok := a.(*FunctionType); ok {
		fb, ok := b.(*FunctionType)
		if !ok {
			return false, nil
		}
		argsEq, err := Equal(fa.arg, fb.arg, r)
		if err != nil || !argsEq {
			return argsEq, err
		}
		return Equal(fa.ret, fb.ret, r)
	}

	return a.Eq(b), nil
}

func isHole(t Type) bool {
	_, ok := t.(HoleType)
	return ok
}
