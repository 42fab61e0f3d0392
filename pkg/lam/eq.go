package lam

// EqualTerms reports structural equality of two terms, ignoring source
// locations. Reduction uses this as its fixpoint test, so substituted
// subtrees with stale locations still compare equal to their originals.
func EqualTerms(a, b Term) bool {
	switch x := a.(type) {
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Abstraction:
		y, ok := b.(*Abstraction)
		if !ok || x.Param != y.Param {
			return false
		}
		if (x.ParamType == nil) != (y.ParamType == nil) {
			return false
		}
		if x.ParamType != nil && !x.ParamType.Eq(y.ParamType) {
			return false
		}
		return EqualTerms(x.Body, y.Body)
	case *Application:
		y, ok := b.(*Application)
		return ok && EqualTerms(x.Fn, y.Fn) && EqualTerms(x.Arg, y.Arg)
	case *NatLiteral:
		y, ok := b.(*NatLiteral)
		return ok && x.Value == y.Value
	case *BoolLiteral:
		y, ok := b.(*BoolLiteral)
		return ok && x.Value == y.Value
	default:
		return false
	}
}

// binderIndex assigns de Bruijn-style levels to binders along a spine of
// enclosing abstractions.
type binderIndex struct {
	parent *binderIndex
	name   string
	level  int
}

func (b *binderIndex) push(name string) *binderIndex {
	level := 0
	if b != nil {
		level = b.level + 1
	}
	return &binderIndex{parent: b, name: name, level: level}
}

func (b *binderIndex) lookup(name string) (int, bool) {
	for cur := b; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.level, true
		}
	}
	return 0, false
}

// AlphaEq reports whether two terms are equal up to consistent renaming
// of bound variables. Free variables must match by name, and parameter
// annotations must agree where present.
func AlphaEq(a, b Term) bool {
	return alphaEq(a, b, nil, nil)
}

func alphaEq(a, b Term, ba, bb *binderIndex) bool {
	switch x := a.(type) {
	case *Variable:
		y, ok := b.(*Variable)
		if !ok {
			return false
		}
		la, boundA := ba.lookup(x.Name)
		lb, boundB := bb.lookup(y.Name)
		if boundA != boundB {
			return false
		}
		if boundA {
			return la == lb
		}
		return x.Name == y.Name
	case *Abstraction:
		y, ok := b.(*Abstraction)
		if !ok {
			return false
		}
		if (x.ParamType == nil) != (y.ParamType == nil) {
			return false
		}
		if x.ParamType != nil && !x.ParamType.Eq(y.ParamType) {
			return false
		}
		return alphaEq(x.Body, y.Body, ba.push(x.Param), bb.push(y.Param))
	case *Application:
		y, ok := b.(*Application)
		return ok &&
			alphaEq(x.Fn, y.Fn, ba, bb) &&
			alphaEq(x.Arg, y.Arg, ba, bb)
	default:
		return EqualTerms(a, b)
	}
}
