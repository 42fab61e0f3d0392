package lam

// NameSet is a set of variable names.
type NameSet map[string]bool

func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

func (s NameSet) Contains(name string) bool {
	return s[name]
}

func (s NameSet) Add(name string) {
	s[name] = true
}

// Union returns a new set containing both sets' names.
func (s NameSet) Union(other NameSet) NameSet {
	out := make(NameSet, len(s)+len(other))
	for n := range s {
		out[n] = true
	}
	for n := range other {
		out[n] = true
	}
	return out
}

// FreeVars collects the free variable names of a term. Binder names are
// removed on the way out of an abstraction; literals have no free
// variables.
func FreeVars(t Term) NameSet {
	switch n := t.(type) {
	case *Variable:
		return NewNameSet(n.Name)
	case *Abstraction:
		set := FreeVars(n.Body)
		delete(set, n.Param)
		return set
	case *Application:
		return FreeVars(n.Fn).Union(FreeVars(n.Arg))
	default:
		return NameSet{}
	}
}

// allNames collects every variable and binder name occurring in a term,
// bound or not. Freshening avoids this superset so a renamed binder can
// never collide with an inner binder either.
func allNames(t Term, into NameSet) {
	switch n := t.(type) {
	case *Variable:
		into.Add(n.Name)
	case *Abstraction:
		into.Add(n.Param)
		allNames(n.Body, into)
	case *Application:
		allNames(n.Fn, into)
		allNames(n.Arg, into)
	}
}

// freshName derives a non-colliding identifier from base by appending a
// prime marker until the candidate avoids the given set. Deterministic
// given the avoid set, so renamed output is reproducible across runs.
func freshName(base string, avoid NameSet) string {
	name := base
	for avoid.Contains(name) {
		name += "'"
	}
	return name
}

// renameFree replaces free occurrences of old with a fresh name in a
// term. Occurrences under a shadowing binder are left alone.
func renameFree(t Term, old, new string) Term {
	switch n := t.(type) {
	case *Variable:
		if n.Name == old {
			return &Variable{Name: new, Loc: n.Loc}
		}
		return n
	case *Abstraction:
		if n.Param == old {
			return n // shadowed below this point
		}
		return &Abstraction{
			Param:     n.Param,
			ParamType: n.ParamType,
			Body:      renameFree(n.Body, old, new),
			Loc:       n.Loc,
		}
	case *Application:
		return &Application{
			Fn:  renameFree(n.Fn, old, new),
			Arg: renameFree(n.Arg, old, new),
			Loc: n.Loc,
		}
	default:
		return t
	}
}

// Substitute produces a term equal to t with every free occurrence of
// name replaced by replacement, renaming binders as needed so that no
// variable free in replacement is ever captured by an enclosing
// abstraction. Untouched subtrees are shared by reference, never copied.
func Substitute(t Term, name string, replacement Term) Term {
	return substitute(t, name, replacement, NameSet{})
}

func substitute(t Term, name string, replacement Term, scope NameSet) Term {
	switch n := t.(type) {
	case *Variable:
		if n.Name == name {
			return replacement
		}
		return n
	case *Abstraction:
		if n.Param == name {
			// The binder shadows; nothing to substitute underneath.
			return n
		}
		param, body := n.Param, n.Body
		if FreeVars(replacement).Contains(param) {
			// Alpha-convert before descending: the binder would capture a
			// variable free in the replacement.
			avoid := FreeVars(replacement).Union(scope)
			allNames(body, avoid)
			param = freshName(n.Param, avoid)
			body = renameFree(body, n.Param, param)
		}
		inner := NameSet{}
		for k := range scope {
			inner[k] = true
		}
		inner.Add(param)
		newBody := substitute(body, name, replacement, inner)
		if param == n.Param && newBody == n.Body {
			return n
		}
		return &Abstraction{
			Param:     param,
			ParamType: n.ParamType,
			Body:      newBody,
			Loc:       n.Loc,
		}
	case *Application:
		newFn := substitute(n.Fn, name, replacement, scope)
		newArg := substitute(n.Arg, name, replacement, scope)
		if newFn == n.Fn && newArg == n.Arg {
			return n
		}
		return &Application{
			Fn:  newFn,
			Arg: newArg,
			Loc: n.Loc,
		}
	default:
		// Literals contain no variables.
		return t
	}
}
