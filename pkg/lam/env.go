package lam

import (
	"github.com/vito/lam/pkg/ty"
)

// Env is the binding environment Γ: an ordered, append/override mapping
// from names to term definitions and optional declared types, plus a
// separate mapping from names to type alias targets. Nothing is ever
// removed; redefining a name shadows the previous binding in place.
//
// An Env is a per-session value threaded through ProcessStatement, not a
// process-wide singleton. It is mutated only between reductions by the
// statement processor, so it needs no locking.
type Env struct {
	bindings map[string]*binding
	order    []string // names in first-definition order, for display

	aliases    map[string]ty.Type
	aliasOrder []string
}

type binding struct {
	term Term    // nil until defined
	typ  ty.Type // nil until declared or inferred
}

// NewEnv creates an empty environment. The built-in type names Bool and
// Nat need no registration: a named type with no alias entry resolves
// to itself.
func NewEnv() *Env {
	return &Env{
		bindings: map[string]*binding{},
		aliases:  map[string]ty.Type{},
	}
}

func (e *Env) binding(name string) *binding {
	b, ok := e.bindings[name]
	if !ok {
		b = &binding{}
		e.bindings[name] = b
		e.order = append(e.order, name)
	}
	return b
}

// Define binds a term definition to name, shadowing any previous one.
func (e *Env) Define(name string, term Term) {
	e.binding(name).term = term
}

// DeclareType records a declared (or successfully inferred) type for name.
func (e *Env) DeclareType(name string, t ty.Type) {
	e.binding(name).typ = t
}

// DefineAlias registers a type alias target for name.
func (e *Env) DefineAlias(name string, target ty.Type) {
	if _, ok := e.aliases[name]; !ok {
		e.aliasOrder = append(e.aliasOrder, name)
	}
	e.aliases[name] = target
}

// LookupTerm returns the most recent term definition for name.
func (e *Env) LookupTerm(name string) (Term, bool) {
	b, ok := e.bindings[name]
	if !ok || b.term == nil {
		return nil, false
	}
	return b.term, true
}

// LookupType returns the declared type for name, if any.
func (e *Env) LookupType(name string) (ty.Type, bool) {
	b, ok := e.bindings[name]
	if !ok || b.typ == nil {
		return nil, false
	}
	return b.typ, true
}

// ResolveAlias follows alias chains from a named type down to a base
// Named, Hole, or Function type, failing with CyclicAliasError when a
// chain loops. Non-named types resolve to themselves; arrow components
// are resolved lazily during comparison, not here.
func (e *Env) ResolveAlias(t ty.Type) (ty.Type, error) {
	seen := map[string]bool{}
	for {
		named, ok := t.(ty.NamedType)
		if !ok {
			return t, nil
		}
		target, isAlias := e.aliases[string(named)]
		if !isAlias {
			return t, nil
		}
		if seen[string(named)] {
			return nil, &CyclicAliasError{Name: string(named)}
		}
		seen[string(named)] = true
		t = target
	}
}

var _ ty.Resolver = (*Env)(nil)

// Binding is one environment entry, in display order.
type Binding struct {
	Name string
	Term Term
	Type ty.Type
}

// Bindings returns the term bindings in first-definition order.
func (e *Env) Bindings() []Binding {
	out := make([]Binding, 0, len(e.order))
	for _, name := range e.order {
		b := e.bindings[name]
		out = append(out, Binding{Name: name, Term: b.term, Type: b.typ})
	}
	return out
}

// Alias is one registered type alias, in definition order.
type Alias struct {
	Name   string
	Target ty.Type
}

// Aliases returns the registered aliases in definition order.
func (e *Env) Aliases() []Alias {
	out := make([]Alias, 0, len(e.aliasOrder))
	for _, name := range e.aliasOrder {
		out = append(out, Alias{Name: name, Target: e.aliases[name]})
	}
	return out
}
