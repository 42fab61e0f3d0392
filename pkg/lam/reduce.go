package lam

import (
	"context"

	"github.com/pkg/errors"
)

// ErrBudgetExceeded is returned by Normalize when a term fails to reach
// a normal form within the reducer's step budget, e.g. for divergent
// terms like (λx. x x) (λx. x x).
var ErrBudgetExceeded = errors.New("reduction step budget exceeded")

// Reducer rewrites terms to normal form under normal-order (leftmost
// outermost, call-by-name) evaluation. Free names are expanded from the
// environment only in function position, so definitions may refer to
// themselves without sending every lookup into a loop.
type Reducer struct {
	Env *Env

	// MaxSteps bounds the number of whole-term passes before Normalize
	// gives up with ErrBudgetExceeded. Zero means no bound.
	MaxSteps int

	// Observer, when set, receives the term after every pass that
	// changed it. Used for tracing and step debugging.
	Observer func(Term)
}

// Normalize reduces a term until a pass finds nothing left to contract.
// Arguments are substituted unevaluated, and reduction continues under
// binders, so the result is a full normal form rather than weak-head.
// Divergent terms keep firing redexes forever; the step budget is what
// stops them, not any convergence test, so self-replicating terms like
// (λx. x x) (λx. x x) report ErrBudgetExceeded instead of pretending to
// have finished.
func (r *Reducer) Normalize(ctx context.Context, t Term) (Term, error) {
	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return t, errors.Wrap(err, "reduction interrupted")
		}
		next, fired := r.step(t, NameSet{})
		if !fired {
			// No redex anywhere. Expand remaining free names once to
			// expose more work before declaring a normal form.
			next = r.inline(t, NameSet{})
			if EqualTerms(next, t) {
				return t, nil
			}
		}
		t = next
		steps++
		if r.Observer != nil {
			r.Observer(t)
		}
		if r.MaxSteps > 0 && steps >= r.MaxSteps {
			return t, errors.WithStack(ErrBudgetExceeded)
		}
	}
}

// step performs one pass over the term, firing every redex it encounters
// along the way, and reports whether anything fired. bound tracks binders
// between here and the root so that shadowed names are never expanded
// from the environment.
func (r *Reducer) step(t Term, bound NameSet) (Term, bool) {
	switch n := t.(type) {
	case *Application:
		fn, expanded := r.expandHead(n.Fn, bound)
		if abs, ok := fn.(*Abstraction); ok {
			// Call by name: the argument goes in unreduced.
			return Substitute(abs.Body, abs.Param, n.Arg), true
		}
		newFn, fnFired := r.step(fn, bound)
		newArg, argFired := r.step(n.Arg, bound)
		if !expanded && !fnFired && !argFired {
			return n, false
		}
		return &Application{Fn: newFn, Arg: newArg, Loc: n.Loc}, true
	case *Abstraction:
		inner := bound.Union(NewNameSet(n.Param))
		body, fired := r.step(n.Body, inner)
		if !fired {
			return n, false
		}
		return &Abstraction{
			Param:     n.Param,
			ParamType: n.ParamType,
			Body:      body,
			Loc:       n.Loc,
		}, true
	default:
		// Variables and literals are normal forms on their own.
		return t, false
	}
}

// expandHead replaces a term in function position with its environment
// definition, if it has one. Variables are looked up by name, literals by
// their spelling, which is how the standard library's Church encodings
// come into play when a program applies 2 or true to something.
func (r *Reducer) expandHead(head Term, bound NameSet) (Term, bool) {
	var name string
	switch n := head.(type) {
	case *Variable:
		if bound.Contains(n.Name) {
			return head, false
		}
		name = n.Name
	case *NatLiteral:
		name = n.Spelling()
	case *BoolLiteral:
		name = n.Spelling()
	default:
		return head, false
	}
	if def, ok := r.resolve(name); ok {
		return def, true
	}
	return head, false
}

// resolve chases a chain of variable-to-variable definitions through the
// environment, returning the first term that is not a bare variable. A
// chain that dead-ends at an undefined name resolves to that name, so
// x = Foo expands to Foo even when Foo has no definition. The seen set
// breaks definition cycles such as x = x, which resolve to nothing.
func (r *Reducer) resolve(name string) (Term, bool) {
	seen := NameSet{}
	var last Term
	for {
		if seen.Contains(name) {
			return nil, false
		}
		seen.Add(name)
		def, ok := r.Env.LookupTerm(name)
		if !ok {
			return last, last != nil
		}
		v, isVar := def.(*Variable)
		if !isVar {
			return def, true
		}
		last = def
		name = v.Name
	}
}

// Inline expands every free variable with a definition, everywhere in
// the term. Normalize falls back to this when a pass stalls, and bare
// expressions get one eager pass of it so that plain names echo their
// definitions. Literals are left alone; they are already values.
func (r *Reducer) Inline(t Term) Term {
	return r.inline(t, NameSet{})
}

func (r *Reducer) inline(t Term, bound NameSet) Term {
	switch n := t.(type) {
	case *Variable:
		if bound.Contains(n.Name) {
			return n
		}
		if def, ok := r.resolve(n.Name); ok {
			return def
		}
		return n
	case *Abstraction:
		inner := bound.Union(NewNameSet(n.Param))
		body := r.inline(n.Body, inner)
		if body == n.Body {
			return n
		}
		return &Abstraction{
			Param:     n.Param,
			ParamType: n.ParamType,
			Body:      body,
			Loc:       n.Loc,
		}
	case *Application:
		newFn := r.inline(n.Fn, bound)
		newArg := r.inline(n.Arg, bound)
		if newFn == n.Fn && newArg == n.Arg {
			return n
		}
		return &Application{Fn: newFn, Arg: newArg, Loc: n.Loc}
	default:
		return t
	}
}
