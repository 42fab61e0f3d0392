package lam

import (
	"fmt"

	"github.com/vito/lam/pkg/ty"
)

// Node is implemented by every piece of syntax: terms and the top-level
// statement forms alike. String renders the canonical plain-text form
// (the same text the formatter emits).
type Node interface {
	GetSourceLocation() *SourceLocation
	fmt.Stringer
}

// Term is a lambda term. Terms synthesize their own type via Infer;
// checking a term against an expected type goes through Check, which only
// treats unannotated abstractions specially and falls back to synthesis
// for everything else.
type Term interface {
	Node

	// Infer synthesizes a type for the term against the environment's
	// declared types and the local binder context, or fails with a
	// TypeError.
	Infer(env *Env, locals *Locals) (ty.Type, error)
}

// Statement is a top-level construct: a type alias, an assignment, or a
// bare term to reduce.
type Statement interface {
	Node
}

// Locals maps in-scope binder names to their declared types while a
// single term is being checked. It is distinct from the environment and
// lives only for the duration of one Infer/Check call; Bind layers a new
// binding without mutating the parent, so sibling branches never see each
// other's binders.
type Locals struct {
	parent *Locals
	name   string
	t      ty.Type
}

// Bind returns a context extended with name : t. The receiver may be nil.
func (l *Locals) Bind(name string, t ty.Type) *Locals {
	return &Locals{parent: l, name: name, t: t}
}

// TypeOf looks up the innermost binding for name.
func (l *Locals) TypeOf(name string) (ty.Type, bool) {
	for ctx := l; ctx != nil; ctx = ctx.parent {
		if ctx.name == name {
			return ctx.t, true
		}
	}
	return nil, false
}
