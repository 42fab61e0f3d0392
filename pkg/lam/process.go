package lam

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vito/lam/pkg/ty"
)

// Result is the outcome of processing one statement.
type Result struct {
	Stmt Statement

	// Type is the declared or (for unannotated assignments) inferred
	// type, when typing succeeded.
	Type ty.Type

	// TypeErr is a non-fatal typing diagnostic. For unannotated
	// assignments the inference attempt is opportunistic: a failure here
	// is expected for plain lambdas and renderers generally skip it.
	TypeErr error

	// Term is the assignment body as written, or the bare term's normal
	// form.
	Term Term
}

// Diagnostic returns the typing problem worth surfacing to the user:
// failed annotation checks and alias cycles. Opportunistic inference
// failures on unannotated assignments are normal for plain lambdas and
// stay quiet.
func (res *Result) Diagnostic() error {
	if res.TypeErr == nil {
		return nil
	}
	if asgn, ok := res.Stmt.(*Assignment); ok && asgn.Declared == nil {
		return nil
	}
	return res.TypeErr
}

// ProcessStatement runs one statement against the environment: aliases
// and assignments register themselves, bare terms reduce to normal
// form. Typing problems land in Result.TypeErr and never block
// registration or reduction; the returned error is reserved for
// cancellation and the reduction budget.
func ProcessStatement(ctx context.Context, stmt Statement, env *Env, r *Reducer) (*Result, error) {
	res := &Result{Stmt: stmt}
	switch n := stmt.(type) {
	case *TypeAlias:
		env.DefineAlias(n.Name, n.Target)
		if _, err := env.ResolveAlias(ty.NamedType(n.Name)); err != nil {
			res.TypeErr = err
		}
		return res, nil
	case *Assignment:
		if n.Declared != nil {
			if err := Check(n.Body, n.Declared, env, nil); err != nil {
				res.TypeErr = err
			} else {
				res.Type = n.Declared
				env.DeclareType(n.Name, n.Declared)
			}
		} else if inferred, err := Infer(n.Body, env); err != nil {
			res.TypeErr = err
		} else {
			res.Type = inferred
			env.DeclareType(n.Name, inferred)
		}
		// The body is stored as written, not reduced: definitions may
		// refer to names that don't exist yet, or to themselves.
		env.Define(n.Name, n.Body)
		res.Term = n.Body
		return res, nil
	case Term:
		// One eager expansion so a bare name echoes its definition even
		// when no redex is exposed.
		nf, err := r.Normalize(ctx, r.Inline(n))
		res.Term = nf
		return res, err
	default:
		return nil, errors.Errorf("unhandled statement type %T", stmt)
	}
}
