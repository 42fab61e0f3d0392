package lam

import (
	"github.com/vito/lam/pkg/ty"
)

// Infer synthesizes the type of a closed term against an environment.
func Infer(t Term, env *Env) (ty.Type, error) {
	return t.Infer(env, nil)
}

// Check verifies a term against an expected type. Unannotated
// abstractions cannot synthesize a type on their own, so when one is
// checked against a function type the expected domain is pushed onto
// the parameter and the body is checked against the codomain. Every
// other term synthesizes and compares, with the hole type acting as a
// wildcard on either side.
func Check(t Term, expected ty.Type, env *Env, locals *Locals) error {
	if abs, ok := t.(*Abstraction); ok && abs.ParamType == nil {
		want, err := env.ResolveAlias(expected)
		if err != nil {
			return err
		}
		if _, isHole := want.(ty.HoleType); isHole {
			// A hole splits into a hole-to-hole arrow so the body still
			// gets checked with the parameter in scope.
			want = ty.NewFnType(ty.Hole, ty.Hole)
		}
		arrow, ok := want.(*ty.FunctionType)
		if !ok {
			return &NotAFunctionError{
				Actual:   want,
				Location: abs.GetSourceLocation(),
			}
		}
		return Check(abs.Body, arrow.Ret(), env, locals.Bind(abs.Param, arrow.Arg()))
	}
	actual, err := t.Infer(env, locals)
	if err != nil {
		return err
	}
	eq, err := ty.Equal(actual, expected, env)
	if err != nil {
		return err
	}
	if !eq {
		return &MismatchError{
			Expected: expected,
			Actual:   actual,
			Location: t.GetSourceLocation(),
		}
	}
	return nil
}
