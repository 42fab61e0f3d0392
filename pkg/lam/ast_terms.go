package lam

import (
	"fmt"

	"github.com/vito/lam/pkg/ty"
)

// Variable references a binder or an environment entry. Which one it
// means is decided at the point of use: binders shadow the environment.
type Variable struct {
	Name string
	Loc  *SourceLocation
}

var _ Term = (*Variable)(nil)

func (v *Variable) GetSourceLocation() *SourceLocation { return v.Loc }

func (v *Variable) Infer(env *Env, locals *Locals) (ty.Type, error) {
	if t, ok := locals.TypeOf(v.Name); ok {
		return t, nil
	}
	if t, ok := env.LookupType(v.Name); ok {
		return t, nil
	}
	return nil, &UnboundError{Name: v.Name, Location: v.Loc}
}

func (v *Variable) String() string {
	return v.Name
}

// Abstraction is a single-argument lambda. ParamType is nil when the
// binder carries no annotation; such abstractions have no Infer rule and
// are only typeable in checking mode.
type Abstraction struct {
	Param     string
	ParamType ty.Type
	Body      Term
	Loc       *SourceLocation
}

var _ Term = (*Abstraction)(nil)

func (a *Abstraction) GetSourceLocation() *SourceLocation { return a.Loc }

func (a *Abstraction) Infer(env *Env, locals *Locals) (ty.Type, error) {
	if a.ParamType == nil {
		return nil, &CannotInferError{Location: a.Loc}
	}
	bodyType, err := a.Body.Infer(env, locals.Bind(a.Param, a.ParamType))
	if err != nil {
		return nil, err
	}
	return ty.NewFnType(a.ParamType, bodyType), nil
}

func (a *Abstraction) String() string {
	if a.ParamType != nil {
		return fmt.Sprintf("λ(%s:%s). %s", a.Param, a.ParamType, a.Body)
	}
	return fmt.Sprintf("λ%s. %s", a.Param, a.Body)
}

// Application applies one term to another. Multi-argument application is
// left-associated into nested binary nodes by the parser.
type Application struct {
	Fn  Term
	Arg Term
	Loc *SourceLocation
}

var _ Term = (*Application)(nil)

func (a *Application) GetSourceLocation() *SourceLocation { return a.Loc }

func (a *Application) Infer(env *Env, locals *Locals) (ty.Type, error) {
	fnType, err := a.Fn.Infer(env, locals)
	if err != nil {
		return nil, err
	}
	resolved, err := env.ResolveAlias(fnType)
	if err != nil {
		return nil, err
	}
	// An unknown function type constrains nothing, including the argument.
	if _, ok := resolved.(ty.HoleType); ok {
		return ty.Hole, nil
	}
	arrow, ok := resolved.(*ty.FunctionType)
	if !ok {
		return nil, &NotAFunctionError{Actual: fnType, Location: a.Loc}
	}
	if err := Check(a.Arg, arrow.Arg(), env, locals); err != nil {
		return nil, err
	}
	return arrow.Ret(), nil
}

func (a *Application) String() string {
	return fmt.Sprintf("(%s %s)", a.Fn, a.Arg)
}
