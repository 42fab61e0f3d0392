package ty

import (
	"fmt"
)

// Type represents all possible type constructors: named base types and
// aliases, the hole wildcard, and function arrows.
type Type interface {
	Name() string
	Eq(Type) bool
	fmt.Stringer
}

// Built-in base types. They carry no special machinery: a named type
// with no alias entry in the environment resolves to itself.
var (
	Bool = NamedType("Bool")
	Nat  = NamedType("Nat")
)

// NamedType is a base type or user-declared alias, identified by name.
// Whether a name is an alias is the environment's business; two named
// types are structurally equal iff they spell the same name.
type NamedType string

func (t NamedType) Name() string {
	return string(t)
}

func (t NamedType) Eq(other Type) bool {
	if ot, ok := other.(NamedType); ok {
		return t == ot
	}
	return false
}

func (t NamedType) String() string {
	return string(t)
}

// HoleType is the universal wildcard `*`. It is not structurally equal to
// anything but itself; Equal treats it as compatible with every type.
type HoleType struct{}

// Hole is the singleton `*` type.
var Hole Type = HoleType{}

func (HoleType) Name() string {
	return "*"
}

func (HoleType) Eq(other Type) bool {
	_, ok := other.(HoleType)
	return ok
}

func (HoleType) String() string {
	return "*"
}

// FunctionType represents a function arrow `domain -> codomain`.
type FunctionType struct {
	arg Type
	ret Type
}

func NewFnType(arg, ret Type) *FunctionType {
	return &FunctionType{arg: arg, ret: ret}
}

func (ft *FunctionType) Name() string {
	return ft.String()
}

func (ft *FunctionType) Eq(other Type) bool {
	if ot, ok := other.(*FunctionType); ok {
		return ft.arg.Eq(ot.arg) && ft.ret.Eq(ot.ret)
	}
	return false
}

// Arg returns the domain type.
func (ft *FunctionType) Arg() Type {
	return ft.arg
}

// Ret returns the codomain type.
func (ft *FunctionType) Ret() Type {
	return ft.ret
}

func (ft *FunctionType) String() string {
	// Arrows associate to the right, so a function-typed domain needs
	// explicit parens to round-trip through the parser.
	if _, ok := ft.arg.(*FunctionType); ok {
		return fmt.Sprintf("(%s) -> %s", ft.arg, ft.ret)
	}
	return fmt.Sprintf("%s -> %s", ft.arg, ft.ret)
}
