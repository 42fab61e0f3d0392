package lam

import (
	"strconv"

	"github.com/vito/lam/pkg/ty"
)

// NatLiteral is a natural-number literal. It is its own normal form; the
// reduction engine gives it Church semantics by consulting the
// environment for a binding under its decimal spelling.
type NatLiteral struct {
	Value int
	Loc   *SourceLocation
}

var _ Term = (*NatLiteral)(nil)

func (n *NatLiteral) GetSourceLocation() *SourceLocation { return n.Loc }

func (n *NatLiteral) Infer(env *Env, locals *Locals) (ty.Type, error) {
	return ty.Nat, nil
}

// Spelling is the environment key the literal expands through.
func (n *NatLiteral) Spelling() string {
	return strconv.Itoa(n.Value)
}

func (n *NatLiteral) String() string {
	return strconv.Itoa(n.Value)
}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	Value bool
	Loc   *SourceLocation
}

var _ Term = (*BoolLiteral)(nil)

func (b *BoolLiteral) GetSourceLocation() *SourceLocation { return b.Loc }

func (b *BoolLiteral) Infer(env *Env, locals *Locals) (ty.Type, error) {
	return ty.Bool, nil
}

// Spelling is the environment key the literal expands through.
func (b *BoolLiteral) Spelling() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (b *BoolLiteral) String() string {
	return b.Spelling()
}
