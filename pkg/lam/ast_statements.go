package lam

import (
	"fmt"

	"github.com/vito/lam/pkg/ty"
)

// Assignment is the top-level binding form `x = e` / `x : T = e`. It is
// produced only at statement level, never nested inside a term.
type Assignment struct {
	Name     string
	Declared ty.Type // nil when the binding is unannotated
	Body     Term
	Loc      *SourceLocation
}

var _ Statement = (*Assignment)(nil)

func (a *Assignment) GetSourceLocation() *SourceLocation { return a.Loc }

func (a *Assignment) String() string {
	if a.Declared != nil {
		return fmt.Sprintf("%s : %s = %s", a.Name, a.Declared, a.Body)
	}
	return fmt.Sprintf("%s = %s", a.Name, a.Body)
}

// TypeAlias is the top-level alias declaration `type A = T`.
type TypeAlias struct {
	Name   string
	Target ty.Type
	Loc    *SourceLocation
}

var _ Statement = (*TypeAlias)(nil)

func (t *TypeAlias) GetSourceLocation() *SourceLocation { return t.Loc }

func (t *TypeAlias) String() string {
	return fmt.Sprintf("type %s = %s", t.Name, t.Target)
}
