package lam

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/lam/pkg/ty"
)

func TestPrinterTerm(t *testing.T) {
	p := &Printer{}
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "variable", term: "x", want: "x"},
		{name: "abstraction", term: "λx. x", want: "λx.x"},
		{name: "annotated abstraction", term: "λ(x:Bool). x", want: "λ(x:Bool).x"},
		{name: "application", term: "f x", want: "(f x)"},
		{name: "curried application", term: "f a b", want: "((f a) b)"},
		{name: "church numeral", term: "λf. λx. f x", want: "λf.λx.(f x)"},
		{name: "nat literal", term: "2", want: "2"},
		{name: "bool literal", term: "true", want: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Term(mustParseTerm(t, tt.term)))
		})
	}
}

func TestPrinterType(t *testing.T) {
	p := &Printer{}
	assert.Equal(t, "Bool", p.Type(ty.Bool))
	assert.Equal(t, "*", p.Type(ty.Hole))
	assert.Equal(t, "Bool -> Nat", p.Type(ty.NewFnType(ty.Bool, ty.Nat)))
	assert.Equal(t, "(Bool -> Bool) -> Nat", p.Type(ty.NewFnType(ty.NewFnType(ty.Bool, ty.Bool), ty.Nat)))
	assert.Equal(t, "Bool -> Nat -> Nat", p.Type(ty.NewFnType(ty.Bool, ty.NewFnType(ty.Nat, ty.Nat))))
}

func TestPrinterStatements(t *testing.T) {
	p := &Printer{}

	assert.Equal(t, "x = λa.a;", p.Assign("x", nil, mustParseTerm(t, "λa. a")))
	assert.Equal(t,
		"Id : Bool -> Bool = λx.x;",
		p.Assign("Id", ty.NewFnType(ty.Bool, ty.Bool), mustParseTerm(t, "λx. x")))
	assert.Equal(t, "type Op = Bool -> Bool;", p.Alias("Op", ty.NewFnType(ty.Bool, ty.Bool)))
	assert.Equal(t, strings.Repeat("-", 8), p.Rule(8))
}

func TestPrinterColor(t *testing.T) {
	plain := &Printer{}
	color := &Printer{Color: true}

	terms := []string{
		"λx. x",
		"λ(x:Bool). x",
		"Add 1 2",
		"true",
		"λf. λx. f (f x)",
	}
	for _, src := range terms {
		term := mustParseTerm(t, src)
		// Styling never changes the visible text.
		assert.Equal(t, plain.Term(term), ansi.Strip(color.Term(term)), "term %s", src)
	}

	assert.Equal(t,
		plain.Assign("x", ty.Bool, mustParseTerm(t, "true")),
		ansi.Strip(color.Assign("x", ty.Bool, mustParseTerm(t, "true"))))
	assert.Equal(t,
		plain.Alias("Op", ty.NewFnType(ty.Bool, ty.Bool)),
		ansi.Strip(color.Alias("Op", ty.NewFnType(ty.Bool, ty.Bool))))
	assert.Equal(t, "----", ansi.Strip(color.Rule(4)))
}

func TestPrinterNameClassification(t *testing.T) {
	// Spot-check the classifier through the uncolored path: every class
	// renders its text untouched.
	p := &Printer{}
	for _, name := range []string{"x", "Add", "true", "false", "42", "x'", "_tmp"} {
		assert.Equal(t, name, p.Name(name))
	}
	require.True(t, startsUpper("Add"))
	require.False(t, startsUpper("add"))
	require.True(t, allDigits("42"))
	require.False(t, allDigits("4x"))
	require.False(t, allDigits(""))
}
