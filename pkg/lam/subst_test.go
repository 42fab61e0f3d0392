package lam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeVars(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "bare variable", term: "x", want: []string{"x"}},
		{name: "identity", term: "λx. x", want: nil},
		{name: "open body", term: "λx. x y", want: []string{"y"}},
		{name: "application", term: "f (λy. y x)", want: []string{"f", "x"}},
		{name: "literals have no free names", term: "2 true", want: nil},
		{name: "annotated binder", term: "λ(x:Bool). y", want: []string{"y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeVars(mustParseTerm(t, tt.term))
			assert.Equal(t, NewNameSet(tt.want...), got)
		})
	}
}

func TestSubstitute(t *testing.T) {
	t.Run("replaces every free occurrence", func(t *testing.T) {
		got := Substitute(mustParseTerm(t, "x (y x)"), "x", mustParseTerm(t, "λz. z"))
		assert.True(t, EqualTerms(mustParseTerm(t, "(λz. z) (y (λz. z))"), got), "got %s", got)
	})

	t.Run("shadowing binder stops substitution", func(t *testing.T) {
		term := mustParseTerm(t, "λx. x")
		got := Substitute(term, "x", mustParseTerm(t, "y"))
		assert.Same(t, term, got)
	})

	t.Run("untouched terms come back unchanged", func(t *testing.T) {
		term := mustParseTerm(t, "λa. b c")
		got := Substitute(term, "x", mustParseTerm(t, "y"))
		assert.Same(t, term, got)
	})

	t.Run("renames a binder that would capture", func(t *testing.T) {
		// Substituting x := λz. y under λy must rename the binder: the
		// replacement's y is free and has to stay that way.
		got := Substitute(mustParseTerm(t, "λy. x y"), "x", mustParseTerm(t, "λz. y"))

		abs, ok := got.(*Abstraction)
		require.True(t, ok, "got %s", got)
		assert.Equal(t, "y'", abs.Param)
		assert.Equal(t, NewNameSet("y"), FreeVars(got))
		assert.True(t, AlphaEq(mustParseTerm(t, "λw. (λz. y) w"), got), "got %s", got)
	})

	t.Run("fresh name skips names already in the body", func(t *testing.T) {
		// Renaming the binder to y' would conflate it with the distinct
		// y' the body already mentions, so freshening lands on y''.
		got := Substitute(mustParseTerm(t, "λy. x y y'"), "x", mustParseTerm(t, "y"))

		abs, ok := got.(*Abstraction)
		require.True(t, ok, "got %s", got)
		assert.Equal(t, "y''", abs.Param)
		assert.True(t, EqualTerms(mustParseTerm(t, "λy''. y y'' y'"), got), "got %s", got)
	})

	t.Run("fresh name skips inner binders", func(t *testing.T) {
		got := Substitute(mustParseTerm(t, "λy. λy'. x"), "x", mustParseTerm(t, "y"))
		assert.True(t, EqualTerms(mustParseTerm(t, "λy''. λy'. y"), got), "got %s", got)
	})

	t.Run("inner shadows keep their own binding structure", func(t *testing.T) {
		// Both binders named y collide with the replacement and get
		// freshened, but the inner body still refers to the inner binder.
		got := Substitute(mustParseTerm(t, "λy. (λy. y) a"), "a", mustParseTerm(t, "y"))
		assert.True(t, EqualTerms(mustParseTerm(t, "λy'. (λy''. y'') y"), got), "got %s", got)
		assert.True(t, AlphaEq(mustParseTerm(t, "λb. (λc. c) y"), got), "got %s", got)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first := Substitute(mustParseTerm(t, "λy. x y"), "x", mustParseTerm(t, "λz. y"))
		second := Substitute(mustParseTerm(t, "λy. x y"), "x", mustParseTerm(t, "λz. y"))
		assert.True(t, EqualTerms(first, second), "%s vs %s", first, second)
	})
}
