package lam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/lam/pkg/ty"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "annotated identity", term: "λ(x:Bool). x", want: "Bool -> Bool"},
		{name: "nat literal", term: "1", want: "Nat"},
		{name: "bool literal", term: "true", want: "Bool"},
		{name: "constant function", term: "λ(x:Bool). 1", want: "Bool -> Nat"},
		{
			name: "higher order",
			term: "λ(f:Bool -> Nat). λ(x:Bool). f x",
			want: "(Bool -> Nat) -> Bool -> Nat",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(mustParseTerm(t, tt.term), NewEnv())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestInferErrors(t *testing.T) {
	t.Run("unannotated abstraction", func(t *testing.T) {
		_, err := Infer(mustParseTerm(t, "λx. x"), NewEnv())
		var cannotInfer *CannotInferError
		require.ErrorAs(t, err, &cannotInfer)
	})

	t.Run("literal applied as a function", func(t *testing.T) {
		_, err := Infer(mustParseTerm(t, "true 1"), NewEnv())
		var notFn *NotAFunctionError
		require.ErrorAs(t, err, &notFn)
		assert.Equal(t, ty.Bool, notFn.Actual)
	})

	t.Run("unbound name", func(t *testing.T) {
		_, err := Infer(mustParseTerm(t, "missing"), NewEnv())
		var unbound *UnboundError
		require.ErrorAs(t, err, &unbound)
		assert.Equal(t, "missing", unbound.Name)
	})

	t.Run("argument type mismatch", func(t *testing.T) {
		env := NewEnv()
		env.DeclareType("not", ty.NewFnType(ty.Bool, ty.Bool))
		_, err := Infer(mustParseTerm(t, "not 1"), env)
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ty.Bool, mismatch.Expected)
		assert.Equal(t, ty.Nat, mismatch.Actual)
	})
}

func TestInferEnvironmentTypes(t *testing.T) {
	env := NewEnv()
	env.DeclareType("not", ty.NewFnType(ty.Bool, ty.Bool))

	got, err := Infer(mustParseTerm(t, "not true"), env)
	require.NoError(t, err)
	assert.Equal(t, "Bool", got.String())
}

func TestInferHolePropagation(t *testing.T) {
	// A hole-typed head constrains nothing, including its arguments.
	env := NewEnv()
	env.DeclareType("f", ty.Hole)

	got, err := Infer(mustParseTerm(t, "f 1 true"), env)
	require.NoError(t, err)
	assert.Equal(t, ty.Hole, got)
}

func TestInferAliasedFunction(t *testing.T) {
	env := NewEnv()
	env.DefineAlias("Op", ty.NewFnType(ty.Bool, ty.Bool))
	env.DeclareType("f", ty.NamedType("Op"))

	got, err := Infer(mustParseTerm(t, "f true"), env)
	require.NoError(t, err)
	assert.Equal(t, "Bool", got.String())
}

func TestCheck(t *testing.T) {
	t.Run("annotated against matching arrow", func(t *testing.T) {
		err := Check(mustParseTerm(t, "λ(x:Bool). x"), ty.NewFnType(ty.Bool, ty.Bool), NewEnv(), nil)
		require.NoError(t, err)
	})

	t.Run("annotation disagrees with expectation", func(t *testing.T) {
		err := Check(mustParseTerm(t, "λ(x:Nat). x"), ty.NewFnType(ty.Bool, ty.Bool), NewEnv(), nil)
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("unannotated against arrow", func(t *testing.T) {
		err := Check(mustParseTerm(t, "λx. x"), ty.NewFnType(ty.Bool, ty.Bool), NewEnv(), nil)
		require.NoError(t, err)
	})

	t.Run("unannotated body disagrees with codomain", func(t *testing.T) {
		err := Check(mustParseTerm(t, "λx. 1"), ty.NewFnType(ty.Bool, ty.Bool), NewEnv(), nil)
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ty.Bool, mismatch.Expected)
		assert.Equal(t, ty.Nat, mismatch.Actual)
	})

	t.Run("unannotated against hole", func(t *testing.T) {
		// The hole splits into * -> * so the body still gets checked.
		err := Check(mustParseTerm(t, "λx. x"), ty.Hole, NewEnv(), nil)
		require.NoError(t, err)
	})

	t.Run("unannotated against base type", func(t *testing.T) {
		err := Check(mustParseTerm(t, "λx. x"), ty.Bool, NewEnv(), nil)
		var notFn *NotAFunctionError
		require.ErrorAs(t, err, &notFn)
		assert.Equal(t, ty.Bool, notFn.Actual)
	})

	t.Run("alias resolves to an arrow", func(t *testing.T) {
		env := NewEnv()
		env.DefineAlias("Op", ty.NewFnType(ty.Bool, ty.Bool))
		err := Check(mustParseTerm(t, "λx. x"), ty.NamedType("Op"), env, nil)
		require.NoError(t, err)
	})

	t.Run("literal against matching base", func(t *testing.T) {
		require.NoError(t, Check(mustParseTerm(t, "1"), ty.Nat, NewEnv(), nil))
	})

	t.Run("literal against wrong base", func(t *testing.T) {
		err := Check(mustParseTerm(t, "1"), ty.Bool, NewEnv(), nil)
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("anything against a hole", func(t *testing.T) {
		require.NoError(t, Check(mustParseTerm(t, "1"), ty.Hole, NewEnv(), nil))
	})
}
