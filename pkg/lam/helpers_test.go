package lam

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustParseTerm parses source containing a single bare term.
func mustParseTerm(t *testing.T, source string) Term {
	t.Helper()
	term, err := ParseTerm("test.lam", source)
	require.NoError(t, err, "parse %q", source)
	return term
}

// newStdSession builds a session with the standard library replayed
// into it.
func newStdSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultMaxSteps)
	require.NoError(t, s.LoadStdlib(context.Background()))
	return s
}
