package lam

import (
	"context"
)

// Session owns an environment and its reducer for the lifetime of a
// REPL or script run. The zero value is not usable; construct with
// NewSession.
type Session struct {
	Env     *Env
	Reducer *Reducer
}

func NewSession(maxSteps int) *Session {
	env := NewEnv()
	return &Session{
		Env:     env,
		Reducer: &Reducer{Env: env, MaxSteps: maxSteps},
	}
}

// EvalString parses and processes a whole source string, returning one
// result per statement. When reduction is cancelled or blows its budget
// the results accumulated so far come back along with the error.
func (s *Session) EvalString(ctx context.Context, name, source string) ([]*Result, error) {
	stmts, err := ParseProgram(name, source)
	if err != nil {
		return nil, err
	}
	var results []*Result
	for _, stmt := range stmts {
		res, err := ProcessStatement(ctx, stmt, s.Env, s.Reducer)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Reset discards every binding and alias, keeping reducer settings.
func (s *Session) Reset() {
	s.Env = NewEnv()
	s.Reducer.Env = s.Env
}
