package lam

import (
	"context"
	_ "embed"

	"github.com/pkg/errors"
)

//go:embed std.lam
var stdlibSource string

// StdlibName labels diagnostics raised while the standard library
// replays.
const StdlibName = "std.lam"

// LoadStdlib replays the embedded standard library into the session.
// The library is expected to replay clean, so a failing annotation
// check in it is a hard error rather than a diagnostic.
func (s *Session) LoadStdlib(ctx context.Context) error {
	results, err := s.EvalString(ctx, StdlibName, stdlibSource)
	if err != nil {
		return errors.Wrap(err, "stdlib replay")
	}
	for _, res := range results {
		if diag := res.Diagnostic(); diag != nil {
			return errors.Wrapf(diag, "stdlib definition %s", res.Stmt)
		}
	}
	return nil
}
