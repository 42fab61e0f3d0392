package lam

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/vito/lam/pkg/ioctx"
)

// ruleWidth is the width of the separator printed between statements in
// verbose traces.
const ruleWidth = 40

// Runner evaluates scripts and expressions and renders their results to
// the context's stdout and stderr. Quiet mode prints only the final
// bare term's normal form; verbose mode echoes every statement, every
// reduction step, and a separator rule between statements.
type Runner struct {
	Session *Session
	Printer *Printer
	Verbose bool
}

func (r *Runner) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	return r.Run(ctx, path, string(src))
}

func (r *Runner) RunExpr(ctx context.Context, expr string) error {
	return r.Run(ctx, "expr", expr)
}

func (r *Runner) Run(ctx context.Context, name, source string) error {
	stdout := ioctx.StdoutFromContext(ctx)
	stderr := ioctx.StderrFromContext(ctx)

	stmts, err := ParseProgram(name, source)
	if err != nil {
		return err
	}

	if r.Verbose {
		prev := r.Session.Reducer.Observer
		r.Session.Reducer.Observer = func(t Term) {
			fmt.Fprintln(stdout, r.Printer.Term(t))
		}
		defer func() { r.Session.Reducer.Observer = prev }()
	}

	var lastBare *Result
	for i, stmt := range stmts {
		if r.Verbose {
			if i > 0 {
				fmt.Fprintln(stdout, r.Printer.Rule(ruleWidth))
			}
			switch n := stmt.(type) {
			case *Assignment:
				fmt.Fprintln(stdout, r.Printer.Assign(n.Name, n.Declared, n.Body))
			case *TypeAlias:
				fmt.Fprintln(stdout, r.Printer.Alias(n.Name, n.Target))
			case Term:
				// Echo the term as written; the observer narrates each
				// step from here.
				fmt.Fprintln(stdout, r.Printer.Term(n))
			}
		}

		res, err := ProcessStatement(ctx, stmt, r.Session.Env, r.Session.Reducer)
		if res != nil {
			if diag := res.Diagnostic(); diag != nil {
				fmt.Fprintln(stderr, RenderError(diag, source))
			}
			if _, bare := stmt.(Term); bare {
				lastBare = res
			}
		}
		if err != nil {
			return err
		}
	}

	if !r.Verbose && lastBare != nil {
		fmt.Fprintln(stdout, r.Printer.Term(lastBare.Term))
	}
	return nil
}
