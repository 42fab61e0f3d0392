package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/kr/pretty"
	"github.com/peterh/liner"
	"github.com/samber/lo"
	"github.com/vito/lam/pkg/lam"
)

const (
	promptMain = "> "
	promptCont = "... "
)

var pauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

const replHelp = `Commands:
  :q, :quit     exit the session
  :cls, :clear  clear the screen
  :env          show bindings and aliases in definition order
  :env clear    reset the environment
  :std          (re)load the standard library
  :load FILE    replay a file into the session
  :dbg STMT     step through a statement's reduction
  :help         show this help
`

type repl struct {
	session *lam.Session
	printer *lam.Printer
	debug   bool
	ln      *liner.State
}

func runREPL(ctx context.Context, session *lam.Session, printer *lam.Printer, fileCfg *lam.Config, appCfg Config) error {
	fmt.Println("lam, a typed lambda calculus (:help for commands)")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := fileCfg.HistoryPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := &repl{
		session: session,
		printer: printer,
		debug:   appCfg.Debug,
		ln:      ln,
	}

	for {
		code, ok := r.readStatement()
		if !ok { // Ctrl+D
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			ln.AppendHistory(trimmed)
			if exit := r.command(ctx, trimmed); exit {
				break
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		r.eval(ctx, code, nil)
	}

	// Persist history (best-effort)
	if err := os.MkdirAll(filepath.Dir(histPath), 0755); err == nil {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return nil
}

// readStatement accumulates lines until the parser stops reporting the
// input as incomplete, so an unclosed paren or a dangling binder rolls
// over into a continuation prompt.
func (r *repl) readStatement() (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := r.ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C abandons the current input; start over.
			fmt.Println()
			return "", true
		}
		b.WriteString(line)
		code := b.String()
		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			return code, true
		}
		if _, err := lam.ParseProgram("repl", code); errors.Is(err, lam.ErrIncomplete) {
			b.WriteString("\n")
			continue
		}
		return code, true
	}
}

// eval runs statements against the session and renders each result:
// assignments and aliases echo themselves, bare terms print their
// normal form, and typing diagnostics land above the result without
// stopping it.
func (r *repl) eval(ctx context.Context, code string, observer func(lam.Term)) {
	prev := r.session.Reducer.Observer
	r.session.Reducer.Observer = observer
	defer func() { r.session.Reducer.Observer = prev }()

	results, err := r.session.EvalString(ctx, "repl", code)
	for _, res := range results {
		if diag := res.Diagnostic(); diag != nil {
			fmt.Println(lam.RenderError(diag, code))
		}
		switch n := res.Stmt.(type) {
		case *lam.Assignment:
			fmt.Println(r.printer.Assign(n.Name, n.Declared, n.Body))
		case *lam.TypeAlias:
			fmt.Println(r.printer.Alias(n.Name, n.Target))
		default:
			fmt.Println(r.printer.Term(res.Term))
		}
	}
	if err != nil {
		fmt.Println(lam.RenderError(err, code))
	}
}

// command handles a :-prefixed REPL command, returning true to exit.
func (r *repl) command(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]

	switch cmd {
	case ":q", ":quit":
		return true

	case ":cls", ":clear":
		fmt.Print("\x1b[2J\x1b[H") // clear screen, home

	case ":env":
		if len(fields) > 1 && fields[1] == "clear" {
			r.session.Reset()
			return false
		}
		r.showEnv()

	case ":std":
		if err := r.session.LoadStdlib(ctx); err != nil {
			fmt.Println(lam.RenderError(err, ""))
		} else {
			fmt.Println("std loaded")
		}

	case ":load":
		if len(fields) < 2 {
			fmt.Println("usage: :load <file>")
			return false
		}
		runner := &lam.Runner{Session: r.session, Printer: r.printer}
		if err := runner.RunFile(ctx, fields[1]); err != nil {
			fmt.Println(lam.RenderError(err, ""))
		}

	case ":dbg":
		stmt := strings.TrimSpace(strings.TrimPrefix(line, ":dbg"))
		if stmt == "" {
			fmt.Println("usage: :dbg <statement>")
			return false
		}
		if r.debug {
			if stmts, err := lam.ParseProgram("repl", stmt); err == nil {
				fmt.Printf("%# v\n", pretty.Formatter(stmts))
			}
		}
		r.eval(ctx, stmt, func(t lam.Term) {
			fmt.Println(r.printer.Term(t))
			r.pause("Paused: Enter to step")
		})

	case ":help":
		fmt.Print(replHelp)

	default:
		fmt.Printf("Unknown command: %s, try :help\n", cmd)
	}
	return false
}

// pause blocks until Enter, then erases its own marker line.
func (r *repl) pause(msg string) {
	fmt.Print(pauseStyle.Render("<" + msg + ">"))
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	fmt.Print("\x1b[1A\x1b[2K") // up one line, clear it
}

// showEnv lists bindings in definition order with names in an aligned
// column, then the type aliases.
func (r *repl) showEnv() {
	bindings := r.session.Env.Bindings()
	names := lo.Map(bindings, func(b lam.Binding, _ int) string {
		return r.printer.Name(b.Name)
	})
	widths := lo.Map(names, func(s string, _ int) int {
		return ansi.StringWidth(s)
	})
	width := 0
	if len(widths) > 0 {
		width = lo.Max(widths)
	}
	for i, b := range bindings {
		var sb strings.Builder
		sb.WriteString(names[i])
		sb.WriteString(strings.Repeat(" ", width-widths[i]))
		if b.Type != nil {
			sb.WriteString(" " + r.printer.Punct(":") + " ")
			sb.WriteString(r.printer.Type(b.Type))
		}
		sb.WriteString(" = ")
		sb.WriteString(r.printer.Term(b.Term))
		sb.WriteString(r.printer.Punct(";"))
		fmt.Println(sb.String())
	}
	for _, a := range r.session.Env.Aliases() {
		fmt.Println(r.printer.Alias(a.Name, a.Target))
	}
}
