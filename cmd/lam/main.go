package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/vito/lam/pkg/ioctx"
	"github.com/vito/lam/pkg/lam"
)

// Config holds the application configuration
type Config struct {
	Debug   bool
	Verbose bool
	NoStd   bool
	Expr    string
	File    string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "lam [flags] [file]",
		Short: "Typed lambda calculus interpreter",
		Long: `Lam is a small typed lambda calculus: lambda terms extended with
type annotations, literals, and top-level bindings, reduced
symbolically to normal form. Names without definitions stay put, so
programs can be sketched before every piece exists.`,
		Example: `  # Run a script
  lam script.lam

  # Evaluate one expression and exit
  lam -e "Add 1 2"

  # Start the interactive REPL
  lam

  # Trace every reduction step
  lam -v script.lam`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.File = args[0]
			}
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.Expr, "expr", "e", "", "Evaluate an expression and exit")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print every reduction step")
	rootCmd.Flags().BoolVar(&cfg.NoStd, "no-std", false, "Skip loading the standard library")
	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(fmtCmd())

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, lam.RenderError(err, ""))
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	setupLogging(cfg.Debug)

	cwd, _ := os.Getwd()
	configPath, fileCfg, err := lam.FindConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load lam.toml: %v\n", err)
	} else if fileCfg != nil {
		slog.Debug("using config", "path", configPath)
	}
	if fileCfg == nil {
		fileCfg = &lam.Config{}
	}
	fileCfg.ApplyEnv()
	if cfg.NoStd {
		fileCfg.Eval.NoStd = true
	}

	session := lam.NewSession(fileCfg.MaxSteps())
	if !fileCfg.Eval.NoStd {
		if err := session.LoadStdlib(ctx); err != nil {
			return err
		}
	}

	printer := &lam.Printer{Color: colorEnabled(fileCfg)}
	runner := &lam.Runner{
		Session: session,
		Printer: printer,
		Verbose: cfg.Verbose,
	}

	switch {
	case cfg.Expr != "":
		return runner.RunExpr(ctx, cfg.Expr)
	case cfg.File != "":
		return runner.RunFile(ctx, cfg.File)
	default:
		return runREPL(ctx, session, printer, fileCfg, cfg)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// colorEnabled follows the config when it has an opinion and TTY
// detection otherwise.
func colorEnabled(cfg *lam.Config) bool {
	if cfg.REPL.Color != nil {
		return *cfg.REPL.Color
	}
	return term.IsTerminal(os.Stdout.Fd())
}
