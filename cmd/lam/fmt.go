package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vito/lam/pkg/lam"
	"golang.org/x/sync/errgroup"
)

func fmtCmd() *cobra.Command {
	var (
		write bool
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [flags] [path...]",
		Short: "Format lam source files",
		Long: `Format lam source files into canonical style: one statement per
line, semicolon-terminated, with standing comments preserved.

By default, fmt prints the formatted source to stdout.
Use -w to write the result back to the source file.
Use -l to list files whose formatting differs.`,
		Example: `  # Format a file and print to stdout
  lam fmt script.lam

  # Format files in place
  lam fmt -w *.lam

  # List files that need formatting
  lam fmt -l ./examples`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args, write, list)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result to source file instead of stdout")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List files whose formatting differs")

	return cmd
}

type fmtResult struct {
	path      string
	formatted string
	changed   bool
}

func runFmt(paths []string, write, list bool) error {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("accessing %s: %w", path, err)
		}
		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".lam") {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			files = append(files, path)
		}
	}

	// Format every file concurrently, then report in input order.
	results := make([]fmtResult, len(files))
	var eg errgroup.Group
	for i, file := range files {
		eg.Go(func() error {
			source, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			formatted, err := lam.FormatSource(file, string(source))
			if err != nil {
				return fmt.Errorf("formatting %s: %w", file, err)
			}
			results[i] = fmtResult{
				path:      file,
				formatted: formatted,
				changed:   formatted != string(source),
			}
			if write && results[i].changed {
				if err := os.WriteFile(file, []byte(formatted), 0644); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		switch {
		case list:
			if res.changed {
				fmt.Println(res.path)
			}
		case !write:
			fmt.Print(res.formatted)
		}
	}
	return nil
}
