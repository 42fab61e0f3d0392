package lam

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DefaultMaxSteps is the reduction budget applied at the driver
// boundary when nothing configures one. Divergent terms are perfectly
// legal in the calculus, so the budget exists to keep interactive use
// responsive, not to make reduction total.
const DefaultMaxSteps = 100000

// Config represents a lam.toml configuration file, with LAM_*
// environment variables layered on top.
type Config struct {
	REPL REPLConfig `toml:"repl"`
	Eval EvalConfig `toml:"eval"`
}

type REPLConfig struct {
	// History is the path of the persisted input history.
	// Empty means $XDG_DATA_HOME/lam/history.
	History string `toml:"history,omitempty"`

	// Color forces styled output on or off. Unset follows TTY detection.
	Color *bool `toml:"color,omitempty"`
}

type EvalConfig struct {
	// MaxSteps bounds reduction passes per statement; 0 disables the
	// bound entirely.
	MaxSteps *int `toml:"max-steps,omitempty"`

	// NoStd skips replaying the standard library into new sessions.
	NoStd bool `toml:"no-std,omitempty"`
}

// LoadConfig loads a lam.toml file from the given path.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}

// FindConfig searches for a lam.toml file starting from dir and walking
// up to parent directories, stopping at a .git boundary. Returns the
// path and the parsed config, or ("", nil, nil) if not found.
func FindConfig(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, "lam.toml")
		if _, err := os.Stat(path); err == nil {
			config, err := LoadConfig(path)
			if err != nil {
				return "", nil, err
			}
			slog.Debug("loaded config", "path", path)
			return path, config, nil
		}

		// Stop at .git boundary
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

// ApplyEnv layers LAM_HISTORY, LAM_NO_COLOR, and LAM_MAX_STEPS over the
// config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LAM_HISTORY"); v != "" {
		c.REPL.History = v
	}
	if v := os.Getenv("LAM_NO_COLOR"); v != "" {
		off := false
		c.REPL.Color = &off
	}
	if v := os.Getenv("LAM_MAX_STEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("ignoring LAM_MAX_STEPS", "value", v, "err", err)
		} else {
			c.Eval.MaxSteps = &n
		}
	}
}

// MaxSteps resolves the effective reduction budget.
func (c *Config) MaxSteps() int {
	if c.Eval.MaxSteps != nil {
		return *c.Eval.MaxSteps
	}
	return DefaultMaxSteps
}

// HistoryPath resolves the REPL history location, respecting
// XDG_DATA_HOME (default ~/.local/share/lam/history).
func (c *Config) HistoryPath() string {
	if c.REPL.History != "" {
		return c.REPL.History
	}
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "/tmp/lam_history" // last resort fallback
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "lam", "history")
}
