package lam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lam.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[repl]
history = "/tmp/test-history"
color = false

[eval]
max-steps = 500
no-std = true
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-history", cfg.REPL.History)
	require.NotNil(t, cfg.REPL.Color)
	assert.False(t, *cfg.REPL.Color)
	assert.Equal(t, 500, cfg.MaxSteps())
	assert.True(t, cfg.Eval.NoStd)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lam.toml")
	require.NoError(t, os.WriteFile(path, []byte("[repl"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestFindConfig(t *testing.T) {
	t.Run("walks up to a parent", func(t *testing.T) {
		root := t.TempDir()
		sub := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0755))
		path := filepath.Join(root, "lam.toml")
		require.NoError(t, os.WriteFile(path, []byte("[eval]\nmax-steps = 7\n"), 0644))

		found, cfg, err := FindConfig(sub)
		require.NoError(t, err)
		assert.Equal(t, path, found)
		require.NotNil(t, cfg)
		assert.Equal(t, 7, cfg.MaxSteps())
	})

	t.Run("stops at a git boundary", func(t *testing.T) {
		root := t.TempDir()
		repo := filepath.Join(root, "repo")
		sub := filepath.Join(repo, "src")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
		require.NoError(t, os.MkdirAll(sub, 0755))
		// A config above the repository must not leak in.
		require.NoError(t, os.WriteFile(filepath.Join(root, "lam.toml"), nil, 0644))

		found, cfg, err := FindConfig(sub)
		require.NoError(t, err)
		assert.Empty(t, found)
		assert.Nil(t, cfg)
	})

	t.Run("repository root config is found", func(t *testing.T) {
		repo := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
		path := filepath.Join(repo, "lam.toml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		found, cfg, err := FindConfig(repo)
		require.NoError(t, err)
		assert.Equal(t, path, found)
		assert.NotNil(t, cfg)
	})
}

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("LAM_HISTORY", "/tmp/env-history")
	t.Setenv("LAM_NO_COLOR", "1")
	t.Setenv("LAM_MAX_STEPS", "42")

	steps := 500
	cfg := &Config{Eval: EvalConfig{MaxSteps: &steps}}
	cfg.ApplyEnv()

	assert.Equal(t, "/tmp/env-history", cfg.REPL.History)
	require.NotNil(t, cfg.REPL.Color)
	assert.False(t, *cfg.REPL.Color)
	// The environment wins over the file.
	assert.Equal(t, 42, cfg.MaxSteps())
}

func TestConfigApplyEnvBadMaxSteps(t *testing.T) {
	t.Setenv("LAM_MAX_STEPS", "a lot")

	cfg := &Config{}
	cfg.ApplyEnv()
	assert.Equal(t, DefaultMaxSteps, cfg.MaxSteps())
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultMaxSteps, cfg.MaxSteps())

	t.Run("history respects XDG_DATA_HOME", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "lam", "history"), cfg.HistoryPath())
	})

	t.Run("history falls back to the home directory", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "lam", "history"), cfg.HistoryPath())
	})

	t.Run("explicit history wins", func(t *testing.T) {
		custom := &Config{REPL: REPLConfig{History: "/somewhere/else"}}
		assert.Equal(t, "/somewhere/else", custom.HistoryPath())
	})
}
