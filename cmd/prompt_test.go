package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/zprs/internal/config"
	"github.com/wasabi0522/zprs/internal/ui"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", nil, "❯ "},
		{"command mode", []string{"-k", "vicmd"}, "❮ "},
		{"command mode ignores failure", []string{"-k", "vicmd", "-r", "1"}, "❮ "},
		{"failure in insert mode", []string{"-r", "130"}, "❯ "},
		{"venv prefix", []string{"--venv", "env"}, "|env| ❯ "},
		{"long flags", []string{"--last-return-code", "0", "--keymap", "main"}, "❯ "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"prompt", "--dialect", "plain"}, tt.args...)
			out, err := executeCommand(t, appWithDeps(newDeps(nil)), args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPromptColors(t *testing.T) {
	ui.SetNoColor(false)

	t.Run("success", func(t *testing.T) {
		out, err := executeCommand(t, appWithDeps(newDeps(nil)), "prompt", "-r", "0")
		require.NoError(t, err)
		assert.Equal(t, "%F{#21cf5f}❯%f ", out)
	})

	t.Run("failure", func(t *testing.T) {
		out, err := executeCommand(t, appWithDeps(newDeps(nil)), "prompt", "-r", "1")
		require.NoError(t, err)
		assert.Equal(t, "%F{#ff004b}❯%f ", out)
	})

	t.Run("command mode", func(t *testing.T) {
		out, err := executeCommand(t, appWithDeps(newDeps(nil)), "prompt", "-r", "1", "-k", "vicmd")
		require.NoError(t, err)
		assert.Equal(t, "%F{#21cf5f}❮%f ", out)
	})

	t.Run("venv", func(t *testing.T) {
		out, err := executeCommand(t, appWithDeps(newDeps(nil)), "prompt", "--venv", "py3")
		require.NoError(t, err)
		assert.Equal(t, "%F{11}|py3|%f %F{#21cf5f}❯%f ", out)
	})

	t.Run("ansi", func(t *testing.T) {
		out, err := executeCommand(t, appWithDeps(newDeps(nil)), "prompt", "--dialect", "ansi", "-r", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "38;2;255;0;75")
		assert.Contains(t, out, "❯")
	})

	t.Run("configured symbols", func(t *testing.T) {
		cfg := config.Default()
		cfg.Prompt.InsertSymbol = "$"
		out, err := executeCommand(t, appWithConfig(cfg, newDeps(nil)), "prompt", "--dialect", "plain")
		require.NoError(t, err)
		assert.Equal(t, "$ ", out)
	})
}

func TestPromptWithoutWorkingDirectory(t *testing.T) {
	app := &App{
		resolveDeps:   func() (*deps, error) { return nil, errors.New("reading working directory: stale handle") },
		resolveConfig: func() (*config.Config, error) { return config.Default(), nil },
	}
	out, err := executeCommand(t, app, "prompt", "--dialect", "plain", "-r", "1")
	require.NoError(t, err)
	assert.Equal(t, "❯ ", out)
}

func TestPromptConfigFallback(t *testing.T) {
	out, err := executeCommand(t, appWithDepsError(errors.New("broken config")), "prompt", "--dialect", "plain", "-k", "vicmd")
	require.NoError(t, err)
	assert.Equal(t, "❮ ", out)
}
