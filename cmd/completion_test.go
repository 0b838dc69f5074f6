package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCommand(t *testing.T) {
	app := NewApp()
	rootCmd := app.BuildRootCmd()
	// Find the completion subcommand
	var compCmd *cobra.Command
	for _, c := range rootCmd.Commands() {
		if c.Use == "completion <bash|zsh|fish>" {
			compCmd = c
			break
		}
	}
	require.NotNil(t, compCmd, "completion command not found")

	t.Run("bash", func(t *testing.T) {
		var buf bytes.Buffer
		compCmd.SetOut(&buf)
		err := compCmd.RunE(compCmd, []string{"bash"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "bash")
	})

	t.Run("zsh", func(t *testing.T) {
		var buf bytes.Buffer
		compCmd.SetOut(&buf)
		err := compCmd.RunE(compCmd, []string{"zsh"})
		require.NoError(t, err)
		assert.NotEmpty(t, buf.String())
	})

	t.Run("fish", func(t *testing.T) {
		var buf bytes.Buffer
		compCmd.SetOut(&buf)
		err := compCmd.RunE(compCmd, []string{"fish"})
		require.NoError(t, err)
		assert.NotEmpty(t, buf.String())
	})

	t.Run("unsupported shell", func(t *testing.T) {
		err := compCmd.RunE(compCmd, []string{"powershell"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported shell")
	})
}

func TestCompleteDialects(t *testing.T) {
	got, directive := completeDialects(nil, nil, "")
	assert.Equal(t, []string{"zsh", "ansi", "plain"}, got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	got, _ = completeDialects(nil, nil, "a")
	assert.Equal(t, []string{"ansi"}, got)
}

func TestRootCmd(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		out, err := executeCommand(t, NewApp(), "--version")
		require.NoError(t, err)
		assert.Equal(t, "zprs version dev\n", out)
	})

	t.Run("help lists subcommands", func(t *testing.T) {
		out, err := executeCommand(t, NewApp(), "help")
		require.NoError(t, err)
		for _, name := range []string{"precmd", "prompt", "status", "init", "hook", "completion"} {
			assert.Contains(t, out, name)
		}
	})
}
