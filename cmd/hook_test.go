package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookCmd(t *testing.T) {
	t.Run("zsh", func(t *testing.T) {
		out, err := executeCommand(t, NewApp(), "hook", "zsh")
		require.NoError(t, err)
		assert.Contains(t, out, "add-zsh-hook precmd _zprs_precmd")
		assert.Contains(t, out, "\n  print -rP -- \"$(zprs precmd --detail)\"\n")
		assert.Contains(t, out, `zprs prompt -r "$_zprs_last_status" -k "$KEYMAP"`)
		assert.Contains(t, out, "zle -N zle-keymap-select")
		assert.NotContains(t, out, "\n  zprs precmd")
	})

	t.Run("custom binary", func(t *testing.T) {
		out, err := executeCommand(t, NewApp(), "hook", "zsh", "--bin", "/opt/bin/zprs")
		require.NoError(t, err)
		assert.Contains(t, out, `print -rP -- "$(/opt/bin/zprs precmd --detail)"`)
		assert.Contains(t, out, `PROMPT='$(/opt/bin/zprs prompt -r`)
	})

	t.Run("unsupported shell", func(t *testing.T) {
		_, err := executeCommand(t, NewApp(), "hook", "fish")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported shell")
	})

	t.Run("requires shell", func(t *testing.T) {
		_, err := executeCommand(t, NewApp(), "hook")
		assert.Error(t, err)
	})
}
