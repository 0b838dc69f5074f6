package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/zprs/internal/glyph"
	"github.com/wasabi0522/zprs/internal/ui"
)

// defaultKeymap is the zsh main keymap name outside vi command mode.
const defaultKeymap = "US"

type promptOpts struct {
	exitCode string
	keymap   string
	venv     string
}

func (a *App) promptCmd() *cobra.Command {
	var opts promptOpts
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt glyph for the current editing mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrompt(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.exitCode, "last-return-code", "r", glyph.SuccessCode, "Exit status of the previous command")
	cmd.Flags().StringVarP(&opts.keymap, "keymap", "k", defaultKeymap, "Current zle keymap")
	cmd.Flags().StringVar(&opts.venv, "venv", "", "Active virtual environment name")
	return cmd
}

func (a *App) runPrompt(cmd *cobra.Command, opts promptOpts) error {
	cfg := a.config()
	p, pal, err := a.style(cfg)
	if err != nil {
		return err
	}

	var b strings.Builder
	if opts.venv != "" {
		b.WriteString(p.Paint("|"+opts.venv+"|", pal.Style(ui.KindVenv)))
		b.WriteByte(' ')
	}
	g := glyph.Select(opts.keymap, opts.exitCode, cfg.GlyphOptions())
	b.WriteString(p.Paint(g.Symbol, pal.Style(g.Kind)))
	b.WriteByte(' ')

	// best-effort: stdout write failure is non-actionable
	_, _ = fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}
