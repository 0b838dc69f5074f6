package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/zprs/internal/config"
	"github.com/wasabi0522/zprs/internal/pathfmt"
	"github.com/wasabi0522/zprs/internal/status"
	"github.com/wasabi0522/zprs/internal/ui"
)

func (a *App) precmdCmd() *cobra.Command {
	var detail bool
	cmd := &cobra.Command{
		Use:   "precmd",
		Short: "Print the directory and repository line drawn above the prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrecmd(cmd, detail)
		},
	}
	cmd.Flags().BoolVar(&detail, "detail", false, "Show divergence, per-category counts and in-progress operations")
	return cmd
}

func (a *App) runPrecmd(cmd *cobra.Command, detail bool) error {
	return a.withSynthesizer(func(cfg *config.Config, d *deps, s *status.Synthesizer, p ui.Painter, pal ui.Palette) error {
		var b strings.Builder
		if cfg.Precmd.Newline {
			b.WriteByte('\n')
		}
		path := pathfmt.Truncate(d.cwd, d.home, cfg.PathOptions())
		b.WriteString(p.Paint(path, pal.Style(ui.KindPath)))

		if seg, ok := s.Synthesize(d.cwd, detail); ok && seg != "" {
			b.WriteByte(' ')
			b.WriteString(seg)
		}

		// best-effort: stdout write failure is non-actionable
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), b.String())
		return nil
	})
}
