package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/zprs/internal/pathfmt"
	"github.com/wasabi0522/zprs/internal/status"
	"github.com/wasabi0522/zprs/internal/ui"
)

// statusView is the debug view of one prompt computation.
type statusView struct {
	Path    string         `json:"path"`
	Report  *status.Report `json:"report"`
	Segment string         `json:"segment"`
	Files   []fileView     `json:"files"`
}

type fileView struct {
	Path  string `json:"path"`
	Flags string `json:"flags"`
}

func (a *App) statusCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show everything the prompt knows about the current repository",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func (a *App) runStatus(cmd *cobra.Command, jsonOutput bool) error {
	cfg := a.config()
	d, err := a.resolveDeps()
	if err != nil {
		return err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return err
	}

	plain := ui.PlainPainter()
	s := a.synthesizer(cfg, d, plain, pal)
	report, ok := s.Collect(d.cwd, true)
	if !ok {
		return fmt.Errorf("not a git repository: %s", d.cwd)
	}

	view := statusView{
		Path:    pathfmt.Truncate(d.cwd, d.home, cfg.PathOptions()),
		Report:  report,
		Segment: status.Render(report.Tokens(true, cfg.StatusSymbols()), plain, pal),
		Files:   []fileView{},
	}
	for _, f := range report.Files {
		view.Files = append(view.Files, fileView{Path: f.Path, Flags: f.Flags.String()})
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), view)
	}
	printTable(cmd.OutOrStdout(), view)
	return nil
}

func printJSON(w io.Writer, v statusView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var zprsTableStyle = table.Style{
	Name: "zprs",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "  ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateHeader:  false,
		SeparateRows:    false,
		SeparateColumns: false,
	},
}

func printTable(w io.Writer, v statusView) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	tw.AppendHeader(table.Row{"FIELD", "VALUE"})
	tw.AppendRow(table.Row{"path", v.Path})

	r := v.Report
	head := "-"
	if r.Head != nil {
		head = r.Head.Name
		if r.Head.Detached {
			head += " (detached)"
		}
	}
	tw.AppendRow(table.Row{"head", head})

	upstream := "-"
	if r.Divergence != nil {
		upstream = fmt.Sprintf("ahead %d, behind %d", r.Divergence.Ahead, r.Divergence.Behind)
	}
	tw.AppendRow(table.Row{"upstream", upstream})

	if r.Tally != nil {
		state := ui.Green("clean")
		if !r.Tally.Clean() {
			state = ui.Yellow("dirty")
		}
		tw.AppendRow(table.Row{"state", state})
		tw.AppendRow(table.Row{"staged", strconv.Itoa(r.Tally.Staged)})
		tw.AppendRow(table.Row{"unstaged", strconv.Itoa(r.Tally.Unstaged)})
		tw.AppendRow(table.Row{"conflicted", strconv.Itoa(r.Tally.Conflicted)})
		tw.AppendRow(table.Row{"untracked", strconv.Itoa(r.Tally.Untracked)})
	} else {
		tw.AppendRow(table.Row{"state", ui.Red("unavailable")})
	}

	op := r.Operation.String()
	if r.Operation != status.OpNone {
		op = ui.Cyan(op)
	}
	tw.AppendRow(table.Row{"operation", op})
	tw.AppendRow(table.Row{"segment", v.Segment})

	tw.SetStyle(zprsTableStyle)
	tw.Render()

	if len(v.Files) == 0 {
		return
	}

	// best-effort: stdout write failure is non-actionable
	_, _ = fmt.Fprintln(w)
	fw := table.NewWriter()
	fw.SetOutputMirror(w)
	fw.AppendHeader(table.Row{"FLAGS", "PATH"})
	for _, f := range v.Files {
		fw.AppendRow(table.Row{f.Flags, f.Path})
	}
	fw.SetStyle(zprsTableStyle)
	fw.Render()
}
