package cmd

import (
	_ "embed"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
)

//go:embed templates/hook.zsh.tmpl
var zshHookTemplate string

var hookTemplates = map[string]*template.Template{
	"zsh": template.Must(template.New("zsh").Parse(zshHookTemplate)),
}

func (a *App) hookCmd() *cobra.Command {
	var bin string
	cmd := &cobra.Command{
		Use:       "hook <zsh>",
		Short:     "Print the shell integration snippet",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, ok := hookTemplates[args[0]]
			if !ok {
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
			return tmpl.Execute(cmd.OutOrStdout(), struct{ Bin string }{Bin: bin})
		},
	}
	cmd.Flags().StringVar(&bin, "bin", "zprs", "Command the hook invokes")
	return cmd
}
