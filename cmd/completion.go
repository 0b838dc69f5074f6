package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/zprs/internal/ui"
)

func completionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion <bash|zsh|fish>",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// completeDialects lists the --dialect values matching the typed prefix.
func completeDialects(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, d := range ui.Dialects {
		if strings.HasPrefix(string(d), toComplete) {
			out = append(out, string(d))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
