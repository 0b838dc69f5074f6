package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "zprs",
		Short:        "Fast git-aware zsh prompt",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("zprs version %s\n", version))
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.dialect, "dialect", "", "Color encoding: zsh, ansi or plain (overrides config)")
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", completeDialects)

	// Register subcommands
	rootCmd.AddCommand(a.precmdCmd())
	rootCmd.AddCommand(a.promptCmd())
	rootCmd.AddCommand(a.statusCmd())
	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(a.hookCmd())
	rootCmd.AddCommand(completionCmd(rootCmd))

	return rootCmd
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
