package commands

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	jsonOutput bool
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wayfind",
		Short:         "Wayfind - run graph searches from the command line",
		Long:          "Wayfind runs breadth-first, depth-first, uniform-cost, greedy, A*, and bidirectional searches over problems defined in a YAML file, without a server.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/problems.yaml", "problems YAML file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newProblemsCommand())

	return rootCmd
}
