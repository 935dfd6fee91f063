package main

import (
	"github.com/spf13/cobra"
)

type solveFlags struct {
	configPath string
	format     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Find shortest paths on 4-connected grids",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newSolveCmd())
	return rootCmd
}

func newSolveCmd() *cobra.Command {
	flags := &solveFlags{}
	solveCmd := &cobra.Command{
		Use:   "solve [scenario.yaml...]",
		Short: "Solve one or more scenario files",
		Long: `Solve loads each scenario, runs the A* search and prints the path.
A scenario without a path is reported, not treated as an error.
Several scenarios are solved concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, flags)
		},
	}
	solveCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "engine config file (.yaml, .yml or .json)")
	solveCmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text or json")
	solveCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "override the configured log level")
	return solveCmd
}
