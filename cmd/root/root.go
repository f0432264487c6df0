package root

import (
	"github.com/spf13/cobra"

	"github.com/montecarlo-framework/monty/cmd/estimate"

	"github.com/montecarlo-framework/monty/cmd/exact"

	"github.com/montecarlo-framework/monty/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monty",
		Short: "Monty estimates backtracking cost with Monte Carlo trials",
		Long: `Monty estimates the cost of backtracking search over the N-Queens
problem by running repeated one-shot randomized descents and reporting
per-trial and aggregate statistics.`,
	}

	// add sub-commands
	rootCmd.AddCommand(estimate.NewEstimateCommand())
	rootCmd.AddCommand(exact.NewExactCommand())
	rootCmd.AddCommand(solve.NewSolveCommand())

	return rootCmd
}
