package estimate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/montecarlo-framework/monty/internal/stats"
	"github.com/montecarlo-framework/monty/internal/trial"
)

func NewEstimateCommand() *cobra.Command {
	var size int
	var seed int64

	cmd := &cobra.Command{
		Use:   "estimate [trials]",
		Short: "Runs randomized descent trials and reports cost statistics",
		Long: `Runs the requested number of Monte Carlo trials. Each trial walks one
randomized descent through the N-Queens placement tree: at every row it
enumerates the columns consistent with the rows above, commits one of them
uniformly at random, and either reaches a full board or dies at the first
row with no consistent column. The per-trial operation counts (node visits
plus constraint checks) are reported individually and summarized.

The trial count is taken from the argument, or prompted for on stdin when
the argument is omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("board size must be a positive integer, got %d", size)
			}
			trials, err := trialCount(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), trials, size, seed)
		},
	}

	cmd.Flags().IntVar(&size, "size", 12, "board size (number of queens)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base seed for per-trial random sources; 0 derives seeds from the wall clock")

	return cmd
}

func trialCount(cmd *cobra.Command, args []string) (int, error) {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		fmt.Fprint(cmd.OutOrStdout(), "Enter number of Monte Carlo trials: ")
		if _, err := fmt.Fscan(cmd.InOrStdin(), &raw); err != nil {
			return 0, fmt.Errorf("error reading trial count: %w", err)
		}
	}

	trials, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid trial count (%s): %w", raw, err)
	}
	if trials < 1 {
		return 0, fmt.Errorf("trial count must be a positive integer, got %d", trials)
	}
	return trials, nil
}

func run(out io.Writer, trials, size int, seed int64) error {
	var seedFn trial.SeedFunc
	if seed != 0 {
		seedFn = trial.FixedSeed(seed)
	}

	fmt.Fprintf(out, "=== Running Monte Carlo Simulation ===\n")
	fmt.Fprintf(out, "Solving %d-Queens problem...\n\n", size)

	experiment := trial.Experiment{
		Runner: trial.Runner{Size: size, Seed: seedFn},
		Trials: trials,
		Observe: func(res trial.Result) {
			solutions := 0
			if res.Solved {
				solutions = 1
			}
			fmt.Fprintf(out, "Trial %d: Solutions: %d - Operations: %d\n", res.Trial, solutions, res.Ops)
		},
	}
	report := experiment.Run()

	total := report.Elapsed.Seconds()
	fmt.Fprintf(out, "\n=== Results ===\n")
	fmt.Fprintf(out, "Total execution time: %.4f seconds\n", total)
	fmt.Fprintf(out, "Average time per trial: %.6f seconds\n", total/float64(trials))

	summary, ok := stats.Summarize(report.Ops())
	if !ok {
		return fmt.Errorf("no trial results to summarize")
	}

	fmt.Fprintf(out, "\nStatistics over %d trials:\n", trials)
	fmt.Fprintf(out, "Solutions found:    %d\n", report.Solved())
	fmt.Fprintf(out, "Minimum operations: %d\n", summary.Min)
	fmt.Fprintf(out, "Maximum operations: %d\n", summary.Max)
	fmt.Fprintf(out, "Mean operations:    %.2f\n", summary.Mean)
	fmt.Fprintf(out, "Median operations:  %.2f\n", summary.Median)
	fmt.Fprintf(out, "Standard deviation: %.2f\n", summary.StdDev)

	var estimates int64
	for _, res := range report.Results {
		estimates += res.NodesEstimate
	}
	fmt.Fprintf(out, "\nEstimated backtracking tree size for n=%d: %.0f nodes (mean over %d sampled paths)\n",
		size, float64(estimates)/float64(trials), trials)

	return nil
}
