package solve

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/montecarlo-framework/monty/internal/solver"
)

func NewSolveCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Returns a solved N-Queens board",
		Long: `Solves the N-Queens board exactly by encoding it as a satisfiability
problem. Useful as a cross-check of the estimator: the sizes whose trials
can succeed are exactly the satisfiable ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("board size must be a positive integer, got %d", size)
			}
			return solveBoard(cmd.OutOrStdout(), size)
		},
	}

	cmd.Flags().IntVar(&size, "size", 12, "board size (number of queens)")

	return cmd
}

func solveBoard(out io.Writer, size int) error {
	s, err := solver.New(solver.WithInput(Constraints(size)))
	if err != nil {
		return err
	}

	selection, err := s.Solve(context.Background())
	if err != nil {
		var unsat solver.NotSatisfiable
		if errors.As(err, &unsat) {
			fmt.Fprintf(out, "no solution found for n=%d\n", size)
			return nil
		}
		return err
	}

	board, err := Board(size, selection)
	if err != nil {
		return err
	}
	fmt.Fprint(out, board.String())

	return nil
}
