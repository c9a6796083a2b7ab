package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc25/internal/cli/config"
	"github.com/katalvlaran/aoc25/internal/solver"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve puzzles from their input files",
		Long: `Solve one or more days, reading dayNN.txt from the input directory.
With no arguments every registered day is solved. Days run concurrently.`,
		Example: `  # Solve every day
  aoc25 solve

  # Solve day 4 with a custom input directory, as JSON
  aoc25 solve 4 --input-dir ./puzzles -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]int, 0, len(args))
			for _, a := range args {
				d, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid day %q: %w", a, err)
				}
				days = append(days, d)
			}
			return runSolve(cmd, days)
		},
	}
}

func runSolve(cmd *cobra.Command, days []int) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	r := &solver.Runner{
		Puzzles: solver.Registry(cfg.CascadeOptions()...),
		Load:    solver.FileLoader(cfg.InputDir),
		Logger:  logger,
	}
	logger.Debug("solving", "days", days, "input_dir", cfg.InputDir)
	answers, err := r.Solve(cmd.Context(), days)
	if err != nil {
		return err
	}
	return renderAnswers(cmd.OutOrStdout(), cfg.Output, answers)
}
