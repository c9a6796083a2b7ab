package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc25/cascade"
	"github.com/katalvlaran/aoc25/internal/cli/config"
)

// NewCascadeCommand creates the cascade command.
func NewCascadeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cascade <file|->",
		Short: "Run the removal cascade on a grid file",
		Long: `Parse a grid of '@' (filled) and '.' (empty) cells, report how many
cells are removable now, then remove generation by generation until stable.
Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCascade(cmd, args[0])
		},
	}
}

func readSource(cmd *cobra.Command, src string) (string, error) {
	if src == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(src)
	return string(b), err
}

func runCascade(cmd *cobra.Command, src string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	text, err := readSource(cmd, src)
	if err != nil {
		return fmt.Errorf("read grid: %w", err)
	}
	g, err := cascade.Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s: %w", src, err)
	}

	conn := cfg.Cascade.Conn()
	opts := append(cfg.CascadeOptions(), cascade.WithOnGeneration(func(gen, removed int) {
		logger.Debug("generation", "gen", gen, "removed", removed)
	}))
	report := cascadeReport{
		Source:        src,
		Width:         g.Width(),
		Height:        g.Height(),
		Filled:        g.Filled(),
		Eligible:      cascade.CountEligible(g, opts...),
		RegionsBefore: len(cascade.Regions(g, conn)),
	}
	res := cascade.Simulate(g, opts...)
	report.Removed = res.Removed
	report.Generations = res.Generations
	if report.Generations == nil {
		report.Generations = []int{}
	}
	report.Remaining = g.Filled()
	report.RegionsAfter = len(cascade.Regions(g, conn))
	logger.Info("cascade complete", "removed", res.Removed, "generations", len(res.Generations))

	return renderCascade(cmd.OutOrStdout(), cfg.Output, report)
}
