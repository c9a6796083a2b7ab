// Package cli provides the command-line interface for aoc25.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc25/internal/cli/commands"
	"github.com/katalvlaran/aoc25/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "aoc25",
		Short: "aoc25 - puzzle solvers",
		Long: `aoc25 solves the daily puzzles from their input files.

The centerpiece is the grid cascade: cells with too few filled neighbors are
marked, cleared together, and the process repeats until nothing changes.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}
			cmd.SetContext(config.NewContext(cmd.Context(), cfg, logger))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./aoc25.yaml)")
	rootCmd.PersistentFlags().String("input-dir", "", "Directory holding dayNN.txt inputs")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json|plain)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Int("threshold", 0, "Cascade removal threshold (0-9)")
	rootCmd.PersistentFlags().Int("connectivity", 0, "Cascade neighborhood (4 or 8)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON, config.OutputPlain}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewSolveCommand())
	rootCmd.AddCommand(commands.NewCascadeCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
