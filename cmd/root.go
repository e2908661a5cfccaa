// Package cmd implements the gridsarsa command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version of the gridsarsa command
var Version = "0.1.0"

// DefaultCellSize is the default side length in pixels of a cell in
// saved PNG images
const DefaultCellSize int = 64

// Execute runs the gridsarsa command, exiting with a non-zero status
// on error
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "gridsarsa",
		Short: "Tabular SARSA on a small deterministic gridworld",
		Long: `gridsarsa trains a greedy tabular SARSA agent on a 4 x 3 gridworld
with a wall, a trap, and a goal.

Experiment settings are read from, in increasing order of precedence,
the built-in defaults, a JSON config file, GRIDSARSA_* environment
variables (optionally loaded from a .env file), and command line flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if envFile != "" {
				loadDotEnv(envFile)
			} else {
				loadDotEnv()
			}
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "",
		"file to load environment variables from (default .env)")

	root.AddCommand(newRunCmd(), newRenderCmd())
	return root
}
