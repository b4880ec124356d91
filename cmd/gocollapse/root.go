package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagSeed    int64
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gocollapse",
		Short: "Constraint-propagation puzzle solving and grid generation",
		Long: `gocollapse drives the collapse engine, a generalized Wave Function
Collapse solver, over the bundled problem domains.

A fixed seed makes every run reproducible; without one each run derives a
seed from the clock.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = derive from the clock)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSudokuCmd())
	root.AddCommand(newPathCmd())
	return root
}

// effectiveSeed resolves the --seed flag, deriving a clock seed when unset
// so the value can still be logged for later reproduction.
func effectiveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
