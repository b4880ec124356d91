package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocollapse/internal/tiles"
	"github.com/gitrdm/gocollapse/pkg/collapse"
)

var pipeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

func newPathCmd() *cobra.Command {
	var (
		width    int
		height   int
		frames   int
		panRows  int
		tileFile string
		delay    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Generate a scrolling field of connected pipe tiles",
		Long: `Generate a grid of pipe tiles whose edges all connect, then scroll it:
each frame pans the window down and solves the freshly exposed rows, so the
field extends forever while staying consistent with what was already drawn.

The built-in tile set is the twelve box-drawing pipe glyphs; --tiles loads a
custom set from a YAML file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("width and height must be positive")
			}
			if panRows <= 0 || panRows > height {
				return fmt.Errorf("pan must be between 1 and height")
			}

			set := tiles.Default()
			if tileFile != "" {
				loaded, err := tiles.LoadFile(tileFile)
				if err != nil {
					return err
				}
				set = loaded
			}

			return runPath(cmd, set, width, height, frames, panRows, delay)
		},
	}

	cmd.Flags().IntVar(&width, "width", 69, "grid width in tiles")
	cmd.Flags().IntVar(&height, "height", 16, "grid height in tiles")
	cmd.Flags().IntVar(&frames, "frames", 8, "scroll frames after the initial grid (0 = no scrolling)")
	cmd.Flags().IntVar(&panRows, "pan", 8, "rows to scroll per frame")
	cmd.Flags().StringVar(&tileFile, "tiles", "", "YAML tile set file (default: built-in pipes)")
	cmd.Flags().DurationVar(&delay, "delay", 100*time.Millisecond, "minimum time per frame")
	return cmd
}

func runPath(cmd *cobra.Command, set *tiles.Set, width, height, frames, panRows int, delay time.Duration) error {
	size := width * height
	seed := effectiveSeed()

	solver, err := collapse.NewBuilder(set.Len(), size, set.Neighbors(width, height), set.Reducer(width)).
		RowLength(width).
		Seed(seed).
		Build()
	if err != nil {
		return err
	}

	start := time.Now()
	if err := solver.Solve(); err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	printPipes(cmd, set, solver.State(), width)

	for frame := 0; frame < frames; frame++ {
		frameStart := time.Now()
		if err := solver.Pan(collapse.Down, panRows); err != nil {
			return err
		}
		if err := solver.Solve(); err != nil {
			return fmt.Errorf("frame %d, seed %d: %w", frame, seed, err)
		}

		// Only the rows the pan exposed are new; print just those so the
		// output reads as one continuous field.
		board := solver.State()
		printPipes(cmd, set, board[width*(height-panRows):], width)

		if remaining := delay - time.Since(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}
	}

	stats := solver.Stats()
	slog.Info("field generated",
		"seed", seed,
		"frames", frames,
		"duration", time.Since(start),
		"observations", stats.Observations,
		"backtracks", stats.Backtracks,
	)
	return nil
}

func printPipes(cmd *cobra.Command, set *tiles.Set, board collapse.Board, width int) {
	for _, line := range strings.Split(strings.TrimRight(set.Render(board, width), "\n"), "\n") {
		fmt.Fprintln(cmd.OutOrStdout(), pipeStyle.Render(line))
	}
}
