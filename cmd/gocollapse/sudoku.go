package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocollapse/internal/parallel"
	"github.com/gitrdm/gocollapse/internal/sudoku"
	"github.com/gitrdm/gocollapse/pkg/collapse"
)

var (
	givenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	solvedSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newSudokuCmd() *cobra.Command {
	var (
		file    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sudoku [givens]",
		Short: "Solve Sudoku boards",
		Long: `Solve one or more 9x9 Sudoku boards.

A board is an 81-character givens string read left-to-right, top-to-bottom:
'1'-'9' pins a digit, '.' leaves the cell open. Pass a single board as an
argument, or --file with one board per line to solve a batch concurrently.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case file != "" && len(args) > 0:
				return fmt.Errorf("pass either a givens argument or --file, not both")
			case file != "":
				return solveSudokuFile(file, workers)
			case len(args) == 1:
				return solveSudokuOne(args[0])
			default:
				return fmt.Errorf("need a givens string or --file")
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "solve every board in a file, one givens string per line")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent solves in --file mode (0 = CPU count)")
	return cmd
}

func solveSudokuOne(givens string) error {
	board, err := sudoku.Parse(givens)
	if err != nil {
		return err
	}

	seed := effectiveSeed()
	start := time.Now()
	solver, err := sudoku.Solve(board, seed)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}

	values, ok := solver.State().Values()
	if !ok {
		return fmt.Errorf("solver returned an unsettled board")
	}
	if err := sudoku.Validate(values); err != nil {
		return err
	}

	fmt.Print(renderSudoku(values, board))
	stats := solver.Stats()
	slog.Info("solved",
		"seed", seed,
		"duration", time.Since(start),
		"observations", stats.Observations,
		"backtracks", stats.Backtracks,
		"rounds", stats.Rounds,
	)
	return nil
}

// solveSudokuFile runs every board in the file as an independent job on a
// worker pool. Each job gets its own solver and a distinct seed derived from
// the base seed and its line number, keeping batch runs reproducible.
func solveSudokuFile(path string, workers int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	type result struct {
		line   int
		values []int
		stats  collapse.Stats
		err    error
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	baseSeed := effectiveSeed()
	start := time.Now()

	var (
		mu      sync.Mutex
		results []result
		wg      sync.WaitGroup
	)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		givens := strings.TrimSpace(scanner.Text())
		line++
		if givens == "" || strings.HasPrefix(givens, "#") {
			continue
		}

		n, seed := line, baseSeed+int64(line)
		wg.Add(1)
		err := pool.Submit(context.Background(), func() {
			defer wg.Done()
			res := result{line: n}
			board, err := sudoku.Parse(givens)
			if err == nil {
				var solver *collapse.Solver
				if solver, err = sudoku.Solve(board, seed); err == nil {
					values, _ := solver.State().Values()
					if err = sudoku.Validate(values); err == nil {
						res.values = values
						res.stats = solver.Stats()
					}
				}
			}
			res.err = err
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	wg.Wait()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			slog.Error("board failed", "line", res.line, "err", res.err)
			continue
		}
		slog.Debug("board solved",
			"line", res.line,
			"observations", res.stats.Observations,
			"backtracks", res.stats.Backtracks,
		)
	}

	slog.Info("batch finished",
		"boards", len(results),
		"failed", failed,
		"seed", baseSeed,
		"duration", time.Since(start),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d boards failed", failed, len(results))
	}
	return nil
}

// renderSudoku draws a solved grid with box rules, styling the original
// givens differently from the solver's fills.
func renderSudoku(values []int, givens collapse.Board) string {
	rule := ruleStyle.Render("------+-------+------")
	var out strings.Builder
	for row := 0; row < 9; row++ {
		if row == 3 || row == 6 {
			out.WriteString(rule)
			out.WriteByte('\n')
		}
		for col := 0; col < 9; col++ {
			if col == 3 || col == 6 {
				out.WriteString(ruleStyle.Render("| "))
			}
			i := row*9 + col
			digit := fmt.Sprintf("%d", values[i]+1)
			if !givens[i].IsUnknown() {
				out.WriteString(givenStyle.Render(digit))
			} else {
				out.WriteString(solvedSty.Render(digit))
			}
			if col < 8 {
				out.WriteByte(' ')
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}
