// Package sudoku configures the collapse engine as a 9x9 Sudoku solver:
// peer topology, the all-different constraint, and givens-string parsing.
// State k represents digit k+1.
package sudoku

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocollapse/pkg/collapse"
)

const (
	// States is the number of digits.
	States = 9
	// RowLen is the grid width.
	RowLen = 9
	// Size is the cell count of the full grid.
	Size = 81
)

// Neighbors returns the row, column, and 3x3 box peers of cell i, each peer
// listed once, in a stable order.
func Neighbors(i int) []int {
	row, col := i/RowLen, i%RowLen
	boxRow, boxCol := row/3*3, col/3*3
	out := make([]int, 0, 20)
	add := func(j int) {
		if j == i {
			return
		}
		for _, k := range out {
			if k == j {
				return
			}
		}
		out = append(out, j)
	}
	for k := 0; k < RowLen; k++ {
		add(row*RowLen + k)
		add(k*RowLen + col)
	}
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			add(r*RowLen + c)
		}
	}
	return out
}

// Reducer forbids every digit a settled peer has committed to.
func Reducer(settled []collapse.Neighbor, _ int) collapse.CandidateSet {
	forbidden := collapse.EmptyCandidateSet(States)
	for _, nb := range settled {
		forbidden = forbidden.Union(nb.Cell.Domain())
	}
	return forbidden
}

// Parse converts an 81-character givens string into a board. '.' leaves a
// cell Unknown; '1'-'9' pins a digit.
func Parse(raw string) (collapse.Board, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != Size {
		return nil, fmt.Errorf("givens string has length %d, want %d", len(raw), Size)
	}
	board := make(collapse.Board, 0, Size)
	for i, c := range raw {
		switch {
		case c == '.':
			board = append(board, collapse.NewCell(States))
		case c >= '1' && c <= '9':
			board = append(board, collapse.NewReducedCell(States, int(c-'1')))
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", c, i)
		}
	}
	return board, nil
}

// Solve builds a solver for the board and runs it.
func Solve(board collapse.Board, seed int64) (*collapse.Solver, error) {
	solver, err := collapse.NewBuilder(States, Size, Neighbors, Reducer).
		Board(board).
		Seed(seed).
		Build()
	if err != nil {
		return nil, err
	}
	if err := solver.Solve(); err != nil {
		return nil, err
	}
	return solver, nil
}

// Validate checks that every row, column, and box holds each digit exactly
// once. It reports the first violated group.
func Validate(values []int) error {
	if len(values) != Size {
		return fmt.Errorf("board has %d cells, want %d", len(values), Size)
	}
	check := func(kind string, n int, member func(k int) int) error {
		var seen [States]bool
		for k := 0; k < States; k++ {
			v := values[member(k)]
			if v < 0 || v >= States || seen[v] {
				return fmt.Errorf("%s %d violates all-different", kind, n)
			}
			seen[v] = true
		}
		return nil
	}
	for n := 0; n < 9; n++ {
		row, col, box := n, n, n
		boxHead := box/3*27 + box%3*3
		if err := check("row", n, func(k int) int { return row*9 + k }); err != nil {
			return err
		}
		if err := check("column", n, func(k int) int { return k*9 + col }); err != nil {
			return err
		}
		if err := check("box", n, func(k int) int { return boxHead + k/3*9 + k%3 }); err != nil {
			return err
		}
	}
	return nil
}
