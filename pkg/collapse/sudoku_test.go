package collapse_test

// Scenario test: the engine configured as a 9x9 Sudoku solver. Parsing and
// validation live here, not in the engine; they are exactly what a consumer
// supplies.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocollapse/pkg/collapse"
)

const (
	sudokuStates = 9
	sudokuSize   = 81
)

// sudokuGivens uses '.' for unknown cells and '1'-'9' for givens; state k
// represents digit k+1.
const sudokuGivens = "6.....5.9.7..4..6.4........51.4...37....63.........9....29.8...........2.9.7.13.."

// sudokuNeighbors returns the row, column, and 3x3 box peers of a cell.
func sudokuNeighbors(i int) []int {
	row, col := i/9, i%9
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
	for k := 0; k < 9; k++ {
		add(row*9 + k)
		add(k*9 + col)
	}
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			add(r*9 + c)
		}
	}
	return out
}

// sudokuReducer forbids every digit already committed by a settled peer.
func sudokuReducer(settled []collapse.Neighbor, _ int) collapse.CandidateSet {
	forbidden := collapse.EmptyCandidateSet(sudokuStates)
	for _, nb := range settled {
		forbidden = forbidden.Union(nb.Cell.Domain())
	}
	return forbidden
}

func parseSudoku(t *testing.T, givens string) collapse.Board {
	t.Helper()
	require.Len(t, givens, sudokuSize)
	board := make(collapse.Board, 0, sudokuSize)
	for _, c := range givens {
		switch {
		case c == '.':
			board = append(board, collapse.NewCell(sudokuStates))
		case c >= '1' && c <= '9':
			board = append(board, collapse.NewReducedCell(sudokuStates, int(c-'1')))
		default:
			t.Fatalf("invalid givens character %q", c)
		}
	}
	return board
}

// validateSudoku asserts every row, column, and box holds each digit once.
func validateSudoku(t *testing.T, values []int) {
	t.Helper()
	groups := map[string][]int{}
	for i, v := range values {
		row, col := i/9, i%9
		box := row/3*3 + col/3
		groups[key("row", row)] = append(groups[key("row", row)], v)
		groups[key("col", col)] = append(groups[key("col", col)], v)
		groups[key("box", box)] = append(groups[key("box", box)], v)
	}
	for name, members := range groups {
		require.Len(t, members, 9, name)
		seen := make(map[int]bool, 9)
		for _, v := range members {
			assert.False(t, seen[v], "%s repeats digit %d", name, v+1)
			seen[v] = true
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 9)
		}
	}
}

func key(kind string, i int) string {
	return kind + string(rune('0'+i))
}

func TestSudokuScenario(t *testing.T) {
	board := parseSudoku(t, sudokuGivens)
	solver, err := collapse.NewBuilder(sudokuStates, sudokuSize, sudokuNeighbors, sudokuReducer).
		Board(board).
		Seed(5).
		Build()
	require.NoError(t, err)

	require.NoError(t, solver.Solve())

	values, ok := solver.State().Values()
	require.True(t, ok, "board must be fully collapsed")
	validateSudoku(t, values)

	// Givens survive in the solution.
	for i, c := range sudokuGivens {
		if c != '.' {
			assert.Equal(t, int(c-'1'), values[i], "given at cell %d was overwritten", i)
		}
	}
}

func TestSudokuScenario_Determinism(t *testing.T) {
	solveWith := func(seed int64) []int {
		solver, err := collapse.NewBuilder(sudokuStates, sudokuSize, sudokuNeighbors, sudokuReducer).
			Board(parseSudoku(t, sudokuGivens)).
			Seed(seed).
			Build()
		require.NoError(t, err)
		require.NoError(t, solver.Solve())
		values, ok := solver.State().Values()
		require.True(t, ok)
		return values
	}

	assert.Equal(t, solveWith(123), solveWith(123))
}
