package collapse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panSolver builds a rows x cols solver with every cell collapsed to its own
// index, so shifts are easy to read off.
func panSolver(t *testing.T, rows, cols int) *Solver {
	t.Helper()
	size := rows * cols
	board := make(Board, size)
	for i := range board {
		board[i] = NewCollapsedCell(size, i)
	}
	s, err := NewBuilder(size, size, noNeighbors, func([]Neighbor, int) CandidateSet {
		return EmptyCandidateSet(size)
	}).Board(board).RowLength(cols).Seed(1).Build()
	require.NoError(t, err)
	return s
}

// cellValue reads the committed value, or -1 for a fresh Unknown cell.
func cellValue(c Cell) int {
	if v, ok := c.Value(); ok {
		return v
	}
	return -1
}

func boardValues(b Board) []int {
	out := make([]int, len(b))
	for i := range b {
		out[i] = cellValue(b[i])
	}
	return out
}

func TestSolver_PanZeroDistanceIsIdentity(t *testing.T) {
	for _, dir := range []Direction{Left, Right, Up, Down} {
		s := panSolver(t, 2, 3)
		require.NoError(t, s.Pan(dir, 0))
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, boardValues(s.State()), "direction %s", dir)
	}
}

func TestSolver_PanRight(t *testing.T) {
	// Viewport pans right: content shifts left, fresh cells enter on the
	// right edge.
	s := panSolver(t, 2, 3)
	require.NoError(t, s.Pan(Right, 1))
	assert.Equal(t, []int{1, 2, -1, 4, 5, -1}, boardValues(s.State()))
}

func TestSolver_PanLeft(t *testing.T) {
	s := panSolver(t, 2, 3)
	require.NoError(t, s.Pan(Left, 1))
	assert.Equal(t, []int{-1, 0, 1, -1, 3, 4}, boardValues(s.State()))
}

func TestSolver_PanUp(t *testing.T) {
	s := panSolver(t, 3, 2)
	require.NoError(t, s.Pan(Up, 1))
	assert.Equal(t, []int{-1, -1, 0, 1, 2, 3}, boardValues(s.State()))
}

func TestSolver_PanDown(t *testing.T) {
	s := panSolver(t, 3, 2)
	require.NoError(t, s.Pan(Down, 1))
	assert.Equal(t, []int{2, 3, 4, 5, -1, -1}, boardValues(s.State()))
}

func TestSolver_PanRightThenLeftRoundTrip(t *testing.T) {
	// Columns that never read out of bounds are restored exactly; the d
	// leftmost columns legitimately reset to Unknown.
	const rows, cols, d = 2, 4, 2
	s := panSolver(t, rows, cols)
	original := boardValues(s.State())

	require.NoError(t, s.Pan(Right, d))
	require.NoError(t, s.Pan(Left, d))

	after := boardValues(s.State())
	for i := range after {
		if i%cols >= d {
			assert.Equal(t, original[i], after[i], "cell %d must round-trip", i)
		} else {
			assert.Equal(t, -1, after[i], "cell %d is a documented reset", i)
		}
	}
}

func TestSolver_PanWholeRowWidth(t *testing.T) {
	// Shifting by the full row width clears every cell.
	s := panSolver(t, 2, 3)
	require.NoError(t, s.Pan(Right, 3))
	for _, v := range boardValues(s.State()) {
		assert.Equal(t, -1, v)
	}
}

func TestSolver_PanResetsHistory(t *testing.T) {
	s := panSolver(t, 2, 3)
	s.history.Push(s.board.Clone())
	s.history.Push(s.board.Clone())
	require.Equal(t, 2, s.HistoryDepth())

	require.NoError(t, s.Pan(Down, 1))

	// History holds exactly one snapshot of the shifted state.
	assert.Equal(t, 1, s.HistoryDepth())
	snap, ok := s.history.Pop()
	require.True(t, ok)
	assert.Equal(t, boardValues(s.board), boardValues(snap))
}

func TestSolver_PanNegativeDistance(t *testing.T) {
	s := panSolver(t, 2, 3)
	assert.Error(t, s.Pan(Left, -1))
}

func TestSolver_PanThenSolveRefills(t *testing.T) {
	// After panning, re-solving fills the fresh cells under the same
	// constraints; surviving cells keep their committed values.
	const size, states = 9, 3
	s, err := NewBuilder(states, size, ringNeighbors(size), allDifferent(states)).
		RowLength(3).
		Seed(17).
		Build()
	require.NoError(t, err)
	require.NoError(t, s.Solve())

	kept := boardValues(s.State())
	require.NoError(t, s.Pan(Down, 1))
	require.NoError(t, s.Solve())

	after := boardValues(s.State())
	// Rows 0 and 1 now hold what were rows 1 and 2.
	assert.Equal(t, kept[3:9], after[0:6])
	for _, v := range after {
		assert.NotEqual(t, -1, v, "board must be fully collapsed after re-solve")
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}
