package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	// Every cell has exactly 20 peers: 8 row + 8 column + 4 box-only.
	for i := 0; i < Size; i++ {
		peers := Neighbors(i)
		assert.Len(t, peers, 20, "cell %d", i)
		for _, j := range peers {
			assert.NotEqual(t, i, j)
		}
	}

	// Peer lists are stable across calls.
	assert.Equal(t, Neighbors(40), Neighbors(40))
}

func TestParse(t *testing.T) {
	board, err := Parse("1" + repeat('.', 79) + "9")
	require.NoError(t, err)
	require.Len(t, board, Size)

	v, ok := board[0].Value()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	v, ok = board[80].Value()
	require.True(t, ok)
	assert.Equal(t, 8, v)
	assert.True(t, board[40].IsUnknown())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("123")
	assert.Error(t, err)

	_, err = Parse("0" + repeat('.', 80))
	assert.Error(t, err)
}

func TestSolveAndValidate(t *testing.T) {
	board, err := Parse("6.....5.9.7..4..6.4........51.4...37....63.........9....29.8...........2.9.7.13..")
	require.NoError(t, err)

	solver, err := Solve(board, 7)
	require.NoError(t, err)

	values, ok := solver.State().Values()
	require.True(t, ok)
	assert.NoError(t, Validate(values))
}

func TestValidate_CatchesDuplicates(t *testing.T) {
	values := make([]int, Size)
	for i := range values {
		values[i] = i % 9
	}
	// Every row counts 1..9 once, but every column repeats a digit.
	assert.Error(t, Validate(values))
}

func repeat(c byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = c
	}
	return string(out)
}
