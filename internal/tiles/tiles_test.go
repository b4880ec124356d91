package tiles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocollapse/pkg/collapse"
)

func TestDefaultSet(t *testing.T) {
	s := Default()
	assert.Equal(t, 12, s.Len())
	assert.Equal(t, '┼', s.Glyph(6))
	assert.Equal(t, '?', s.Glyph(12))

	cross := s.Tile(6).Edges
	assert.True(t, cross.Left && cross.Right && cross.Up && cross.Down)
	blank := s.Tile(11).Edges
	assert.False(t, blank.Left || blank.Right || blank.Up || blank.Down)
}

func TestNew_RejectsDuplicateGlyphs(t *testing.T) {
	_, err := New([]Tile{{Glyph: 'x'}, {Glyph: 'x'}})
	assert.Error(t, err)
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNeighbors(t *testing.T) {
	nf := Default().Neighbors(3, 2)
	tests := []struct {
		i    int
		want []int
	}{
		{0, []int{1, 3}},
		{1, []int{0, 2, 4}},
		{2, []int{1, 5}},
		{4, []int{3, 5, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nf(tt.i), "neighbors of %d", tt.i)
	}
}

func TestReducer_EdgeMatching(t *testing.T) {
	s := Default()
	reduce := s.Reducer(3)

	// A '─' tile to the left of cell 1 opens rightward, so cell 1 must
	// open leftward: every left-closed tile is forbidden.
	horizontal := 5
	forbidden := reduce([]collapse.Neighbor{
		{Index: 0, Cell: collapse.NewCollapsedCell(s.Len(), horizontal)},
	}, 1)
	for state := 0; state < s.Len(); state++ {
		assert.Equal(t, !s.Tile(state).Edges.Left, forbidden.Has(state),
			"state %d (%c)", state, s.Glyph(state))
	}

	// A blank tile above cell 4 closes downward, so cell 4 must not open
	// upward.
	blank := 11
	forbidden = reduce([]collapse.Neighbor{
		{Index: 1, Cell: collapse.NewCollapsedCell(s.Len(), blank)},
	}, 4)
	for state := 0; state < s.Len(); state++ {
		assert.Equal(t, s.Tile(state).Edges.Up, forbidden.Has(state),
			"state %d (%c)", state, s.Glyph(state))
	}

	// No settled neighbors forbids nothing.
	assert.True(t, reduce(nil, 4).IsEmpty())
}

func TestParseAndRender(t *testing.T) {
	s := Default()
	board, err := s.Parse("┌─┐\n...\n└─┘", 3, 3)
	require.NoError(t, err)
	require.Len(t, board, 9)

	v, ok := board[0].Value()
	require.True(t, ok)
	assert.Equal(t, 10, v) // ┌
	assert.True(t, board[4].IsUnknown())

	rendered := Render3x3(t, s, board)
	assert.Equal(t, "┌─┐", rendered[0])
	assert.Equal(t, "└─┘", rendered[2])
}

// Render3x3 renders and splits a 3-column board, dropping the trailing
// newline.
func Render3x3(t *testing.T, s *Set, b collapse.Board) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(s.Render(b, 3), "\n"), "\n")
}

func TestParse_Errors(t *testing.T) {
	s := Default()

	_, err := s.Parse("┌─", 3, 1)
	assert.Error(t, err, "short input")

	_, err = s.Parse("┌─X", 3, 1)
	assert.Error(t, err, "unknown glyph")
}

func TestLoad(t *testing.T) {
	const doc = `
tiles:
  - glyph: "─"
    left: true
    right: true
  - glyph: "│"
    up: true
    down: true
  - glyph: " "
`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, '─', s.Glyph(0))
	assert.True(t, s.Tile(1).Edges.Down)
	assert.False(t, s.Tile(2).Edges.Left)
}

func TestLoad_RejectsMultiRuneGlyph(t *testing.T) {
	_, err := Load(strings.NewReader("tiles:\n  - glyph: \"ab\"\n"))
	assert.Error(t, err)
}
