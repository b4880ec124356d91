// Package tiles defines connection-edge tile sets for grid generation with
// the collapse engine. A tile set names the states a grid cell can take and
// which of its four edges carry a connection; from that the package derives
// the neighbor and reducer functions that force adjacent edges to match.
package tiles

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocollapse/pkg/collapse"
)

// Edges marks which sides of a tile carry a connection. Two horizontally
// adjacent tiles are compatible when the left tile's Right equals the right
// tile's Left; vertically, Down must meet Up.
type Edges struct {
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
	Up    bool `yaml:"up"`
	Down  bool `yaml:"down"`
}

// Tile is one drawable state: a glyph plus its connection edges.
type Tile struct {
	Glyph rune
	Edges Edges
}

// Set is an ordered tile collection. The slice index is the state index the
// engine collapses cells to.
type Set struct {
	tiles   []Tile
	byGlyph map[rune]int

	// Forbidden-state masks per side, precomputed from the edges: for each
	// side, the states whose edge on that side is open, and those whose
	// edge is closed.
	leftOpen, leftClosed   collapse.CandidateSet
	rightOpen, rightClosed collapse.CandidateSet
	upOpen, upClosed       collapse.CandidateSet
	downOpen, downClosed   collapse.CandidateSet
}

// New builds a Set from tiles. At least one tile is required and glyphs must
// be unique.
func New(ts []Tile) (*Set, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("tile set: need at least one tile")
	}
	s := &Set{tiles: ts, byGlyph: make(map[rune]int, len(ts))}
	for i, tile := range ts {
		if prev, dup := s.byGlyph[tile.Glyph]; dup {
			return nil, fmt.Errorf("tile set: glyph %q used by tiles %d and %d", tile.Glyph, prev, i)
		}
		s.byGlyph[tile.Glyph] = i
	}

	n := len(ts)
	var leftOpen, rightOpen, upOpen, downOpen []int
	var leftClosed, rightClosed, upClosed, downClosed []int
	for i, tile := range ts {
		if tile.Edges.Left {
			leftOpen = append(leftOpen, i)
		} else {
			leftClosed = append(leftClosed, i)
		}
		if tile.Edges.Right {
			rightOpen = append(rightOpen, i)
		} else {
			rightClosed = append(rightClosed, i)
		}
		if tile.Edges.Up {
			upOpen = append(upOpen, i)
		} else {
			upClosed = append(upClosed, i)
		}
		if tile.Edges.Down {
			downOpen = append(downOpen, i)
		} else {
			downClosed = append(downClosed, i)
		}
	}
	s.leftOpen = collapse.NewCandidateSetOf(n, leftOpen...)
	s.leftClosed = collapse.NewCandidateSetOf(n, leftClosed...)
	s.rightOpen = collapse.NewCandidateSetOf(n, rightOpen...)
	s.rightClosed = collapse.NewCandidateSetOf(n, rightClosed...)
	s.upOpen = collapse.NewCandidateSetOf(n, upOpen...)
	s.upClosed = collapse.NewCandidateSetOf(n, upClosed...)
	s.downOpen = collapse.NewCandidateSetOf(n, downOpen...)
	s.downClosed = collapse.NewCandidateSetOf(n, downClosed...)
	return s, nil
}

// Default returns the twelve box-drawing pipe tiles plus the blank tile.
func Default() *Set {
	s, err := New([]Tile{
		{Glyph: '┐', Edges: Edges{Left: true, Down: true}},
		{Glyph: '└', Edges: Edges{Up: true, Right: true}},
		{Glyph: '┴', Edges: Edges{Left: true, Up: true, Right: true}},
		{Glyph: '┬', Edges: Edges{Left: true, Right: true, Down: true}},
		{Glyph: '├', Edges: Edges{Up: true, Right: true, Down: true}},
		{Glyph: '─', Edges: Edges{Left: true, Right: true}},
		{Glyph: '┼', Edges: Edges{Left: true, Right: true, Up: true, Down: true}},
		{Glyph: '│', Edges: Edges{Up: true, Down: true}},
		{Glyph: '┤', Edges: Edges{Left: true, Up: true, Down: true}},
		{Glyph: '┘', Edges: Edges{Left: true, Up: true}},
		{Glyph: '┌', Edges: Edges{Right: true, Down: true}},
		{Glyph: ' ', Edges: Edges{}},
	})
	if err != nil {
		panic(err) // the built-in set is statically valid
	}
	return s
}

// Len returns the number of states in the set.
func (s *Set) Len() int { return len(s.tiles) }

// Glyph returns the drawable rune for a state, or '?' for an out-of-range
// state.
func (s *Set) Glyph(state int) rune {
	if state < 0 || state >= len(s.tiles) {
		return '?'
	}
	return s.tiles[state].Glyph
}

// Tile returns the tile for a state.
func (s *Set) Tile(state int) Tile { return s.tiles[state] }

// Neighbors returns the four-connected grid topology for a rows x cols
// board in row-major order.
func (s *Set) Neighbors(cols, rows int) collapse.NeighborFunc {
	return func(i int) []int {
		x, y := i%cols, i/cols
		out := make([]int, 0, 4)
		if x > 0 {
			out = append(out, i-1)
		}
		if x < cols-1 {
			out = append(out, i+1)
		}
		if y > 0 {
			out = append(out, i-cols)
		}
		if y < rows-1 {
			out = append(out, i+cols)
		}
		return out
	}
}

// Reducer returns the edge-matching constraint for a grid of cols columns:
// a settled neighbor forbids every state whose facing edge disagrees with
// the neighbor's committed edge.
func (s *Set) Reducer(cols int) collapse.ReducerFunc {
	n := len(s.tiles)
	return func(settled []collapse.Neighbor, i int) collapse.CandidateSet {
		forbidden := collapse.EmptyCandidateSet(n)
		ix, iy := i%cols, i/cols
		for _, nb := range settled {
			v, ok := nb.Cell.Value()
			if !ok {
				continue
			}
			jx, jy := nb.Index%cols, nb.Index/cols
			edges := s.tiles[v].Edges
			switch {
			case jx < ix && jy == iy: // neighbor to the left
				if edges.Right {
					forbidden = forbidden.Union(s.leftClosed)
				} else {
					forbidden = forbidden.Union(s.leftOpen)
				}
			case jx > ix && jy == iy: // neighbor to the right
				if edges.Left {
					forbidden = forbidden.Union(s.rightClosed)
				} else {
					forbidden = forbidden.Union(s.rightOpen)
				}
			case jy < iy && jx == ix: // neighbor above
				if edges.Down {
					forbidden = forbidden.Union(s.upClosed)
				} else {
					forbidden = forbidden.Union(s.upOpen)
				}
			case jy > iy && jx == ix: // neighbor below
				if edges.Up {
					forbidden = forbidden.Union(s.downClosed)
				} else {
					forbidden = forbidden.Union(s.downOpen)
				}
			}
		}
		return forbidden
	}
}

// Parse converts a glyph string into a board of cols*rows cells. '.' marks
// an Unknown cell; any tile glyph pins that tile; newlines are ignored.
func (s *Set) Parse(text string, cols, rows int) (collapse.Board, error) {
	size := cols * rows
	board := make(collapse.Board, 0, size)
	n := len(s.tiles)
	for pos, r := range strings.NewReplacer("\r", "", "\n", "").Replace(text) {
		switch {
		case r == '.':
			board = append(board, collapse.NewCell(n))
		default:
			state, ok := s.byGlyph[r]
			if !ok {
				return nil, fmt.Errorf("parse board: unknown glyph %q at position %d", r, pos)
			}
			board = append(board, collapse.NewReducedCell(n, state))
		}
	}
	if len(board) != size {
		return nil, fmt.Errorf("parse board: got %d cells, want %d", len(board), size)
	}
	return board, nil
}

// Render draws a board as glyph rows. Unsettled cells render as their
// entropy in parentheses.
func (s *Set) Render(b collapse.Board, cols int) string {
	var out strings.Builder
	for i := range b {
		if v, ok := b[i].Value(); ok {
			out.WriteRune(s.Glyph(v))
		} else {
			fmt.Fprintf(&out, "(%d)", b[i].Entropy())
		}
		if (i+1)%cols == 0 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
