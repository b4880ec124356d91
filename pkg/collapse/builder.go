package collapse

// builder.go: solver configuration. Required topology and constraint
// functions are taken up front; seed, initial board, weights, and row length
// are optional with explicit defaults.

import (
	"fmt"
	"math/rand"
	"time"
)

// Builder accumulates solver configuration. Zero values of the optional
// fields mean: fully-Unknown initial board, uniform weights, time-derived
// (non-reproducible) seed, and a row length equal to the board size.
type Builder struct {
	states    int
	size      int
	neighbors NeighborFunc
	reducer   ReducerFunc

	board  Board
	weight WeightFunc
	seed   int64
	seeded bool
	rowLen int
}

// NewBuilder starts configuration of a solver for a board of size cells,
// each ranging over states distinct values, with the given topology and
// constraint functions.
func NewBuilder(states, size int, neighbors NeighborFunc, reducer ReducerFunc) *Builder {
	return &Builder{
		states:    states,
		size:      size,
		neighbors: neighbors,
		reducer:   reducer,
	}
}

// Seed fixes the random source. Identical seed, initial board, and
// collaborator functions produce a bit-identical final board across runs.
func (b *Builder) Seed(seed int64) *Builder {
	b.seed = seed
	b.seeded = true
	return b
}

// Board supplies a pre-seeded initial board. Reduced or Collapsed cells pin
// fixed values such as puzzle givens or clamped boundaries. The board length
// must equal the configured size.
func (b *Builder) Board(board Board) *Builder {
	b.board = board
	return b
}

// Weights supplies the selection weight function used during observation.
func (b *Builder) Weights(weight WeightFunc) *Builder {
	b.weight = weight
	return b
}

// RowLength declares the number of columns when the board is read as a
// row-major grid, which Pan requires. It must divide the board size evenly.
func (b *Builder) RowLength(rowLen int) *Builder {
	b.rowLen = rowLen
	return b
}

// Build validates the configuration and constructs the solver.
func (b *Builder) Build() (*Solver, error) {
	if b.states <= 0 {
		return nil, fmt.Errorf("build solver: states must be positive, got %d", b.states)
	}
	if b.size <= 0 {
		return nil, fmt.Errorf("build solver: size must be positive, got %d", b.size)
	}
	if b.neighbors == nil {
		return nil, fmt.Errorf("build solver: neighbor function is required")
	}
	if b.reducer == nil {
		return nil, fmt.Errorf("build solver: reducer function is required")
	}

	board := b.board
	if board == nil {
		board = NewBoard(b.size, b.states)
	} else {
		if len(board) != b.size {
			return nil, fmt.Errorf("build solver: board has %d cells, want %d", len(board), b.size)
		}
		for i := range board {
			if got := board[i].Domain().Capacity(); got != b.states {
				return nil, fmt.Errorf("build solver: cell %d ranges over %d states, want %d", i, got, b.states)
			}
		}
		board = normalize(board.Clone(), b.states)
	}

	rowLen := b.rowLen
	if rowLen == 0 {
		rowLen = b.size
	}
	if rowLen <= 0 || b.size%rowLen != 0 {
		return nil, fmt.Errorf("build solver: row length %d does not divide board size %d", rowLen, b.size)
	}

	weight := b.weight
	if weight == nil {
		weight = UniformWeight
	}

	seed := b.seed
	if !b.seeded {
		seed = time.Now().UnixNano()
	}

	return &Solver{
		board:     board,
		neighbors: b.neighbors,
		reducer:   b.reducer,
		weight:    weight,
		rng:       rand.New(rand.NewSource(seed)),
		states:    b.states,
		rowLen:    rowLen,
	}, nil
}

// normalize repairs pre-seeded boards so the solver invariants hold from the
// start: an Unknown cell whose domain is already a singleton becomes
// Reduced, so the first propagation pass settles and announces it.
func normalize(board Board, states int) Board {
	for i := range board {
		cell := board[i]
		if !cell.IsUnknown() {
			continue
		}
		if cell.Domain().IsSingleton() {
			board[i] = NewReducedCell(states, cell.Domain().SingletonValue())
		}
	}
	return board
}
