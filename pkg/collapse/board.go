package collapse

// board.go: the board and its snapshot history.

// Board is a fixed-length ordered sequence of cells. Index-to-coordinate
// mapping is owned by the caller's NeighborFunc; the engine treats indices
// as opaque except during panning, where the board is read as a row-major
// grid.
type Board []Cell

// NewBoard returns a board of size Unknown cells, each over the full domain
// {0..states-1}.
func NewBoard(size, states int) Board {
	b := make(Board, size)
	cell := NewCell(states)
	for i := range b {
		b[i] = cell
	}
	return b
}

// Clone returns a snapshot of the board. Cells are value types over
// immutable candidate sets, so the copy is shallow per cell and the
// underlying domain words are shared structurally.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// Settled returns the indices of all non-Unknown cells, in ascending order.
// These seed the first propagation pass.
func (b Board) Settled() []int {
	var settled []int
	for i := range b {
		if !b[i].IsUnknown() {
			settled = append(settled, i)
		}
	}
	return settled
}

// Pending returns the indices of all Reduced-but-not-Collapsed cells.
// When a snapshot is restored these are the cells whose settlement was still
// in flight, and they become the resumed propagation worklist.
func (b Board) Pending() []int {
	var pending []int
	for i := range b {
		if b[i].IsReduced() {
			pending = append(pending, i)
		}
	}
	return pending
}

// Values returns the committed value of every cell and true when the board
// is fully settled; otherwise it returns (nil, false).
func (b Board) Values() ([]int, bool) {
	values := make([]int, len(b))
	for i := range b {
		v, ok := b[i].Value()
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// History is a LIFO stack of board snapshots, one per risky random decision.
// Popping a snapshot undoes the most recent observation and everything
// propagated downstream of it.
type History struct {
	stack []Board
}

// Push adds a snapshot to the top of the stack.
func (h *History) Push(b Board) {
	h.stack = append(h.stack, b)
}

// Pop removes and returns the most recent snapshot. The second return is
// false when the stack is empty, which means no prior choice point remains.
func (h *History) Pop() (Board, bool) {
	if len(h.stack) == 0 {
		return nil, false
	}
	b := h.stack[len(h.stack)-1]
	h.stack[len(h.stack)-1] = nil
	h.stack = h.stack[:len(h.stack)-1]
	return b, true
}

// Len returns the current stack depth.
func (h *History) Len() int { return len(h.stack) }

// Reset discards every snapshot. Used after panning, when shifted indices
// invalidate all prior backtracking context.
func (h *History) Reset() {
	h.stack = h.stack[:0]
}
