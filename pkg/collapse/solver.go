package collapse

// solver.go: propagation to fixpoint, minimum-entropy search, and
// backtracking over board snapshots.

import (
	"math/rand"
)

// NeighborFunc returns the indices adjacent to i under the caller's
// topology. It must be pure, deterministic, and stable across calls;
// the returned order is up to the caller but must not vary.
type NeighborFunc func(i int) []int

// Neighbor is the settled view of an adjacent cell handed to a ReducerFunc.
// The cell is Reduced or Collapsed, so Cell.Value always reports a value.
type Neighbor struct {
	Index int
	Cell  Cell
}

// ReducerFunc turns the settled neighbors of cell i into the set of states
// cell i is forbidden to take. It receives the full settled-neighbor list in
// a single call and must be pure, deterministic, and independent of the
// list's order. It must accept an empty list.
type ReducerFunc func(settled []Neighbor, i int) CandidateSet

// WeightFunc returns a non-negative selection weight for a state index.
// Observation samples candidates with probability proportional to their
// weight; zero-weight states are never chosen.
type WeightFunc func(state int) float64

// UniformWeight is the default WeightFunc: every state weighs 1.
func UniformWeight(int) float64 { return 1 }

// Stats counts the work a Solve call performed. Counters accumulate across
// calls on the same Solver.
type Stats struct {
	Observations int // random commitments made
	Backtracks   int // snapshots restored after contradictions
	Rounds       int // propagation rounds run
	Reductions   int // individual cell domain reductions
	PeakHistory  int // maximum snapshot stack depth reached
}

// Solver owns a board and fills it in. Construct one via Builder; a Solver
// is single-threaded and must not be shared between goroutines, but separate
// Solver instances are fully independent.
type Solver struct {
	board     Board
	history   History
	neighbors NeighborFunc
	reducer   ReducerFunc
	weight    WeightFunc
	rng       *rand.Rand
	states    int
	rowLen    int
	stats     Stats

	// scratch buffer reused by gatherSettled between reducer calls.
	settled []Neighbor
}

// State returns a snapshot of the current board.
func (s *Solver) State() Board { return s.board.Clone() }

// Cell returns the cell at index i.
func (s *Solver) Cell(i int) Cell { return s.board[i] }

// Len returns the board size.
func (s *Solver) Len() int { return len(s.board) }

// States returns the number of distinct values a cell may take.
func (s *Solver) States() int { return s.states }

// Stats returns a copy of the accumulated run counters.
func (s *Solver) Stats() Stats { return s.stats }

// HistoryDepth returns the number of snapshots currently on the stack.
func (s *Solver) HistoryDepth() int { return s.history.Len() }

// Solve fills in every Unknown cell, mutating the board in place.
//
// It first propagates the consequences of any pre-seeded settled cells to a
// fixpoint, then repeatedly picks the lowest-entropy Unknown cell, commits
// one of its candidates at random (snapshotting first), and re-propagates,
// backtracking whenever a contradiction appears. It returns nil once every
// cell is Collapsed, or ErrUnsatisfiable when backtracking exhausts the
// history with no choice point left to retry.
func (s *Solver) Solve() error {
	worklist := s.board.Settled()
	for {
		if err := s.propagate(worklist); err != nil {
			restored, backErr := s.backtrack()
			if backErr != nil {
				return backErr
			}
			worklist = restored
			continue
		}
		i, ok := s.lowestEntropy()
		if !ok {
			return nil
		}
		next, err := s.observe(i)
		if err != nil {
			return err
		}
		worklist = next
	}
}

// propagate tightens constraints to a fixpoint, starting from the indices
// that just became settled. Each round scans every Unknown cell, gathers its
// currently settled neighbors, and applies the reducer's forbidden set in a
// single Reduce call. Newly Reduced cells form the next round's worklist;
// every index in the current worklist is promoted to Collapsed at round end,
// making it authoritative for the following round's neighbor queries.
//
// A contradiction aborts the current round with ErrContradiction; the caller
// backtracks and resumes propagation from the restored snapshot's pending
// worklist.
func (s *Solver) propagate(worklist []int) error {
	for len(worklist) > 0 {
		s.stats.Rounds++
		var next []int
		for i := range s.board {
			if !s.board[i].IsUnknown() {
				continue
			}
			settled := s.gatherSettled(i)
			if len(settled) == 0 {
				continue
			}
			forbidden := s.reducer(settled, i)
			if forbidden.IsEmpty() {
				continue
			}
			reduced, err := s.board[i].Reduce(forbidden)
			if err != nil {
				return err
			}
			if !reduced.Domain().Equal(s.board[i].Domain()) {
				s.stats.Reductions++
			}
			s.board[i] = reduced
			if reduced.IsReduced() {
				next = append(next, i)
			}
		}
		for _, i := range worklist {
			s.board[i] = s.board[i].Collapse()
		}
		worklist = next
	}
	return nil
}

// gatherSettled collects the non-Unknown neighbors of cell i. The returned
// slice aliases an internal buffer valid until the next call.
func (s *Solver) gatherSettled(i int) []Neighbor {
	s.settled = s.settled[:0]
	for _, j := range s.neighbors(i) {
		if !s.board[j].IsUnknown() {
			s.settled = append(s.settled, Neighbor{Index: j, Cell: s.board[j]})
		}
	}
	return s.settled
}

// lowestEntropy picks the next cell to observe: the minimum remaining-value
// heuristic over Unknown cells, with ties broken uniformly at random to
// avoid positional bias. Returns false when no Unknown cell remains, which
// is the success condition. Draws no randomness when the board is settled
// or when a single cell holds the minimum alone.
func (s *Solver) lowestEntropy() (int, bool) {
	best := -1
	var ties []int
	for i := range s.board {
		if !s.board[i].IsUnknown() {
			continue
		}
		e := s.board[i].Entropy()
		switch {
		case best == -1 || e < best:
			best = e
			ties = append(ties[:0], i)
		case e == best:
			ties = append(ties, i)
		}
	}
	switch len(ties) {
	case 0:
		return -1, false
	case 1:
		return ties[0], true
	default:
		return ties[s.rng.Intn(len(ties))], true
	}
}

// observe commits cell i to one randomly sampled candidate and returns the
// new propagation worklist. Before installing the choice it pushes a
// snapshot of the board with that choice discarded from cell i's domain, so
// a restored snapshot can never retry the same value; this is what bounds
// the search. If the cell has nothing left to sample, observe backtracks
// instead.
func (s *Solver) observe(i int) ([]int, error) {
	sampled, err := s.board[i].Observe(s.weight, s.rng)
	if err != nil {
		return s.backtrack()
	}
	value, _ := sampled.Value()

	snapshot := s.board.Clone()
	snapshot[i] = snapshot[i].discard(value)
	s.history.Push(snapshot)
	if depth := s.history.Len(); depth > s.stats.PeakHistory {
		s.stats.PeakHistory = depth
	}

	s.board[i] = sampled
	s.stats.Observations++
	return []int{i}, nil
}

// backtrack restores the most recent snapshot and returns the worklist to
// resume propagation from: the indices Reduced but not yet Collapsed in the
// restored board, whose settlement was pending when the snapshot was taken.
// When no snapshot remains the problem is unsatisfiable and backtrack
// surfaces that explicitly rather than reusing the dead board.
func (s *Solver) backtrack() ([]int, error) {
	prev, ok := s.history.Pop()
	if !ok {
		return nil, ErrUnsatisfiable
	}
	s.board = prev
	s.stats.Backtracks++
	return s.board.Pending(), nil
}
