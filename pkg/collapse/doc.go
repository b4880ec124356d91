// Package collapse provides a generic constraint-propagation and
// backtracking engine in the style of the Wave Function Collapse algorithm.
//
// The engine fills a fixed-size board of cells with discrete values so that
// user-defined adjacency constraints hold everywhere. It is domain-agnostic:
// callers supply the grid topology (a NeighborFunc), the constraint logic
// (a ReducerFunc that turns settled neighbors into forbidden values), and
// optionally a WeightFunc for biased random selection.
//
// The core primitives are:
//   - CandidateSet: a fixed-capacity bitset over state indices, the domain
//     of one cell. Domains only ever shrink.
//   - Cell: a small state machine over a CandidateSet, moving from Unknown
//     through Reduced to Collapsed as constraints pin it down.
//   - Board: an ordered sequence of cells, cheap to snapshot.
//   - Solver: propagation to fixpoint, minimum-entropy selection, weighted
//     random observation, and backtracking over board snapshots.
//
// Typical usage:
//
//	solver, err := collapse.NewBuilder(states, size, neighbors, reducer).
//		Seed(42).
//		Board(initial).
//		Build()
//	if err != nil {
//		// configuration error
//	}
//	if err := solver.Solve(); err != nil {
//		// collapse.ErrUnsatisfiable: no assignment satisfies the constraints
//	}
//
// Solving is single-threaded and runs to completion within one call.
// Separate Solver instances share no state, so independent boards may be
// solved concurrently by the caller.
package collapse
