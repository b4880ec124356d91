package collapse

import "errors"

// Engine errors. Contradictions and failed observations are routine during
// search and are consumed internally by backtracking; only ErrUnsatisfiable
// escapes Solve.
var (
	// ErrContradiction is returned by Cell.Reduce when a reduction would
	// leave the cell with no candidate at all.
	ErrContradiction = errors.New("reduction emptied the cell's domain")

	// ErrNoCandidates is returned by Cell.Observe when the cell has no
	// candidate to sample, or when every remaining candidate has zero weight.
	ErrNoCandidates = errors.New("no candidate available to observe")

	// ErrUnsatisfiable is returned by Solve when backtracking exhausts the
	// history with no remaining choice point to retry.
	ErrUnsatisfiable = errors.New("no solution satisfies the constraints")
)
