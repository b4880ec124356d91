package collapse

// cell.go: the per-cell state machine.
//
// A cell moves Unknown -> Reduced -> Collapsed and never backward; the only
// way a cell "un-settles" is a whole-board restore during backtracking.
// Reduced marks a cell pinned to a single value but not yet visible to its
// neighbors as ground truth; Collapse promotes it at the end of the
// propagation round that produced it.

import (
	"fmt"
	"math/rand"
)

// phase is the tag of the cell state machine.
type phase uint8

const (
	phaseUnknown phase = iota
	phaseReduced
	phaseCollapsed
)

// Cell is one position on the board: a candidate domain plus the settlement
// phase. Cell is a value type; all transitions return a new Cell.
type Cell struct {
	domain CandidateSet
	phase  phase
	value  int
}

// NewCell returns an Unknown cell over the full domain {0..states-1}.
func NewCell(states int) Cell {
	return Cell{domain: NewCandidateSet(states), phase: phaseUnknown, value: -1}
}

// NewCellOf returns an Unknown cell restricted to the given candidates.
// Values outside [0, states) are ignored. Builder.Build normalizes a
// singleton restriction into a Reduced cell.
func NewCellOf(states int, values ...int) Cell {
	return Cell{domain: NewCandidateSetOf(states, values...), phase: phaseUnknown, value: -1}
}

// NewReducedCell returns a cell pinned to value, pending collapse. Used to
// pre-seed boards with puzzle givens or boundary clamps; the solver settles
// it during the first propagation pass.
func NewReducedCell(states, value int) Cell {
	return Cell{domain: NewSingleton(states, value), phase: phaseReduced, value: value}
}

// NewCollapsedCell returns a cell already settled to value, authoritative
// for neighbor queries from the start.
func NewCollapsedCell(states, value int) Cell {
	return Cell{domain: NewSingleton(states, value), phase: phaseCollapsed, value: value}
}

// IsUnknown reports whether the cell has not been pinned to a value.
func (c Cell) IsUnknown() bool { return c.phase == phaseUnknown }

// IsReduced reports whether the cell is pinned but not yet promoted to
// ground truth for the current propagation round.
func (c Cell) IsReduced() bool { return c.phase == phaseReduced }

// IsCollapsed reports whether the cell is settled and authoritative.
func (c Cell) IsCollapsed() bool { return c.phase == phaseCollapsed }

// Value returns the committed value and true for Reduced or Collapsed cells,
// and (-1, false) for Unknown cells.
func (c Cell) Value() (int, bool) {
	if c.phase == phaseUnknown {
		return -1, false
	}
	return c.value, true
}

// Domain returns the cell's candidate set.
func (c Cell) Domain() CandidateSet { return c.domain }

// Entropy returns the number of values the cell could still take:
// the domain popcount while Unknown, 1 once Reduced, 0 once Collapsed.
func (c Cell) Entropy() int {
	switch c.phase {
	case phaseReduced:
		return 1
	case phaseCollapsed:
		return 0
	default:
		return c.domain.Entropy()
	}
}

// Reduce removes the forbidden candidates from the cell's domain.
//
// Reduce is the identity on non-Unknown cells and on an empty forbidden set.
// If the reduction empties the domain it returns ErrContradiction, signaling
// the caller to backtrack. If the reduction leaves a single candidate the
// cell transitions to Reduced; otherwise it stays Unknown with the smaller
// domain.
func (c Cell) Reduce(forbidden CandidateSet) (Cell, error) {
	if c.phase != phaseUnknown {
		return c, nil
	}
	next := c.domain.Without(forbidden)
	if next.Equal(c.domain) {
		return c, nil
	}
	switch next.Entropy() {
	case 0:
		return c, ErrContradiction
	case 1:
		return Cell{domain: next, phase: phaseReduced, value: next.SingletonValue()}, nil
	default:
		return Cell{domain: next, phase: phaseUnknown, value: -1}, nil
	}
}

// Observe samples one candidate from an Unknown cell's domain with
// probability proportional to weight(candidate) and returns the resulting
// Reduced cell. Settled cells are returned unchanged.
//
// Observe fails with ErrNoCandidates when the domain is empty or every
// remaining candidate has zero weight; the solver recovers by backtracking.
func (c Cell) Observe(weight WeightFunc, rng *rand.Rand) (Cell, error) {
	if c.phase != phaseUnknown {
		return c, nil
	}
	var total float64
	c.domain.IterateValues(func(v int) {
		if w := weight(v); w > 0 {
			total += w
		}
	})
	if total <= 0 {
		return c, ErrNoCandidates
	}
	target := rng.Float64() * total
	chosen := -1
	c.domain.IterateValues(func(v int) {
		if chosen >= 0 {
			return
		}
		w := weight(v)
		if w <= 0 {
			return
		}
		target -= w
		if target <= 0 {
			chosen = v
		}
	})
	if chosen < 0 {
		// Float round-off left target marginally above zero; take the
		// highest weighted candidate.
		c.domain.IterateValues(func(v int) {
			if weight(v) > 0 {
				chosen = v
			}
		})
	}
	return Cell{
		domain: NewSingleton(c.domain.Capacity(), chosen),
		phase:  phaseReduced,
		value:  chosen,
	}, nil
}

// Collapse promotes a Reduced cell to Collapsed, marking its value as
// authoritative ground truth for the next propagation round. Collapse is the
// identity on Unknown and Collapsed cells.
func (c Cell) Collapse() Cell {
	if c.phase != phaseReduced {
		return c
	}
	return Cell{domain: c.domain, phase: phaseCollapsed, value: c.value}
}

// discard removes a single candidate without the contradiction guard of
// Reduce. It records "this choice is known bad" in snapshots pushed before
// an observation: the result may be a Reduced cell (one alternative left) or
// an Unknown cell whose domain is empty, which the search treats as an
// immediate dead end when the snapshot is restored.
func (c Cell) discard(value int) Cell {
	next := c.domain.Without(NewSingleton(c.domain.Capacity(), value))
	if next.Entropy() == 1 {
		return Cell{domain: next, phase: phaseReduced, value: next.SingletonValue()}
	}
	return Cell{domain: next, phase: phaseUnknown, value: -1}
}

// String renders the cell for debugging: the committed value when settled,
// the remaining domain otherwise.
func (c Cell) String() string {
	switch c.phase {
	case phaseReduced:
		return fmt.Sprintf("reduced(%d)", c.value)
	case phaseCollapsed:
		return fmt.Sprintf("collapsed(%d)", c.value)
	default:
		return fmt.Sprintf("unknown%s", c.domain)
	}
}
