package collapse

// pan.go: in-place shift of the board along one axis, used for streaming or
// sliding-window generation. The board is read as a row-major grid of the
// row length fixed at build time.

import "fmt"

// Direction names the axis and sense of a pan. The direction is that of the
// viewport: panning Left moves the window left, so surviving content shifts
// right and fresh Unknown cells enter on the left.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Pan shifts every cell's content by distance along one axis. Each
// destination takes the cell distance away in the source direction;
// destinations whose source falls outside the grid reset to a fresh Unknown
// cell. Iteration order is directional so no destination is read after being
// overwritten: Left and Up walk destinations from high index to low, Right
// and Down from low to high.
//
// Panning invalidates all prior backtracking context, so the history is
// reset to a single snapshot of the shifted board. Distance must be
// non-negative.
func (s *Solver) Pan(dir Direction, distance int) error {
	if distance < 0 {
		return fmt.Errorf("pan %s: distance must be non-negative, got %d", dir, distance)
	}
	size := len(s.board)
	rowLen := s.rowLen
	rows := size / rowLen

	switch dir {
	case Left:
		// Content shifts right: destination column c sources column c-d.
		for i := size - 1; i >= 0; i-- {
			if i%rowLen >= distance {
				s.board[i] = s.board[i-distance]
			} else {
				s.board[i] = NewCell(s.states)
			}
		}
	case Right:
		// Content shifts left: destination column c sources column c+d.
		for i := 0; i < size; i++ {
			if rowLen-i%rowLen > distance {
				s.board[i] = s.board[i+distance]
			} else {
				s.board[i] = NewCell(s.states)
			}
		}
	case Up:
		// Content shifts down: destination row r sources row r-d.
		for i := size - 1; i >= 0; i-- {
			if i/rowLen >= distance {
				s.board[i] = s.board[i-distance*rowLen]
			} else {
				s.board[i] = NewCell(s.states)
			}
		}
	case Down:
		// Content shifts up: destination row r sources row r+d.
		for i := 0; i < size; i++ {
			if rows-i/rowLen > distance {
				s.board[i] = s.board[i+distance*rowLen]
			} else {
				s.board[i] = NewCell(s.states)
			}
		}
	default:
		return fmt.Errorf("pan: unknown direction %d", uint8(dir))
	}

	s.history.Reset()
	s.history.Push(s.board.Clone())
	return nil
}
