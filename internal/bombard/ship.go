package bombard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShipOffBoard is returned for a ship that does not fit on its board.
var ErrShipOffBoard = errors.New("ship does not fit on board")

// Ship is a multi-cell ship. Its cells extend from the head along the axis
// of its course: a row for Left, Right and NotMoving, a column for Up and
// Down.
type Ship struct {
	head      Coordinate
	length    int
	direction Direction
	boardSize int
	hits      []bool // Per cell, index 0 is the head
}

// NewShip places a ship with its head at head.
func NewShip(head Coordinate, length int, direction Direction, boardSize int) (*Ship, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrShipOffBoard, length)
	}
	s := &Ship{
		head:      head,
		length:    length,
		direction: direction,
		boardSize: boardSize,
		hits:      make([]bool, length),
	}
	if !s.fits(head) {
		return nil, fmt.Errorf("%w: head %s, length %d, board %d", ErrShipOffBoard, head, length, boardSize)
	}
	return s, nil
}

func (s *Ship) axis() Direction {
	if s.direction.Vertical() {
		return Down
	}
	return Right
}

func (s *Ship) cell(head Coordinate, i int) Coordinate {
	dx, dy := s.axis().Delta()
	return Coordinate{X: head.X + i*dx, Y: head.Y + i*dy}
}

// fits reports whether every cell of the ship lies on the board when its
// head is at head.
func (s *Ship) fits(head Coordinate) bool {
	return head.OnBoard(s.boardSize) && s.cell(head, s.length-1).OnBoard(s.boardSize)
}

func (s *Ship) index(c Coordinate) int {
	for i := range s.length {
		if s.cell(s.head, i) == c {
			return i
		}
	}
	return -1
}

// Coordinates returns the cells of the ship, head first.
func (s *Ship) Coordinates() []Coordinate {
	cells := make([]Coordinate, s.length)
	for i := range cells {
		cells[i] = s.cell(s.head, i)
	}
	return cells
}

// Head returns the ship's first cell.
func (s *Ship) Head() Coordinate {
	return s.head
}

// Length returns the number of cells.
func (s *Ship) Length() int {
	return s.length
}

// Direction returns the current course.
func (s *Ship) Direction() Direction {
	return s.direction
}

// Move advances the ship one cell. When the step would leave the board the
// ship turns around and steps the other way instead.
func (s *Ship) Move() {
	if s.direction == NotMoving {
		return
	}
	next := s.head.Step(s.direction)
	if !s.fits(next) {
		s.direction = s.direction.Opposite()
		next = s.head.Step(s.direction)
		if !s.fits(next) {
			return // Spans the whole board on its axis
		}
	}
	s.head = next
}

// Occupies reports whether c is one of the ship's cells.
func (s *Ship) Occupies(c Coordinate) bool {
	return s.index(c) >= 0
}

// Hit marks the cell at c as hit. It reports true only for a new hit on the
// ship.
func (s *Ship) Hit(c Coordinate) bool {
	i := s.index(c)
	if i < 0 || s.hits[i] {
		return false
	}
	s.hits[i] = true
	return true
}

// CellStatus reports whether the cell at c is hit. ok is false when the
// ship does not occupy c.
func (s *Ship) CellStatus(c Coordinate) (hit, ok bool) {
	i := s.index(c)
	if i < 0 {
		return false, false
	}
	return s.hits[i], true
}

// DamagedCells returns the hit cells, head first.
func (s *Ship) DamagedCells() []Coordinate {
	var cells []Coordinate
	for i, hit := range s.hits {
		if hit {
			cells = append(cells, s.cell(s.head, i))
		}
	}
	return cells
}

// Damaged reports whether any cell is hit. Damaged ships stop moving.
func (s *Ship) Damaged() bool {
	for _, hit := range s.hits {
		if hit {
			return true
		}
	}
	return false
}

// Terminated reports whether every cell is hit.
func (s *Ship) Terminated() bool {
	for _, hit := range s.hits {
		if !hit {
			return false
		}
	}
	return true
}

// String formats the ship as "[cells, damaged cells, direction, board size]".
func (s *Ship) String() string {
	return fmt.Sprintf("[%s, %s, %s, %d]",
		joinCoordinates(s.Coordinates()), joinCoordinates(s.DamagedCells()), s.direction, s.boardSize)
}

func joinCoordinates(cells []Coordinate) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
