// Package bombard implements the bombardment board game: ships drift over a
// square board while the player drops delayed bombs on it.
package bombard

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCoordinate is returned for a target that cannot be parsed or
// lies outside the board.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a board cell. X is the column, Y the row; (0, 0) is the
// top left corner.
type Coordinate struct {
	X int
	Y int
}

// String formats the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Label formats the coordinate the way the player types it: column letter
// and 1-based row number, e.g. "C4" for (2, 3).
func (c Coordinate) Label() string {
	return string(rune('A'+c.X)) + strconv.Itoa(c.Y+1)
}

// Step returns the neighbouring coordinate in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// OnBoard reports whether c lies on a board of the given size.
func (c Coordinate) OnBoard(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// compareCoordinates orders row by row, then by column.
func compareCoordinates(a, b Coordinate) int {
	return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
}

// ParseCoordinate parses a label such as "c4" or "C4" on a board of the
// given size.
func ParseCoordinate(s string, size int) (Coordinate, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 || s[0] < 'A' || s[0] > 'Z' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	c := Coordinate{X: int(s[0] - 'A'), Y: row - 1}
	if !c.OnBoard(size) {
		return Coordinate{}, fmt.Errorf("%w: %s is off the %dx%d board", ErrInvalidCoordinate, s, size, size)
	}
	return c, nil
}

// Direction is the course of a ship.
type Direction uint8

const (
	NotMoving Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case NotMoving:
		return "NotMoving"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset of one step. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse course. NotMoving is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Vertical reports whether ships with this course lie along a column.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}
