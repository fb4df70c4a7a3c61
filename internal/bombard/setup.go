package bombard

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoRoom is returned when the requested ships cannot be placed.
var ErrNoRoom = errors.New("no room for ships")

// placementAttempts bounds the random search for each ship.
const placementAttempts = 1000

var directions = []Direction{NotMoving, Up, Down, Left, Right}

// RandomShips places count ships of the given length at random positions
// and courses on a size x size board. Ships never overlap.
func RandomShips(rng *rand.Rand, count, length, size int) ([]*Ship, error) {
	if length < 1 || length > size {
		return nil, fmt.Errorf("%w: length %d on a %d board", ErrNoRoom, length, size)
	}
	taken := make(map[Coordinate]bool)
	ships := make([]*Ship, 0, count)

	for len(ships) < count {
		s, err := placeShip(rng, length, size, taken)
		if err != nil {
			return nil, fmt.Errorf("ship %d of %d: %w", len(ships)+1, count, err)
		}
		for _, c := range s.Coordinates() {
			taken[c] = true
		}
		ships = append(ships, s)
	}
	return ships, nil
}

func placeShip(rng *rand.Rand, length, size int, taken map[Coordinate]bool) (*Ship, error) {
attempts:
	for range placementAttempts {
		dir := directions[rng.Intn(len(directions))]
		head := Coordinate{X: rng.Intn(size), Y: rng.Intn(size)}
		s, err := NewShip(head, length, dir, size)
		if err != nil {
			continue
		}
		for _, c := range s.Coordinates() {
			if taken[c] {
				continue attempts
			}
		}
		return s, nil
	}
	return nil, ErrNoRoom
}
