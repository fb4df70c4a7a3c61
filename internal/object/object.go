// Package object defines the arcade entities: the ship, asteroids and
// torpedoes. All of them move on the same toroidal physics.Field.
package object

import (
	"math"

	"github.com/tomz197/asteroids/internal/physics"
)

// ID identifies an asteroid or torpedo independently of its physical state.
type ID uint64

// IDSource hands out increasing IDs. The zero value is ready to use.
type IDSource struct {
	last ID
}

// Next returns a fresh ID.
func (s *IDSource) Next() ID {
	s.last++
	return s.last
}

// Body is an entity that moves on the field and can collide.
type Body interface {
	physics.Circle
	Velocity() physics.Vector
}

// Compile-time checks that all entities are bodies.
var (
	_ Body = (*Ship)(nil)
	_ Body = (*Asteroid)(nil)
	_ Body = (*Torpedo)(nil)
)

// degreesToRadians converts a heading in degrees. Headings are never
// normalized; trig functions cope with large values.
func degreesToRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
