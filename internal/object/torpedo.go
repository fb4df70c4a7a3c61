package object

import (
	"math"

	"github.com/tomz197/asteroids/internal/physics"
)

// TorpedoRadius is the collision radius of a torpedo.
const TorpedoRadius = 4.0

// TorpedoAcceleration is the launch boost along the heading.
const TorpedoAcceleration = 2.0

// Torpedo is fired by the ship. Heading and velocity are fixed at launch.
type Torpedo struct {
	ID      ID
	Pos     physics.Vector
	Heading float64 // Degrees, frozen at launch
	vel     physics.Vector
}

// NewTorpedo launches a torpedo from pos along heading. The torpedo inherits
// the shooter's velocity plus its own boost.
func NewTorpedo(id ID, pos physics.Vector, heading float64, shooterVel physics.Vector) *Torpedo {
	rad := degreesToRadians(heading)
	return &Torpedo{
		ID:      id,
		Pos:     pos,
		Heading: heading,
		vel: physics.Vector{
			X: shooterVel.X + TorpedoAcceleration*math.Cos(rad),
			Y: shooterVel.Y + TorpedoAcceleration*math.Sin(rad),
		},
	}
}

// Move applies velocity to position with wraparound.
func (t *Torpedo) Move(field physics.Field) {
	t.Pos = field.Advance(t.Pos, t.vel)
}

// Position returns the torpedo's center.
func (t *Torpedo) Position() physics.Vector {
	return t.Pos
}

// Velocity returns the launch velocity.
func (t *Torpedo) Velocity() physics.Vector {
	return t.vel
}

// Radius returns the torpedo's collision radius.
func (t *Torpedo) Radius() float64 {
	return TorpedoRadius
}
