package object

import (
	"math"

	"github.com/tomz197/asteroids/internal/physics"
)

// Ship constants.
const (
	ShipRadius         = 1.0
	ShipTurnLeftDeg    = 7.0
	ShipTurnRightDeg   = -7.0
	ShipInitialHeading = 0.0
)

// Ship is the player-controlled spaceship. It has no speed limit and no
// drag: velocity only changes through Accelerate.
type Ship struct {
	Pos     physics.Vector // Position (center of ship)
	Vel     physics.Vector // Velocity (momentum), units per tick
	Heading float64        // Degrees, 0 = pointing along +X
}

// NewShip creates a resting ship at pos.
func NewShip(pos physics.Vector) *Ship {
	return &Ship{
		Pos:     pos,
		Heading: ShipInitialHeading,
	}
}

// TurnLeft rotates the ship counter-clockwise by a fixed step.
func (s *Ship) TurnLeft() {
	s.Heading += ShipTurnLeftDeg
}

// TurnRight rotates the ship clockwise by a fixed step.
func (s *Ship) TurnRight() {
	s.Heading += ShipTurnRightDeg
}

// Accelerate adds a unit vector along the heading to the velocity.
func (s *Ship) Accelerate() {
	rad := degreesToRadians(s.Heading)
	s.Vel = physics.Vector{
		X: s.Vel.X + math.Cos(rad),
		Y: s.Vel.Y + math.Sin(rad),
	}
}

// Move applies velocity to position with wraparound.
func (s *Ship) Move(field physics.Field) {
	s.Pos = field.Advance(s.Pos, s.Vel)
}

// Position returns the ship's center.
func (s *Ship) Position() physics.Vector {
	return s.Pos
}

// Velocity returns the ship's velocity.
func (s *Ship) Velocity() physics.Vector {
	return s.Vel
}

// Radius returns the ship's collision radius.
func (s *Ship) Radius() float64 {
	return ShipRadius
}
