package object

import (
	"fmt"

	"github.com/tomz197/asteroids/internal/physics"
)

// AsteroidSize represents the size tier of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Radius formula constants: radius = size*sizeCoefficient - normalizingFactor.
const (
	sizeCoefficient   = 10
	normalizingFactor = -5
)

// MinSplitSize is the smallest size that splits instead of vanishing.
const MinSplitSize = AsteroidMedium

// Asteroid is a destructible space rock.
type Asteroid struct {
	ID   ID
	Pos  physics.Vector // Position (center)
	Vel  physics.Vector // Velocity, units per tick
	Size AsteroidSize
}

// NewAsteroid creates an asteroid.
func NewAsteroid(id ID, pos, vel physics.Vector, size AsteroidSize) *Asteroid {
	return &Asteroid{
		ID:   id,
		Pos:  pos,
		Vel:  vel,
		Size: size,
	}
}

// Radius returns the collision radius derived from the size.
func (a *Asteroid) Radius() float64 {
	return a.Size.Radius()
}

// Radius returns the collision radius of an asteroid of this size.
func (s AsteroidSize) Radius() float64 {
	return float64(int(s)*sizeCoefficient - normalizingFactor)
}

// Position returns the asteroid's center.
func (a *Asteroid) Position() physics.Vector {
	return a.Pos
}

// Velocity returns the asteroid's velocity.
func (a *Asteroid) Velocity() physics.Vector {
	return a.Vel
}

// Move applies velocity to position with wraparound.
func (a *Asteroid) Move(field physics.Field) {
	a.Pos = field.Advance(a.Pos, a.Vel)
}

// CanSplit reports whether a torpedo hit splits this asteroid.
func (a *Asteroid) CanSplit() bool {
	return a.Size >= MinSplitSize
}

// Fragment returns a child one size smaller at the same position with the
// same velocity. The caller sets the child's new course.
func (a *Asteroid) Fragment(id ID) *Asteroid {
	return NewAsteroid(id, a.Pos, a.Vel, a.Size-1)
}

// CollisionAcceleration sets the velocity after an impact:
//
//	v = (impact + v) / |v|
//
// The divisor is this asteroid's own speed before the impact. Asteroid
// speeds are never zero by construction; a zero speed here is a bug.
func (a *Asteroid) CollisionAcceleration(impact physics.Vector) {
	speed := a.Vel.Len()
	if speed == 0 {
		panic(fmt.Sprintf("object: collision acceleration on stationary asteroid %d", a.ID))
	}
	sum := impact.Add(a.Vel)
	a.Vel = physics.Vector{X: sum.X / speed, Y: sum.Y / speed}
}

// SplitWays multiplies the velocity so sibling fragments part ways.
func (a *Asteroid) SplitWays(factor float64) {
	a.Vel = a.Vel.Scale(factor)
}
