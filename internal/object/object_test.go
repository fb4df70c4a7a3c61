package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroids/internal/physics"
)

var testField = physics.Field{
	X: physics.Bounds{Min: -500, Max: 500},
	Y: physics.Bounds{Min: -500, Max: 500},
}

func TestIDSource(t *testing.T) {
	var ids IDSource
	a, b, c := ids.Next(), ids.Next(), ids.Next()
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.Less(t, a, c)
}

func TestShipTurnAndAccelerate(t *testing.T) {
	s := NewShip(physics.Vector{X: 0, Y: 0})
	assert.Equal(t, 0.0, s.Heading)
	assert.Equal(t, physics.Vector{}, s.Vel)

	s.Accelerate()
	assert.InDelta(t, 1, s.Vel.X, 1e-12)
	assert.InDelta(t, 0, s.Vel.Y, 1e-12)

	for i := 0; i < 90/7+1; i++ {
		s.TurnLeft()
	}
	assert.Equal(t, 91.0, s.Heading)

	s.TurnRight()
	s.TurnRight()
	assert.Equal(t, 77.0, s.Heading)
}

func TestShipHeadingIsNotNormalized(t *testing.T) {
	s := NewShip(physics.Vector{})
	for i := 0; i < 100; i++ {
		s.TurnLeft()
	}
	assert.Equal(t, 700.0, s.Heading)

	s.Accelerate()
	assert.InDelta(t, math.Cos(700*math.Pi/180), s.Vel.X, 1e-12)
	assert.InDelta(t, math.Sin(700*math.Pi/180), s.Vel.Y, 1e-12)
}

func TestShipHasNoSpeedCap(t *testing.T) {
	s := NewShip(physics.Vector{})
	for i := 0; i < 1000; i++ {
		s.Accelerate()
	}
	assert.InDelta(t, 1000, s.Vel.Len(), 1e-9)

	s.Move(testField)
	assert.True(t, testField.Contains(s.Pos))
	assert.InDelta(t, 0, s.Pos.X, 1e-6) // 1000 units on a 1000 wide field
}

func TestAsteroidRadius(t *testing.T) {
	for size, want := range map[AsteroidSize]float64{
		AsteroidSmall:  15,
		AsteroidMedium: 25,
		AsteroidLarge:  35,
	} {
		a := NewAsteroid(1, physics.Vector{}, physics.Vector{X: 1, Y: 1}, size)
		assert.Equal(t, want, a.Radius(), "size %d", size)
	}
}

func TestAsteroidMoveWraps(t *testing.T) {
	a := NewAsteroid(1, physics.Vector{X: 499, Y: -499}, physics.Vector{X: 3, Y: -2}, AsteroidLarge)
	a.Move(testField)
	assert.InDelta(t, -498, a.Pos.X, 1e-9)
	assert.InDelta(t, 499, a.Pos.Y, 1e-9)
}

func TestAsteroidCollisionAcceleration(t *testing.T) {
	a := NewAsteroid(1, physics.Vector{}, physics.Vector{X: 3, Y: 4}, AsteroidLarge)
	a.CollisionAcceleration(physics.Vector{X: 2, Y: 1})
	// (2+3, 1+4) / |(3,4)| = (5, 5) / 5
	assert.Equal(t, physics.Vector{X: 1, Y: 1}, a.Vel)
}

func TestAsteroidCollisionAccelerationPanicsWhenStationary(t *testing.T) {
	a := NewAsteroid(7, physics.Vector{}, physics.Vector{}, AsteroidMedium)
	assert.Panics(t, func() { a.CollisionAcceleration(physics.Vector{X: 1}) })
}

func TestAsteroidFragmentAndSplitWays(t *testing.T) {
	parent := NewAsteroid(1, physics.Vector{X: 10, Y: 20}, physics.Vector{X: 1, Y: 2}, AsteroidLarge)
	require.True(t, parent.CanSplit())

	child := parent.Fragment(2)
	assert.Equal(t, ID(2), child.ID)
	assert.Equal(t, parent.Pos, child.Pos)
	assert.Equal(t, parent.Vel, child.Vel)
	assert.Equal(t, AsteroidMedium, child.Size)
	assert.True(t, child.CanSplit())

	child.SplitWays(-1)
	assert.Equal(t, physics.Vector{X: -1, Y: -2}, child.Vel)
	assert.Equal(t, physics.Vector{X: 1, Y: 2}, parent.Vel, "parent untouched")

	small := child.Fragment(3)
	assert.False(t, small.CanSplit())
}

func TestTorpedoLaunchVelocity(t *testing.T) {
	tp := NewTorpedo(1, physics.Vector{X: 5, Y: 5}, 90, physics.Vector{X: 1, Y: 1})
	assert.InDelta(t, 1, tp.Velocity().X, 1e-12)
	assert.InDelta(t, 3, tp.Velocity().Y, 1e-12)
	assert.Equal(t, 90.0, tp.Heading)
	assert.Equal(t, TorpedoRadius, tp.Radius())

	tp.Move(testField)
	assert.InDelta(t, 6, tp.Pos.X, 1e-12)
	assert.InDelta(t, 8, tp.Pos.Y, 1e-12)
	assert.InDelta(t, 3, tp.Velocity().Y, 1e-12, "velocity frozen after launch")
}

func TestEntityIntersections(t *testing.T) {
	ship := NewShip(physics.Vector{X: 0, Y: 0})
	rock := NewAsteroid(1, physics.Vector{X: 36, Y: 0}, physics.Vector{X: 1, Y: 1}, AsteroidLarge)
	assert.True(t, physics.Intersects(ship, rock), "35 + 1 == 36 touches")
	assert.True(t, physics.Intersects(rock, ship))

	rock.Pos.X = 36.5
	assert.False(t, physics.Intersects(ship, rock))

	tp := NewTorpedo(2, physics.Vector{X: 0, Y: 19}, 0, physics.Vector{})
	small := NewAsteroid(3, physics.Vector{}, physics.Vector{X: 1, Y: 1}, AsteroidSmall)
	assert.True(t, physics.Intersects(tp, small), "15 + 4 == 19 touches")
}
