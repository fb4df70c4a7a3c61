// Package physics provides the toroidal motion model, collision detection
// and distance utilities shared by every arcade entity.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateBounds is returned when an axis has Max <= Min.
var ErrDegenerateBounds = errors.New("degenerate bounds")

// Vector is a 2D position or velocity.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Len returns the magnitude of v.
func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Bounds is one axis of the world. Coordinates wrap at the boundary
// (Asteroids-style) instead of clamping or reflecting.
type Bounds struct {
	Min, Max float64
}

// Size returns Max - Min.
func (b Bounds) Size() float64 {
	return b.Max - b.Min
}

// Validate reports degenerate bounds.
func (b Bounds) Validate() error {
	if !(b.Max > b.Min) {
		return fmt.Errorf("%w: min=%v max=%v", ErrDegenerateBounds, b.Min, b.Max)
	}
	return nil
}

// Advance moves coord by velocity and wraps the result into [Min, Max).
// Any number of wraps is handled by a single floor-modulo:
//
//	new = ((velocity + coord - Min) mod (Max - Min)) + Min
func (b Bounds) Advance(coord, velocity float64) float64 {
	size := b.Size()
	r := math.Mod(velocity+coord-b.Min, size)
	if r < 0 {
		r += size
	}
	// A tiny negative remainder can round up to exactly size.
	if r >= size {
		r -= size
	}
	return r + b.Min
}

// Contains reports whether coord lies in [Min, Max).
func (b Bounds) Contains(coord float64) bool {
	return coord >= b.Min && coord < b.Max
}

// Field is the toroidal 2D world.
type Field struct {
	X, Y Bounds
}

// Validate reports degenerate bounds on either axis.
func (f Field) Validate() error {
	if err := f.X.Validate(); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := f.Y.Validate(); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// Width returns the x extent of the field.
func (f Field) Width() float64 {
	return f.X.Size()
}

// Height returns the y extent of the field.
func (f Field) Height() float64 {
	return f.Y.Size()
}

// Advance moves pos by vel on both axes with wraparound.
func (f Field) Advance(pos, vel Vector) Vector {
	return Vector{
		X: f.X.Advance(pos.X, vel.X),
		Y: f.Y.Advance(pos.Y, vel.Y),
	}
}

// Contains reports whether pos lies inside the field.
func (f Field) Contains(pos Vector) bool {
	return f.X.Contains(pos.X) && f.Y.Contains(pos.Y)
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles touch or overlap.
// Exact tangency counts as a collision.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) <= r1+r2
}

// Circle is anything with a center and a collision radius.
type Circle interface {
	Position() Vector
	Radius() float64
}

// Intersects reports whether two circles collide. It is symmetric.
func Intersects(a, b Circle) bool {
	pa, pb := a.Position(), b.Position()
	return CirclesOverlap(pa.X, pa.Y, a.Radius(), pb.X, pb.Y, b.Radius())
}
