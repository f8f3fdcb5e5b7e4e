package mathutil

import (
	"fmt"
	"math"
)

// Vector2 is a 2D point or displacement in logical pixels.
// Every operation except SnapToPixel returns a new value.
type Vector2 struct {
	X, Y float64
}

var (
	Zero  = Vector2{0, 0}
	One   = Vector2{1, 1}
	Left  = Vector2{-1, 0}
	Right = Vector2{1, 0}
	Up    = Vector2{0, -1}
	Down  = Vector2{0, 1}
)

// V creates a Vector2.
func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vector2) Subtract(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

func (v Vector2) Multiply(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Divide(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in the same direction.
// The zero vector has no direction: the result has NaN components, so
// callers must check Magnitude first.
func (v Vector2) Normalize() Vector2 {
	mag := v.Magnitude()
	return Vector2{X: v.X / mag, Y: v.Y / mag}
}

func (v Vector2) DistanceTo(w Vector2) float64 {
	return math.Sqrt(v.SquaredDistanceTo(w))
}

// SquaredDistanceTo skips the square root; use it for comparisons.
func (v Vector2) SquaredDistanceTo(w Vector2) float64 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	return dx*dx + dy*dy
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vector2 {
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// ToAngle returns atan2(y, x).
func (v Vector2) ToAngle() float64 {
	return math.Atan2(v.Y, v.X)
}

// SnapToPixel rounds both components to the nearest integer in place.
func (v *Vector2) SnapToPixel() {
	v.X = math.Round(v.X)
	v.Y = math.Round(v.Y)
}

func (v Vector2) Clone() Vector2 {
	return v
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", v.X, v.Y)
}
