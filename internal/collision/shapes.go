package collision

import (
	"fmt"

	"slidepuzzle/internal/mathutil"
)

// Shape is one of Point, *Rectangle or *Circle. The set is closed: the
// unexported marker keeps other packages from adding variants Check cannot
// dispatch.
type Shape interface {
	shapeName() string
}

// Point is a bare position, typically the pointer.
type Point mathutil.Vector2

func (Point) shapeName() string { return "Point" }

// Rectangle is an axis-aligned box anchored at its top-left corner.
type Rectangle struct {
	Position mathutil.Vector2
	Width    float64
	Height   float64
}

// NewRectangle creates a rectangle with its top-left corner at (x, y).
func NewRectangle(x, y, width, height float64) *Rectangle {
	return &Rectangle{
		Position: mathutil.V(x, y),
		Width:    width,
		Height:   height,
	}
}

func (*Rectangle) shapeName() string { return "Rectangle" }

// UpdatePosition moves the rectangle; owners call it after every move.
func (r *Rectangle) UpdatePosition(v mathutil.Vector2) {
	r.Position = v
}

// GetBounds returns the min/max coordinates of the rectangle.
func (r *Rectangle) GetBounds() (minX, minY, maxX, maxY float64) {
	return r.Position.X, r.Position.Y, r.Position.X + r.Width, r.Position.Y + r.Height
}

// Center returns the middle of the rectangle.
func (r *Rectangle) Center() mathutil.Vector2 {
	return mathutil.V(r.Position.X+r.Width/2, r.Position.Y+r.Height/2)
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%g, %g, %gx%g)", r.Position.X, r.Position.Y, r.Width, r.Height)
}

// Circle is described by its centre and radius.
type Circle struct {
	Position mathutil.Vector2
	Radius   float64
}

// NewCircle creates a circle centred at (x, y).
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{Position: mathutil.V(x, y), Radius: radius}
}

func (*Circle) shapeName() string { return "Circle" }

// UpdatePosition moves the circle centre.
func (c *Circle) UpdatePosition(v mathutil.Vector2) {
	c.Position = v
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%g, %g, r=%g)", c.Position.X, c.Position.Y, c.Radius)
}

func nameOf(s Shape) string {
	if s == nil {
		return "nil"
	}
	return s.shapeName()
}
