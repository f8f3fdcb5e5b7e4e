package collision

import (
	"errors"
	"fmt"
	"os"

	"slidepuzzle/internal/mathutil"

	"github.com/charmbracelet/log"
)

// ErrUnsupportedPair is returned by Check for shape pairs with no test.
var ErrUnsupportedPair = errors.New("collision: unsupported shape pair")

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "collision"})

// SetLogger replaces the logger used for unsupported-pair diagnostics.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Check reports whether a and b overlap. Supported pairs are point-rectangle,
// point-circle, rectangle-rectangle, circle-circle and rectangle-circle in
// either order; anything else returns ErrUnsupportedPair.
func Check(a, b Shape) (bool, error) {
	switch s1 := a.(type) {
	case Point:
		switch s2 := b.(type) {
		case *Rectangle:
			if s2 != nil {
				return pointRect(s1, s2), nil
			}
		case *Circle:
			if s2 != nil {
				return pointCircle(s1, s2), nil
			}
		}
	case *Rectangle:
		if s1 == nil {
			break
		}
		switch s2 := b.(type) {
		case *Rectangle:
			if s2 != nil {
				return rectRect(s1, s2), nil
			}
		case *Circle:
			if s2 != nil {
				return rectCircle(s1, s2), nil
			}
		}
	case *Circle:
		if s1 == nil {
			break
		}
		switch s2 := b.(type) {
		case *Circle:
			if s2 != nil {
				return circleCircle(s1, s2), nil
			}
		case *Rectangle:
			if s2 != nil {
				return rectCircle(s2, s1), nil
			}
		}
	}
	return false, fmt.Errorf("%w: %s and %s", ErrUnsupportedPair, nameOf(a), nameOf(b))
}

// Collides is Check for callers that only want a yes/no answer. An
// unsupported pair is logged and counts as no collision.
func Collides(a, b Shape) bool {
	hit, err := Check(a, b)
	if err != nil {
		logger.Warn("collision is not valid", "err", err)
		return false
	}
	return hit
}

// pointRect excludes the boundary.
func pointRect(p Point, r *Rectangle) bool {
	withinX := p.X > r.Position.X && p.X < r.Position.X+r.Width
	withinY := p.Y > r.Position.Y && p.Y < r.Position.Y+r.Height
	return withinX && withinY
}

func pointCircle(p Point, c *Circle) bool {
	return mathutil.Vector2(p).SquaredDistanceTo(c.Position) <= c.Radius*c.Radius
}

// rectRect treats both rectangles as half-open intervals, so touching edges
// do not overlap.
func rectRect(r1, r2 *Rectangle) bool {
	horizontal := r1.Position.X < r2.Position.X+r2.Width && r1.Position.X+r1.Width > r2.Position.X
	vertical := r1.Position.Y < r2.Position.Y+r2.Height && r1.Position.Y+r1.Height > r2.Position.Y
	return horizontal && vertical
}

func circleCircle(c1, c2 *Circle) bool {
	reach := c1.Radius + c2.Radius
	return c1.Position.SquaredDistanceTo(c2.Position) <= reach*reach
}

func rectCircle(r *Rectangle, c *Circle) bool {
	minX, minY, maxX, maxY := r.GetBounds()
	cx, cy := c.Position.X, c.Position.Y

	if cx >= minX && cx <= maxX && cy >= minY && cy <= maxY {
		return true
	}

	closest := mathutil.V(mathutil.Clamp(cx, minX, maxX), mathutil.Clamp(cy, minY, maxY))
	return closest.SquaredDistanceTo(c.Position) <= c.Radius*c.Radius
}
