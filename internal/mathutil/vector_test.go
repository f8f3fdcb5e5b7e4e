package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(2, 6), a.Subtract(b))
	assert.Equal(t, V(6, 8), a.Multiply(2))
	assert.Equal(t, V(1.5, 2), a.Divide(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Magnitude())

	// Operations never mutate the receiver.
	assert.Equal(t, V(3, 4), a)
}

func TestVectorNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-12)

	z := Zero.Normalize()
	assert.True(t, math.IsNaN(z.X) && math.IsNaN(z.Y), "zero vector has no direction")
}

func TestVectorDistance(t *testing.T) {
	a := V(1, 1)
	b := V(4, 5)
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 25.0, a.SquaredDistanceTo(b))
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
}

func TestVectorAngles(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vector2
	}{
		{"right", 0, Right},
		{"down", math.Pi / 2, Down},
		{"left", math.Pi, Left},
		{"up", -math.Pi / 2, Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromAngle(tt.angle)
			assert.InDelta(t, tt.want.X, v.X, 1e-12)
			assert.InDelta(t, tt.want.Y, v.Y, 1e-12)
			assert.InDelta(t, tt.angle, v.ToAngle(), 1e-12)
		})
	}
}

func TestSnapToPixel(t *testing.T) {
	v := V(10.4, -2.6)
	c := v.Clone()
	v.SnapToPixel()
	assert.Equal(t, V(10, -3), v)
	assert.Equal(t, V(10.4, -2.6), c, "clone is independent")
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 50.0, MapValue(0.5, 0, 1, 0, 100))
	assert.Equal(t, 100.0, MapValue(3, 0, 1, 0, 100), "input is clamped to the source range")
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-12)
	assert.InDelta(t, 90.0, ToDegrees(math.Pi/2), 1e-12)
}
