package mathutil

import (
	"math"
	"math/rand"
)

// Clamp restricts value to [lo, hi] (search: scalar-math).
func Clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// MapValue clamps value to [oldMin, oldMax] and maps it linearly onto
// [newMin, newMax] (search: scalar-math).
func MapValue(value, oldMin, oldMax, newMin, newMax float64) float64 {
	value = Clamp(value, oldMin, oldMax)
	oldRange := oldMax - oldMin
	newRange := newMax - newMin
	return (value-oldMin)/oldRange*newRange + newMin
}

// ToRadians converts degrees to radians (search: scalar-math).
func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// ToDegrees converts radians to degrees (search: scalar-math).
func ToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// RandomInt returns an integer in the inclusive range [lo, hi].
func RandomInt(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return r.Intn(hi-lo+1) + lo
}

// RandomFloat returns a float in the half-open range [lo, hi).
func RandomFloat(r *rand.Rand, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}
