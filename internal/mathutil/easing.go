package mathutil

import "math"

// Easing selects the curve Lerp applies to its progress parameter.
type Easing int

const (
	Linear Easing = iota
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
)

var easingNames = map[Easing]string{
	Linear:           "linear",
	EaseInSine:       "easeInSine",
	EaseOutSine:      "easeOutSine",
	EaseInOutSine:    "easeInOutSine",
	EaseInCubic:      "easeInCubic",
	EaseOutCubic:     "easeOutCubic",
	EaseInOutCubic:   "easeInOutCubic",
	EaseInElastic:    "easeInElastic",
	EaseOutElastic:   "easeOutElastic",
	EaseInOutElastic: "easeInOutElastic",
}

func (e Easing) String() string {
	if name, ok := easingNames[e]; ok {
		return name
	}
	return "linear"
}

// ParseEasing resolves a config name such as "easeOutElastic".
// Unknown names resolve to Linear with ok=false.
func ParseEasing(name string) (e Easing, ok bool) {
	for kind, n := range easingNames {
		if n == name {
			return kind, true
		}
	}
	return Linear, false
}

// Apply warps t along the curve. Unknown kinds leave t unchanged.
func (e Easing) Apply(t float64) float64 {
	switch e {
	case EaseInSine:
		return 1 - math.Cos(t*math.Pi/2)
	case EaseOutSine:
		return math.Sin(t * math.Pi / 2)
	case EaseInOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		return 1 - math.Pow(1-t, 3)
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	case EaseInElastic:
		return easeInElastic(t)
	case EaseOutElastic:
		return easeOutElastic(t)
	case EaseInOutElastic:
		return easeInOutElastic(t)
	default:
		return t
	}
}

func easeInElastic(t float64) float64 {
	const c4 = 2 * math.Pi / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
}

func easeOutElastic(t float64) float64 {
	const c4 = 2 * math.Pi / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

func easeInOutElastic(t float64) float64 {
	const c5 = 2 * math.Pi / 4.5
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
	}
	return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5)/2 + 1
}

// Lerp interpolates from start to end at progress t warped by easing.
// t is not clamped; keeping it in [0, 1] is the caller's job.
func Lerp(start, end, t float64, easing Easing) float64 {
	t = easing.Apply(t)
	return start*(1-t) + end*t
}
