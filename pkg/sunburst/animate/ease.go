package animate

import (
	"fmt"
	"math"
)

// Easing maps linear progress in [0, 1] to eased progress in [0, 1] with
// f(0) = 0 and f(1) = 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// CubicInOut accelerates through the first half and decelerates through
// the second.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// SinInOut follows half a cosine period.
func SinInOut(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// Easings lists the named curves accepted by ParseEasing.
var Easings = map[string]Easing{
	"linear":      Linear,
	"cubic-inout": CubicInOut,
	"sin-inout":   SinInOut,
}

// ParseEasing resolves an easing by name. The empty name selects CubicInOut.
func ParseEasing(name string) (Easing, error) {
	if name == "" {
		return CubicInOut, nil
	}
	if e, ok := Easings[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}
