package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// WrapAngle maps an angle in radians into [0, 2π).
func WrapAngle(radians float32) float32 {
	r := math32.Mod(radians, K_PI_2)
	if r < 0 {
		r += K_PI_2
	}
	return r
}
