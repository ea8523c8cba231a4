package core

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp returns f limited to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Wrap folds f into the half-open range [0, period). Non-finite values are
// returned unchanged.
func Wrap(f, period float32) float32 {
	if period <= 0 || math32.IsNaN(f) || math32.IsInf(f, 0) {
		return f
	}
	f = math32.Mod(f, period)
	if f < 0 {
		f += period
	}
	// a tiny negative remainder can round up to period
	if f >= period {
		f = 0
	}
	return f
}
