package vmath

import "math"

// Float limits used to seed min/max accumulators
const (
	MaxFloat = math.MaxFloat64
	MinFloat = -math.MaxFloat64
)

// --- Arithmetic ---

// Sqr returns s*s
func Sqr(s float64) float64 { return s * s }

// SafeRatio0 returns a/b, or 0 when b is zero
func SafeRatio0(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// SafeRatio1 returns a/b, or 1 when b is zero
func SafeRatio1(a, b float64) float64 {
	if b == 0 {
		return 1
	}
	return a / b
}

// Lerp moves a toward b by fraction t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapCentered folds v into the interval [-extent/2, extent/2]
// Values already inside are returned unchanged; extent <= 0 disables wrapping
func WrapCentered(v, extent float64) float64 {
	if extent <= 0 {
		return v
	}
	half := extent * 0.5
	if v > half {
		return math.Mod(v+half, extent) - half
	}
	if v < -half {
		return half - math.Mod(half-v, extent)
	}
	return v
}

// insertionSort sorts small fixed-size coordinate sets in place
func insertionSort(values []float64) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j-1] > values[j]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}
