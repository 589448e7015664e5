package algebra

import "math"

// Tolerance is the relative tolerance used for approximate equality.
const Tolerance = 1e-9

// Approx reports whether a and b are equal within [Tolerance], scaled by the
// larger magnitude once it exceeds 1.
func Approx(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}

// IsZero reports whether v is approximately zero.
func IsZero(v float64) bool { return Approx(v, 0) }

// cancels reports whether a+b is only rounding noise relative to its inputs.
func cancels(a, b float64) bool {
	return math.Abs(a+b) <= Tolerance*math.Max(math.Abs(a), math.Abs(b))
}
