package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi]. Swapped bounds are
// accepted.
func Clamp[T Sample](value, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(value, lo), hi)
}

// ClampInt limits n to the inclusive range [lo, hi].
func ClampInt(n, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(n, lo), hi)
}

// NearlyEqual reports whether a and b are equal within eps, either absolutely
// or relative to the larger magnitude.
func NearlyEqual[T Sample](a, b, eps T) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := T(math.Abs(float64(a - b)))
	if diff <= eps {
		return true
	}

	largest := T(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in feedback loops.
func FlushDenormals[T Sample](x T) T {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Sample](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
