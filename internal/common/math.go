package common

import "math"

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampNonNegative returns 0 for negative inputs, x otherwise
func ClampNonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// IsFinite reports whether x is neither NaN nor an infinity
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// GeometricSum sums ratio^(start) + ratio^(start+1) + ... + ratio^(start+count-1)
func GeometricSum(ratio float64, start, count int) float64 {
	sum := 0.0
	for i := 0; i < count; i++ {
		sum += math.Pow(ratio, float64(start+i))
	}
	return sum
}
