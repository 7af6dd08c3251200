// Package utils contains small numeric and error helpers shared across kinmath.
package utils

import (
	"math"
)

// floatEpsilon is the default tolerance used when comparing floats that came out of
// trigonometric round trips.
const floatEpsilon = 1e-8

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual reports whether a and b differ by no more than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// NearZero reports whether x is within the default tolerance of zero.
func NearZero(x float64) bool {
	return math.Abs(x) <= floatEpsilon
}

// SlicesAlmostEqual reports whether a and b have the same length and every pair of
// elements differs by no more than epsilon.
func SlicesAlmostEqual(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Float64AlmostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// Square returns n*n. Math.pow( x, 2 ) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}
