// Package utils contains small shared helpers for angles, floats and 3-vectors.
package utils

import (
	"math"

	"github.com/golang/geo/r3"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Square returns the square of the given number.
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual determines if two float64s are within a given epsilon of each other.
func Float64AlmostEqual(v1, v2, epsilon float64) bool {
	return math.Abs(v1-v2) < epsilon
}

// R3VectorAlmostEqual determines if two r3.Vectors are within a given epsilon of
// each other componentwise.
func R3VectorAlmostEqual(v1, v2 r3.Vector, epsilon float64) bool {
	return Float64AlmostEqual(v1.X, v2.X, epsilon) &&
		Float64AlmostEqual(v1.Y, v2.Y, epsilon) &&
		Float64AlmostEqual(v1.Z, v2.Z, epsilon)
}

// Float64sAlmostEqual determines if two slices of float64 are elementwise within
// a given epsilon of each other. Slices of differing lengths are never equal.
func Float64sAlmostEqual(v1, v2 []float64, epsilon float64) bool {
	if len(v1) != len(v2) {
		return false
	}
	for i := range v1 {
		if !Float64AlmostEqual(v1[i], v2[i], epsilon) {
			return false
		}
	}
	return true
}
