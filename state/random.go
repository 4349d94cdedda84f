package state

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// randSource backs the Random factories. It is deliberately not safe for
// concurrent use; callers drawing random states from multiple goroutines must
// synchronize access.
//
//nolint:gosec
var randSource = rand.New(rand.NewSource(1))

// randomFloats returns n uniform draws in [-1, 1).
func randomFloats(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 2*randSource.Float64() - 1
	}
	return values
}

// randomVector returns a vector with uniform components in [-1, 1).
func randomVector() r3.Vector {
	return r3.Vector{
		X: 2*randSource.Float64() - 1,
		Y: 2*randSource.Float64() - 1,
		Z: 2*randSource.Float64() - 1,
	}
}

// randomUnitQuaternion draws uniformly from the unit quaternion manifold by
// normalizing four standard normal draws.
func randomUnitQuaternion() quat.Number {
	q := quat.Number{
		Real: randSource.NormFloat64(),
		Imag: randSource.NormFloat64(),
		Jmag: randSource.NormFloat64(),
		Kmag: randSource.NormFloat64(),
	}
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}
