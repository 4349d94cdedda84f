package state

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/staterep/utils"
)

func TestQuatNormalize(t *testing.T) {
	q := quatNormalize(quat.Number{Real: 3, Imag: 4})
	test.That(t, quatNorm(q), test.ShouldAlmostEqual, 1)
	test.That(t, q.Real, test.ShouldAlmostEqual, 0.6)

	// the zero quaternion falls back to identity
	test.That(t, quatNormalize(quat.Number{}), test.ShouldResemble, quat.Number{Real: 1})
}

func TestQuatRotate(t *testing.T) {
	halfSqrt := math.Sqrt(2) / 2
	q := quat.Number{Real: halfSqrt, Kmag: halfSqrt}
	out := quatRotate(q, r3.Vector{X: 1})
	test.That(t, utils.R3VectorAlmostEqual(out, r3.Vector{Y: 1}, 1e-9), test.ShouldBeTrue)
}

func TestShortestArcLog(t *testing.T) {
	halfSqrt := math.Sqrt(2) / 2
	q := quat.Number{Real: halfSqrt, Kmag: halfSqrt}
	logQ := shortestArcLog(q)
	// half the rotation angle along the axis
	test.That(t, utils.R3VectorAlmostEqual(quatVec(logQ), r3.Vector{Z: math.Pi / 4}, 1e-9), test.ShouldBeTrue)

	// q and -q encode the same rotation and must yield the same arc
	negQ := quat.Scale(-1, q)
	logNeg := shortestArcLog(negQ)
	test.That(t, utils.R3VectorAlmostEqual(quatVec(logNeg), quatVec(logQ), 1e-9), test.ShouldBeTrue)
}

func TestQuatAngularDistance(t *testing.T) {
	id := quat.Number{Real: 1}
	halfSqrt := math.Sqrt(2) / 2
	quarter := quat.Number{Real: halfSqrt, Kmag: halfSqrt}
	test.That(t, quatAngularDistance(id, quarter), test.ShouldAlmostEqual, math.Pi/2, 1e-9)
	test.That(t, quatAngularDistance(quarter, quarter), test.ShouldAlmostEqual, 0, 1e-9)
	// double cover: -q is at zero distance from q
	test.That(t, quatAngularDistance(quarter, quat.Scale(-1, quarter)), test.ShouldAlmostEqual, 0, 1e-9)
}

func TestQuatScalePow(t *testing.T) {
	halfSqrt := math.Sqrt(2) / 2
	quarter := quat.Number{Real: halfSqrt, Kmag: halfSqrt}

	same := quatScalePow(quarter, 1)
	test.That(t, quatAlmostEqual(same, quarter, 1e-9), test.ShouldBeTrue)

	id := quatScalePow(quarter, 0)
	test.That(t, quatAlmostEqual(id, quat.Number{Real: 1}, 1e-9), test.ShouldBeTrue)

	double := quatScalePow(quarter, 2)
	half := quat.Number{Real: math.Cos(math.Pi / 2), Kmag: math.Sin(math.Pi / 2)}
	test.That(t, quatAlmostEqual(double, half, 1e-9), test.ShouldBeTrue)
}

func TestRandomUnitQuaternion(t *testing.T) {
	for i := 0; i < 10; i++ {
		q := randomUnitQuaternion()
		test.That(t, quatNorm(q), test.ShouldAlmostEqual, 1, 1e-12)
	}
}
