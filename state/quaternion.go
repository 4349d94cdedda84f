package state

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// quatNorm returns the 4D Euclidean norm of the quaternion.
func quatNorm(q quat.Number) float64 {
	return math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// quatNormalize rescales q to unit norm; the zero quaternion normalizes to identity.
func quatNormalize(q quat.Number) quat.Number {
	n := quatNorm(q)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}

// quatDot is the 4D dot product of two quaternions.
func quatDot(q1, q2 quat.Number) float64 {
	return q1.Real*q2.Real + q1.Imag*q2.Imag + q1.Jmag*q2.Jmag + q1.Kmag*q2.Kmag
}

// quatVec extracts the imaginary part of q as a 3-vector.
func quatVec(q quat.Number) r3.Vector {
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// quatFromVec boxes a 3-vector into a pure quaternion.
func quatFromVec(v r3.Vector) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// quatRotate rotates v by the unit quaternion q.
func quatRotate(q quat.Number, v r3.Vector) r3.Vector {
	return quatVec(quat.Mul(quat.Mul(q, quatFromVec(v)), quat.Conj(q)))
}

// shortestArcLog returns the quaternion logarithm of q with the sign chosen so
// that the reported rotation follows the shorter arc: when the 4D dot product
// of q and log(q) is negative, the log is flipped.
func shortestArcLog(q quat.Number) quat.Number {
	logQ := quat.Log(q)
	if quatDot(q, logQ) < 0 {
		logQ = quat.Scale(-1, logQ)
	}
	return logQ
}

// quatAngularDistance returns the rotation angle in radians between two unit
// quaternions.
func quatAngularDistance(q1, q2 quat.Number) float64 {
	diff := quat.Mul(q1, quat.Conj(q2))
	return 2 * math.Atan2(quatVec(diff).Norm(), math.Abs(diff.Real))
}

// quatScalePow raises the unit quaternion to the power lambda via the log map,
// following the shorter arc.
func quatScalePow(q quat.Number, lambda float64) quat.Number {
	return quatNormalize(quat.Exp(quat.Scale(lambda, shortestArcLog(q))))
}

// quatAlmostEqual reports whether two quaternions describe nearly the same
// rotation, treating q and -q as equal.
func quatAlmostEqual(q1, q2 quat.Number, epsilon float64) bool {
	return math.Abs(quatDot(q1, q2)) > 1-epsilon
}
