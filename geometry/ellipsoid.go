package geometry

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/staterep/logging"
	"go.viam.com/staterep/state"
)

// minFitPoints is the number of points needed to constrain a planar conic.
const minFitPoints = 5

// Ellipsoid is a planar ellipse embedded in 3D: a shape with two axis lengths
// and a rotation angle about the z axis of its center pose.
type Ellipsoid struct {
	Shape
	axisLengths   [2]float64
	rotationAngle float64
}

// NewEllipsoid returns an empty ellipsoid in the given reference frame.
func NewEllipsoid(name, referenceFrame string) Ellipsoid {
	return Ellipsoid{
		Shape:       newShape(state.TypeEllipsoid, name, referenceFrame),
		axisLengths: [2]float64{1, 1},
	}
}

// UnitEllipsoid returns a filled ellipsoid with identity center, unit axis
// lengths and zero rotation angle.
func UnitEllipsoid(name, referenceFrame string) Ellipsoid {
	e := NewEllipsoid(name, referenceFrame)
	e.SetEmpty(false)
	e.ResetTimestamp()
	return e
}

// AxisLengths returns the two semi-axis lengths.
func (e *Ellipsoid) AxisLengths() [2]float64 {
	return e.axisLengths
}

// AxisLength returns the semi-axis length along one direction, 0 for x and 1
// for y.
func (e *Ellipsoid) AxisLength(index int) (float64, error) {
	if index < 0 || index >= len(e.axisLengths) {
		return 0, NewAxisIndexOutOfRangeError(index, len(e.axisLengths))
	}
	return e.axisLengths[index], nil
}

// SetAxisLengths assigns both semi-axis lengths.
func (e *Ellipsoid) SetAxisLengths(lengths [2]float64) {
	e.axisLengths = lengths
	e.SetEmpty(false)
	e.ResetTimestamp()
}

// SetAxisLength assigns the semi-axis length along one direction.
func (e *Ellipsoid) SetAxisLength(index int, length float64) error {
	if index < 0 || index >= len(e.axisLengths) {
		return NewAxisIndexOutOfRangeError(index, len(e.axisLengths))
	}
	e.axisLengths[index] = length
	e.SetEmpty(false)
	e.ResetTimestamp()
	return nil
}

// RotationAngle returns the rotation about the z axis of the center pose.
func (e *Ellipsoid) RotationAngle() float64 {
	return e.rotationAngle
}

// SetRotationAngle assigns the rotation about the z axis of the center pose.
func (e *Ellipsoid) SetRotationAngle(angle float64) {
	e.rotationAngle = angle
	e.SetEmpty(false)
	e.ResetTimestamp()
}

// Rotation returns the rotation angle as a pure-rotation pose attached to the
// center frame.
func (e *Ellipsoid) Rotation() (state.CartesianPose, error) {
	if e.IsEmpty() {
		return state.CartesianPose{}, state.NewEmptyStateError(e.Name())
	}
	orientation := quat.Number{Real: math.Cos(e.rotationAngle / 2), Kmag: math.Sin(e.rotationAngle / 2)}
	return state.NewCartesianPoseFromOrientation(e.center.Name()+"_rotated", orientation, e.center.Name()), nil
}

// SampleFromParameterization returns poses spread uniformly in parameter
// angle along the ellipse contour, expressed in the center's reference frame.
func (e *Ellipsoid) SampleFromParameterization(nbSamples int) ([]state.CartesianPose, error) {
	if e.IsEmpty() {
		return nil, state.NewEmptyStateError(e.Name())
	}
	rotation, err := e.Rotation()
	if err != nil {
		return nil, err
	}
	rotated, err := e.center.Compose(rotation)
	if err != nil {
		return nil, err
	}
	samples := make([]state.CartesianPose, 0, nbSamples)
	for i := 0; i < nbSamples; i++ {
		alpha := 2 * math.Pi * float64(i) / float64(nbSamples)
		local := state.NewCartesianPoseFromPosition(
			fmt.Sprintf("%s_sample_%d", e.Name(), i),
			r3.Vector{X: e.axisLengths[0] * math.Cos(alpha), Y: e.axisLengths[1] * math.Sin(alpha)},
			rotated.Name(),
		)
		sample, err := rotated.Compose(local)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// EllipsoidFromAlgebraicEquation converts the conic
// ax^2 + bxy + cy^2 + dx + ey + f = 0 into its geometric representation. The
// coefficients must describe an ellipse, so b^2 - 4ac has to be negative.
func EllipsoidFromAlgebraicEquation(name string, coefficients []float64, referenceFrame string) (Ellipsoid, error) {
	if len(coefficients) != 6 {
		return Ellipsoid{}, state.NewIncompatibleSizeError(6, len(coefficients))
	}
	a, b, c := coefficients[0], coefficients[1], coefficients[2]
	d, f, g := coefficients[3], coefficients[4], coefficients[5]
	// canonicalize the overall sign so the axis and angle conventions below
	// do not depend on how the caller scaled the conic
	if a+c < 0 {
		a, b, c, d, f, g = -a, -b, -c, -d, -f, -g
	}
	den := b*b - 4*a*c
	if den >= 0 {
		return Ellipsoid{}, NewNotAnEllipseError()
	}
	centerX := (2*c*d - b*f) / den
	centerY := (2*a*f - b*d) / den
	angle := 0.5 * math.Atan2(b, a-c)
	common := 2 * (a*f*f + c*d*d + g*b*b - b*d*f - 4*a*c*g)
	spread := math.Sqrt((a-c)*(a-c) + b*b)
	// the axis aligned with the rotation angle comes from the tighter branch
	alongAngle := -math.Sqrt(common*(a+c-spread)) / den
	acrossAngle := -math.Sqrt(common*(a+c+spread)) / den
	if math.IsNaN(alongAngle) || math.IsNaN(acrossAngle) {
		return Ellipsoid{}, NewNotAnEllipseError()
	}
	e := NewEllipsoid(name, referenceFrame)
	e.SetCenterPosition(r3.Vector{X: centerX, Y: centerY})
	e.SetRotationAngle(angle)
	e.SetAxisLengths([2]float64{alongAngle, acrossAngle})
	return e, nil
}

// dedupePoints drops points closer than noiseLevel to the previously kept
// one, so repeated measurements do not dominate the least-squares problem.
func dedupePoints(points []state.CartesianPose, noiseLevel float64) []state.CartesianPose {
	if noiseLevel <= 0 {
		return points
	}
	kept := make([]state.CartesianPose, 0, len(points))
	for _, p := range points {
		if len(kept) > 0 && kept[len(kept)-1].Position().Sub(p.Position()).Norm() < noiseLevel {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// FitEllipsoid fits an ellipse to the xy projection of the given points with
// the direct least-squares method of Fitzgibbon et al., in the numerically
// stable formulation of Halir and Flusser. The fitted center keeps the mean z
// of the points.
func FitEllipsoid(
	logger logging.Logger, name string, points []state.CartesianPose, referenceFrame string, noiseLevel float64,
) (Ellipsoid, error) {
	points = dedupePoints(points, noiseLevel)
	if len(points) < minFitPoints {
		return Ellipsoid{}, NewInsufficientPointsError(len(points), minFitPoints)
	}
	n := len(points)
	quadratic := mat.NewDense(n, 3, nil)
	linear := mat.NewDense(n, 3, nil)
	meanZ := 0.0
	for i, p := range points {
		pos := p.Position()
		quadratic.SetRow(i, []float64{pos.X * pos.X, pos.X * pos.Y, pos.Y * pos.Y})
		linear.SetRow(i, []float64{pos.X, pos.Y, 1})
		meanZ += pos.Z / float64(n)
	}

	var s1, s2, s3 mat.Dense
	s1.Mul(quadratic.T(), quadratic)
	s2.Mul(quadratic.T(), linear)
	s3.Mul(linear.T(), linear)

	// t = -s3^-1 * s2^T carries the linear part of the conic.
	var t mat.Dense
	var negS2T mat.Dense
	negS2T.Scale(-1, s2.T())
	if err := t.Solve(&s3, &negS2T); err != nil {
		return Ellipsoid{}, NewFitFailedError("the linear scatter matrix is singular")
	}

	var m mat.Dense
	m.Mul(&s2, &t)
	m.Add(&s1, &m)
	reduced := mat.NewDense(3, 3, nil)
	reduced.SetRow(0, []float64{m.At(2, 0) / 2, m.At(2, 1) / 2, m.At(2, 2) / 2})
	reduced.SetRow(1, []float64{-m.At(1, 0), -m.At(1, 1), -m.At(1, 2)})
	reduced.SetRow(2, []float64{m.At(0, 0) / 2, m.At(0, 1) / 2, m.At(0, 2) / 2})

	var eig mat.Eigen
	if !eig.Factorize(reduced, mat.EigenRight) {
		return Ellipsoid{}, NewFitFailedError("eigendecomposition of the reduced scatter matrix did not converge")
	}
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	// the elliptical solution is the eigenvector satisfying 4ac - b^2 > 0
	var conic []float64
	for j := 0; j < 3; j++ {
		v := []float64{real(vectors.At(0, j)), real(vectors.At(1, j)), real(vectors.At(2, j))}
		if 4*v[0]*v[2]-v[1]*v[1] > 0 {
			conic = v
			break
		}
	}
	if conic == nil {
		return Ellipsoid{}, NewFitFailedError("no elliptical solution among the eigenvectors")
	}
	linearPart := mat.NewVecDense(3, nil)
	linearPart.MulVec(&t, mat.NewVecDense(3, slices.Clone(conic)))
	coefficients := append(conic, linearPart.AtVec(0), linearPart.AtVec(1), linearPart.AtVec(2))

	logger.Debugw("fitted ellipse from points",
		"name", name, "points", n, "coefficients", coefficients)

	e, err := EllipsoidFromAlgebraicEquation(name, coefficients, referenceFrame)
	if err != nil {
		return Ellipsoid{}, err
	}
	center := e.CenterPosition()
	center.Z = meanZ
	e.SetCenterPosition(center)
	return e, nil
}

// Data returns the ellipsoid parameters as
// [center_x, center_y, center_z, rotation_angle, axis_x, axis_y].
func (e *Ellipsoid) Data() ([]float64, error) {
	if e.IsEmpty() {
		return nil, state.NewEmptyStateError(e.Name())
	}
	pos := e.CenterPosition()
	return []float64{pos.X, pos.Y, pos.Z, e.rotationAngle, e.axisLengths[0], e.axisLengths[1]}, nil
}

// SetData assigns the ellipsoid parameters from a 6-vector laid out as Data.
func (e *Ellipsoid) SetData(data []float64) error {
	if len(data) != 6 {
		return state.NewIncompatibleSizeError(6, len(data))
	}
	e.SetCenterPosition(r3.Vector{X: data[0], Y: data[1], Z: data[2]})
	e.SetRotationAngle(data[3])
	e.SetAxisLengths([2]float64{data[4], data[5]})
	return nil
}

func (e *Ellipsoid) String() string {
	if e.IsEmpty() {
		return fmt.Sprintf("Empty %s: %s", e.Type(), e.Name())
	}
	return fmt.Sprintf("%s: %s with center:\n%s\naxis lengths: [%g, %g]\nrotation angle: %g",
		e.Type(), e.Name(), e.center.String(), e.axisLengths[0], e.axisLengths[1], e.rotationAngle)
}
