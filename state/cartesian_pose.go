package state

import (
	"time"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// CartesianPose is a Cartesian state narrowed to the position and orientation
// blocks.
type CartesianPose struct {
	CartesianState
}

// NewCartesianPose returns an empty pose expressed in the world frame.
func NewCartesianPose(name string) CartesianPose {
	return NewCartesianPoseInFrame(name, WorldFrame)
}

// NewCartesianPoseInFrame returns an empty pose expressed in the given
// reference frame.
func NewCartesianPoseInFrame(name, referenceFrame string) CartesianPose {
	return CartesianPose{newCartesianState(TypeCartesianPose, name, referenceFrame)}
}

// NewCartesianPoseFromPosition returns a filled pose at the given position
// with identity orientation.
func NewCartesianPoseFromPosition(name string, position r3.Vector, referenceFrame string) CartesianPose {
	cp := NewCartesianPoseInFrame(name, referenceFrame)
	cp.SetPosition(position)
	return cp
}

// NewCartesianPoseFromOrientation returns a filled pose at the origin with the
// given orientation.
func NewCartesianPoseFromOrientation(name string, orientation quat.Number, referenceFrame string) CartesianPose {
	cp := NewCartesianPoseInFrame(name, referenceFrame)
	cp.SetOrientation(orientation)
	return cp
}

// NewCartesianPoseFromPositionAndOrientation returns a filled pose from its
// two blocks.
func NewCartesianPoseFromPositionAndOrientation(
	name string, position r3.Vector, orientation quat.Number, referenceFrame string,
) CartesianPose {
	cp := NewCartesianPoseInFrame(name, referenceFrame)
	cp.SetPosition(position)
	cp.SetOrientation(orientation)
	return cp
}

// NewCartesianPoseFromState projects a full Cartesian state onto its pose.
func NewCartesianPoseFromState(state CartesianState) CartesianPose {
	return CartesianPose{projectCartesianState(state, TypeCartesianPose, CartesianVariablePose)}
}

// NewCartesianPoseFromTwist returns the displacement reached by integrating
// the twist over one second.
func NewCartesianPoseFromTwist(twist CartesianTwist) (CartesianPose, error) {
	return twist.Integrate(time.Second)
}

// IdentityCartesianPose returns a filled pose at the identity.
func IdentityCartesianPose(name, referenceFrame string) CartesianPose {
	cp := NewCartesianPoseInFrame(name, referenceFrame)
	cp.setFilled()
	return cp
}

// RandomCartesianPose returns a pose with random position and orientation.
func RandomCartesianPose(name, referenceFrame string) CartesianPose {
	cp := NewCartesianPoseInFrame(name, referenceFrame)
	cp.SetPosition(randomVector())
	cp.SetOrientation(randomUnitQuaternion())
	return cp
}

// Copy returns a deep copy, preserving the source timestamp.
func (cp *CartesianPose) Copy() CartesianPose {
	return *cp
}

// Data returns the pose as [x, y, z, qw, qx, qy, qz].
func (cp *CartesianPose) Data() []float64 {
	return cp.Pose()
}

// SetData assigns the pose from a 7-vector.
func (cp *CartesianPose) SetData(data []float64) error {
	return cp.SetPose(data)
}

// Compose chains two rigid transforms.
func (cp *CartesianPose) Compose(other CartesianPose) (CartesianPose, error) {
	out, err := cp.CartesianState.Compose(other.CartesianState)
	if err != nil {
		return CartesianPose{}, err
	}
	return CartesianPose{projectCartesianState(out, TypeCartesianPose, CartesianVariablePose)}, nil
}

// Inverse returns the inverse transform.
func (cp *CartesianPose) Inverse() (CartesianPose, error) {
	out, err := cp.CartesianState.Inverse()
	if err != nil {
		return CartesianPose{}, err
	}
	return CartesianPose{projectCartesianState(out, TypeCartesianPose, CartesianVariablePose)}, nil
}

// TransformPoint maps a point expressed in the pose's own frame into its
// reference frame.
func (cp *CartesianPose) TransformPoint(point r3.Vector) (r3.Vector, error) {
	if cp.IsEmpty() {
		return r3.Vector{}, NewEmptyStateError(cp.Name())
	}
	return quatRotate(cp.Orientation(), point).Add(cp.Position()), nil
}

// Add returns the blockwise sum of two poses in the same reference frame.
func (cp *CartesianPose) Add(other CartesianPose) (CartesianPose, error) {
	out, err := cp.CartesianState.Add(other.CartesianState)
	if err != nil {
		return CartesianPose{}, err
	}
	return CartesianPose{projectCartesianState(out, TypeCartesianPose, CartesianVariablePose)}, nil
}

// Sub returns the blockwise difference of two poses in the same reference frame.
func (cp *CartesianPose) Sub(other CartesianPose) (CartesianPose, error) {
	out, err := cp.CartesianState.Sub(other.CartesianState)
	if err != nil {
		return CartesianPose{}, err
	}
	return CartesianPose{projectCartesianState(out, TypeCartesianPose, CartesianVariablePose)}, nil
}

// Scale returns the pose scaled by lambda.
func (cp *CartesianPose) Scale(lambda float64) (CartesianPose, error) {
	out, err := cp.CartesianState.Scale(lambda)
	if err != nil {
		return CartesianPose{}, err
	}
	return CartesianPose{projectCartesianState(out, TypeCartesianPose, CartesianVariablePose)}, nil
}

// Divide returns the pose divided by lambda.
func (cp *CartesianPose) Divide(lambda float64) (CartesianPose, error) {
	return cp.Scale(1 / lambda)
}

// Dist returns the pose distance: translation norm plus rotation angle.
func (cp *CartesianPose) Dist(other CartesianPose) (float64, error) {
	return cp.CartesianState.Dist(other.CartesianState, CartesianVariablePose)
}

// Norms returns the magnitudes of the position and orientation blocks.
func (cp *CartesianPose) Norms() ([]float64, error) {
	return cp.CartesianState.Norms(CartesianVariablePose)
}

// Normalized returns a copy with the position rescaled to unit length and the
// orientation renormalized.
func (cp *CartesianPose) Normalized() (CartesianPose, error) {
	out, err := cp.CartesianState.Normalized(CartesianVariablePose)
	if err != nil {
		return CartesianPose{}, err
	}
	return CartesianPose{projectCartesianState(out, TypeCartesianPose, CartesianVariablePose)}, nil
}

// Differentiate returns the twist that traverses this displacement in dt: the
// linear part divides the position, the angular part doubles the vector of
// the quaternion log, taken along the shorter arc.
func (cp *CartesianPose) Differentiate(dt time.Duration) (CartesianTwist, error) {
	if cp.IsEmpty() {
		return CartesianTwist{}, NewEmptyStateError(cp.Name())
	}
	period := dt.Seconds()
	twist := NewCartesianTwistInFrame(cp.Name(), cp.ReferenceFrame())
	twist.SetLinearVelocity(cp.Position().Mul(1 / period))
	twist.SetAngularVelocity(quatVec(shortestArcLog(cp.Orientation())).Mul(2 / period))
	return twist, nil
}

func (cp *CartesianPose) String() string {
	return cp.formatBlocks(CartesianVariablePosition, CartesianVariableOrientation)
}
