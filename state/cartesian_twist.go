package state

import (
	"time"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// CartesianTwist is a Cartesian state narrowed to the linear and angular
// velocity blocks.
type CartesianTwist struct {
	CartesianState
}

// NewCartesianTwist returns an empty twist expressed in the world frame.
func NewCartesianTwist(name string) CartesianTwist {
	return NewCartesianTwistInFrame(name, WorldFrame)
}

// NewCartesianTwistInFrame returns an empty twist expressed in the given
// reference frame.
func NewCartesianTwistInFrame(name, referenceFrame string) CartesianTwist {
	return CartesianTwist{newCartesianState(TypeCartesianTwist, name, referenceFrame)}
}

// NewCartesianTwistFromVelocities returns a filled twist from its two blocks.
func NewCartesianTwistFromVelocities(
	name string, linearVelocity, angularVelocity r3.Vector, referenceFrame string,
) CartesianTwist {
	ct := NewCartesianTwistInFrame(name, referenceFrame)
	ct.SetLinearVelocity(linearVelocity)
	ct.SetAngularVelocity(angularVelocity)
	return ct
}

// NewCartesianTwistFromState projects a full Cartesian state onto its twist.
func NewCartesianTwistFromState(state CartesianState) CartesianTwist {
	return CartesianTwist{projectCartesianState(state, TypeCartesianTwist, CartesianVariableTwist)}
}

// NewCartesianTwistFromPose returns the velocity that traverses the pose's
// displacement in one second.
func NewCartesianTwistFromPose(pose CartesianPose) (CartesianTwist, error) {
	return pose.Differentiate(time.Second)
}

// NewCartesianTwistFromAcceleration returns the velocity reached by
// integrating the acceleration over one second.
func NewCartesianTwistFromAcceleration(acceleration CartesianAcceleration) (CartesianTwist, error) {
	return acceleration.Integrate(time.Second)
}

// ZeroCartesianTwist returns a filled twist at zero velocity.
func ZeroCartesianTwist(name, referenceFrame string) CartesianTwist {
	ct := NewCartesianTwistInFrame(name, referenceFrame)
	ct.setFilled()
	return ct
}

// RandomCartesianTwist returns a twist with random velocity blocks.
func RandomCartesianTwist(name, referenceFrame string) CartesianTwist {
	ct := NewCartesianTwistInFrame(name, referenceFrame)
	ct.SetLinearVelocity(randomVector())
	ct.SetAngularVelocity(randomVector())
	return ct
}

// Copy returns a deep copy, preserving the source timestamp.
func (ct *CartesianTwist) Copy() CartesianTwist {
	return *ct
}

// Data returns the twist as [vx, vy, vz, wx, wy, wz].
func (ct *CartesianTwist) Data() []float64 {
	return ct.Twist()
}

// SetData assigns the twist from a 6-vector.
func (ct *CartesianTwist) SetData(data []float64) error {
	return ct.SetTwist(data)
}

// Add returns the blockwise sum of two twists in the same reference frame.
func (ct *CartesianTwist) Add(other CartesianTwist) (CartesianTwist, error) {
	out, err := ct.CartesianState.Add(other.CartesianState)
	if err != nil {
		return CartesianTwist{}, err
	}
	return CartesianTwist{projectCartesianState(out, TypeCartesianTwist, CartesianVariableTwist)}, nil
}

// Sub returns the blockwise difference of two twists in the same reference frame.
func (ct *CartesianTwist) Sub(other CartesianTwist) (CartesianTwist, error) {
	out, err := ct.CartesianState.Sub(other.CartesianState)
	if err != nil {
		return CartesianTwist{}, err
	}
	return CartesianTwist{projectCartesianState(out, TypeCartesianTwist, CartesianVariableTwist)}, nil
}

// Scale returns the twist scaled by lambda.
func (ct *CartesianTwist) Scale(lambda float64) (CartesianTwist, error) {
	out, err := ct.CartesianState.Scale(lambda)
	if err != nil {
		return CartesianTwist{}, err
	}
	return CartesianTwist{projectCartesianState(out, TypeCartesianTwist, CartesianVariableTwist)}, nil
}

// Divide returns the twist divided by lambda.
func (ct *CartesianTwist) Divide(lambda float64) (CartesianTwist, error) {
	return ct.Scale(1 / lambda)
}

// Dist returns the twist distance: sum of the velocity difference norms.
func (ct *CartesianTwist) Dist(other CartesianTwist) (float64, error) {
	return ct.CartesianState.Dist(other.CartesianState, CartesianVariableTwist)
}

// Norms returns the magnitudes of the two velocity blocks.
func (ct *CartesianTwist) Norms() ([]float64, error) {
	return ct.CartesianState.Norms(CartesianVariableTwist)
}

// Normalized returns a copy with each velocity block rescaled to unit length.
func (ct *CartesianTwist) Normalized() (CartesianTwist, error) {
	out, err := ct.CartesianState.Normalized(CartesianVariableTwist)
	if err != nil {
		return CartesianTwist{}, err
	}
	return CartesianTwist{projectCartesianState(out, TypeCartesianTwist, CartesianVariableTwist)}, nil
}

// Clamp applies the norm-based dead zone and saturation to both velocity
// blocks in place. A noise ratio of zero disables the dead zone for the
// corresponding block.
func (ct *CartesianTwist) Clamp(maxLinear, maxAngular, linearNoiseRatio, angularNoiseRatio float64) {
	// the selectors address single vector blocks, the calls cannot fail
	_ = ct.ClampStateVariable(maxLinear, CartesianVariableLinearVelocity, linearNoiseRatio)
	_ = ct.ClampStateVariable(maxAngular, CartesianVariableAngularVelocity, angularNoiseRatio)
}

// Clamped returns a clamped copy.
func (ct *CartesianTwist) Clamped(maxLinear, maxAngular, linearNoiseRatio, angularNoiseRatio float64) CartesianTwist {
	out := ct.Copy()
	out.Clamp(maxLinear, maxAngular, linearNoiseRatio, angularNoiseRatio)
	return out
}

// Integrate returns the displacement reached by applying the twist for dt:
// the angular velocity maps to an orientation through the quaternion
// exponential of half the rotation vector.
func (ct *CartesianTwist) Integrate(dt time.Duration) (CartesianPose, error) {
	if ct.IsEmpty() {
		return CartesianPose{}, NewEmptyStateError(ct.Name())
	}
	period := dt.Seconds()
	pose := NewCartesianPoseInFrame(ct.Name(), ct.ReferenceFrame())
	pose.SetPosition(ct.LinearVelocity().Mul(period))
	halfAngle := ct.AngularVelocity().Mul(period / 2)
	pose.SetOrientation(quat.Exp(quatFromVec(halfAngle)))
	return pose, nil
}

// Differentiate returns the acceleration that produces this velocity change
// over dt.
func (ct *CartesianTwist) Differentiate(dt time.Duration) (CartesianAcceleration, error) {
	if ct.IsEmpty() {
		return CartesianAcceleration{}, NewEmptyStateError(ct.Name())
	}
	period := dt.Seconds()
	acc := NewCartesianAccelerationInFrame(ct.Name(), ct.ReferenceFrame())
	acc.SetLinearAcceleration(ct.LinearVelocity().Mul(1 / period))
	acc.SetAngularAcceleration(ct.AngularVelocity().Mul(1 / period))
	return acc, nil
}

func (ct *CartesianTwist) String() string {
	return ct.formatBlocks(CartesianVariableLinearVelocity, CartesianVariableAngularVelocity)
}
