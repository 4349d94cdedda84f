package state

import (
	"time"

	"github.com/golang/geo/r3"
)

// CartesianAcceleration is a Cartesian state narrowed to the linear and
// angular acceleration blocks.
type CartesianAcceleration struct {
	CartesianState
}

// NewCartesianAcceleration returns an empty acceleration expressed in the
// world frame.
func NewCartesianAcceleration(name string) CartesianAcceleration {
	return NewCartesianAccelerationInFrame(name, WorldFrame)
}

// NewCartesianAccelerationInFrame returns an empty acceleration expressed in
// the given reference frame.
func NewCartesianAccelerationInFrame(name, referenceFrame string) CartesianAcceleration {
	return CartesianAcceleration{newCartesianState(TypeCartesianAcceleration, name, referenceFrame)}
}

// NewCartesianAccelerationFromValues returns a filled acceleration from its
// two blocks.
func NewCartesianAccelerationFromValues(
	name string, linearAcceleration, angularAcceleration r3.Vector, referenceFrame string,
) CartesianAcceleration {
	ca := NewCartesianAccelerationInFrame(name, referenceFrame)
	ca.SetLinearAcceleration(linearAcceleration)
	ca.SetAngularAcceleration(angularAcceleration)
	return ca
}

// NewCartesianAccelerationFromState projects a full Cartesian state onto its
// acceleration.
func NewCartesianAccelerationFromState(state CartesianState) CartesianAcceleration {
	return CartesianAcceleration{projectCartesianState(state, TypeCartesianAcceleration, CartesianVariableAccelerations)}
}

// NewCartesianAccelerationFromTwist returns the acceleration that produces
// the twist's velocity change over one second.
func NewCartesianAccelerationFromTwist(twist CartesianTwist) (CartesianAcceleration, error) {
	return twist.Differentiate(time.Second)
}

// ZeroCartesianAcceleration returns a filled acceleration at zero.
func ZeroCartesianAcceleration(name, referenceFrame string) CartesianAcceleration {
	ca := NewCartesianAccelerationInFrame(name, referenceFrame)
	ca.setFilled()
	return ca
}

// RandomCartesianAcceleration returns an acceleration with random blocks.
func RandomCartesianAcceleration(name, referenceFrame string) CartesianAcceleration {
	ca := NewCartesianAccelerationInFrame(name, referenceFrame)
	ca.SetLinearAcceleration(randomVector())
	ca.SetAngularAcceleration(randomVector())
	return ca
}

// Copy returns a deep copy, preserving the source timestamp.
func (ca *CartesianAcceleration) Copy() CartesianAcceleration {
	return *ca
}

// Data returns the acceleration as [ax, ay, az, αx, αy, αz].
func (ca *CartesianAcceleration) Data() []float64 {
	return ca.Acceleration()
}

// SetData assigns the acceleration from a 6-vector.
func (ca *CartesianAcceleration) SetData(data []float64) error {
	return ca.SetAcceleration(data)
}

// Add returns the blockwise sum of two accelerations in the same reference frame.
func (ca *CartesianAcceleration) Add(other CartesianAcceleration) (CartesianAcceleration, error) {
	out, err := ca.CartesianState.Add(other.CartesianState)
	if err != nil {
		return CartesianAcceleration{}, err
	}
	return CartesianAcceleration{projectCartesianState(out, TypeCartesianAcceleration, CartesianVariableAccelerations)}, nil
}

// Sub returns the blockwise difference of two accelerations in the same
// reference frame.
func (ca *CartesianAcceleration) Sub(other CartesianAcceleration) (CartesianAcceleration, error) {
	out, err := ca.CartesianState.Sub(other.CartesianState)
	if err != nil {
		return CartesianAcceleration{}, err
	}
	return CartesianAcceleration{projectCartesianState(out, TypeCartesianAcceleration, CartesianVariableAccelerations)}, nil
}

// Scale returns the acceleration scaled by lambda.
func (ca *CartesianAcceleration) Scale(lambda float64) (CartesianAcceleration, error) {
	out, err := ca.CartesianState.Scale(lambda)
	if err != nil {
		return CartesianAcceleration{}, err
	}
	return CartesianAcceleration{projectCartesianState(out, TypeCartesianAcceleration, CartesianVariableAccelerations)}, nil
}

// Divide returns the acceleration divided by lambda.
func (ca *CartesianAcceleration) Divide(lambda float64) (CartesianAcceleration, error) {
	return ca.Scale(1 / lambda)
}

// Dist returns the acceleration distance: sum of the block difference norms.
func (ca *CartesianAcceleration) Dist(other CartesianAcceleration) (float64, error) {
	return ca.CartesianState.Dist(other.CartesianState, CartesianVariableAccelerations)
}

// Norms returns the magnitudes of the two acceleration blocks.
func (ca *CartesianAcceleration) Norms() ([]float64, error) {
	return ca.CartesianState.Norms(CartesianVariableAccelerations)
}

// Normalized returns a copy with each block rescaled to unit length.
func (ca *CartesianAcceleration) Normalized() (CartesianAcceleration, error) {
	out, err := ca.CartesianState.Normalized(CartesianVariableAccelerations)
	if err != nil {
		return CartesianAcceleration{}, err
	}
	return CartesianAcceleration{projectCartesianState(out, TypeCartesianAcceleration, CartesianVariableAccelerations)}, nil
}

// Clamp applies the norm-based dead zone and saturation to both acceleration
// blocks in place.
func (ca *CartesianAcceleration) Clamp(maxLinear, maxAngular, linearNoiseRatio, angularNoiseRatio float64) {
	// the selectors address single vector blocks, the calls cannot fail
	_ = ca.ClampStateVariable(maxLinear, CartesianVariableLinearAcceleration, linearNoiseRatio)
	_ = ca.ClampStateVariable(maxAngular, CartesianVariableAngularAcceleration, angularNoiseRatio)
}

// Clamped returns a clamped copy.
func (ca *CartesianAcceleration) Clamped(
	maxLinear, maxAngular, linearNoiseRatio, angularNoiseRatio float64,
) CartesianAcceleration {
	out := ca.Copy()
	out.Clamp(maxLinear, maxAngular, linearNoiseRatio, angularNoiseRatio)
	return out
}

// Integrate returns the velocity reached by applying the acceleration for dt.
func (ca *CartesianAcceleration) Integrate(dt time.Duration) (CartesianTwist, error) {
	if ca.IsEmpty() {
		return CartesianTwist{}, NewEmptyStateError(ca.Name())
	}
	period := dt.Seconds()
	twist := NewCartesianTwistInFrame(ca.Name(), ca.ReferenceFrame())
	twist.SetLinearVelocity(ca.LinearAcceleration().Mul(period))
	twist.SetAngularVelocity(ca.AngularAcceleration().Mul(period))
	return twist, nil
}

func (ca *CartesianAcceleration) String() string {
	return ca.formatBlocks(CartesianVariableLinearAcceleration, CartesianVariableAngularAcceleration)
}
