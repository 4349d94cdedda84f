package state

import (
	"github.com/golang/geo/r3"
)

// CartesianWrench is a Cartesian state narrowed to the force and torque
// blocks.
type CartesianWrench struct {
	CartesianState
}

// NewCartesianWrench returns an empty wrench expressed in the world frame.
func NewCartesianWrench(name string) CartesianWrench {
	return NewCartesianWrenchInFrame(name, WorldFrame)
}

// NewCartesianWrenchInFrame returns an empty wrench expressed in the given
// reference frame.
func NewCartesianWrenchInFrame(name, referenceFrame string) CartesianWrench {
	return CartesianWrench{newCartesianState(TypeCartesianWrench, name, referenceFrame)}
}

// NewCartesianWrenchFromValues returns a filled wrench from its two blocks.
func NewCartesianWrenchFromValues(name string, force, torque r3.Vector, referenceFrame string) CartesianWrench {
	cw := NewCartesianWrenchInFrame(name, referenceFrame)
	cw.SetForce(force)
	cw.SetTorque(torque)
	return cw
}

// NewCartesianWrenchFromState projects a full Cartesian state onto its wrench.
func NewCartesianWrenchFromState(state CartesianState) CartesianWrench {
	return CartesianWrench{projectCartesianState(state, TypeCartesianWrench, CartesianVariableWrench)}
}

// ZeroCartesianWrench returns a filled wrench at zero.
func ZeroCartesianWrench(name, referenceFrame string) CartesianWrench {
	cw := NewCartesianWrenchInFrame(name, referenceFrame)
	cw.setFilled()
	return cw
}

// RandomCartesianWrench returns a wrench with random blocks.
func RandomCartesianWrench(name, referenceFrame string) CartesianWrench {
	cw := NewCartesianWrenchInFrame(name, referenceFrame)
	cw.SetForce(randomVector())
	cw.SetTorque(randomVector())
	return cw
}

// Copy returns a deep copy, preserving the source timestamp.
func (cw *CartesianWrench) Copy() CartesianWrench {
	return *cw
}

// Data returns the wrench as [fx, fy, fz, τx, τy, τz].
func (cw *CartesianWrench) Data() []float64 {
	return cw.Wrench()
}

// SetData assigns the wrench from a 6-vector.
func (cw *CartesianWrench) SetData(data []float64) error {
	return cw.SetWrench(data)
}

// Add returns the blockwise sum of two wrenches in the same reference frame.
func (cw *CartesianWrench) Add(other CartesianWrench) (CartesianWrench, error) {
	out, err := cw.CartesianState.Add(other.CartesianState)
	if err != nil {
		return CartesianWrench{}, err
	}
	return CartesianWrench{projectCartesianState(out, TypeCartesianWrench, CartesianVariableWrench)}, nil
}

// Sub returns the blockwise difference of two wrenches in the same reference frame.
func (cw *CartesianWrench) Sub(other CartesianWrench) (CartesianWrench, error) {
	out, err := cw.CartesianState.Sub(other.CartesianState)
	if err != nil {
		return CartesianWrench{}, err
	}
	return CartesianWrench{projectCartesianState(out, TypeCartesianWrench, CartesianVariableWrench)}, nil
}

// Scale returns the wrench scaled by lambda.
func (cw *CartesianWrench) Scale(lambda float64) (CartesianWrench, error) {
	out, err := cw.CartesianState.Scale(lambda)
	if err != nil {
		return CartesianWrench{}, err
	}
	return CartesianWrench{projectCartesianState(out, TypeCartesianWrench, CartesianVariableWrench)}, nil
}

// Divide returns the wrench divided by lambda.
func (cw *CartesianWrench) Divide(lambda float64) (CartesianWrench, error) {
	return cw.Scale(1 / lambda)
}

// Dist returns the wrench distance: sum of the block difference norms.
func (cw *CartesianWrench) Dist(other CartesianWrench) (float64, error) {
	return cw.CartesianState.Dist(other.CartesianState, CartesianVariableWrench)
}

// Norms returns the magnitudes of the force and torque blocks.
func (cw *CartesianWrench) Norms() ([]float64, error) {
	return cw.CartesianState.Norms(CartesianVariableWrench)
}

// Normalized returns a copy with each block rescaled to unit length.
func (cw *CartesianWrench) Normalized() (CartesianWrench, error) {
	out, err := cw.CartesianState.Normalized(CartesianVariableWrench)
	if err != nil {
		return CartesianWrench{}, err
	}
	return CartesianWrench{projectCartesianState(out, TypeCartesianWrench, CartesianVariableWrench)}, nil
}

// Clamp applies the norm-based dead zone and saturation to both wrench blocks
// in place.
func (cw *CartesianWrench) Clamp(maxForce, maxTorque, forceNoiseRatio, torqueNoiseRatio float64) {
	// the selectors address single vector blocks, the calls cannot fail
	_ = cw.ClampStateVariable(maxForce, CartesianVariableForce, forceNoiseRatio)
	_ = cw.ClampStateVariable(maxTorque, CartesianVariableTorque, torqueNoiseRatio)
}

// Clamped returns a clamped copy.
func (cw *CartesianWrench) Clamped(maxForce, maxTorque, forceNoiseRatio, torqueNoiseRatio float64) CartesianWrench {
	out := cw.Copy()
	out.Clamp(maxForce, maxTorque, forceNoiseRatio, torqueNoiseRatio)
	return out
}

func (cw *CartesianWrench) String() string {
	return cw.formatBlocks(CartesianVariableForce, CartesianVariableTorque)
}
