package state

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// CartesianStateVariable selects one or more of the Cartesian state variable
// blocks.
type CartesianStateVariable int

// The Cartesian state variable blocks and their aggregates.
const (
	CartesianVariablePosition CartesianStateVariable = iota
	CartesianVariableOrientation
	CartesianVariablePose
	CartesianVariableLinearVelocity
	CartesianVariableAngularVelocity
	CartesianVariableTwist
	CartesianVariableLinearAcceleration
	CartesianVariableAngularAcceleration
	CartesianVariableAccelerations
	CartesianVariableForce
	CartesianVariableTorque
	CartesianVariableWrench
	CartesianVariableAll
)

func (v CartesianStateVariable) String() string {
	switch v {
	case CartesianVariablePosition:
		return "position"
	case CartesianVariableOrientation:
		return "orientation"
	case CartesianVariablePose:
		return "pose"
	case CartesianVariableLinearVelocity:
		return "linear velocity"
	case CartesianVariableAngularVelocity:
		return "angular velocity"
	case CartesianVariableTwist:
		return "twist"
	case CartesianVariableLinearAcceleration:
		return "linear acceleration"
	case CartesianVariableAngularAcceleration:
		return "angular acceleration"
	case CartesianVariableAccelerations:
		return "accelerations"
	case CartesianVariableForce:
		return "force"
	case CartesianVariableTorque:
		return "torque"
	case CartesianVariableWrench:
		return "wrench"
	case CartesianVariableAll:
		return "all"
	default:
		return "unknown"
	}
}

// CartesianState is the full 25-scalar spatial quantity: a pose plus its first
// and second derivatives and a wrench, expressed in a reference frame. The
// Pose, Twist, Acceleration and Wrench specializations project a subset of it
// but share this storage so composition stays closed over the superset.
type CartesianState struct {
	SpatialState
	position            r3.Vector
	orientation         quat.Number
	linearVelocity      r3.Vector
	angularVelocity     r3.Vector
	linearAcceleration  r3.Vector
	angularAcceleration r3.Vector
	force               r3.Vector
	torque              r3.Vector
}

// NewCartesianState returns an empty Cartesian state expressed in the world frame.
func NewCartesianState(name string) CartesianState {
	return NewCartesianStateInFrame(name, WorldFrame)
}

// NewCartesianStateInFrame returns an empty Cartesian state expressed in the
// given reference frame.
func NewCartesianStateInFrame(name, referenceFrame string) CartesianState {
	return newCartesianState(TypeCartesianState, name, referenceFrame)
}

func newCartesianState(typ StateType, name, referenceFrame string) CartesianState {
	cs := CartesianState{SpatialState: newSpatialState(typ, name, referenceFrame)}
	cs.setZero()
	return cs
}

// IdentityCartesianState returns a filled Cartesian state at the identity
// pose with all derivatives at zero.
func IdentityCartesianState(name, referenceFrame string) CartesianState {
	cs := NewCartesianStateInFrame(name, referenceFrame)
	cs.setFilled()
	return cs
}

// RandomCartesianState returns a Cartesian state with a uniformly random unit
// quaternion orientation and all vector blocks drawn uniformly from [-1, 1).
func RandomCartesianState(name, referenceFrame string) CartesianState {
	cs := NewCartesianStateInFrame(name, referenceFrame)
	cs.position = randomVector()
	cs.orientation = randomUnitQuaternion()
	cs.linearVelocity = randomVector()
	cs.angularVelocity = randomVector()
	cs.linearAcceleration = randomVector()
	cs.angularAcceleration = randomVector()
	cs.force = randomVector()
	cs.torque = randomVector()
	cs.setFilled()
	return cs
}

// setZero resets every block to its neutral value, the orientation to identity.
func (cs *CartesianState) setZero() {
	cs.position = r3.Vector{}
	cs.orientation = quat.Number{Real: 1}
	cs.linearVelocity = r3.Vector{}
	cs.angularVelocity = r3.Vector{}
	cs.linearAcceleration = r3.Vector{}
	cs.angularAcceleration = r3.Vector{}
	cs.force = r3.Vector{}
	cs.torque = r3.Vector{}
}

// Copy returns a deep copy, preserving the source timestamp.
func (cs *CartesianState) Copy() CartesianState {
	return *cs
}

// Position returns the position block.
func (cs *CartesianState) Position() r3.Vector {
	return cs.position
}

// SetPosition assigns the position block.
func (cs *CartesianState) SetPosition(position r3.Vector) {
	cs.position = position
	cs.setFilled()
}

// Orientation returns the orientation block as a unit quaternion.
func (cs *CartesianState) Orientation() quat.Number {
	return cs.orientation
}

// SetOrientation assigns the orientation block, renormalizing to keep the unit
// quaternion invariant. The zero quaternion is treated as identity.
func (cs *CartesianState) SetOrientation(orientation quat.Number) {
	cs.orientation = quatNormalize(orientation)
	cs.setFilled()
}

// LinearVelocity returns the linear velocity block.
func (cs *CartesianState) LinearVelocity() r3.Vector {
	return cs.linearVelocity
}

// SetLinearVelocity assigns the linear velocity block.
func (cs *CartesianState) SetLinearVelocity(velocity r3.Vector) {
	cs.linearVelocity = velocity
	cs.setFilled()
}

// AngularVelocity returns the angular velocity block.
func (cs *CartesianState) AngularVelocity() r3.Vector {
	return cs.angularVelocity
}

// SetAngularVelocity assigns the angular velocity block.
func (cs *CartesianState) SetAngularVelocity(velocity r3.Vector) {
	cs.angularVelocity = velocity
	cs.setFilled()
}

// LinearAcceleration returns the linear acceleration block.
func (cs *CartesianState) LinearAcceleration() r3.Vector {
	return cs.linearAcceleration
}

// SetLinearAcceleration assigns the linear acceleration block.
func (cs *CartesianState) SetLinearAcceleration(acceleration r3.Vector) {
	cs.linearAcceleration = acceleration
	cs.setFilled()
}

// AngularAcceleration returns the angular acceleration block.
func (cs *CartesianState) AngularAcceleration() r3.Vector {
	return cs.angularAcceleration
}

// SetAngularAcceleration assigns the angular acceleration block.
func (cs *CartesianState) SetAngularAcceleration(acceleration r3.Vector) {
	cs.angularAcceleration = acceleration
	cs.setFilled()
}

// Force returns the force block.
func (cs *CartesianState) Force() r3.Vector {
	return cs.force
}

// SetForce assigns the force block.
func (cs *CartesianState) SetForce(force r3.Vector) {
	cs.force = force
	cs.setFilled()
}

// Torque returns the torque block.
func (cs *CartesianState) Torque() r3.Vector {
	return cs.torque
}

// SetTorque assigns the torque block.
func (cs *CartesianState) SetTorque(torque r3.Vector) {
	cs.torque = torque
	cs.setFilled()
}

// Pose returns the position and orientation as [x, y, z, qw, qx, qy, qz].
func (cs *CartesianState) Pose() []float64 {
	return cs.StateVariable(CartesianVariablePose)
}

// SetPose assigns the position and orientation from a 7-vector.
func (cs *CartesianState) SetPose(data []float64) error {
	return cs.SetStateVariable(data, CartesianVariablePose)
}

// Twist returns the linear and angular velocity as a 6-vector.
func (cs *CartesianState) Twist() []float64 {
	return cs.StateVariable(CartesianVariableTwist)
}

// SetTwist assigns the linear and angular velocity from a 6-vector.
func (cs *CartesianState) SetTwist(data []float64) error {
	return cs.SetStateVariable(data, CartesianVariableTwist)
}

// Acceleration returns the linear and angular acceleration as a 6-vector.
func (cs *CartesianState) Acceleration() []float64 {
	return cs.StateVariable(CartesianVariableAccelerations)
}

// SetAcceleration assigns the linear and angular acceleration from a 6-vector.
func (cs *CartesianState) SetAcceleration(data []float64) error {
	return cs.SetStateVariable(data, CartesianVariableAccelerations)
}

// Wrench returns the force and torque as a 6-vector.
func (cs *CartesianState) Wrench() []float64 {
	return cs.StateVariable(CartesianVariableWrench)
}

// SetWrench assigns the force and torque from a 6-vector.
func (cs *CartesianState) SetWrench(data []float64) error {
	return cs.SetStateVariable(data, CartesianVariableWrench)
}

func appendVector(data []float64, v r3.Vector) []float64 {
	return append(data, v.X, v.Y, v.Z)
}

// StateVariable returns a copy of the selected block(s) in canonical order.
func (cs *CartesianState) StateVariable(variable CartesianStateVariable) []float64 {
	switch variable {
	case CartesianVariablePosition:
		return appendVector(nil, cs.position)
	case CartesianVariableOrientation:
		return []float64{cs.orientation.Real, cs.orientation.Imag, cs.orientation.Jmag, cs.orientation.Kmag}
	case CartesianVariablePose:
		data := appendVector(make([]float64, 0, 7), cs.position)
		return append(data, cs.orientation.Real, cs.orientation.Imag, cs.orientation.Jmag, cs.orientation.Kmag)
	case CartesianVariableLinearVelocity:
		return appendVector(nil, cs.linearVelocity)
	case CartesianVariableAngularVelocity:
		return appendVector(nil, cs.angularVelocity)
	case CartesianVariableTwist:
		return appendVector(appendVector(make([]float64, 0, 6), cs.linearVelocity), cs.angularVelocity)
	case CartesianVariableLinearAcceleration:
		return appendVector(nil, cs.linearAcceleration)
	case CartesianVariableAngularAcceleration:
		return appendVector(nil, cs.angularAcceleration)
	case CartesianVariableAccelerations:
		return appendVector(appendVector(make([]float64, 0, 6), cs.linearAcceleration), cs.angularAcceleration)
	case CartesianVariableForce:
		return appendVector(nil, cs.force)
	case CartesianVariableTorque:
		return appendVector(nil, cs.torque)
	case CartesianVariableWrench:
		return appendVector(appendVector(make([]float64, 0, 6), cs.force), cs.torque)
	case CartesianVariableAll:
		data := make([]float64, 0, 25)
		data = appendVector(data, cs.position)
		data = append(data, cs.orientation.Real, cs.orientation.Imag, cs.orientation.Jmag, cs.orientation.Kmag)
		data = appendVector(data, cs.linearVelocity)
		data = appendVector(data, cs.angularVelocity)
		data = appendVector(data, cs.linearAcceleration)
		data = appendVector(data, cs.angularAcceleration)
		data = appendVector(data, cs.force)
		data = appendVector(data, cs.torque)
		return data
	default:
		return nil
	}
}

func vectorAt(data []float64) r3.Vector {
	return r3.Vector{X: data[0], Y: data[1], Z: data[2]}
}

// variableSize returns the buffer length expected for the selector.
func variableSize(variable CartesianStateVariable) int {
	switch variable {
	case CartesianVariableOrientation:
		return 4
	case CartesianVariablePose:
		return 7
	case CartesianVariableTwist, CartesianVariableAccelerations, CartesianVariableWrench:
		return 6
	case CartesianVariableAll:
		return 25
	default:
		return 3
	}
}

// SetStateVariable assigns the selected block(s), validating the buffer size,
// and marks the state as filled. Orientations are renormalized on write.
func (cs *CartesianState) SetStateVariable(data []float64, variable CartesianStateVariable) error {
	if len(data) != variableSize(variable) {
		return NewIncompatibleSizeError(variableSize(variable), len(data))
	}
	switch variable {
	case CartesianVariablePosition:
		cs.position = vectorAt(data)
	case CartesianVariableOrientation:
		cs.orientation = quatNormalize(quat.Number{Real: data[0], Imag: data[1], Jmag: data[2], Kmag: data[3]})
	case CartesianVariablePose:
		cs.position = vectorAt(data)
		cs.orientation = quatNormalize(quat.Number{Real: data[3], Imag: data[4], Jmag: data[5], Kmag: data[6]})
	case CartesianVariableLinearVelocity:
		cs.linearVelocity = vectorAt(data)
	case CartesianVariableAngularVelocity:
		cs.angularVelocity = vectorAt(data)
	case CartesianVariableTwist:
		cs.linearVelocity = vectorAt(data)
		cs.angularVelocity = vectorAt(data[3:])
	case CartesianVariableLinearAcceleration:
		cs.linearAcceleration = vectorAt(data)
	case CartesianVariableAngularAcceleration:
		cs.angularAcceleration = vectorAt(data)
	case CartesianVariableAccelerations:
		cs.linearAcceleration = vectorAt(data)
		cs.angularAcceleration = vectorAt(data[3:])
	case CartesianVariableForce:
		cs.force = vectorAt(data)
	case CartesianVariableTorque:
		cs.torque = vectorAt(data)
	case CartesianVariableWrench:
		cs.force = vectorAt(data)
		cs.torque = vectorAt(data[3:])
	case CartesianVariableAll:
		cs.position = vectorAt(data)
		cs.orientation = quatNormalize(quat.Number{Real: data[3], Imag: data[4], Jmag: data[5], Kmag: data[6]})
		cs.linearVelocity = vectorAt(data[7:])
		cs.angularVelocity = vectorAt(data[10:])
		cs.linearAcceleration = vectorAt(data[13:])
		cs.angularAcceleration = vectorAt(data[16:])
		cs.force = vectorAt(data[19:])
		cs.torque = vectorAt(data[22:])
	}
	cs.setFilled()
	return nil
}

// Data returns all 25 scalars in canonical order.
func (cs *CartesianState) Data() []float64 {
	return cs.StateVariable(CartesianVariableAll)
}

// SetData assigns all 25 scalars.
func (cs *CartesianState) SetData(data []float64) error {
	return cs.SetStateVariable(data, CartesianVariableAll)
}

// validatePair runs the shared guards of every binary Cartesian operation:
// receiver emptiness, argument emptiness, then frame compatibility, in that
// order. The error messages differ, so the order is part of the contract.
func (cs *CartesianState) validatePair(other *CartesianState) error {
	if cs.IsEmpty() {
		return NewEmptyStateError(cs.Name())
	}
	if other.IsEmpty() {
		return NewEmptyStateError(other.Name())
	}
	if cs.IsIncompatible(&other.SpatialState) {
		return NewIncompatibleReferenceFramesError(cs.Name(), cs.ReferenceFrame(), other.Name(), other.ReferenceFrame())
	}
	return nil
}

// Compose expresses other through the receiver, chaining the two transforms:
// the pose composes as a rigid transform and the derivatives and wrench follow
// the rigid-body transport formulas with their lever-arm cross terms. The
// result carries the other state's name in the receiver's reference frame.
func (cs *CartesianState) Compose(other CartesianState) (CartesianState, error) {
	if err := cs.validatePair(&other); err != nil {
		return CartesianState{}, err
	}
	q := cs.orientation
	leverArm := quatRotate(q, other.position)
	rotatedLinVel := quatRotate(q, other.linearVelocity)
	rotatedForce := quatRotate(q, other.force)

	out := cs.Copy()
	out.SetName(other.Name())
	out.position = cs.position.Add(leverArm)
	out.orientation = quatNormalize(quat.Mul(q, other.orientation))
	out.linearVelocity = cs.linearVelocity.
		Add(rotatedLinVel).
		Add(cs.angularVelocity.Cross(leverArm))
	out.angularVelocity = cs.angularVelocity.Add(quatRotate(q, other.angularVelocity))
	out.linearAcceleration = cs.linearAcceleration.
		Add(quatRotate(q, other.linearAcceleration)).
		Add(cs.angularAcceleration.Cross(leverArm)).
		Add(cs.angularVelocity.Cross(rotatedLinVel).Mul(2)).
		Add(cs.angularVelocity.Cross(cs.angularVelocity.Cross(leverArm)))
	out.angularAcceleration = cs.angularAcceleration.
		Add(quatRotate(q, other.angularAcceleration)).
		Add(cs.angularVelocity.Cross(quatRotate(q, other.angularVelocity)))
	out.force = cs.force.Add(rotatedForce)
	out.torque = cs.torque.
		Add(quatRotate(q, other.torque)).
		Add(leverArm.Cross(rotatedForce))
	out.setFilled()
	return out, nil
}

// Inverse returns the algebraic inverse of the state: name and reference frame
// swap, the orientation is conjugated, the position negated and rotated, and
// the derivative and wrench blocks transported so that composing a state with
// its inverse yields the identity across every block.
func (cs *CartesianState) Inverse() (CartesianState, error) {
	if cs.IsEmpty() {
		return CartesianState{}, NewEmptyStateError(cs.Name())
	}
	conj := quat.Conj(cs.orientation)
	out := cs.Copy()
	out.SetName(cs.ReferenceFrame())
	out.SetReferenceFrame(cs.Name())
	out.orientation = conj
	out.position = quatRotate(conj, cs.position).Mul(-1)
	out.angularVelocity = quatRotate(conj, cs.angularVelocity).Mul(-1)
	out.linearVelocity = quatRotate(conj, cs.linearVelocity.Sub(cs.angularVelocity.Cross(cs.position))).Mul(-1)
	out.angularAcceleration = quatRotate(conj, cs.angularAcceleration).Mul(-1)
	out.linearAcceleration = quatRotate(conj, cs.linearAcceleration.Mul(-1).
		Add(cs.angularAcceleration.Cross(cs.position)).
		Add(cs.angularVelocity.Cross(cs.linearVelocity).Mul(2)).
		Sub(cs.angularVelocity.Cross(cs.angularVelocity.Cross(cs.position))))
	out.force = quatRotate(conj, cs.force).Mul(-1)
	out.torque = quatRotate(conj, cs.torque.Add(cs.position.Cross(cs.force))).Mul(-1)
	out.setFilled()
	return out, nil
}

// validateSameFrame guards the additive operations, which are only defined for
// two states expressed in the same reference frame.
func (cs *CartesianState) validateSameFrame(other *CartesianState) error {
	if cs.IsEmpty() {
		return NewEmptyStateError(cs.Name())
	}
	if other.IsEmpty() {
		return NewEmptyStateError(other.Name())
	}
	if cs.ReferenceFrame() != other.ReferenceFrame() {
		return NewIncompatibleReferenceFramesError(cs.Name(), cs.ReferenceFrame(), other.Name(), other.ReferenceFrame())
	}
	return nil
}

// Add returns the blockwise sum of two states in the same reference frame;
// orientations combine multiplicatively.
func (cs *CartesianState) Add(other CartesianState) (CartesianState, error) {
	if err := cs.validateSameFrame(&other); err != nil {
		return CartesianState{}, err
	}
	out := cs.Copy()
	out.position = cs.position.Add(other.position)
	out.orientation = quatNormalize(quat.Mul(cs.orientation, other.orientation))
	out.linearVelocity = cs.linearVelocity.Add(other.linearVelocity)
	out.angularVelocity = cs.angularVelocity.Add(other.angularVelocity)
	out.linearAcceleration = cs.linearAcceleration.Add(other.linearAcceleration)
	out.angularAcceleration = cs.angularAcceleration.Add(other.angularAcceleration)
	out.force = cs.force.Add(other.force)
	out.torque = cs.torque.Add(other.torque)
	out.setFilled()
	return out, nil
}

// Sub returns the blockwise difference of two states in the same reference
// frame; orientations combine with the conjugate.
func (cs *CartesianState) Sub(other CartesianState) (CartesianState, error) {
	if err := cs.validateSameFrame(&other); err != nil {
		return CartesianState{}, err
	}
	out := cs.Copy()
	out.position = cs.position.Sub(other.position)
	out.orientation = quatNormalize(quat.Mul(cs.orientation, quat.Conj(other.orientation)))
	out.linearVelocity = cs.linearVelocity.Sub(other.linearVelocity)
	out.angularVelocity = cs.angularVelocity.Sub(other.angularVelocity)
	out.linearAcceleration = cs.linearAcceleration.Sub(other.linearAcceleration)
	out.angularAcceleration = cs.angularAcceleration.Sub(other.angularAcceleration)
	out.force = cs.force.Sub(other.force)
	out.torque = cs.torque.Sub(other.torque)
	out.setFilled()
	return out, nil
}

// Scale returns the state scaled by lambda; the orientation is raised to the
// power lambda through the quaternion log map, following the shorter arc.
func (cs *CartesianState) Scale(lambda float64) (CartesianState, error) {
	if cs.IsEmpty() {
		return CartesianState{}, NewEmptyStateError(cs.Name())
	}
	out := cs.Copy()
	out.position = cs.position.Mul(lambda)
	out.orientation = quatScalePow(cs.orientation, lambda)
	out.linearVelocity = cs.linearVelocity.Mul(lambda)
	out.angularVelocity = cs.angularVelocity.Mul(lambda)
	out.linearAcceleration = cs.linearAcceleration.Mul(lambda)
	out.angularAcceleration = cs.angularAcceleration.Mul(lambda)
	out.force = cs.force.Mul(lambda)
	out.torque = cs.torque.Mul(lambda)
	out.setFilled()
	return out, nil
}

// Divide returns the state divided by lambda.
func (cs *CartesianState) Divide(lambda float64) (CartesianState, error) {
	return cs.Scale(1 / lambda)
}

// Negate returns the state scaled by -1.
func (cs *CartesianState) Negate() (CartesianState, error) {
	return cs.Scale(-1)
}

// Dist returns the distance between two states over the selected blocks:
// Euclidean norms of the vector differences, the rotation angle for the
// orientation block.
func (cs *CartesianState) Dist(other CartesianState, variable CartesianStateVariable) (float64, error) {
	if err := cs.validateSameFrame(&other); err != nil {
		return 0, err
	}
	result := 0.0
	all := variable == CartesianVariableAll
	if all || variable == CartesianVariablePosition || variable == CartesianVariablePose {
		result += cs.position.Sub(other.position).Norm()
	}
	if all || variable == CartesianVariableOrientation || variable == CartesianVariablePose {
		result += quatAngularDistance(cs.orientation, other.orientation)
	}
	if all || variable == CartesianVariableLinearVelocity || variable == CartesianVariableTwist {
		result += cs.linearVelocity.Sub(other.linearVelocity).Norm()
	}
	if all || variable == CartesianVariableAngularVelocity || variable == CartesianVariableTwist {
		result += cs.angularVelocity.Sub(other.angularVelocity).Norm()
	}
	if all || variable == CartesianVariableLinearAcceleration || variable == CartesianVariableAccelerations {
		result += cs.linearAcceleration.Sub(other.linearAcceleration).Norm()
	}
	if all || variable == CartesianVariableAngularAcceleration || variable == CartesianVariableAccelerations {
		result += cs.angularAcceleration.Sub(other.angularAcceleration).Norm()
	}
	if all || variable == CartesianVariableForce || variable == CartesianVariableWrench {
		result += cs.force.Sub(other.force).Norm()
	}
	if all || variable == CartesianVariableTorque || variable == CartesianVariableWrench {
		result += cs.torque.Sub(other.torque).Norm()
	}
	return result, nil
}

// Norms returns the magnitudes of the selected blocks, ordered [position,
// orientation, linear velocity, angular velocity, linear acceleration,
// angular acceleration, force, torque] when all are selected.
func (cs *CartesianState) Norms(variable CartesianStateVariable) ([]float64, error) {
	if cs.IsEmpty() {
		return nil, NewEmptyStateError(cs.Name())
	}
	var norms []float64
	all := variable == CartesianVariableAll
	if all || variable == CartesianVariablePosition || variable == CartesianVariablePose {
		norms = append(norms, cs.position.Norm())
	}
	if all || variable == CartesianVariableOrientation || variable == CartesianVariablePose {
		norms = append(norms, quatNorm(cs.orientation))
	}
	if all || variable == CartesianVariableLinearVelocity || variable == CartesianVariableTwist {
		norms = append(norms, cs.linearVelocity.Norm())
	}
	if all || variable == CartesianVariableAngularVelocity || variable == CartesianVariableTwist {
		norms = append(norms, cs.angularVelocity.Norm())
	}
	if all || variable == CartesianVariableLinearAcceleration || variable == CartesianVariableAccelerations {
		norms = append(norms, cs.linearAcceleration.Norm())
	}
	if all || variable == CartesianVariableAngularAcceleration || variable == CartesianVariableAccelerations {
		norms = append(norms, cs.angularAcceleration.Norm())
	}
	if all || variable == CartesianVariableForce || variable == CartesianVariableWrench {
		norms = append(norms, cs.force.Norm())
	}
	if all || variable == CartesianVariableTorque || variable == CartesianVariableWrench {
		norms = append(norms, cs.torque.Norm())
	}
	return norms, nil
}

func normalizeVector(v r3.Vector) r3.Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Mul(1 / n)
}

// Normalized returns a copy with each selected block rescaled to unit
// magnitude; the orientation block is divided by its own quaternion norm.
func (cs *CartesianState) Normalized(variable CartesianStateVariable) (CartesianState, error) {
	if cs.IsEmpty() {
		return CartesianState{}, NewEmptyStateError(cs.Name())
	}
	out := cs.Copy()
	all := variable == CartesianVariableAll
	if all || variable == CartesianVariablePosition || variable == CartesianVariablePose {
		out.position = normalizeVector(cs.position)
	}
	if all || variable == CartesianVariableOrientation || variable == CartesianVariablePose {
		out.orientation = quatNormalize(cs.orientation)
	}
	if all || variable == CartesianVariableLinearVelocity || variable == CartesianVariableTwist {
		out.linearVelocity = normalizeVector(cs.linearVelocity)
	}
	if all || variable == CartesianVariableAngularVelocity || variable == CartesianVariableTwist {
		out.angularVelocity = normalizeVector(cs.angularVelocity)
	}
	if all || variable == CartesianVariableLinearAcceleration || variable == CartesianVariableAccelerations {
		out.linearAcceleration = normalizeVector(cs.linearAcceleration)
	}
	if all || variable == CartesianVariableAngularAcceleration || variable == CartesianVariableAccelerations {
		out.angularAcceleration = normalizeVector(cs.angularAcceleration)
	}
	if all || variable == CartesianVariableForce || variable == CartesianVariableWrench {
		out.force = normalizeVector(cs.force)
	}
	if all || variable == CartesianVariableTorque || variable == CartesianVariableWrench {
		out.torque = normalizeVector(cs.torque)
	}
	out.setFilled()
	return out, nil
}

// vectorBlock returns a pointer to the single 3-vector block addressed by the
// selector, or nil for aggregates and the orientation.
func (cs *CartesianState) vectorBlock(variable CartesianStateVariable) *r3.Vector {
	switch variable {
	case CartesianVariablePosition:
		return &cs.position
	case CartesianVariableLinearVelocity:
		return &cs.linearVelocity
	case CartesianVariableAngularVelocity:
		return &cs.angularVelocity
	case CartesianVariableLinearAcceleration:
		return &cs.linearAcceleration
	case CartesianVariableAngularAcceleration:
		return &cs.angularAcceleration
	case CartesianVariableForce:
		return &cs.force
	case CartesianVariableTorque:
		return &cs.torque
	default:
		return nil
	}
}

// ClampStateVariable applies a norm-based dead zone followed by a saturation
// to a single 3-vector block: a block whose magnitude is below
// noiseRatio*maxNorm is zeroed (unless the ratio is zero); a block whose
// magnitude exceeds maxNorm keeps its direction and is capped at maxNorm.
func (cs *CartesianState) ClampStateVariable(maxNorm float64, variable CartesianStateVariable, noiseRatio float64) error {
	block := cs.vectorBlock(variable)
	if block == nil {
		return NewInvalidStateVariableError("clamp", variable)
	}
	norm := block.Norm()
	switch {
	case noiseRatio != 0 && norm < noiseRatio*maxNorm:
		*block = r3.Vector{}
	case norm > maxNorm:
		*block = block.Mul(maxNorm / norm)
	}
	cs.setFilled()
	return nil
}

func formatVector(v r3.Vector) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func formatQuaternion(q quat.Number) string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.Real, q.Imag, q.Jmag, q.Kmag)
}

func (cs *CartesianState) String() string {
	if cs.IsEmpty() {
		return fmt.Sprintf("Empty %s: %s", cs.Type(), cs.Name())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s expressed in %s frame\n", cs.Type(), cs.Name(), cs.ReferenceFrame())
	fmt.Fprintf(&b, "position: %s\n", formatVector(cs.position))
	fmt.Fprintf(&b, "orientation: %s\n", formatQuaternion(cs.orientation))
	fmt.Fprintf(&b, "linear velocity: %s\n", formatVector(cs.linearVelocity))
	fmt.Fprintf(&b, "angular velocity: %s\n", formatVector(cs.angularVelocity))
	fmt.Fprintf(&b, "linear acceleration: %s\n", formatVector(cs.linearAcceleration))
	fmt.Fprintf(&b, "angular acceleration: %s\n", formatVector(cs.angularAcceleration))
	fmt.Fprintf(&b, "force: %s\n", formatVector(cs.force))
	fmt.Fprintf(&b, "torque: %s", formatVector(cs.torque))
	return b.String()
}
