package state

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// JointAccelerations is a joint state whose primary state variable block is the
// joint accelerations.
type JointAccelerations struct {
	JointState
}

// NewJointAccelerations returns empty joint accelerations for a robot with the
// given number of joints.
func NewJointAccelerations(name string, dof int) JointAccelerations {
	ja := JointAccelerations{NewJointState(name, dof)}
	ja.typ = TypeJointAccelerations
	return ja
}

// NewJointAccelerationsWithNames returns empty joint accelerations with the
// given joint names.
func NewJointAccelerationsWithNames(name string, jointNames []string) JointAccelerations {
	ja := JointAccelerations{NewJointStateWithNames(name, jointNames)}
	ja.typ = TypeJointAccelerations
	return ja
}

// NewJointAccelerationsFromValues returns joint accelerations holding the given values.
func NewJointAccelerationsFromValues(name string, values []float64) JointAccelerations {
	ja := NewJointAccelerations(name, len(values))
	// cannot fail, the state is sized to the buffer
	_ = ja.SetAccelerations(values)
	return ja
}

// NewJointAccelerationsFromState narrows a full joint state to its
// accelerations block.
func NewJointAccelerationsFromState(source JointState) JointAccelerations {
	return JointAccelerations{projectJointState(source, TypeJointAccelerations, JointVariableAccelerations)}
}

// NewJointAccelerationsFromVelocities differentiates the given velocities over
// one second.
func NewJointAccelerationsFromVelocities(velocities JointVelocities) (JointAccelerations, error) {
	return velocities.Differentiate(time.Second)
}

// ZeroJointAccelerations returns filled joint accelerations at zero.
func ZeroJointAccelerations(name string, dof int) JointAccelerations {
	ja := NewJointAccelerations(name, dof)
	ja.setFilled()
	return ja
}

// RandomJointAccelerations returns joint accelerations drawn uniformly from [-1, 1).
func RandomJointAccelerations(name string, dof int) JointAccelerations {
	ja := NewJointAccelerations(name, dof)
	// cannot fail, the buffer is sized to the state
	_ = ja.SetAccelerations(randomFloats(dof))
	return ja
}

// Copy returns a deep copy, preserving the source timestamp.
func (ja *JointAccelerations) Copy() JointAccelerations {
	return JointAccelerations{ja.JointState.Copy()}
}

// Data returns the joint accelerations vector.
func (ja *JointAccelerations) Data() []float64 {
	return ja.Accelerations()
}

// SetData assigns the joint accelerations from an n-vector.
func (ja *JointAccelerations) SetData(values []float64) error {
	return ja.SetAccelerations(values)
}

// Add returns the sum of the two acceleration vectors.
func (ja *JointAccelerations) Add(other JointAccelerations) (JointAccelerations, error) {
	out, err := ja.JointState.Add(other.JointState)
	if err != nil {
		return JointAccelerations{}, err
	}
	return JointAccelerations{out}, nil
}

// Sub returns the difference of the two acceleration vectors.
func (ja *JointAccelerations) Sub(other JointAccelerations) (JointAccelerations, error) {
	out, err := ja.JointState.Sub(other.JointState)
	if err != nil {
		return JointAccelerations{}, err
	}
	return JointAccelerations{out}, nil
}

// Scale returns the accelerations scaled by lambda.
func (ja *JointAccelerations) Scale(lambda float64) (JointAccelerations, error) {
	out, err := ja.JointState.Scale(lambda)
	if err != nil {
		return JointAccelerations{}, err
	}
	return JointAccelerations{out}, nil
}

// Divide returns the accelerations divided by lambda.
func (ja *JointAccelerations) Divide(lambda float64) (JointAccelerations, error) {
	return ja.Scale(1 / lambda)
}

// Clamp applies the dead zone and saturation policy to the accelerations in place.
func (ja *JointAccelerations) Clamp(maxAbs, noiseRatio float64) error {
	return ja.ClampStateVariable(maxAbs, JointVariableAccelerations, noiseRatio)
}

// Clamped returns a clamped copy.
func (ja *JointAccelerations) Clamped(maxAbs, noiseRatio float64) (JointAccelerations, error) {
	out := ja.Copy()
	if err := out.Clamp(maxAbs, noiseRatio); err != nil {
		return JointAccelerations{}, err
	}
	return out, nil
}

// Integrate derives the joint velocities reached by applying the accelerations
// over the given duration.
func (ja *JointAccelerations) Integrate(dt time.Duration) (JointVelocities, error) {
	if ja.IsEmpty() {
		return JointVelocities{}, NewEmptyStateError(ja.Name())
	}
	out := NewJointVelocitiesWithNames(ja.Name(), ja.names)
	values := ja.Accelerations()
	floats.Scale(dt.Seconds(), values)
	if err := out.SetVelocities(values); err != nil {
		return JointVelocities{}, err
	}
	return out, nil
}

func (ja *JointAccelerations) String() string {
	return ja.formatBlock(JointVariableAccelerations)
}
