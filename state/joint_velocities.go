package state

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// JointVelocities is a joint state whose primary state variable block is the
// joint velocities.
type JointVelocities struct {
	JointState
}

// NewJointVelocities returns empty joint velocities for a robot with the given
// number of joints.
func NewJointVelocities(name string, dof int) JointVelocities {
	jv := JointVelocities{NewJointState(name, dof)}
	jv.typ = TypeJointVelocities
	return jv
}

// NewJointVelocitiesWithNames returns empty joint velocities with the given joint names.
func NewJointVelocitiesWithNames(name string, jointNames []string) JointVelocities {
	jv := JointVelocities{NewJointStateWithNames(name, jointNames)}
	jv.typ = TypeJointVelocities
	return jv
}

// NewJointVelocitiesFromValues returns joint velocities holding the given values.
func NewJointVelocitiesFromValues(name string, values []float64) JointVelocities {
	jv := NewJointVelocities(name, len(values))
	// cannot fail, the state is sized to the buffer
	_ = jv.SetVelocities(values)
	return jv
}

// NewJointVelocitiesFromState narrows a full joint state to its velocities block.
func NewJointVelocitiesFromState(source JointState) JointVelocities {
	return JointVelocities{projectJointState(source, TypeJointVelocities, JointVariableVelocities)}
}

// NewJointVelocitiesFromPositions differentiates the given positions over one second.
func NewJointVelocitiesFromPositions(positions JointPositions) (JointVelocities, error) {
	return positions.Differentiate(time.Second)
}

// NewJointVelocitiesFromAccelerations integrates the given accelerations over
// one second.
func NewJointVelocitiesFromAccelerations(accelerations JointAccelerations) (JointVelocities, error) {
	return accelerations.Integrate(time.Second)
}

// ZeroJointVelocities returns filled joint velocities at zero.
func ZeroJointVelocities(name string, dof int) JointVelocities {
	jv := NewJointVelocities(name, dof)
	jv.setFilled()
	return jv
}

// RandomJointVelocities returns joint velocities drawn uniformly from [-1, 1).
func RandomJointVelocities(name string, dof int) JointVelocities {
	jv := NewJointVelocities(name, dof)
	// cannot fail, the buffer is sized to the state
	_ = jv.SetVelocities(randomFloats(dof))
	return jv
}

// Copy returns a deep copy, preserving the source timestamp.
func (jv *JointVelocities) Copy() JointVelocities {
	return JointVelocities{jv.JointState.Copy()}
}

// Data returns the joint velocities vector.
func (jv *JointVelocities) Data() []float64 {
	return jv.Velocities()
}

// SetData assigns the joint velocities from an n-vector.
func (jv *JointVelocities) SetData(values []float64) error {
	return jv.SetVelocities(values)
}

// Add returns the sum of the two velocity vectors.
func (jv *JointVelocities) Add(other JointVelocities) (JointVelocities, error) {
	out, err := jv.JointState.Add(other.JointState)
	if err != nil {
		return JointVelocities{}, err
	}
	return JointVelocities{out}, nil
}

// Sub returns the difference of the two velocity vectors.
func (jv *JointVelocities) Sub(other JointVelocities) (JointVelocities, error) {
	out, err := jv.JointState.Sub(other.JointState)
	if err != nil {
		return JointVelocities{}, err
	}
	return JointVelocities{out}, nil
}

// Scale returns the velocities scaled by lambda.
func (jv *JointVelocities) Scale(lambda float64) (JointVelocities, error) {
	out, err := jv.JointState.Scale(lambda)
	if err != nil {
		return JointVelocities{}, err
	}
	return JointVelocities{out}, nil
}

// Divide returns the velocities divided by lambda.
func (jv *JointVelocities) Divide(lambda float64) (JointVelocities, error) {
	return jv.Scale(1 / lambda)
}

// Clamp applies the dead zone and saturation policy to the velocities in place.
func (jv *JointVelocities) Clamp(maxAbs, noiseRatio float64) error {
	return jv.ClampStateVariable(maxAbs, JointVariableVelocities, noiseRatio)
}

// Clamped returns a clamped copy.
func (jv *JointVelocities) Clamped(maxAbs, noiseRatio float64) (JointVelocities, error) {
	out := jv.Copy()
	if err := out.Clamp(maxAbs, noiseRatio); err != nil {
		return JointVelocities{}, err
	}
	return out, nil
}

// Integrate derives the joint positions reached by applying the velocities
// over the given duration.
func (jv *JointVelocities) Integrate(dt time.Duration) (JointPositions, error) {
	if jv.IsEmpty() {
		return JointPositions{}, NewEmptyStateError(jv.Name())
	}
	out := NewJointPositionsWithNames(jv.Name(), jv.names)
	values := jv.Velocities()
	floats.Scale(dt.Seconds(), values)
	if err := out.SetPositions(values); err != nil {
		return JointPositions{}, err
	}
	return out, nil
}

// Differentiate derives the joint accelerations reached by traversing the
// velocities over the given duration.
func (jv *JointVelocities) Differentiate(dt time.Duration) (JointAccelerations, error) {
	if jv.IsEmpty() {
		return JointAccelerations{}, NewEmptyStateError(jv.Name())
	}
	out := NewJointAccelerationsWithNames(jv.Name(), jv.names)
	values := jv.Velocities()
	floats.Scale(1/dt.Seconds(), values)
	if err := out.SetAccelerations(values); err != nil {
		return JointAccelerations{}, err
	}
	return out, nil
}

func (jv *JointVelocities) String() string {
	return jv.formatBlock(JointVariableVelocities)
}
