package state

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// JointPositions is a joint state whose primary state variable block is the
// joint positions.
type JointPositions struct {
	JointState
}

// NewJointPositions returns empty joint positions for a robot with the given
// number of joints.
func NewJointPositions(name string, dof int) JointPositions {
	jp := JointPositions{NewJointState(name, dof)}
	jp.typ = TypeJointPositions
	return jp
}

// NewJointPositionsWithNames returns empty joint positions with the given joint names.
func NewJointPositionsWithNames(name string, jointNames []string) JointPositions {
	jp := JointPositions{NewJointStateWithNames(name, jointNames)}
	jp.typ = TypeJointPositions
	return jp
}

// NewJointPositionsFromValues returns joint positions holding the given values.
func NewJointPositionsFromValues(name string, values []float64) JointPositions {
	jp := NewJointPositions(name, len(values))
	// cannot fail, the state is sized to the buffer
	_ = jp.SetPositions(values)
	return jp
}

// NewJointPositionsFromState narrows a full joint state to its positions block.
func NewJointPositionsFromState(source JointState) JointPositions {
	return JointPositions{projectJointState(source, TypeJointPositions, JointVariablePositions)}
}

// NewJointPositionsFromVelocities integrates the given velocities over one second.
func NewJointPositionsFromVelocities(velocities JointVelocities) (JointPositions, error) {
	return velocities.Integrate(time.Second)
}

// ZeroJointPositions returns filled joint positions at zero.
func ZeroJointPositions(name string, dof int) JointPositions {
	jp := NewJointPositions(name, dof)
	jp.setFilled()
	return jp
}

// RandomJointPositions returns joint positions drawn uniformly from [-1, 1).
func RandomJointPositions(name string, dof int) JointPositions {
	jp := NewJointPositions(name, dof)
	// cannot fail, the buffer is sized to the state
	_ = jp.SetPositions(randomFloats(dof))
	return jp
}

// Copy returns a deep copy, preserving the source timestamp.
func (jp *JointPositions) Copy() JointPositions {
	return JointPositions{jp.JointState.Copy()}
}

// Data returns the joint positions vector.
func (jp *JointPositions) Data() []float64 {
	return jp.Positions()
}

// SetData assigns the joint positions from an n-vector.
func (jp *JointPositions) SetData(values []float64) error {
	return jp.SetPositions(values)
}

// Add returns the sum of the two position vectors.
func (jp *JointPositions) Add(other JointPositions) (JointPositions, error) {
	out, err := jp.JointState.Add(other.JointState)
	if err != nil {
		return JointPositions{}, err
	}
	return JointPositions{out}, nil
}

// Sub returns the difference of the two position vectors.
func (jp *JointPositions) Sub(other JointPositions) (JointPositions, error) {
	out, err := jp.JointState.Sub(other.JointState)
	if err != nil {
		return JointPositions{}, err
	}
	return JointPositions{out}, nil
}

// Scale returns the positions scaled by lambda.
func (jp *JointPositions) Scale(lambda float64) (JointPositions, error) {
	out, err := jp.JointState.Scale(lambda)
	if err != nil {
		return JointPositions{}, err
	}
	return JointPositions{out}, nil
}

// Divide returns the positions divided by lambda.
func (jp *JointPositions) Divide(lambda float64) (JointPositions, error) {
	return jp.Scale(1 / lambda)
}

// Clamp applies the dead zone and saturation policy to the positions in place.
func (jp *JointPositions) Clamp(maxAbs, noiseRatio float64) error {
	return jp.ClampStateVariable(maxAbs, JointVariablePositions, noiseRatio)
}

// Clamped returns a clamped copy.
func (jp *JointPositions) Clamped(maxAbs, noiseRatio float64) (JointPositions, error) {
	out := jp.Copy()
	if err := out.Clamp(maxAbs, noiseRatio); err != nil {
		return JointPositions{}, err
	}
	return out, nil
}

// Differentiate derives the joint velocities reached by traversing the
// positions over the given duration.
func (jp *JointPositions) Differentiate(dt time.Duration) (JointVelocities, error) {
	if jp.IsEmpty() {
		return JointVelocities{}, NewEmptyStateError(jp.Name())
	}
	out := NewJointVelocitiesWithNames(jp.Name(), jp.names)
	values := jp.Positions()
	floats.Scale(1/dt.Seconds(), values)
	if err := out.SetVelocities(values); err != nil {
		return JointVelocities{}, err
	}
	return out, nil
}

func (jp *JointPositions) String() string {
	return jp.formatBlock(JointVariablePositions)
}
