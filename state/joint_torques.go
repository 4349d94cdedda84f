package state

// JointTorques is a joint state whose primary state variable block is the
// joint torques.
type JointTorques struct {
	JointState
}

// NewJointTorques returns empty joint torques for a robot with the given
// number of joints.
func NewJointTorques(name string, dof int) JointTorques {
	jt := JointTorques{NewJointState(name, dof)}
	jt.typ = TypeJointTorques
	return jt
}

// NewJointTorquesWithNames returns empty joint torques with the given joint names.
func NewJointTorquesWithNames(name string, jointNames []string) JointTorques {
	jt := JointTorques{NewJointStateWithNames(name, jointNames)}
	jt.typ = TypeJointTorques
	return jt
}

// NewJointTorquesFromValues returns joint torques holding the given values.
func NewJointTorquesFromValues(name string, values []float64) JointTorques {
	jt := NewJointTorques(name, len(values))
	// cannot fail, the state is sized to the buffer
	_ = jt.SetTorques(values)
	return jt
}

// NewJointTorquesFromState narrows a full joint state to its torques block.
func NewJointTorquesFromState(source JointState) JointTorques {
	return JointTorques{projectJointState(source, TypeJointTorques, JointVariableTorques)}
}

// ZeroJointTorques returns filled joint torques at zero.
func ZeroJointTorques(name string, dof int) JointTorques {
	jt := NewJointTorques(name, dof)
	jt.setFilled()
	return jt
}

// RandomJointTorques returns joint torques drawn uniformly from [-1, 1).
func RandomJointTorques(name string, dof int) JointTorques {
	jt := NewJointTorques(name, dof)
	// cannot fail, the buffer is sized to the state
	_ = jt.SetTorques(randomFloats(dof))
	return jt
}

// Copy returns a deep copy, preserving the source timestamp.
func (jt *JointTorques) Copy() JointTorques {
	return JointTorques{jt.JointState.Copy()}
}

// Data returns the joint torques vector.
func (jt *JointTorques) Data() []float64 {
	return jt.Torques()
}

// SetData assigns the joint torques from an n-vector.
func (jt *JointTorques) SetData(values []float64) error {
	return jt.SetTorques(values)
}

// Add returns the sum of the two torque vectors.
func (jt *JointTorques) Add(other JointTorques) (JointTorques, error) {
	out, err := jt.JointState.Add(other.JointState)
	if err != nil {
		return JointTorques{}, err
	}
	return JointTorques{out}, nil
}

// Sub returns the difference of the two torque vectors.
func (jt *JointTorques) Sub(other JointTorques) (JointTorques, error) {
	out, err := jt.JointState.Sub(other.JointState)
	if err != nil {
		return JointTorques{}, err
	}
	return JointTorques{out}, nil
}

// Scale returns the torques scaled by lambda.
func (jt *JointTorques) Scale(lambda float64) (JointTorques, error) {
	out, err := jt.JointState.Scale(lambda)
	if err != nil {
		return JointTorques{}, err
	}
	return JointTorques{out}, nil
}

// Divide returns the torques divided by lambda.
func (jt *JointTorques) Divide(lambda float64) (JointTorques, error) {
	return jt.Scale(1 / lambda)
}

// Clamp applies the dead zone and saturation policy to the torques in place.
func (jt *JointTorques) Clamp(maxAbs, noiseRatio float64) error {
	return jt.ClampStateVariable(maxAbs, JointVariableTorques, noiseRatio)
}

// Clamped returns a clamped copy.
func (jt *JointTorques) Clamped(maxAbs, noiseRatio float64) (JointTorques, error) {
	out := jt.Copy()
	if err := out.Clamp(maxAbs, noiseRatio); err != nil {
		return JointTorques{}, err
	}
	return out, nil
}

func (jt *JointTorques) String() string {
	return jt.formatBlock(JointVariableTorques)
}
