package state

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// JointStateVariable selects one of the four joint state variable blocks, or
// all of them concatenated in order.
type JointStateVariable int

// The joint state variable blocks.
const (
	JointVariablePositions JointStateVariable = iota
	JointVariableVelocities
	JointVariableAccelerations
	JointVariableTorques
	JointVariableAll
)

func (v JointStateVariable) String() string {
	switch v {
	case JointVariablePositions:
		return "positions"
	case JointVariableVelocities:
		return "velocities"
	case JointVariableAccelerations:
		return "accelerations"
	case JointVariableTorques:
		return "torques"
	case JointVariableAll:
		return "all"
	default:
		return "unknown"
	}
}

// JointState holds per-joint named vectors of positions, velocities,
// accelerations and torques. The four vectors always have length equal to the
// number of joint names.
type JointState struct {
	State
	names         []string
	positions     []float64
	velocities    []float64
	accelerations []float64
	torques       []float64
}

// NewJointState returns an empty joint state for a robot with the given number
// of joints, named "joint0" through "jointN-1".
func NewJointState(name string, dof int) JointState {
	names := make([]string, dof)
	for i := range names {
		names[i] = "joint" + strconv.Itoa(i)
	}
	return NewJointStateWithNames(name, names)
}

// NewJointStateWithNames returns an empty joint state with the given joint names.
func NewJointStateWithNames(name string, jointNames []string) JointState {
	js := JointState{State: NewState(TypeJointState, name)}
	js.names = slices.Clone(jointNames)
	js.initialize()
	return js
}

// ZeroJointState returns a filled joint state with all variables at zero.
func ZeroJointState(name string, dof int) JointState {
	js := NewJointState(name, dof)
	js.setFilled()
	return js
}

// ZeroJointStateWithNames returns a filled joint state with the given joint
// names and all variables at zero.
func ZeroJointStateWithNames(name string, jointNames []string) JointState {
	js := NewJointStateWithNames(name, jointNames)
	js.setFilled()
	return js
}

// RandomJointState returns a joint state with all four blocks drawn uniformly
// from [-1, 1).
func RandomJointState(name string, dof int) JointState {
	js := NewJointState(name, dof)
	// cannot fail, the buffer is sized to the state
	_ = js.SetData(randomFloats(4 * dof))
	return js
}

// initialize resizes the four vectors to the number of names and zeroes them.
func (js *JointState) initialize() {
	js.State.initialize()
	size := len(js.names)
	js.positions = make([]float64, size)
	js.velocities = make([]float64, size)
	js.accelerations = make([]float64, size)
	js.torques = make([]float64, size)
}

// Copy returns a deep copy. The timestamp of the source is preserved.
func (js *JointState) Copy() JointState {
	out := *js
	out.names = slices.Clone(js.names)
	out.positions = slices.Clone(js.positions)
	out.velocities = slices.Clone(js.velocities)
	out.accelerations = slices.Clone(js.accelerations)
	out.torques = slices.Clone(js.torques)
	return out
}

// Size returns the number of joints.
func (js *JointState) Size() int {
	return len(js.names)
}

// Names returns a copy of the ordered joint names.
func (js *JointState) Names() []string {
	return slices.Clone(js.names)
}

// SetNames replaces the joint names. Changing the number of joints resizes the
// four state variable vectors and zeroes them.
func (js *JointState) SetNames(jointNames []string) {
	resized := len(jointNames) != len(js.names)
	js.names = slices.Clone(jointNames)
	if resized {
		js.initialize()
	}
}

// JointIndex returns the index of the joint with the given name.
func (js *JointState) JointIndex(jointName string) (int, error) {
	idx := slices.Index(js.names, jointName)
	if idx < 0 {
		return 0, NewJointNotFoundError(jointName)
	}
	return idx, nil
}

// assertIndexInRange verifies 0 <= index < size.
func (js *JointState) assertIndexInRange(index int) error {
	if index < 0 || index >= len(js.names) {
		return NewJointIndexOutOfRangeError(index, len(js.names))
	}
	return nil
}

// block returns the backing slice for a single (non-aggregate) variable block.
func (js *JointState) block(variable JointStateVariable) []float64 {
	switch variable {
	case JointVariablePositions:
		return js.positions
	case JointVariableVelocities:
		return js.velocities
	case JointVariableAccelerations:
		return js.accelerations
	case JointVariableTorques:
		return js.torques
	default:
		return nil
	}
}

// StateVariable returns a copy of the selected block; selecting all returns
// the concatenation [positions, velocities, accelerations, torques].
func (js *JointState) StateVariable(variable JointStateVariable) []float64 {
	if variable == JointVariableAll {
		out := make([]float64, 0, 4*len(js.names))
		out = append(out, js.positions...)
		out = append(out, js.velocities...)
		out = append(out, js.accelerations...)
		out = append(out, js.torques...)
		return out
	}
	return slices.Clone(js.block(variable))
}

// SetStateVariable assigns the selected block, validating the buffer size, and
// marks the state as filled.
func (js *JointState) SetStateVariable(values []float64, variable JointStateVariable) error {
	size := len(js.names)
	if variable == JointVariableAll {
		if len(values) != 4*size {
			return NewIncompatibleSizeError(4*size, len(values))
		}
		copy(js.positions, values[:size])
		copy(js.velocities, values[size:2*size])
		copy(js.accelerations, values[2*size:3*size])
		copy(js.torques, values[3*size:])
		js.setFilled()
		return nil
	}
	if len(values) != size {
		return NewIncompatibleSizeError(size, len(values))
	}
	copy(js.block(variable), values)
	js.setFilled()
	return nil
}

// Positions returns a copy of the joint positions.
func (js *JointState) Positions() []float64 {
	return slices.Clone(js.positions)
}

// Position returns the position of the joint at the given index.
func (js *JointState) Position(index int) (float64, error) {
	if err := js.assertIndexInRange(index); err != nil {
		return 0, err
	}
	return js.positions[index], nil
}

// PositionByName returns the position of the named joint.
func (js *JointState) PositionByName(jointName string) (float64, error) {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return 0, err
	}
	return js.positions[idx], nil
}

// SetPositions assigns the joint positions.
func (js *JointState) SetPositions(values []float64) error {
	return js.SetStateVariable(values, JointVariablePositions)
}

// SetPosition assigns the position of the joint at the given index.
func (js *JointState) SetPosition(value float64, index int) error {
	if err := js.assertIndexInRange(index); err != nil {
		return err
	}
	js.positions[index] = value
	js.setFilled()
	return nil
}

// SetPositionByName assigns the position of the named joint.
func (js *JointState) SetPositionByName(value float64, jointName string) error {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return err
	}
	js.positions[idx] = value
	js.setFilled()
	return nil
}

// Velocities returns a copy of the joint velocities.
func (js *JointState) Velocities() []float64 {
	return slices.Clone(js.velocities)
}

// Velocity returns the velocity of the joint at the given index.
func (js *JointState) Velocity(index int) (float64, error) {
	if err := js.assertIndexInRange(index); err != nil {
		return 0, err
	}
	return js.velocities[index], nil
}

// VelocityByName returns the velocity of the named joint.
func (js *JointState) VelocityByName(jointName string) (float64, error) {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return 0, err
	}
	return js.velocities[idx], nil
}

// SetVelocities assigns the joint velocities.
func (js *JointState) SetVelocities(values []float64) error {
	return js.SetStateVariable(values, JointVariableVelocities)
}

// SetVelocity assigns the velocity of the joint at the given index.
func (js *JointState) SetVelocity(value float64, index int) error {
	if err := js.assertIndexInRange(index); err != nil {
		return err
	}
	js.velocities[index] = value
	js.setFilled()
	return nil
}

// SetVelocityByName assigns the velocity of the named joint.
func (js *JointState) SetVelocityByName(value float64, jointName string) error {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return err
	}
	js.velocities[idx] = value
	js.setFilled()
	return nil
}

// Accelerations returns a copy of the joint accelerations.
func (js *JointState) Accelerations() []float64 {
	return slices.Clone(js.accelerations)
}

// Acceleration returns the acceleration of the joint at the given index.
func (js *JointState) Acceleration(index int) (float64, error) {
	if err := js.assertIndexInRange(index); err != nil {
		return 0, err
	}
	return js.accelerations[index], nil
}

// AccelerationByName returns the acceleration of the named joint.
func (js *JointState) AccelerationByName(jointName string) (float64, error) {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return 0, err
	}
	return js.accelerations[idx], nil
}

// SetAccelerations assigns the joint accelerations.
func (js *JointState) SetAccelerations(values []float64) error {
	return js.SetStateVariable(values, JointVariableAccelerations)
}

// SetAcceleration assigns the acceleration of the joint at the given index.
func (js *JointState) SetAcceleration(value float64, index int) error {
	if err := js.assertIndexInRange(index); err != nil {
		return err
	}
	js.accelerations[index] = value
	js.setFilled()
	return nil
}

// SetAccelerationByName assigns the acceleration of the named joint.
func (js *JointState) SetAccelerationByName(value float64, jointName string) error {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return err
	}
	js.accelerations[idx] = value
	js.setFilled()
	return nil
}

// Torques returns a copy of the joint torques.
func (js *JointState) Torques() []float64 {
	return slices.Clone(js.torques)
}

// Torque returns the torque of the joint at the given index.
func (js *JointState) Torque(index int) (float64, error) {
	if err := js.assertIndexInRange(index); err != nil {
		return 0, err
	}
	return js.torques[index], nil
}

// TorqueByName returns the torque of the named joint.
func (js *JointState) TorqueByName(jointName string) (float64, error) {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return 0, err
	}
	return js.torques[idx], nil
}

// SetTorques assigns the joint torques.
func (js *JointState) SetTorques(values []float64) error {
	return js.SetStateVariable(values, JointVariableTorques)
}

// SetTorque assigns the torque of the joint at the given index.
func (js *JointState) SetTorque(value float64, index int) error {
	if err := js.assertIndexInRange(index); err != nil {
		return err
	}
	js.torques[index] = value
	js.setFilled()
	return nil
}

// SetTorqueByName assigns the torque of the named joint.
func (js *JointState) SetTorqueByName(value float64, jointName string) error {
	idx, err := js.JointIndex(jointName)
	if err != nil {
		return err
	}
	js.torques[idx] = value
	js.setFilled()
	return nil
}

// Data returns the concatenation of the four state variable blocks.
func (js *JointState) Data() []float64 {
	return js.StateVariable(JointVariableAll)
}

// SetData assigns all four state variable blocks from a 4n buffer.
func (js *JointState) SetData(data []float64) error {
	return js.SetStateVariable(data, JointVariableAll)
}

// IsCompatible reports whether two joint states may be combined: same type tag
// and identical joint-name sequences, order included.
func (js *JointState) IsCompatible(other *JointState) bool {
	return js.Type() == other.Type() && slices.Equal(js.names, other.names)
}

// validatePair runs the shared guards of every binary joint state operation:
// receiver emptiness, argument emptiness, then compatibility, in that order.
func (js *JointState) validatePair(other *JointState) error {
	if js.IsEmpty() {
		return NewEmptyStateError(js.Name())
	}
	if other.IsEmpty() {
		return NewEmptyStateError(other.Name())
	}
	if !js.IsCompatible(other) {
		return NewIncompatibleJointStatesError(js.Name(), other.Name())
	}
	return nil
}

// Add returns the elementwise sum over all four state variable blocks.
func (js *JointState) Add(other JointState) (JointState, error) {
	if err := js.validatePair(&other); err != nil {
		return JointState{}, err
	}
	out := js.Copy()
	floats.Add(out.positions, other.positions)
	floats.Add(out.velocities, other.velocities)
	floats.Add(out.accelerations, other.accelerations)
	floats.Add(out.torques, other.torques)
	out.setFilled()
	return out, nil
}

// Sub returns the elementwise difference over all four state variable blocks.
func (js *JointState) Sub(other JointState) (JointState, error) {
	if err := js.validatePair(&other); err != nil {
		return JointState{}, err
	}
	out := js.Copy()
	floats.Sub(out.positions, other.positions)
	floats.Sub(out.velocities, other.velocities)
	floats.Sub(out.accelerations, other.accelerations)
	floats.Sub(out.torques, other.torques)
	out.setFilled()
	return out, nil
}

// Scale returns the state with all four blocks scaled by lambda.
func (js *JointState) Scale(lambda float64) (JointState, error) {
	if js.IsEmpty() {
		return JointState{}, NewEmptyStateError(js.Name())
	}
	out := js.Copy()
	floats.Scale(lambda, out.positions)
	floats.Scale(lambda, out.velocities)
	floats.Scale(lambda, out.accelerations)
	floats.Scale(lambda, out.torques)
	out.setFilled()
	return out, nil
}

// Divide returns the state with all four blocks divided by lambda.
func (js *JointState) Divide(lambda float64) (JointState, error) {
	return js.Scale(1 / lambda)
}

// MultiplyStateVariable applies an elementwise gain to the selected block.
func (js *JointState) MultiplyStateVariable(gains []float64, variable JointStateVariable) error {
	values := js.StateVariable(variable)
	if len(gains) != len(values) {
		return NewIncompatibleSizeError(len(values), len(gains))
	}
	floats.Mul(values, gains)
	return js.SetStateVariable(values, variable)
}

// MultiplyStateVariableMatrix applies a full NxN gain matrix to the selected
// block, N being the block size.
func (js *JointState) MultiplyStateVariableMatrix(gain *mat.Dense, variable JointStateVariable) error {
	values := js.StateVariable(variable)
	rows, cols := gain.Dims()
	if rows != len(values) || cols != len(values) {
		return NewIncompatibleMatrixSizeError(len(values), rows, cols)
	}
	result := mat.NewVecDense(len(values), nil)
	result.MulVec(gain, mat.NewVecDense(len(values), values))
	return js.SetStateVariable(result.RawVector().Data, variable)
}

// ClampStateVariableArray applies a per-element dead zone followed by a
// saturation to the selected block. An element whose magnitude is below
// noiseRatio*maxAbs is zeroed (unless the ratio is zero); an element whose
// magnitude exceeds maxAbs is rescaled to maxAbs keeping its sign.
func (js *JointState) ClampStateVariableArray(maxAbs, noiseRatios []float64, variable JointStateVariable) error {
	values := js.StateVariable(variable)
	if len(maxAbs) != len(values) {
		return NewIncompatibleSizeError(len(values), len(maxAbs))
	}
	if len(noiseRatios) != len(values) {
		return NewIncompatibleSizeError(len(values), len(noiseRatios))
	}
	for i, value := range values {
		switch {
		case noiseRatios[i] != 0 && math.Abs(value) < noiseRatios[i]*maxAbs[i]:
			values[i] = 0
		case math.Abs(value) > maxAbs[i]:
			values[i] = value * maxAbs[i] / math.Abs(value)
		}
	}
	return js.SetStateVariable(values, variable)
}

// ClampStateVariable is the scalar broadcast of ClampStateVariableArray.
func (js *JointState) ClampStateVariable(maxAbs float64, variable JointStateVariable, noiseRatio float64) error {
	size := len(js.StateVariable(variable))
	maxValues := make([]float64, size)
	ratios := make([]float64, size)
	for i := 0; i < size; i++ {
		maxValues[i] = maxAbs
		ratios[i] = noiseRatio
	}
	return js.ClampStateVariableArray(maxValues, ratios, variable)
}

// Dist returns the sum of the Euclidean norms of the differences of the
// selected blocks; selecting all sums the four block norms.
func (js *JointState) Dist(other JointState, variable JointStateVariable) (float64, error) {
	if err := js.validatePair(&other); err != nil {
		return 0, err
	}
	result := 0.0
	if variable == JointVariablePositions || variable == JointVariableAll {
		result += floats.Distance(js.positions, other.positions, 2)
	}
	if variable == JointVariableVelocities || variable == JointVariableAll {
		result += floats.Distance(js.velocities, other.velocities, 2)
	}
	if variable == JointVariableAccelerations || variable == JointVariableAll {
		result += floats.Distance(js.accelerations, other.accelerations, 2)
	}
	if variable == JointVariableTorques || variable == JointVariableAll {
		result += floats.Distance(js.torques, other.torques, 2)
	}
	return result, nil
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (js *JointState) String() string {
	if js.IsEmpty() {
		return fmt.Sprintf("Empty %s: %s", js.Type(), js.Name())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", js.Type(), js.Name())
	fmt.Fprintf(&b, "names: [%s]\n", strings.Join(js.names, ", "))
	fmt.Fprintf(&b, "positions: %s\n", formatFloats(js.positions))
	fmt.Fprintf(&b, "velocities: %s\n", formatFloats(js.velocities))
	fmt.Fprintf(&b, "accelerations: %s\n", formatFloats(js.accelerations))
	fmt.Fprintf(&b, "torques: %s", formatFloats(js.torques))
	return b.String()
}
