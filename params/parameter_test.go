package params

import (
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/staterep/state"
)

func TestParameterDeclaration(t *testing.T) {
	p := NewParameter("gain", TypeDouble)
	test.That(t, p.Name(), test.ShouldEqual, "gain")
	test.That(t, p.Type(), test.ShouldEqual, TypeDouble)
	test.That(t, p.IsSet(), test.ShouldBeFalse)

	_, err := p.Value()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "has no value")
}

func TestParameterPrimitiveValues(t *testing.T) {
	p, err := NewParameterFromValue("enabled", TypeBool, true)
	test.That(t, err, test.ShouldBeNil)
	v, err := p.BoolValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v, test.ShouldBeTrue)

	count, err := NewParameterFromValue("count", TypeInt, 3)
	test.That(t, err, test.ShouldBeNil)
	n, err := count.IntValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 3)

	gain, err := NewParameterFromValue("gain", TypeDouble, 0.5)
	test.That(t, err, test.ShouldBeNil)
	g, err := gain.DoubleValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g, test.ShouldEqual, 0.5)

	label, err := NewParameterFromValue("label", TypeString, "tool")
	test.That(t, err, test.ShouldBeNil)
	s, err := label.StringValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s, test.ShouldEqual, "tool")
}

func TestParameterCoercion(t *testing.T) {
	// an int assigned to a Double parameter is coerced, not rejected
	gain, err := NewParameterFromValue("gain", TypeDouble, 2)
	test.That(t, err, test.ShouldBeNil)
	g, err := gain.DoubleValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g, test.ShouldEqual, 2.0)

	_, err = NewParameterFromValue("gain", TypeDouble, "not a number")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParameterArrayValues(t *testing.T) {
	gains, err := NewParameterFromValue("gains", TypeDoubleArray, []float64{1, 2, 3})
	test.That(t, err, test.ShouldBeNil)
	values, err := gains.DoubleArrayValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, values, test.ShouldResemble, []float64{1, 2, 3})

	names, err := NewParameterFromValue("names", TypeStringArray, []string{"a", "b"})
	test.That(t, err, test.ShouldBeNil)
	labels, err := names.StringArrayValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, labels, test.ShouldResemble, []string{"a", "b"})
}

func TestParameterTypeMismatch(t *testing.T) {
	p, err := NewParameterFromValue("gain", TypeDouble, 0.5)
	test.That(t, err, test.ShouldBeNil)
	_, err = p.IntValue()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not of type Int")
}

func TestParameterStateValues(t *testing.T) {
	pose := state.RandomCartesianPose("attractor", "world")
	p, err := NewParameterFromValue("attractor", TypeCartesianPose, pose)
	test.That(t, err, test.ShouldBeNil)
	out, err := p.CartesianPoseValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.Name(), test.ShouldEqual, "attractor")

	// a full Cartesian state does not satisfy a pose-typed parameter
	cs := state.RandomCartesianState("full", "world")
	_, err = NewParameterFromValue("attractor", TypeCartesianPose, cs)
	test.That(t, err, test.ShouldNotBeNil)

	js := state.ZeroJointState("robot", 3)
	jsParam, err := NewParameterFromValue("config", TypeJointState, js)
	test.That(t, err, test.ShouldBeNil)
	jsOut, err := jsParam.JointStateValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jsOut.Size(), test.ShouldEqual, 3)
}

func TestParameterMatrixAndVector(t *testing.T) {
	gain := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	p, err := NewParameterFromValue("gain_matrix", TypeMatrix, gain)
	test.That(t, err, test.ShouldBeNil)
	m, err := p.MatrixValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.At(1, 1), test.ShouldEqual, 1.0)

	// a float slice is boxed into a dense vector
	v, err := NewParameterFromValue("weights", TypeVector, []float64{1, 2})
	test.That(t, err, test.ShouldBeNil)
	vec, err := v.VectorValue()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, vec.Len(), test.ShouldEqual, 2)
	test.That(t, vec.AtVec(1), test.ShouldEqual, 2.0)
}

func TestParameterString(t *testing.T) {
	p := NewParameter("gain", TypeDouble)
	test.That(t, p.String(), test.ShouldContainSubstring, "unset")
	test.That(t, p.SetValue(0.5), test.ShouldBeNil)
	test.That(t, p.String(), test.ShouldContainSubstring, "0.5")
}
