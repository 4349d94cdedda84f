package state

import (
	"testing"
	"time"

	"go.viam.com/test"

	"go.viam.com/staterep/utils"
)

func TestJointPositionsConstruction(t *testing.T) {
	jp := NewJointPositions("arm", 3)
	test.That(t, jp.Type(), test.ShouldEqual, TypeJointPositions)
	test.That(t, jp.IsEmpty(), test.ShouldBeTrue)

	values := NewJointPositionsFromValues("arm", []float64{1, 2, 3})
	test.That(t, values.IsEmpty(), test.ShouldBeFalse)
	test.That(t, values.Data(), test.ShouldResemble, []float64{1, 2, 3})
}

func TestJointPositionsFromStateProjects(t *testing.T) {
	js := ZeroJointState("arm", 2)
	test.That(t, js.SetPositions([]float64{1, 2}), test.ShouldBeNil)
	test.That(t, js.SetVelocities([]float64{3, 4}), test.ShouldBeNil)

	jp := NewJointPositionsFromState(js)
	test.That(t, jp.Type(), test.ShouldEqual, TypeJointPositions)
	test.That(t, jp.Positions(), test.ShouldResemble, []float64{1, 2})
	// the projection is lossy, the other blocks are zeroed
	test.That(t, jp.Velocities(), test.ShouldResemble, []float64{0, 0})
}

func TestJointPositionsData(t *testing.T) {
	jp := ZeroJointPositions("arm", 2)
	err := jp.SetData([]float64{0.1, 0.2})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jp.Data(), test.ShouldResemble, []float64{0.1, 0.2})

	err = jp.SetData([]float64{0.1})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestJointPositionsArithmetic(t *testing.T) {
	a := NewJointPositionsFromValues("arm", []float64{1, 2})
	b := NewJointPositionsFromValues("arm", []float64{0.5, 0.5})

	sum, err := a.Add(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sum.Data(), test.ShouldResemble, []float64{1.5, 2.5})
	test.That(t, sum.Type(), test.ShouldEqual, TypeJointPositions)

	diff, err := a.Sub(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, diff.Data(), test.ShouldResemble, []float64{0.5, 1.5})

	scaled, err := a.Scale(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scaled.Data(), test.ShouldResemble, []float64{2, 4})
}

func TestJointPositionsDifferentiate(t *testing.T) {
	jp := NewJointPositionsFromValues("arm", []float64{1, -2})
	jv, err := jp.Differentiate(2 * time.Second)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jv.Type(), test.ShouldEqual, TypeJointVelocities)
	test.That(t, jv.Data(), test.ShouldResemble, []float64{0.5, -1})
}

func TestJointVelocitiesIntegrate(t *testing.T) {
	jv := NewJointVelocitiesFromValues("arm", []float64{1, -2})
	jp, err := jv.Integrate(500 * time.Millisecond)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jp.Type(), test.ShouldEqual, TypeJointPositions)
	test.That(t, jp.Data(), test.ShouldResemble, []float64{0.5, -1})
}

func TestJointVelocitiesRoundTrip(t *testing.T) {
	jp := NewJointPositionsFromValues("arm", []float64{0.3, 0.7, -1.2})
	jv, err := jp.Differentiate(time.Second)
	test.That(t, err, test.ShouldBeNil)
	back, err := jv.Integrate(time.Second)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.Float64sAlmostEqual(jp.Data(), back.Data(), 1e-9), test.ShouldBeTrue)
}

func TestJointVelocitiesClamp(t *testing.T) {
	jv := NewJointVelocitiesFromValues("arm", []float64{0.05, -3, 0.5})
	err := jv.Clamp(1.0, 0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jv.Data(), test.ShouldResemble, []float64{0, -1, 0.5})

	jv2 := NewJointVelocitiesFromValues("arm", []float64{2})
	clamped, err := jv2.Clamped(1.0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, clamped.Data(), test.ShouldResemble, []float64{1})
	// the receiver is untouched
	test.That(t, jv2.Data(), test.ShouldResemble, []float64{2})
}

func TestJointAccelerationsIntegrate(t *testing.T) {
	ja := NewJointAccelerationsFromValues("arm", []float64{2, 4})
	jv, err := ja.Integrate(500 * time.Millisecond)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jv.Type(), test.ShouldEqual, TypeJointVelocities)
	test.That(t, jv.Data(), test.ShouldResemble, []float64{1, 2})
}

func TestJointVelocitiesDifferentiate(t *testing.T) {
	jv := NewJointVelocitiesFromValues("arm", []float64{1, 2})
	ja, err := jv.Differentiate(2 * time.Second)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ja.Type(), test.ShouldEqual, TypeJointAccelerations)
	test.That(t, ja.Data(), test.ShouldResemble, []float64{0.5, 1})
}

func TestJointConversionConstructors(t *testing.T) {
	jv := NewJointVelocitiesFromValues("arm", []float64{1, 2})
	jp, err := NewJointPositionsFromVelocities(jv)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jp.Data(), test.ShouldResemble, []float64{1, 2})

	ja, err := NewJointAccelerationsFromVelocities(jv)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ja.Data(), test.ShouldResemble, []float64{1, 2})
}

func TestJointTorques(t *testing.T) {
	jt := NewJointTorquesFromValues("arm", []float64{5, -0.01})
	test.That(t, jt.Type(), test.ShouldEqual, TypeJointTorques)
	err := jt.Clamp(1.0, 0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jt.Data(), test.ShouldResemble, []float64{1, 0})
}

func TestJointSpecializationEmptyOperations(t *testing.T) {
	empty := NewJointPositions("arm", 2)
	_, err := empty.Differentiate(time.Second)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "state is empty")
}
