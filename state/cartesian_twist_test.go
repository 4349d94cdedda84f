package state

import (
	"math"
	"testing"
	"time"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/staterep/utils"
)

func TestCartesianTwistConstruction(t *testing.T) {
	ct := NewCartesianTwist("v")
	test.That(t, ct.Type(), test.ShouldEqual, TypeCartesianTwist)
	test.That(t, ct.IsEmpty(), test.ShouldBeTrue)

	filled := NewCartesianTwistFromVelocities("v", r3.Vector{X: 1}, r3.Vector{Z: 2}, "base")
	test.That(t, filled.IsEmpty(), test.ShouldBeFalse)
	test.That(t, filled.Data(), test.ShouldResemble, []float64{1, 0, 0, 0, 0, 2})

	zero := ZeroCartesianTwist("v", "base")
	test.That(t, zero.IsEmpty(), test.ShouldBeFalse)
	test.That(t, zero.Data(), test.ShouldResemble, make([]float64, 6))
}

func TestCartesianTwistData(t *testing.T) {
	ct := NewCartesianTwist("v")
	err := ct.SetData([]float64{1, 2, 3, 4, 5, 6})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ct.LinearVelocity(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, ct.AngularVelocity(), test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})

	err = ct.SetData([]float64{1})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 6, got 1")
}

func TestCartesianTwistIntegrate(t *testing.T) {
	ct := NewCartesianTwistFromVelocities("v", r3.Vector{X: 2}, r3.Vector{Z: math.Pi}, "world")
	pose, err := ct.Integrate(500 * time.Millisecond)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.Type(), test.ShouldEqual, TypeCartesianPose)
	test.That(t, utils.R3VectorAlmostEqual(pose.Position(), r3.Vector{X: 1}, 1e-9), test.ShouldBeTrue)
	// pi/2 of rotation about z
	angle := 2 * math.Atan2(pose.Orientation().Kmag, pose.Orientation().Real)
	test.That(t, angle, test.ShouldAlmostEqual, math.Pi/2, 1e-9)
}

func TestCartesianTwistClamp(t *testing.T) {
	ct := NewCartesianTwistFromVelocities("v", r3.Vector{X: 3, Y: 4}, r3.Vector{Z: 0.01}, "world")
	ct.Clamp(1, 1, 0, 0.1)
	test.That(t, ct.LinearVelocity().Norm(), test.ShouldAlmostEqual, 1)
	test.That(t, ct.AngularVelocity(), test.ShouldResemble, r3.Vector{})

	source := NewCartesianTwistFromVelocities("v", r3.Vector{X: 2}, r3.Vector{}, "world")
	clamped := source.Clamped(1, 1, 0, 0)
	test.That(t, clamped.LinearVelocity().Norm(), test.ShouldAlmostEqual, 1)
	test.That(t, source.LinearVelocity(), test.ShouldResemble, r3.Vector{X: 2})
}

func TestCartesianTwistArithmetic(t *testing.T) {
	a := NewCartesianTwistFromVelocities("a", r3.Vector{X: 1}, r3.Vector{}, "world")
	b := NewCartesianTwistFromVelocities("b", r3.Vector{X: 2}, r3.Vector{Z: 1}, "world")

	sum, err := a.Add(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sum.LinearVelocity(), test.ShouldResemble, r3.Vector{X: 3})
	test.That(t, sum.AngularVelocity(), test.ShouldResemble, r3.Vector{Z: 1})

	scaled, err := b.Scale(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scaled.Data(), test.ShouldResemble, []float64{4, 0, 0, 0, 0, 2})
}

func TestCartesianAcceleration(t *testing.T) {
	ca := NewCartesianAccelerationFromValues("a", r3.Vector{X: 2}, r3.Vector{Z: 4}, "world")
	test.That(t, ca.Type(), test.ShouldEqual, TypeCartesianAcceleration)
	test.That(t, ca.Data(), test.ShouldResemble, []float64{2, 0, 0, 0, 0, 4})

	twist, err := ca.Integrate(500 * time.Millisecond)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.R3VectorAlmostEqual(twist.LinearVelocity(), r3.Vector{X: 1}, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.R3VectorAlmostEqual(twist.AngularVelocity(), r3.Vector{Z: 2}, 1e-9), test.ShouldBeTrue)
}

func TestCartesianAccelerationFromTwist(t *testing.T) {
	ct := NewCartesianTwistFromVelocities("v", r3.Vector{X: 3}, r3.Vector{}, "world")
	ca, err := NewCartesianAccelerationFromTwist(ct)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.R3VectorAlmostEqual(ca.LinearAcceleration(), r3.Vector{X: 3}, 1e-9), test.ShouldBeTrue)
}

func TestCartesianAccelerationClamp(t *testing.T) {
	ca := NewCartesianAccelerationFromValues("a", r3.Vector{X: 10}, r3.Vector{Z: 0.001}, "world")
	ca.Clamp(1, 1, 0, 0.5)
	test.That(t, ca.LinearAcceleration().Norm(), test.ShouldAlmostEqual, 1)
	test.That(t, ca.AngularAcceleration(), test.ShouldResemble, r3.Vector{})
}

func TestCartesianWrench(t *testing.T) {
	cw := NewCartesianWrenchFromValues("w", r3.Vector{X: 1, Y: 2}, r3.Vector{Z: 3}, "tool")
	test.That(t, cw.Type(), test.ShouldEqual, TypeCartesianWrench)
	test.That(t, cw.Data(), test.ShouldResemble, []float64{1, 2, 0, 0, 0, 3})

	err := cw.SetData([]float64{6, 5, 4, 3, 2, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cw.Force(), test.ShouldResemble, r3.Vector{X: 6, Y: 5, Z: 4})
	test.That(t, cw.Torque(), test.ShouldResemble, r3.Vector{X: 3, Y: 2, Z: 1})
}

func TestCartesianWrenchClamp(t *testing.T) {
	cw := NewCartesianWrenchFromValues("w", r3.Vector{X: 3, Y: 4}, r3.Vector{Z: 10}, "tool")
	cw.Clamp(5, 2, 0, 0)
	test.That(t, cw.Force().Norm(), test.ShouldAlmostEqual, 5)
	test.That(t, cw.Torque(), test.ShouldResemble, r3.Vector{Z: 2})
}

func TestCartesianWrenchArithmetic(t *testing.T) {
	a := NewCartesianWrenchFromValues("a", r3.Vector{X: 1}, r3.Vector{}, "tool")
	b := NewCartesianWrenchFromValues("b", r3.Vector{X: 2}, r3.Vector{Y: 1}, "tool")
	sum, err := a.Add(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sum.Data(), test.ShouldResemble, []float64{3, 0, 0, 0, 1, 0})

	empty := NewCartesianWrench("c")
	_, err = a.Add(empty)
	test.That(t, err, test.ShouldNotBeNil)
}
