package state

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/staterep/utils"
)

func TestCartesianStateConstruction(t *testing.T) {
	cs := NewCartesianState("a")
	test.That(t, cs.Type(), test.ShouldEqual, TypeCartesianState)
	test.That(t, cs.ReferenceFrame(), test.ShouldEqual, WorldFrame)
	test.That(t, cs.IsEmpty(), test.ShouldBeTrue)
	test.That(t, cs.Orientation(), test.ShouldResemble, quat.Number{Real: 1})

	id := IdentityCartesianState("a", "base")
	test.That(t, id.IsEmpty(), test.ShouldBeFalse)
	test.That(t, id.Position(), test.ShouldResemble, r3.Vector{})
}

func TestCartesianStateSetters(t *testing.T) {
	cs := NewCartesianState("a")
	cs.SetPosition(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, cs.IsEmpty(), test.ShouldBeFalse)
	test.That(t, cs.Position(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	// orientations are renormalized on write
	cs.SetOrientation(quat.Number{Real: 2})
	test.That(t, cs.Orientation(), test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, quatNorm(cs.Orientation()), test.ShouldAlmostEqual, 1)
}

func TestCartesianStateData(t *testing.T) {
	cs := NewCartesianState("a")
	data := make([]float64, 25)
	for i := range data {
		data[i] = float64(i)
	}
	// index 3 is qw, keep the quaternion meaningful
	data[3] = 1
	err := cs.SetData(data)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(cs.Data()), test.ShouldEqual, 25)
	test.That(t, cs.Position(), test.ShouldResemble, r3.Vector{X: 0, Y: 1, Z: 2})
	test.That(t, cs.LinearVelocity(), test.ShouldResemble, r3.Vector{X: 7, Y: 8, Z: 9})
	test.That(t, cs.Torque(), test.ShouldResemble, r3.Vector{X: 22, Y: 23, Z: 24})

	err = cs.SetData([]float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 25, got 3")
}

func TestCartesianStateVariableAccess(t *testing.T) {
	cs := IdentityCartesianState("a", "world")
	err := cs.SetTwist([]float64{1, 2, 3, 4, 5, 6})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cs.LinearVelocity(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, cs.AngularVelocity(), test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})
	test.That(t, cs.Twist(), test.ShouldResemble, []float64{1, 2, 3, 4, 5, 6})

	err = cs.SetWrench([]float64{1, 2})
	test.That(t, err, test.ShouldNotBeNil)

	pose := cs.Pose()
	test.That(t, pose, test.ShouldResemble, []float64{0, 0, 0, 1, 0, 0, 0})
}

func TestCartesianStateComposeWithIdentity(t *testing.T) {
	a := RandomCartesianState("a", "world")
	id := IdentityCartesianState("b", "a")

	out, err := a.Compose(id)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.Name(), test.ShouldEqual, "b")
	test.That(t, out.ReferenceFrame(), test.ShouldEqual, "world")
	test.That(t, utils.R3VectorAlmostEqual(out.Position(), a.Position(), 1e-9), test.ShouldBeTrue)
	test.That(t, quatAlmostEqual(out.Orientation(), a.Orientation(), 1e-9), test.ShouldBeTrue)
}

func TestCartesianStateComposeTranslation(t *testing.T) {
	a := IdentityCartesianState("a", "world")
	a.SetPosition(r3.Vector{X: 1})
	b := IdentityCartesianState("b", "a")
	b.SetPosition(r3.Vector{Y: 2})

	out, err := a.Compose(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.Position(), test.ShouldResemble, r3.Vector{X: 1, Y: 2})
}

func TestCartesianStateComposeRotation(t *testing.T) {
	// a quarter turn about z maps the follower's x offset onto y
	halfSqrt := math.Sqrt(2) / 2
	a := IdentityCartesianState("a", "world")
	a.SetOrientation(quat.Number{Real: halfSqrt, Kmag: halfSqrt})
	b := IdentityCartesianState("b", "a")
	b.SetPosition(r3.Vector{X: 1})

	out, err := a.Compose(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.R3VectorAlmostEqual(out.Position(), r3.Vector{Y: 1}, 1e-9), test.ShouldBeTrue)
}

func TestCartesianStateComposeVelocityTransport(t *testing.T) {
	// a pure rotation rate sweeps the follower's offset into a velocity
	a := IdentityCartesianState("a", "world")
	a.SetAngularVelocity(r3.Vector{Z: 1})
	b := IdentityCartesianState("b", "a")
	b.SetPosition(r3.Vector{X: 1})

	out, err := a.Compose(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.R3VectorAlmostEqual(out.LinearVelocity(), r3.Vector{Y: 1}, 1e-9), test.ShouldBeTrue)
}

func TestCartesianStateComposeInverseIsIdentity(t *testing.T) {
	a := RandomCartesianState("a", "world")
	inv, err := a.Inverse()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, inv.Name(), test.ShouldEqual, "world")
	test.That(t, inv.ReferenceFrame(), test.ShouldEqual, "a")

	id, err := a.Compose(inv)
	test.That(t, err, test.ShouldBeNil)
	zero := r3.Vector{}
	test.That(t, utils.R3VectorAlmostEqual(id.Position(), zero, 1e-9), test.ShouldBeTrue)
	test.That(t, quatAlmostEqual(id.Orientation(), quat.Number{Real: 1}, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.R3VectorAlmostEqual(id.LinearVelocity(), zero, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.R3VectorAlmostEqual(id.AngularVelocity(), zero, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.R3VectorAlmostEqual(id.LinearAcceleration(), zero, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.R3VectorAlmostEqual(id.AngularAcceleration(), zero, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.R3VectorAlmostEqual(id.Force(), zero, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.R3VectorAlmostEqual(id.Torque(), zero, 1e-9), test.ShouldBeTrue)
}

func TestCartesianStateComposeErrorOrder(t *testing.T) {
	empty := NewCartesianState("a")
	filled := IdentityCartesianState("b", "a")
	unrelated := IdentityCartesianState("c", "elsewhere")

	_, err := empty.Compose(filled)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "a state is empty")

	_, err = filled.Compose(empty)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "a state is empty")

	_, err = filled.Compose(unrelated)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldNotContainSubstring, "empty")
}

func TestCartesianStateAddSub(t *testing.T) {
	a := IdentityCartesianState("a", "world")
	a.SetPosition(r3.Vector{X: 1})
	b := IdentityCartesianState("b", "world")
	b.SetPosition(r3.Vector{X: 2, Y: 1})

	sum, err := a.Add(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sum.Position(), test.ShouldResemble, r3.Vector{X: 3, Y: 1})

	diff, err := sum.Sub(b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.R3VectorAlmostEqual(diff.Position(), a.Position(), 1e-9), test.ShouldBeTrue)

	other := IdentityCartesianState("c", "base")
	_, err = a.Add(other)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestCartesianStateScale(t *testing.T) {
	a := IdentityCartesianState("a", "world")
	a.SetPosition(r3.Vector{X: 2})
	halfSqrt := math.Sqrt(2) / 2
	a.SetOrientation(quat.Number{Real: halfSqrt, Kmag: halfSqrt})

	half, err := a.Scale(0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, half.Position(), test.ShouldResemble, r3.Vector{X: 1})
	// half of a quarter turn about z
	expected := quat.Number{Real: math.Cos(math.Pi / 8), Kmag: math.Sin(math.Pi / 8)}
	test.That(t, quatAlmostEqual(half.Orientation(), expected, 1e-9), test.ShouldBeTrue)

	neg, err := a.Negate()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.R3VectorAlmostEqual(neg.Position(), r3.Vector{X: -2}, 1e-9), test.ShouldBeTrue)
}

func TestCartesianStateDist(t *testing.T) {
	a := IdentityCartesianState("a", "world")
	a.SetPosition(r3.Vector{X: 1})
	b := IdentityCartesianState("b", "world")

	d, err := a.Dist(b, CartesianVariablePosition)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d, test.ShouldAlmostEqual, 1)

	d, err = a.Dist(a, CartesianVariableAll)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d, test.ShouldAlmostEqual, 0)

	// a quarter turn is pi/2 of angular distance
	halfSqrt := math.Sqrt(2) / 2
	b.SetOrientation(quat.Number{Real: halfSqrt, Kmag: halfSqrt})
	d, err = a.Dist(b, CartesianVariableOrientation)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d, test.ShouldAlmostEqual, math.Pi/2, 1e-9)
}

func TestCartesianStateNorms(t *testing.T) {
	cs := IdentityCartesianState("a", "world")
	cs.SetPosition(r3.Vector{X: 3, Y: 4})
	norms, err := cs.Norms(CartesianVariableAll)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(norms), test.ShouldEqual, 8)
	test.That(t, norms[0], test.ShouldAlmostEqual, 5)
	test.That(t, norms[1], test.ShouldAlmostEqual, 1)

	normalized, err := cs.Normalized(CartesianVariablePosition)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, normalized.Position().Norm(), test.ShouldAlmostEqual, 1)
}

func TestCartesianStateClamp(t *testing.T) {
	cs := IdentityCartesianState("a", "world")
	cs.SetLinearVelocity(r3.Vector{X: 3, Y: 4})

	err := cs.ClampStateVariable(1, CartesianVariableLinearVelocity, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cs.LinearVelocity().Norm(), test.ShouldAlmostEqual, 1)
	// direction is preserved
	test.That(t, utils.R3VectorAlmostEqual(cs.LinearVelocity(), r3.Vector{X: 0.6, Y: 0.8}, 1e-9), test.ShouldBeTrue)

	cs.SetForce(r3.Vector{X: 0.01})
	err = cs.ClampStateVariable(1, CartesianVariableForce, 0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cs.Force(), test.ShouldResemble, r3.Vector{})

	err = cs.ClampStateVariable(1, CartesianVariablePose, 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "clamp")
}

func TestCartesianStateCopy(t *testing.T) {
	a := RandomCartesianState("a", "world")
	cp := a.Copy()
	test.That(t, cp.Timestamp(), test.ShouldEqual, a.Timestamp())
	cp.SetPosition(r3.Vector{X: 99})
	test.That(t, a.Position(), test.ShouldNotResemble, r3.Vector{X: 99})
}
