// Package geometry provides parametric geometric objects built on top of the
// Cartesian state family: a shape carries a pose for its center and derived
// types add their own parameterization.
package geometry

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/staterep/state"
)

// Shape is a geometric object centered on a Cartesian pose.
type Shape struct {
	state.State
	center state.CartesianPose
}

// NewShape returns an empty shape whose center pose sits at the identity of
// the given reference frame.
func NewShape(name, referenceFrame string) Shape {
	return newShape(state.TypeShape, name, referenceFrame)
}

func newShape(typ state.StateType, name, referenceFrame string) Shape {
	return Shape{
		State:  state.NewState(typ, name),
		center: state.IdentityCartesianPose(name, referenceFrame),
	}
}

// Center returns the center pose.
func (s *Shape) Center() state.CartesianPose {
	return s.center.Copy()
}

// SetCenter assigns the center pose and marks the shape as filled.
func (s *Shape) SetCenter(center state.CartesianPose) {
	s.center = center.Copy()
	s.SetEmpty(false)
	s.ResetTimestamp()
}

// CenterPosition returns the position of the center pose.
func (s *Shape) CenterPosition() r3.Vector {
	return s.center.Position()
}

// SetCenterPosition assigns the position of the center pose.
func (s *Shape) SetCenterPosition(position r3.Vector) {
	s.center.SetPosition(position)
	s.SetEmpty(false)
	s.ResetTimestamp()
}

// CenterOrientation returns the orientation of the center pose.
func (s *Shape) CenterOrientation() quat.Number {
	return s.center.Orientation()
}

// SetCenterOrientation assigns the orientation of the center pose.
func (s *Shape) SetCenterOrientation(orientation quat.Number) {
	s.center.SetOrientation(orientation)
	s.SetEmpty(false)
	s.ResetTimestamp()
}

func (s *Shape) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Empty %s: %s", s.Type(), s.Name())
	}
	return fmt.Sprintf("%s: %s with center:\n%s", s.Type(), s.Name(), s.center.String())
}
