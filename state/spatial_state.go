package state

import "fmt"

// WorldFrame is the default reference frame of a spatial state.
const WorldFrame = "world"

// SpatialState is a state additionally tagged with the reference frame its
// coordinates are expressed in.
type SpatialState struct {
	State
	referenceFrame string
}

// NewSpatialState returns a named spatial state expressed in the world frame.
func NewSpatialState(name string) SpatialState {
	return NewSpatialStateInFrame(name, WorldFrame)
}

// NewSpatialStateInFrame returns a named spatial state expressed in the given
// reference frame.
func NewSpatialStateInFrame(name, referenceFrame string) SpatialState {
	return newSpatialState(TypeSpatialState, name, referenceFrame)
}

func newSpatialState(typ StateType, name, referenceFrame string) SpatialState {
	return SpatialState{State: NewState(typ, name), referenceFrame: referenceFrame}
}

// ReferenceFrame returns the frame the state is expressed in.
func (s *SpatialState) ReferenceFrame() string {
	return s.referenceFrame
}

// SetReferenceFrame changes the frame the state is expressed in. It does not
// transform the underlying data.
func (s *SpatialState) SetReferenceFrame(referenceFrame string) {
	s.referenceFrame = referenceFrame
}

// Spatial returns the spatial portion of the state; it exists so that any type
// embedding a SpatialState satisfies the Spatializable interface.
func (s *SpatialState) Spatial() *SpatialState {
	return s
}

// IsIncompatible reports whether two spatial states may not be combined.
// Three frame relations make a pair compatible:
//  1. this state's name matches the other's reference frame (parent of other)
//  2. this state's reference frame matches the other's name (child of other)
//  3. both states share the same reference frame (siblings)
func (s *SpatialState) IsIncompatible(other *SpatialState) bool {
	return s.Name() != other.referenceFrame &&
		s.referenceFrame != other.Name() &&
		s.referenceFrame != other.referenceFrame
}

// IsCompatible reports whether two spatial states may be combined; it is the
// negation of the three-way frame rule of IsIncompatible.
func (s *SpatialState) IsCompatible(other *SpatialState) bool {
	return !s.IsIncompatible(other)
}

// Spatializable is satisfied by every state that carries a reference frame.
type Spatializable interface {
	Spatial() *SpatialState
}

// SpatialStateOf returns the spatial portion of the given state, failing when
// the state carries no reference frame. It replaces a runtime downcast with an
// explicit capability check.
func SpatialStateOf(s interface{}) (*SpatialState, error) {
	sp, ok := s.(Spatializable)
	if !ok {
		return nil, NewInvalidCastError("SpatialState", s)
	}
	return sp.Spatial(), nil
}

func (s *SpatialState) String() string {
	prefix := ""
	if s.IsEmpty() {
		prefix = "Empty "
	}
	return fmt.Sprintf("%s%s: %s expressed in %s frame", prefix, s.Type(), s.Name(), s.referenceFrame)
}
