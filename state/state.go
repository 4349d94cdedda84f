// Package state implements typed representations of Cartesian and joint-space
// kinematic and dynamic quantities. Every quantity carries a name, a type tag,
// an emptiness flag and a timestamp; operations that combine two quantities
// validate emptiness and name/frame compatibility before computing.
package state

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// stateClock stamps creation and modification times. Tests substitute a mock
// clock to exercise staleness without sleeping.
var stateClock clock.Clock = clock.New()

// StateType identifies the concrete kind of a state.
type StateType int

// The set of concrete state kinds.
const (
	TypeState StateType = iota
	TypeSpatialState
	TypeCartesianState
	TypeCartesianPose
	TypeCartesianTwist
	TypeCartesianAcceleration
	TypeCartesianWrench
	TypeJointState
	TypeJointPositions
	TypeJointVelocities
	TypeJointAccelerations
	TypeJointTorques
	TypeShape
	TypeEllipsoid
)

func (t StateType) String() string {
	switch t {
	case TypeState:
		return "State"
	case TypeSpatialState:
		return "SpatialState"
	case TypeCartesianState:
		return "CartesianState"
	case TypeCartesianPose:
		return "CartesianPose"
	case TypeCartesianTwist:
		return "CartesianTwist"
	case TypeCartesianAcceleration:
		return "CartesianAcceleration"
	case TypeCartesianWrench:
		return "CartesianWrench"
	case TypeJointState:
		return "JointState"
	case TypeJointPositions:
		return "JointPositions"
	case TypeJointVelocities:
		return "JointVelocities"
	case TypeJointAccelerations:
		return "JointAccelerations"
	case TypeJointTorques:
		return "JointTorques"
	case TypeShape:
		return "Shape"
	case TypeEllipsoid:
		return "Ellipsoid"
	default:
		return "Unknown"
	}
}

// State is the identity and metadata unit embedded by every concrete quantity.
// A freshly constructed State is always empty; setters on the concrete types
// clear the flag as they assign real data.
type State struct {
	typ       StateType
	name      string
	empty     bool
	timestamp time.Time
}

// NewState returns a named state of the given kind, empty and stamped now.
func NewState(typ StateType, name string) State {
	return State{typ: typ, name: name, empty: true, timestamp: stateClock.Now()}
}

// Type returns the concrete kind of the state.
func (s *State) Type() StateType {
	return s.typ
}

// Name returns the name of the state.
func (s *State) Name() string {
	return s.name
}

// SetName renames the state.
func (s *State) SetName(name string) {
	s.name = name
}

// IsEmpty reports whether the state has never been filled with data.
func (s *State) IsEmpty() bool {
	return s.empty
}

// SetEmpty marks the state as empty or filled.
func (s *State) SetEmpty(empty bool) {
	s.empty = empty
}

// setFilled clears the empty flag and refreshes the timestamp; every setter
// that assigns real data goes through it.
func (s *State) setFilled() {
	s.empty = false
	s.timestamp = stateClock.Now()
}

// Timestamp returns the instant of the last meaningful write, or of
// construction if the state has never been written.
func (s *State) Timestamp() time.Time {
	return s.timestamp
}

// ResetTimestamp re-stamps the state with the current instant.
func (s *State) ResetTimestamp() {
	s.timestamp = stateClock.Now()
}

// Age returns the time elapsed since the timestamp, in seconds.
func (s *State) Age() float64 {
	return stateClock.Now().Sub(s.timestamp).Seconds()
}

// IsDeprecated reports whether the state is older than the given threshold in seconds.
func (s *State) IsDeprecated(threshold float64) bool {
	return s.Age() >= threshold
}

// IsCompatible reports whether two states may be combined. The base rule only
// compares type tags; concrete types layer frame and joint-name checks on top.
func (s *State) IsCompatible(other *State) bool {
	return s.typ == other.typ
}

// SetData is overridden by every concrete type; calling it on the base State
// is a programming error.
func (s *State) SetData([]float64) error {
	return NewNotImplementedError("SetData")
}

// initialize resets the state to its empty default.
func (s *State) initialize() {
	s.empty = true
}

func (s *State) String() string {
	prefix := ""
	if s.empty {
		prefix = "Empty "
	}
	return fmt.Sprintf("%s%s: %s", prefix, s.typ, s.name)
}
