package state

import (
	"fmt"

	"github.com/pkg/errors"
)

// NewEmptyStateError is returned when an operation reads numeric data from a
// state that has never been filled.
func NewEmptyStateError(name string) error {
	return errors.Errorf("%s state is empty", name)
}

// NewIncompatibleStatesError is returned when two states fail the compatibility
// predicate of a combining operation.
func NewIncompatibleStatesError(name1, name2 string) error {
	return errors.Errorf("states %q and %q are incompatible", name1, name2)
}

// NewIncompatibleReferenceFramesError is returned when two spatial states fail
// the reference frame compatibility rule.
func NewIncompatibleReferenceFramesError(name1, frame1, name2, frame2 string) error {
	return errors.Errorf(
		"states %q in frame %q and %q in frame %q are incompatible, no parent, child or sibling frame relation",
		name1, frame1, name2, frame2)
}

// NewIncompatibleJointStatesError is returned when two joint states fail the
// joint-name compatibility rule.
func NewIncompatibleJointStatesError(name1, name2 string) error {
	return errors.Errorf("joint states %q and %q are incompatible, check joint names, order and size", name1, name2)
}

// NewIncompatibleSizeError is returned when a raw buffer or matrix argument
// does not match the expected dimensionality.
func NewIncompatibleSizeError(expected, got int) error {
	return errors.Errorf("input is of incorrect size: expected %d, got %d", expected, got)
}

// NewIncompatibleMatrixSizeError is returned when a gain matrix does not match
// the expected square dimensionality.
func NewIncompatibleMatrixSizeError(expected, rows, cols int) error {
	return errors.Errorf("gain matrix is of incorrect size: expected %dx%d, got %dx%d", expected, expected, rows, cols)
}

// NewJointNotFoundError is returned when a joint name lookup fails.
func NewJointNotFoundError(jointName string) error {
	return errors.Errorf("joint %q could not be found in the joint state", jointName)
}

// NewJointIndexOutOfRangeError is returned when a joint index lookup is out of range.
func NewJointIndexOutOfRangeError(index, size int) error {
	return errors.Errorf("index %d is out of range for a joint state with size %d", index, size)
}

// NewInvalidCastError is returned when a compatibility check requires a more
// specific state kind than the one given.
func NewInvalidCastError(expected string, actual interface{}) error {
	return errors.Errorf("could not cast %T to a %s", actual, expected)
}

// NewNotImplementedError is returned when a base-type operation is invoked
// without a concrete override.
func NewNotImplementedError(operation string) error {
	return errors.Errorf("%s is not implemented for the base state type", operation)
}

// NewInvalidStateVariableError is returned when a state variable selector does
// not address a block the operation can work on.
func NewInvalidStateVariableError(operation string, variable fmt.Stringer) error {
	return errors.Errorf("%s cannot be applied to the %s state variable", operation, variable)
}
