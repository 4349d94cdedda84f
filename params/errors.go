package params

import "github.com/pkg/errors"

// NewInvalidParameterCastError returns an error for reading or writing a
// parameter through the wrong type.
func NewInvalidParameterCastError(name string, typ ParameterType) error {
	return errors.Errorf("parameter %s is not of type %s", name, typ)
}

// NewUninitializedParameterError returns an error for reading a parameter
// that was declared but never assigned a value.
func NewUninitializedParameterError(name string) error {
	return errors.Errorf("parameter %s has no value", name)
}

// NewParameterNotFoundError returns an error for looking up a name absent
// from a parameter map.
func NewParameterNotFoundError(name string) error {
	return errors.Errorf("parameter %s not found", name)
}

// NewUnsupportedParameterValueError returns an error for a Go value that maps
// to no parameter type.
func NewUnsupportedParameterValueError(name string, value interface{}) error {
	return errors.Errorf("value of type %T is not supported for parameter %s", value, name)
}
