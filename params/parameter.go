// Package params provides a generic named-parameter system for configuring
// algorithms: each parameter boxes a value of a declared type behind cast
// accessors, and a parameter map collects them for lookup and struct
// decoding.
package params

import (
	"fmt"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/staterep/state"
)

// ParameterType identifies the declared type of a parameter value.
type ParameterType int

// The supported parameter value types.
const (
	TypeBool ParameterType = iota
	TypeBoolArray
	TypeInt
	TypeIntArray
	TypeDouble
	TypeDoubleArray
	TypeString
	TypeStringArray
	TypeCartesianState
	TypeCartesianPose
	TypeJointState
	TypeJointPositions
	TypeMatrix
	TypeVector
)

func (t ParameterType) String() string {
	switch t {
	case TypeBool:
		return "Bool"
	case TypeBoolArray:
		return "BoolArray"
	case TypeInt:
		return "Int"
	case TypeIntArray:
		return "IntArray"
	case TypeDouble:
		return "Double"
	case TypeDoubleArray:
		return "DoubleArray"
	case TypeString:
		return "String"
	case TypeStringArray:
		return "StringArray"
	case TypeCartesianState:
		return "CartesianState"
	case TypeCartesianPose:
		return "CartesianPose"
	case TypeJointState:
		return "JointState"
	case TypeJointPositions:
		return "JointPositions"
	case TypeMatrix:
		return "Matrix"
	case TypeVector:
		return "Vector"
	default:
		return "Unknown"
	}
}

// Parameter is a named value of a declared type. A parameter starts out
// declared but unset; reading it before the first assignment fails.
type Parameter struct {
	name  string
	typ   ParameterType
	value interface{}
}

// NewParameter declares a parameter of the given type with no value.
func NewParameter(name string, typ ParameterType) *Parameter {
	return &Parameter{name: name, typ: typ}
}

// NewParameterFromValue declares a parameter and assigns its initial value.
func NewParameterFromValue(name string, typ ParameterType, value interface{}) (*Parameter, error) {
	p := NewParameter(name, typ)
	if err := p.SetValue(value); err != nil {
		return nil, err
	}
	return p, nil
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Type returns the declared parameter type.
func (p *Parameter) Type() ParameterType {
	return p.typ
}

// IsSet reports whether the parameter holds a value.
func (p *Parameter) IsSet() bool {
	return p.value != nil
}

// Value returns the boxed value, or an error if the parameter was never set.
func (p *Parameter) Value() (interface{}, error) {
	if p.value == nil {
		return nil, NewUninitializedParameterError(p.name)
	}
	return p.value, nil
}

func toFloat64Slice(value interface{}) ([]float64, error) {
	switch v := value.(type) {
	case []float64:
		return v, nil
	default:
		raw, err := cast.ToSliceE(value)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(raw))
		for i, elem := range raw {
			if out[i], err = cast.ToFloat64E(elem); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

// SetValue assigns the parameter value, coercing primitives through cast and
// rejecting anything incompatible with the declared type.
func (p *Parameter) SetValue(value interface{}) error {
	var coerced interface{}
	var err error
	switch p.typ {
	case TypeBool:
		coerced, err = cast.ToBoolE(value)
	case TypeBoolArray:
		coerced, err = cast.ToBoolSliceE(value)
	case TypeInt:
		coerced, err = cast.ToIntE(value)
	case TypeIntArray:
		coerced, err = cast.ToIntSliceE(value)
	case TypeDouble:
		coerced, err = cast.ToFloat64E(value)
	case TypeDoubleArray:
		coerced, err = toFloat64Slice(value)
	case TypeString:
		coerced, err = cast.ToStringE(value)
	case TypeStringArray:
		coerced, err = cast.ToStringSliceE(value)
	case TypeCartesianState:
		if v, ok := value.(state.CartesianState); ok {
			coerced = v
		} else {
			err = NewInvalidParameterCastError(p.name, p.typ)
		}
	case TypeCartesianPose:
		if v, ok := value.(state.CartesianPose); ok {
			coerced = v
		} else {
			err = NewInvalidParameterCastError(p.name, p.typ)
		}
	case TypeJointState:
		if v, ok := value.(state.JointState); ok {
			coerced = v
		} else {
			err = NewInvalidParameterCastError(p.name, p.typ)
		}
	case TypeJointPositions:
		if v, ok := value.(state.JointPositions); ok {
			coerced = v
		} else {
			err = NewInvalidParameterCastError(p.name, p.typ)
		}
	case TypeMatrix:
		if v, ok := value.(*mat.Dense); ok {
			coerced = v
		} else {
			err = NewInvalidParameterCastError(p.name, p.typ)
		}
	case TypeVector:
		if v, ok := value.(*mat.VecDense); ok {
			coerced = v
		} else if data, sliceErr := toFloat64Slice(value); sliceErr == nil {
			coerced = mat.NewVecDense(len(data), data)
		} else {
			err = NewInvalidParameterCastError(p.name, p.typ)
		}
	default:
		err = NewInvalidParameterCastError(p.name, p.typ)
	}
	if err != nil {
		return err
	}
	p.value = coerced
	return nil
}

func (p *Parameter) typedValue(typ ParameterType) (interface{}, error) {
	if p.typ != typ {
		return nil, NewInvalidParameterCastError(p.name, typ)
	}
	return p.Value()
}

// BoolValue returns the value of a Bool parameter.
func (p *Parameter) BoolValue() (bool, error) {
	v, err := p.typedValue(TypeBool)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// BoolArrayValue returns the value of a BoolArray parameter.
func (p *Parameter) BoolArrayValue() ([]bool, error) {
	v, err := p.typedValue(TypeBoolArray)
	if err != nil {
		return nil, err
	}
	return v.([]bool), nil
}

// IntValue returns the value of an Int parameter.
func (p *Parameter) IntValue() (int, error) {
	v, err := p.typedValue(TypeInt)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// IntArrayValue returns the value of an IntArray parameter.
func (p *Parameter) IntArrayValue() ([]int, error) {
	v, err := p.typedValue(TypeIntArray)
	if err != nil {
		return nil, err
	}
	return v.([]int), nil
}

// DoubleValue returns the value of a Double parameter.
func (p *Parameter) DoubleValue() (float64, error) {
	v, err := p.typedValue(TypeDouble)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// DoubleArrayValue returns the value of a DoubleArray parameter.
func (p *Parameter) DoubleArrayValue() ([]float64, error) {
	v, err := p.typedValue(TypeDoubleArray)
	if err != nil {
		return nil, err
	}
	return v.([]float64), nil
}

// StringValue returns the value of a String parameter.
func (p *Parameter) StringValue() (string, error) {
	v, err := p.typedValue(TypeString)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// StringArrayValue returns the value of a StringArray parameter.
func (p *Parameter) StringArrayValue() ([]string, error) {
	v, err := p.typedValue(TypeStringArray)
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// CartesianStateValue returns the value of a CartesianState parameter.
func (p *Parameter) CartesianStateValue() (state.CartesianState, error) {
	v, err := p.typedValue(TypeCartesianState)
	if err != nil {
		return state.CartesianState{}, err
	}
	return v.(state.CartesianState), nil
}

// CartesianPoseValue returns the value of a CartesianPose parameter.
func (p *Parameter) CartesianPoseValue() (state.CartesianPose, error) {
	v, err := p.typedValue(TypeCartesianPose)
	if err != nil {
		return state.CartesianPose{}, err
	}
	return v.(state.CartesianPose), nil
}

// JointStateValue returns the value of a JointState parameter.
func (p *Parameter) JointStateValue() (state.JointState, error) {
	v, err := p.typedValue(TypeJointState)
	if err != nil {
		return state.JointState{}, err
	}
	return v.(state.JointState), nil
}

// JointPositionsValue returns the value of a JointPositions parameter.
func (p *Parameter) JointPositionsValue() (state.JointPositions, error) {
	v, err := p.typedValue(TypeJointPositions)
	if err != nil {
		return state.JointPositions{}, err
	}
	return v.(state.JointPositions), nil
}

// MatrixValue returns the value of a Matrix parameter.
func (p *Parameter) MatrixValue() (*mat.Dense, error) {
	v, err := p.typedValue(TypeMatrix)
	if err != nil {
		return nil, err
	}
	return v.(*mat.Dense), nil
}

// VectorValue returns the value of a Vector parameter.
func (p *Parameter) VectorValue() (*mat.VecDense, error) {
	v, err := p.typedValue(TypeVector)
	if err != nil {
		return nil, err
	}
	return v.(*mat.VecDense), nil
}

func (p *Parameter) String() string {
	if p.value == nil {
		return fmt.Sprintf("Parameter %s<%s>: unset", p.name, p.typ)
	}
	return fmt.Sprintf("Parameter %s<%s>: %v", p.name, p.typ, p.value)
}
