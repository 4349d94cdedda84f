package params

import (
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/staterep/state"
)

// ParameterMap is a named collection of parameters.
type ParameterMap struct {
	parameters map[string]*Parameter
}

// NewParameterMap returns an empty parameter map.
func NewParameterMap() *ParameterMap {
	return &ParameterMap{parameters: map[string]*Parameter{}}
}

// inferType maps a Go value onto a parameter type.
func inferType(value interface{}) (ParameterType, bool) {
	switch value.(type) {
	case bool:
		return TypeBool, true
	case []bool:
		return TypeBoolArray, true
	case int:
		return TypeInt, true
	case []int:
		return TypeIntArray, true
	case float64:
		return TypeDouble, true
	case []float64:
		return TypeDoubleArray, true
	case string:
		return TypeString, true
	case []string:
		return TypeStringArray, true
	case state.CartesianState:
		return TypeCartesianState, true
	case state.CartesianPose:
		return TypeCartesianPose, true
	case state.JointState:
		return TypeJointState, true
	case state.JointPositions:
		return TypeJointPositions, true
	case *mat.Dense:
		return TypeMatrix, true
	case *mat.VecDense:
		return TypeVector, true
	default:
		return 0, false
	}
}

// NewParameterMapFromMap builds a parameter map from raw values, inferring
// each parameter type from its Go type. All offending entries are reported
// together.
func NewParameterMapFromMap(values map[string]interface{}) (*ParameterMap, error) {
	pm := NewParameterMap()
	var errs error
	for name, value := range values {
		typ, ok := inferType(value)
		if !ok {
			errs = multierr.Append(errs, NewUnsupportedParameterValueError(name, value))
			continue
		}
		p, err := NewParameterFromValue(name, typ, value)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		pm.parameters[name] = p
	}
	if errs != nil {
		return nil, errs
	}
	return pm, nil
}

// Parameter returns the parameter registered under the given name.
func (pm *ParameterMap) Parameter(name string) (*Parameter, error) {
	p, ok := pm.parameters[name]
	if !ok {
		return nil, NewParameterNotFoundError(name)
	}
	return p, nil
}

// SetParameter registers a parameter, replacing any previous one of the same
// name.
func (pm *ParameterMap) SetParameter(p *Parameter) {
	pm.parameters[p.Name()] = p
}

// SetParameterValue assigns a value to a registered parameter.
func (pm *ParameterMap) SetParameterValue(name string, value interface{}) error {
	p, err := pm.Parameter(name)
	if err != nil {
		return err
	}
	return p.SetValue(value)
}

// Remove unregisters a parameter.
func (pm *ParameterMap) Remove(name string) error {
	if _, ok := pm.parameters[name]; !ok {
		return NewParameterNotFoundError(name)
	}
	delete(pm.parameters, name)
	return nil
}

// List returns the registered parameters sorted by name.
func (pm *ParameterMap) List() []*Parameter {
	out := make([]*Parameter, 0, len(pm.parameters))
	for _, p := range pm.parameters {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Decode writes the parameter values into a tagged struct. Field names bind
// through json tags, so a config struct can be filled straight from a map.
func (pm *ParameterMap) Decode(result interface{}) error {
	values := make(map[string]interface{}, len(pm.parameters))
	for name, p := range pm.parameters {
		value, err := p.Value()
		if err != nil {
			return err
		}
		values[name] = value
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: result})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}
