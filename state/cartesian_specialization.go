package state

import (
	"fmt"
	"strings"
)

// projectCartesianState narrows a full Cartesian state to a single variable
// aggregate: everything except the selected blocks is reset, the type tag is
// rewritten and the emptiness of the source is preserved.
func projectCartesianState(source CartesianState, typ StateType, variable CartesianStateVariable) CartesianState {
	out := source.Copy()
	out.typ = typ
	empty := source.IsEmpty()
	keep := source.StateVariable(variable)
	out.setZero()
	// cannot fail, the buffer was read from the matching block
	_ = out.SetStateVariable(keep, variable)
	out.SetEmpty(empty)
	return out
}

func (cs *CartesianState) formatBlocks(variables ...CartesianStateVariable) string {
	if cs.IsEmpty() {
		return fmt.Sprintf("Empty %s: %s", cs.Type(), cs.Name())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s expressed in %s frame", cs.Type(), cs.Name(), cs.ReferenceFrame())
	for _, variable := range variables {
		b.WriteString("\n")
		if variable == CartesianVariableOrientation {
			fmt.Fprintf(&b, "%s: %s", variable, formatQuaternion(cs.orientation))
			continue
		}
		fmt.Fprintf(&b, "%s: %s", variable, formatVector(*cs.vectorBlock(variable)))
	}
	return b.String()
}
