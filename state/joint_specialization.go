package state

import (
	"fmt"
	"strings"
)

// projectJointState narrows a full joint state to a single variable block:
// everything except the selected block is zeroed, the type tag is rewritten
// and the emptiness of the source is preserved.
func projectJointState(source JointState, typ StateType, variable JointStateVariable) JointState {
	out := source.Copy()
	out.typ = typ
	empty := source.IsEmpty()
	keep := source.StateVariable(variable)
	out.initialize()
	// cannot fail, the buffer was read from a state of the same size
	_ = out.SetStateVariable(keep, variable)
	out.SetEmpty(empty)
	return out
}

func (js *JointState) formatBlock(variable JointStateVariable) string {
	if js.IsEmpty() {
		return fmt.Sprintf("Empty %s: %s", js.Type(), js.Name())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", js.Type(), js.Name())
	fmt.Fprintf(&b, "names: [%s]\n", strings.Join(js.names, ", "))
	fmt.Fprintf(&b, "%s: %s", variable, formatFloats(js.block(variable)))
	return b.String()
}
