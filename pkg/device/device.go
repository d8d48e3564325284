// Package device implements the component model: a closed, tagged set of
// device kinds, each knowing its own unknowns and how to stamp them into a
// LinearSystem. The set of kinds is fixed at build time (resistor,
// capacitor, inductor, voltage source, voltage sink, ground) and tagged by
// Kind; each kind implements the Component interface, through which
// Unknowns and Stamp are dispatched.
package device

import "github.com/kestrel-ep/circuitsim/pkg/solver"

// Kind tags the closed set of device variants.
type Kind int

const (
	KindResistor Kind = iota
	KindCapacitor
	KindInductor
	KindVoltageIn
	KindVoltageOut
	KindGround
)

func (k Kind) String() string {
	switch k {
	case KindResistor:
		return "RESISTOR"
	case KindCapacitor:
		return "CAPACITOR"
	case KindInductor:
		return "INDUCTOR"
	case KindVoltageIn:
		return "VOLTAGE_IN"
	case KindVoltageOut:
		return "VOLTAGE_OUT"
	case KindGround:
		return "GROUND"
	default:
		return "UNKNOWN"
	}
}

// Component is the capability set every device kind exposes. Stamp cannot
// fail: it is a pure linear contribution to system.LHS/system.RHS.
type Component interface {
	Name() string
	Kind() Kind
	// Nodes returns the node labels this device touches. Used only for
	// pre-registration convenience; the solver never consults it directly.
	Nodes() []string
	// Unknowns returns the ordered unknown labels this device introduces
	// or references. Called once per component during registry population.
	Unknowns() []string
	// Stamp mutates system's LHS/RHS with this device's contribution for
	// the given Newton iterate. soln is the last committed time step;
	// prevSoln is the running Newton iterate being refined. index looks up
	// the dense row/column for an unknown label.
	Stamp(system *solver.LinearSystem, index func(label string) int, soln, prevSoln []float64, dt, t float64)
}

// VoltageLabel returns the symbolic unknown label for a node's voltage.
func VoltageLabel(node string) string {
	return "voltage_node_" + node
}

// CurrentLabel returns the symbolic unknown label for a voltage source's
// (or inductor's) branch current.
func CurrentLabel(name string) string {
	return "unknown_current_" + name
}
