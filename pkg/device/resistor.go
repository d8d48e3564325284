package device

import "github.com/kestrel-ep/circuitsim/pkg/solver"

// Resistor is a linear two-terminal device, conductance g = 1/R.
type Resistor struct {
	name             string
	nodePos, nodeNeg string
	resistance       float64
}

func NewResistor(name, nodePos, nodeNeg string, resistance float64) *Resistor {
	return &Resistor{name: name, nodePos: nodePos, nodeNeg: nodeNeg, resistance: resistance}
}

func (r *Resistor) Name() string     { return r.name }
func (r *Resistor) Kind() Kind       { return KindResistor }
func (r *Resistor) Nodes() []string  { return []string{r.nodePos, r.nodeNeg} }
func (r *Resistor) Resistance() float64 { return r.resistance }

func (r *Resistor) Unknowns() []string {
	return []string{VoltageLabel(r.nodePos), VoltageLabel(r.nodeNeg)}
}

func (r *Resistor) Stamp(system *solver.LinearSystem, index func(string) int, soln, prevSoln []float64, dt, t float64) {
	p := index(VoltageLabel(r.nodePos))
	n := index(VoltageLabel(r.nodeNeg))
	g := 1.0 / r.resistance

	system.AddToLHS(p, p, g)
	system.AddToLHS(n, n, g)
	system.AddToLHS(p, n, -g)
	system.AddToLHS(n, p, -g)

	rhsP := -g*prevSoln[p] + g*prevSoln[n]
	system.AddToRHS(p, rhsP)
	system.AddToRHS(n, -rhsP)
}
