package device

import "github.com/kestrel-ep/circuitsim/pkg/solver"

// Capacitor is a companion-model device: conductance gc = C/dt around the
// previous Newton iterate, plus a current-source residual term that
// carries the charge delta since the start of the time step.
type Capacitor struct {
	name             string
	nodePos, nodeNeg string
	capacitance      float64
}

func NewCapacitor(name, nodePos, nodeNeg string, capacitance float64) *Capacitor {
	return &Capacitor{name: name, nodePos: nodePos, nodeNeg: nodeNeg, capacitance: capacitance}
}

func (c *Capacitor) Name() string      { return c.name }
func (c *Capacitor) Kind() Kind        { return KindCapacitor }
func (c *Capacitor) Nodes() []string   { return []string{c.nodePos, c.nodeNeg} }
func (c *Capacitor) Capacitance() float64 { return c.capacitance }

func (c *Capacitor) Unknowns() []string {
	return []string{VoltageLabel(c.nodePos), VoltageLabel(c.nodeNeg)}
}

func (c *Capacitor) Stamp(system *solver.LinearSystem, index func(string) int, soln, prevSoln []float64, dt, t float64) {
	p := index(VoltageLabel(c.nodePos))
	n := index(VoltageLabel(c.nodeNeg))
	gc := c.capacitance / dt

	system.AddToLHS(p, p, gc)
	system.AddToLHS(n, n, gc)
	system.AddToLHS(n, p, -gc)
	system.AddToLHS(p, n, -gc)

	vt0 := soln[p] - soln[n]         // solution at start of step
	vt1 := prevSoln[p] - prevSoln[n] // running Newton iterate

	di := (vt0 - vt1) * gc
	system.AddToRHS(p, di)
	system.AddToRHS(n, -di)
}
