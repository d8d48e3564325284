package device

import "github.com/kestrel-ep/circuitsim/pkg/solver"

// VoltageIn is driven by the external sample stream: it holds the
// currently-scheduled voltage and introduces a branch-current unknown used
// to stamp its constraint equation (v_pos - v_neg = V).
type VoltageIn struct {
	name             string
	nodePos, nodeNeg string
	v                float64 // currently-scheduled sample
	period           float64 // sampling period, discovered from the input stream header
}

func NewVoltageIn(name, nodePos, nodeNeg string) *VoltageIn {
	return &VoltageIn{name: name, nodePos: nodePos, nodeNeg: nodeNeg}
}

func (v *VoltageIn) Name() string    { return v.name }
func (v *VoltageIn) Kind() Kind      { return KindVoltageIn }
func (v *VoltageIn) Nodes() []string { return []string{v.nodePos, v.nodeNeg} }

func (v *VoltageIn) Unknowns() []string {
	return []string{VoltageLabel(v.nodePos), VoltageLabel(v.nodeNeg), CurrentLabel(v.name)}
}

// SetSample updates the currently-scheduled input voltage.
func (v *VoltageIn) SetSample(value float64) { v.v = value }

// Sample returns the currently-scheduled input voltage.
func (v *VoltageIn) Sample() float64 { return v.v }

// SetPeriod records the sampling period discovered from the input header.
func (v *VoltageIn) SetPeriod(period float64) { v.period = period }

// Period returns the sampling period discovered from the input header.
func (v *VoltageIn) Period() float64 { return v.period }

func (v *VoltageIn) Stamp(system *solver.LinearSystem, index func(string) int, soln, prevSoln []float64, dt, t float64) {
	p := index(VoltageLabel(v.nodePos))
	n := index(VoltageLabel(v.nodeNeg))
	c := index(CurrentLabel(v.name))

	system.AddToLHS(c, p, 1)
	system.AddToLHS(c, n, -1)
	system.AddToRHS(c, v.v-(prevSoln[p]-prevSoln[n]))

	system.AddToLHS(p, c, -1)
	system.AddToLHS(n, c, 1)
	system.AddToRHS(p, prevSoln[c])
	system.AddToRHS(n, -prevSoln[c])
}
