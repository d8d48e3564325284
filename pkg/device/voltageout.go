package device

import "github.com/kestrel-ep/circuitsim/pkg/solver"

// VoltageOut is purely observational: it identifies the output node pair
// but contributes no stamps.
type VoltageOut struct {
	name             string
	nodePos, nodeNeg string
}

func NewVoltageOut(name, nodePos, nodeNeg string) *VoltageOut {
	return &VoltageOut{name: name, nodePos: nodePos, nodeNeg: nodeNeg}
}

func (o *VoltageOut) Name() string    { return o.name }
func (o *VoltageOut) Kind() Kind      { return KindVoltageOut }
func (o *VoltageOut) Nodes() []string { return []string{o.nodePos, o.nodeNeg} }

func (o *VoltageOut) Unknowns() []string {
	return []string{VoltageLabel(o.nodePos), VoltageLabel(o.nodeNeg)}
}

func (o *VoltageOut) Stamp(system *solver.LinearSystem, index func(string) int, soln, prevSoln []float64, dt, t float64) {
}
