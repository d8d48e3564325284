package device

import "github.com/kestrel-ep/circuitsim/pkg/solver"

// Ground marks the reference node; its voltage unknown is clamped to zero
// by the LinearSystem itself, not by a stamp.
type Ground struct {
	node string
}

func NewGround(node string) *Ground { return &Ground{node: node} }

func (g *Ground) Name() string    { return g.node }
func (g *Ground) Kind() Kind      { return KindGround }
func (g *Ground) Nodes() []string { return []string{g.node} }

func (g *Ground) Unknowns() []string {
	return []string{VoltageLabel(g.node)}
}

func (g *Ground) Stamp(system *solver.LinearSystem, index func(string) int, soln, prevSoln []float64, dt, t float64) {
}
