package device

import "github.com/kestrel-ep/circuitsim/pkg/solver"

// Inductor supplements spec.md's device set as the dual of Capacitor: a
// backward-Euler companion model with its own branch-current unknown i,
// flowing from nodePos to nodeNeg through the inductor (v = L*di/dt). Its
// node rows carry i leaving nodePos and entering nodeNeg (the opposite sign
// of VoltageIn's current injection), and its branch row holds the
// discretized constraint instead of a fixed voltage.
type Inductor struct {
	name             string
	nodePos, nodeNeg string
	inductance       float64
}

func NewInductor(name, nodePos, nodeNeg string, inductance float64) *Inductor {
	return &Inductor{name: name, nodePos: nodePos, nodeNeg: nodeNeg, inductance: inductance}
}

func (l *Inductor) Name() string        { return l.name }
func (l *Inductor) Kind() Kind          { return KindInductor }
func (l *Inductor) Nodes() []string     { return []string{l.nodePos, l.nodeNeg} }
func (l *Inductor) Inductance() float64 { return l.inductance }

func (l *Inductor) Unknowns() []string {
	return []string{VoltageLabel(l.nodePos), VoltageLabel(l.nodeNeg), CurrentLabel(l.name)}
}

func (l *Inductor) Stamp(system *solver.LinearSystem, index func(string) int, soln, prevSoln []float64, dt, t float64) {
	p := index(VoltageLabel(l.nodePos))
	n := index(VoltageLabel(l.nodeNeg))
	c := index(CurrentLabel(l.name))
	leq := l.inductance / dt

	// Branch constraint: v_p - v_n - leq*(i - i_stepStart) = 0.
	system.AddToLHS(c, p, 1)
	system.AddToLHS(c, n, -1)
	system.AddToLHS(c, c, -leq)
	residual := (prevSoln[p] - prevSoln[n]) - leq*(prevSoln[c]-soln[c])
	system.AddToRHS(c, -residual)

	// Branch current into node rows: i leaves p and enters n.
	system.AddToLHS(p, c, 1)
	system.AddToLHS(n, c, -1)
	system.AddToRHS(p, -prevSoln[c])
	system.AddToRHS(n, prevSoln[c])
}
