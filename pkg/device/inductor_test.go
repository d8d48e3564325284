package device

import (
	"math"
	"testing"

	"github.com/kestrel-ep/circuitsim/pkg/solver"
)

func TestInductorStampBranchConstraint(t *testing.T) {
	labels := []string{VoltageLabel("gnd"), VoltageLabel("p"), VoltageLabel("n"), CurrentLabel("l1")}
	index := indexer(labels)
	sys := solver.New(4, index(VoltageLabel("gnd")), labels)

	l := NewInductor("l1", "p", "n", 1e-3)
	dt := 1e-6
	soln := []float64{0, 0, 0, 1}     // committed branch current at step start
	prevSoln := []float64{0, 5, 0, 2} // running Newton iterate

	l.Stamp(sys, index, soln, prevSoln, dt, 0)

	p, n, c := index(VoltageLabel("p")), index(VoltageLabel("n")), index(CurrentLabel("l1"))
	leq := l.Inductance() / dt

	if got := sys.LHS.At(c, p); got != 1 {
		t.Errorf("LHS[c][p] = %g, want 1", got)
	}
	if got := sys.LHS.At(c, n); got != -1 {
		t.Errorf("LHS[c][n] = %g, want -1", got)
	}
	if got := sys.LHS.At(c, c); got != -leq {
		t.Errorf("LHS[c][c] = %g, want %g", got, -leq)
	}

	wantResidual := (prevSoln[p] - prevSoln[n]) - leq*(prevSoln[c]-soln[c])
	if math.Abs(sys.RHS[c]+wantResidual) > 1e-9 {
		t.Errorf("RHS[c] = %g, want %g", sys.RHS[c], -wantResidual)
	}

	if got := sys.LHS.At(p, c); got != 1 {
		t.Errorf("LHS[p][c] = %g, want 1", got)
	}
	if got := sys.LHS.At(n, c); got != -1 {
		t.Errorf("LHS[n][c] = %g, want -1", got)
	}
}
