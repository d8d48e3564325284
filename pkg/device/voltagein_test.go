package device

import (
	"math"
	"testing"

	"github.com/kestrel-ep/circuitsim/pkg/solver"
)

func TestVoltageInStamp(t *testing.T) {
	labels := []string{VoltageLabel("gnd"), VoltageLabel("p"), CurrentLabel("vin")}
	index := indexer(labels)
	sys := solver.New(3, index(VoltageLabel("gnd")), labels)

	v := NewVoltageIn("vin", "p", "gnd")
	v.SetSample(5)
	soln := []float64{0, 0, 0}
	prevSoln := []float64{0, 3, 2} // mid-Newton: vp=3, i=2

	v.Stamp(sys, index, soln, prevSoln, 1e-5, 0)

	p, n, c := index(VoltageLabel("p")), index(VoltageLabel("gnd")), index(CurrentLabel("vin"))
	if got := sys.LHS.At(c, p); got != 1 {
		t.Errorf("LHS[c][p] = %g, want 1", got)
	}
	if got := sys.LHS.At(c, n); got != -1 {
		t.Errorf("LHS[c][n] = %g, want -1", got)
	}
	wantRHSc := 5.0 - (prevSoln[p] - prevSoln[n])
	if math.Abs(sys.RHS[c]-wantRHSc) > 1e-12 {
		t.Errorf("RHS[c] = %g, want %g", sys.RHS[c], wantRHSc)
	}
	if got := sys.LHS.At(p, c); got != -1 {
		t.Errorf("LHS[p][c] = %g, want -1", got)
	}
	if math.Abs(sys.RHS[p]-prevSoln[c]) > 1e-12 {
		t.Errorf("RHS[p] = %g, want %g", sys.RHS[p], prevSoln[c])
	}
}

func TestVoltageInUnknownsIncludesBranchCurrent(t *testing.T) {
	v := NewVoltageIn("vin", "p", "n")
	got := v.Unknowns()
	want := []string{VoltageLabel("p"), VoltageLabel("n"), CurrentLabel("vin")}
	if len(got) != len(want) {
		t.Fatalf("Unknowns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Unknowns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
