package solver

import (
	"fmt"
	"io"
)

// Singular reports that LinearSystem.Solve could not factor LHS: a zero
// or near-zero pivot was found (or the underlying LU solve itself refused
// the matrix as singular, in which case Pivot is -1 and cause holds the
// wrapped error).
type Singular struct {
	Pivot  int
	System *LinearSystem
	cause  error
}

func (e *Singular) Error() string {
	if e.Pivot >= 0 {
		label := ""
		if e.System != nil && e.Pivot < len(e.System.Labels) {
			label = e.System.Labels[e.Pivot]
		}
		return fmt.Sprintf("solver: singular system: zero pivot at row %d (%s)", e.Pivot, label)
	}
	return fmt.Sprintf("solver: singular system: %v", e.cause)
}

func (e *Singular) Unwrap() error { return e.cause }

// Dump writes the failing pivot row and the offending LHS/RHS pair, one
// equation per line with its nonzero terms and RHS value, to w, for
// diagnosing a Singular failure. No summary statistics are printed.
func (e *Singular) Dump(w io.Writer) {
	s := e.System
	if s == nil {
		return
	}
	fmt.Fprintf(w, "singular system (%dx%d), failing pivot row %d:\n", s.N, s.N, e.Pivot)
	for i := 0; i < s.N; i++ {
		label := ""
		if i < len(s.Labels) {
			label = s.Labels[i]
		}
		fmt.Fprintf(w, "  eq %2d [%s]:", i, label)
		for j := 0; j < s.N; j++ {
			v := s.LHS.At(i, j)
			if v != 0 {
				fmt.Fprintf(w, " %+g*x%d", v, j)
			}
		}
		fmt.Fprintf(w, " = %g\n", s.RHS[i])
	}
}
