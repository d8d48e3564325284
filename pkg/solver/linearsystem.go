// Package solver owns the dense linear-algebra kernel: the per-iteration
// LinearSystem (left-hand-side matrix and right-hand-side vector, with the
// ground row clamped) and the LU-with-partial-pivoting kernel that solves
// it.
package solver

import "gonum.org/v1/gonum/mat"

// LinearSystem is the square Kirchhoff system assembled fresh for a single
// Newton iteration: LHS*x = RHS. Row g (the ground unknown's equation) is
// owned by the system itself and is never written by a component stamp;
// column g is written like any other column.
type LinearSystem struct {
	N      int
	Ground int // dense index of the ground voltage unknown
	LHS    *mat.Dense
	RHS    []float64

	// Labels is a parallel vector of unknown labels, index-aligned with
	// LHS/RHS, kept only for diagnostics (Singular messages and dumps).
	Labels []string
}

// New allocates an N×N zero system with the ground row fixed to the
// Kronecker row (LHS[g][g]=1, RHS[g]=0), which clamps the ground voltage
// unknown to zero in every solution.
func New(n, ground int, labels []string) *LinearSystem {
	s := &LinearSystem{
		N:      n,
		Ground: ground,
		LHS:    mat.NewDense(n, n, nil),
		RHS:    make([]float64, n),
		Labels: labels,
	}
	s.LHS.Set(ground, ground, 1)
	return s
}

// AddToLHS adds delta to LHS[r][c]. A no-op when r is the ground row: the
// ground row is owned by the system and immune to component stamps.
func (s *LinearSystem) AddToLHS(r, c int, delta float64) {
	if r == s.Ground {
		return
	}
	s.LHS.Set(r, c, s.LHS.At(r, c)+delta)
}

// AddToRHS adds delta to RHS[r]. A no-op when r is the ground row.
func (s *LinearSystem) AddToRHS(r int, delta float64) {
	if r == s.Ground {
		return
	}
	s.RHS[r] += delta
}
