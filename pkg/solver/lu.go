package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// epsilonScale scales machine epsilon against the matrix norm to decide
// whether a pivot is "zero" for the purposes of Solve's Singular check.
const epsilonScale = 1e8 // ~ 1/machine-epsilon-to-norm ratio used by most dense LU kernels

// Solve factors LHS with partial-pivoted dense LU and back-substitutes
// RHS, returning the unique N-vector solution. It fails with a *Singular
// error when a pivot is zero or falls below machine epsilon times the
// matrix 2-norm times epsilonScale — an underdetermined or structurally
// degenerate system.
func (s *LinearSystem) Solve() ([]float64, error) {
	var lu mat.LU
	lu.Factorize(s.LHS)

	var u mat.TriDense
	lu.UTo(&u)

	norm := mat.Norm(s.LHS, 2)
	tol := norm * (math.Nextafter(1, 2) - 1) * epsilonScale
	if tol == 0 {
		tol = 1e-300
	}

	for i := 0; i < s.N; i++ {
		if math.Abs(u.At(i, i)) < tol {
			return nil, &Singular{Pivot: i, System: s}
		}
	}

	b := mat.NewVecDense(s.N, append([]float64(nil), s.RHS...))
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, b); err != nil {
		return nil, &Singular{Pivot: -1, System: s, cause: err}
	}

	out := make([]float64, s.N)
	for i := 0; i < s.N; i++ {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
