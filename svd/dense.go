// SPDX-License-Identifier: MIT

package svd

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Result holds the factors of Decompose.
type Result struct {
	U  *matrix.Dense // m×m
	S  []float64     // min(m,n), descending
	VT *matrix.Dense // n×n
}

// Decompose returns the full SVD of m.
// Errors: matrix.ErrNilMatrix.
func Decompose(m *matrix.Dense, opts ...matrix.Option) (*Result, error) {
	if m == nil {
		return nil, matrix.Errorf(opSVD, matrix.ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	u, err := matrix.NewDense(rows, rows)
	if err != nil {
		return nil, matrix.Errorf(opSVD, err)
	}
	vt, err := matrix.NewDense(cols, cols)
	if err != nil {
		return nil, matrix.Errorf(opSVD, err)
	}
	s := make([]float64, min(rows, cols))
	if err = DecomposeInto(u.RawData(), s, vt.RawData(), m.RawData(), rows, cols, opts...); err != nil {
		return nil, err
	}

	return &Result{U: u, S: s, VT: vt}, nil
}

// Rank returns the number of singular values above tol. A negative tol
// selects σ_max·max(m,n)·ε.
func (r *Result) Rank(tol float64) int {
	if len(r.S) == 0 {
		return 0
	}
	if tol < 0 {
		tol = r.S[0] * float64(max(r.U.Rows(), r.VT.Rows())) * epsilon
	}
	rank := 0
	for _, v := range r.S {
		if v > tol && !math.IsNaN(v) {
			rank++
		}
	}

	return rank
}
