// SPDX-License-Identifier: MIT

package elimination

import (
	"github.com/katalvlaran/lvlinalg/matrix"
)

// InverseInto writes A⁻¹ of an n×n buffer into dst.
// Implementation:
//   - Stage 1: Validate a and dst as n×n and disjoint.
//   - Stage 2: Factorize(a) once with partial pivoting.
//   - Stage 3: For each identity column e_col, solve A·x = e_col and write x
//     into column col of dst.
//
// Behavior highlights:
//   - Singular or near-singular input: every element of dst is set to NaN and
//     the call returns matrix.ErrSingular. Every column of A⁻¹ depends on every
//     pivot, so a missing pivot poisons the whole output.
//   - dst is fully written on success and on ErrSingular.
//   - n == 0 is a no-op.
//
// Inputs:
//   - dst: n×n output, disjoint from a.
//   - a  : n×n input (read-only).
//   - opts: matrix.WithPivotTolerance.
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch, matrix.ErrAliasedBuffers,
//     matrix.ErrSingular.
//
// Determinism:
//   - Fixed column order and fixed substitution order.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the factorization plus O(n) per column.
//
// AI-Hints:
//   - To solve A·x = b, use Factorize + LU.SolveInto instead: cheaper and more accurate.
func InverseInto(dst, a []float64, n int, opts ...matrix.Option) error {
	if err := matrix.ValidateBuffer(a, n, n); err != nil {
		return matrix.Errorf(opInverse, err)
	}
	if err := matrix.ValidateBuffer(dst, n, n); err != nil {
		return matrix.Errorf(opInverse, err)
	}
	if err := matrix.ValidateDisjoint(dst, a); err != nil {
		return matrix.Errorf(opInverse, err)
	}

	f, err := Factorize(a, n, opts...)
	if err != nil {
		return matrix.Errorf(opInverse, err)
	}
	if f.Singular() {
		matrix.FillNaN(dst)
		return matrix.Errorf(opInverse, matrix.ErrSingular)
	}

	var (
		col, i int
		e      = make([]float64, n)
		x      = make([]float64, n)
	)
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		f.solve(x, e, 0)
		for i = 0; i < n; i++ {
			dst[i*n+col] = x[i]
		}
	}

	return nil
}
