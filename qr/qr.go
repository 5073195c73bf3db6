// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

const (
	opDecompose     = "QR"
	opDecomposeFull = "QRFull"
	opHessenberg    = "Hessenberg"
)

// DecomposeInto computes the thin QR factorization A = Q·R.
// Implementation:
//   - Stage 1: Validate shapes (rows ≥ cols), buffer lengths and aliasing.
//   - Stage 2: Copy A into a scratch buffer; for k = 0..cols−1 build the
//     reflector of column k below the diagonal and apply it to the trailing
//     columns (forming R).
//   - Stage 3: Copy the upper triangle into r (zeros below the diagonal).
//   - Stage 4: Accumulate Q by applying the reflectors backward to the first
//     cols columns of the identity.
//
// Behavior highlights:
//   - Zero columns are skipped (identity reflector), so rank-deficient input
//     still yields orthonormal Q columns.
//   - Entries strictly below the diagonal of R are exact zeros.
//
// Inputs:
//   - q: rows×cols output; r: cols×cols output; a: rows×cols input.
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch (including rows < cols),
//     matrix.ErrAliasedBuffers.
//
// Determinism:
//   - Fixed column order; Householder sign α = −sign(x₀)·‖x‖.
//
// Complexity:
//   - Time O(rows·cols²), Space O(rows·cols).
//
// Notes:
//   - For rows < cols use DecomposeFullInto.
//
// AI-Hints:
//   - To get diag(R) ≥ 0, flip the sign of row i of R and column i of Q
//     wherever R[i,i] < 0; the product is unchanged.
func DecomposeInto(q, r, a []float64, rows, cols int) error {
	if err := matrix.ValidateBuffer(a, rows, cols); err != nil {
		return matrix.Errorf(opDecompose, err)
	}
	if rows < cols {
		return matrix.Errorf(opDecompose,
			fmt.Errorf("thin QR needs rows >= cols, got %dx%d: %w", rows, cols, matrix.ErrDimensionMismatch))
	}
	if err := matrix.ValidateBuffer(q, rows, cols); err != nil {
		return matrix.Errorf(opDecompose, fmt.Errorf("q: %w", err))
	}
	if err := matrix.ValidateBuffer(r, cols, cols); err != nil {
		return matrix.Errorf(opDecompose, fmt.Errorf("r: %w", err))
	}
	if err := disjoint(q, r, a); err != nil {
		return matrix.Errorf(opDecompose, err)
	}

	w := make([]float64, len(a))
	copy(w, a)
	hs := factor(w, rows, cols)
	copy(r, w[:cols*cols])
	accumulate(q, rows, cols, hs)

	return nil
}

// DecomposeFullInto computes the full QR factorization A = Q·R for any shape.
// Implementation:
//   - Stage 1: Validate a (rows×cols), q (rows×rows), r (rows×cols), aliasing.
//   - Stage 2: Householder steps k = 0..min(rows,cols)−1 on a scratch copy.
//   - Stage 3: r = upper-trapezoidal result; q = reflectors applied backward
//     to the rows×rows identity.
//
// Behavior highlights:
//   - The trailing rows−cols columns of Q (when rows > cols) span the
//     orthogonal complement of range(A) for full-rank A.
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch, matrix.ErrAliasedBuffers.
//
// Complexity:
//   - Time O(rows²·cols + rows·min(rows,cols)²), Space O(rows·cols).
func DecomposeFullInto(q, r, a []float64, rows, cols int) error {
	if err := matrix.ValidateBuffer(a, rows, cols); err != nil {
		return matrix.Errorf(opDecomposeFull, err)
	}
	if err := matrix.ValidateBuffer(q, rows, rows); err != nil {
		return matrix.Errorf(opDecomposeFull, fmt.Errorf("q: %w", err))
	}
	if err := matrix.ValidateBuffer(r, rows, cols); err != nil {
		return matrix.Errorf(opDecomposeFull, fmt.Errorf("r: %w", err))
	}
	if err := disjoint(q, r, a); err != nil {
		return matrix.Errorf(opDecomposeFull, err)
	}

	copy(r, a)
	hs := factor(r, rows, cols)
	accumulate(q, rows, rows, hs)

	return nil
}

// disjoint checks every output against the input and against each other.
func disjoint(q, r, a []float64) error {
	if err := matrix.ValidateDisjoint(q, a); err != nil {
		return err
	}
	if err := matrix.ValidateDisjoint(r, a); err != nil {
		return err
	}

	return matrix.ValidateDisjoint(q, r)
}
