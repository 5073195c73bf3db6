// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and broadcast kernels over flat row-major buffers, shared by
//     the solvers so tight loops are not duplicated (shifts in inverse
//     iteration, column scaling in the SVD).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j); one read and one write per element.
//   - No allocations; dst may equal a (element-wise kernels read each element
//     before writing it).

package matrix

const (
	opShiftDiagonal = "ShiftDiagonal"
	opScaleColumns  = "ScaleColumns"
)

// ShiftDiagonalInto writes A − λ·I into dst for an n×n buffer a.
// Time: O(n²). Space: O(1). dst may equal a.
//
// AI-Hint: the shifted system of inverse iteration; factor dst afterwards.
func ShiftDiagonalInto(dst, a []float64, n int, lambda float64) error {
	if err := ValidateBuffer(a, n, n); err != nil {
		return matrixErrorf(opShiftDiagonal, err)
	}
	if err := ValidateBuffer(dst, n, n); err != nil {
		return matrixErrorf(opShiftDiagonal, err)
	}
	copy(dst, a)
	for i := 0; i < n; i++ {
		dst[i*n+i] -= lambda
	}

	return nil
}

// ScaleColumnsInto computes dst[i,j] = a[i,j] * scale[j].
// Time: O(r*c). Space: O(1). Deterministic i→j loops. dst may equal a.
//
// AI-Hint: A·diag(s) without forming diag(s); use 1/σ to normalize columns.
func ScaleColumnsInto(dst, a []float64, rows, cols int, scale []float64) error {
	if err := ValidateBuffer(a, rows, cols); err != nil {
		return matrixErrorf(opScaleColumns, err)
	}
	if err := ValidateBuffer(dst, rows, cols); err != nil {
		return matrixErrorf(opScaleColumns, err)
	}
	if err := ValidateVecLen(scale, cols); err != nil {
		return matrixErrorf(opScaleColumns, err)
	}

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols // row offset
		for j = 0; j < cols; j++ {
			dst[base+j] = a[base+j] * scale[j]
		}
	}

	return nil
}
