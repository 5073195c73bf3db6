// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/lvlinalg/eigen"

// Dot returns Σ a[i]·b[i] over n elements (0 for n == 0).
func Dot(a, b []float64, n int) (float64, error) { return (&Engine{}).Dot(a, b, n) }

// Normalize writes a/‖a‖₂ into out; the zero vector maps to zeros.
func Normalize(a []float64, n int, out []float64) error { return (&Engine{}).Normalize(a, n, out) }

// MatMul writes a (m×k) · b (k×n) into out (m×n).
func MatMul(a, b []float64, m, k, n int, out []float64) error {
	return (&Engine{}).MatMul(a, b, m, k, n, out)
}

// Transpose writes the transpose of a (rows×cols) into out (cols×rows).
func Transpose(a []float64, rows, cols int, out []float64) error {
	return (&Engine{}).Transpose(a, rows, cols, out)
}

// Determinant returns det(a) for an n×n buffer; 0 when near-singular.
func Determinant(a []float64, n int) (float64, error) { return (&Engine{}).Determinant(a, n) }

// Inverse writes a⁻¹ into out, or NaN everywhere when a is near-singular.
func Inverse(a []float64, n int, out []float64) error { return (&Engine{}).Inverse(a, n, out) }

// Diagonalize writes sorted eigenvalues into vals and eigenvectors into vecs.
func Diagonalize(a []float64, n int, vals, vecs []float64) (eigen.Info, error) {
	return (&Engine{}).Diagonalize(a, n, vals, vecs)
}

// QRDecompose writes the reduced QR factors of a into q (rows×k) and r (k×cols),
// k = min(rows, cols).
func QRDecompose(a []float64, rows, cols int, q, r []float64) error {
	return (&Engine{}).QRDecompose(a, rows, cols, q, r)
}

// SVDDecompose writes the full SVD factors of a into u, s and vt.
func SVDDecompose(a []float64, rows, cols int, u, s, vt []float64) error {
	return (&Engine{}).SVDDecompose(a, rows, cols, u, s, vt)
}
