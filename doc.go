// Package lvlinalg is a dense, double-precision linear-algebra engine over
// row-major []float64 buffers with explicit dimensions.
//
// What is inside:
//
//	vector/      — dot product, norms, normalization, axpy
//	matrix/      — buffer conventions, validators, sentinel errors, options,
//	               transpose, (optionally parallel) matrix multiplication,
//	               and the *Dense convenience type
//	elimination/ — pivoted LU: determinant, inverse, linear solves
//	qr/          — Householder QR (thin and full) and Hessenberg reduction
//	eigen/       — shifted QR algorithm with deflation, eigenvectors by
//	               inverse iteration
//	svd/         — singular value decomposition from the Gram eigenproblem
//	linalg/      — the call boundary: nine operations over caller buffers
//	config/      — YAML/dotenv numeric policy → []matrix.Option
//
// Guarantees:
//
//   - Every output buffer is caller-owned and fully written; inputs are never
//     mutated; outputs aliasing inputs are rejected.
//   - No global mutable state: concurrent calls on disjoint buffers are safe.
//   - Deterministic: parallel MulInto is bit-identical to the serial loop.
//   - Errors are sentinel values matched with errors.Is; numeric conditions
//     (singularity, non-convergence) are reported in-band.
//
// Quick start:
//
//	v := []float64{1, 2}
//	d, _ := linalg.Dot(v, v, 2) // 5
//
//	a := []float64{4, 2, 3, 5}
//	u, s, vt := make([]float64, 4), make([]float64, 2), make([]float64, 4)
//	_ = linalg.SVDDecompose(a, 2, 2, u, s, vt)
package lvlinalg
