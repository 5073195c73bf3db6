// Package linalg is the call boundary of the engine: the nine operations of
// the catalogue over caller-owned row-major buffers with explicit dimensions.
//
//	Dot, Normalize, MatMul, Transpose, Determinant, Inverse,
//	Diagonalize, QRDecompose, SVDDecompose
//
// Every output buffer is preallocated by the caller and fully written.
// The returned error only reports shape violations (and aliasing); numeric
// conditions stay in-band:
//   - Determinant of a near-singular matrix is 0.
//   - Inverse of a near-singular matrix is all NaN.
//   - Diagonalize reports non-convergence and complex pairs through eigen.Info.
//
// An Engine bundles []matrix.Option (usually built by package config) so the
// numeric policy is set once. The package functions use the default policy.
// No state is shared between calls; concurrent calls with disjoint buffers
// are safe.
package linalg
