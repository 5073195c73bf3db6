// Package qr is the QRDecomposer of lvlinalg: Householder reflections over
// row-major buffers.
//
//   - DecomposeInto: thin QR of a rows×cols matrix with rows ≥ cols,
//     Q (rows×cols) with orthonormal columns and R (cols×cols) upper triangular.
//   - DecomposeFullInto: full QR of any shape, Q (rows×rows) orthogonal and
//     R (rows×cols) upper trapezoidal. The svd package uses it to complete
//     orthonormal bases.
//   - HessenbergInto: orthogonal similarity A = Z·H·Zᵀ with H upper
//     Hessenberg, the first stage of the eigen solver.
//
// The reflector for a column x uses α = −sign(x₀)·‖x‖, so the diagonal of R
// may be negative. The sign pattern is an implementation detail, not a
// contract: compare factors up to column signs.
package qr
