// Package svd is the SVDDecomposer of lvlinalg: A = U·diag(S)·Vᵀ for any
// m×n row-major matrix, built on the symmetric eigen solver.
//
// The smaller Gram matrix (AᵀA when n ≤ m, AAᵀ otherwise) is diagonalized
// with eigen.DiagonalizeInto. Its eigenvectors give one singular basis; the
// singular values are σ_i = ‖A·v_i‖ rather than √λ_i, which keeps small
// values accurate to ε·σ_max. The other basis is recovered as A·v_i/σ_i and
// completed to a full orthonormal basis with qr.DecomposeFullInto.
//
// Singular values σ_i ≤ σ_max·max(m,n)·ε are reported as exact zeros.
package svd
