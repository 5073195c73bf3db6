// Package elimination is the EliminationSolver of lvlinalg: Gaussian
// elimination with partial pivoting over square row-major buffers.
//
// The package provides:
//
//   - Factorize, which returns an LU factorization (PA = LU) carrying the row
//     permutation, the swap parity and a near-singular flag.
//   - Determinant: product of pivots times (−1)^swaps, 0 when near-singular.
//   - InverseInto: one LU solve per identity column. A near-singular input
//     writes NaN into the whole output and returns matrix.ErrSingular.
//   - LU.SolveInto for A·x = b, shared by InverseInto and the eigen solver.
//
// Near-singularity is relative: a pivot is treated as zero when
// |pivot| ≤ tol·max|a_ij|, with tol taken from matrix.WithPivotTolerance
// (1e-12 by default). Scaling A therefore never changes the verdict.
package elimination
