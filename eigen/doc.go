// Package eigen is the EigenSolver of lvlinalg: eigenvalues and eigenvectors
// of a dense real square matrix by shifted QR iteration.
//
// DiagonalizeInto reduces A to Hessenberg form (qr.HessenbergInto) and then
// runs QR sweeps on the active unreduced window, each factored with
// qr.DecomposeInto, deflating negligible sub-diagonal entries until the
// iterate is quasi-triangular (a real Schur form A = Z·T·Zᵀ).
//
// Output is real-only:
//
//   - values[i] is the i-th eigenvalue, or its real part for a complex pair;
//     Info.Imag carries the imaginary parts (+q then −q for each pair).
//   - For symmetric input the columns of the accumulated Z are the
//     orthonormal eigenvectors.
//   - Otherwise each column is refined by inverse iteration through
//     elimination.LU; a complex pair stores the real and imaginary parts of
//     the eigenvector of λ = p + iq in two adjacent columns, which together
//     span the real invariant plane of the pair.
//
// Hitting the iteration cap is not an error: the best current approximation
// is returned with Info.Converged == false.
package eigen
