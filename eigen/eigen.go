// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
)

const opDiagonalize = "Diagonalize"

// symmetryTolerance is the relative asymmetry accepted by the symmetric path.
const symmetryTolerance = 1e-12

// Info reports how the iteration went.
type Info struct {
	// Iterations is the number of shifted QR sweeps performed.
	Iterations int
	// Converged is false when the sweep cap was reached before every
	// eigenvalue was isolated.
	Converged bool
	// Symmetric reports that the input was symmetric within tolerance and the
	// eigenvectors are the orthonormal Schur vectors.
	Symmetric bool
	// Imag holds the imaginary part of each eigenvalue (0 for real ones).
	Imag []float64
}

// Real reports whether every eigenvalue is real.
func (i Info) Real() bool {
	for _, v := range i.Imag {
		if v != 0 {
			return false
		}
	}

	return true
}

// DiagonalizeInto computes the eigenvalues and eigenvectors of an n×n matrix.
// Implementation:
//   - Stage 1: Validate buffers; resolve tolerance and iteration cap.
//   - Stage 2: H, Z = Hessenberg reduction of A (Z orthogonal, A = Z·H·Zᵀ).
//   - Stage 3: Shifted QR sweeps on the active window until every eigenvalue
//     (or complex pair) is isolated or the sweep cap is hit.
//   - Stage 4: values from the quasi-triangular iterate; vectors from Z
//     (symmetric input) or inverse iteration on A (general input).
//
// Behavior highlights:
//   - A sub-diagonal entry is negligible when |h| ≤ tol·‖A‖_F.
//   - Wilkinson shift from the trailing 2×2 when its eigenvalues are real,
//     a double shift (both conjugate roots) when they are complex, and an
//     exceptional shift every 10 sweeps without deflation.
//   - Eigenvector columns have unit Euclidean norm and their largest
//     component is positive (for a complex pair: real and positive).
//   - NaN or ±Inf input yields NaN outputs and Converged == false, no error.
//
// Inputs:
//   - values : len n output.
//   - vectors: n×n output; column j pairs with values[j].
//   - a      : n×n input (read-only).
//   - opts   : matrix.WithTolerance, matrix.WithMaxIterations,
//     matrix.WithPivotTolerance (inverse iteration), matrix.WithLogger.
//
// Returns:
//   - Info: sweep count, convergence flag, symmetric flag, imaginary parts.
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch, matrix.ErrAliasedBuffers.
//
// Determinism:
//   - No randomness: fixed shifts, fixed start vectors (Schur vectors).
//
// Complexity:
//   - Time O(n³) per sweep, O(n) sweeps typical; inverse iteration adds
//     O(n³) per eigenvector of a non-symmetric input.
//   - Space O(n²).
//
// AI-Hints:
//   - Check Info.Real() before treating values as the full spectrum.
//   - Use SortByValue for ascending order; deflation order is bottom-up.
func DiagonalizeInto(values, vectors, a []float64, n int, opts ...matrix.Option) (Info, error) {
	if err := matrix.ValidateBuffer(a, n, n); err != nil {
		return Info{}, matrix.Errorf(opDiagonalize, err)
	}
	if err := matrix.ValidateVecLen(values, n); err != nil {
		return Info{}, matrix.Errorf(opDiagonalize, fmt.Errorf("values: %w", err))
	}
	if err := matrix.ValidateBuffer(vectors, n, n); err != nil {
		return Info{}, matrix.Errorf(opDiagonalize, fmt.Errorf("vectors: %w", err))
	}
	for _, out := range [][]float64{values, vectors} {
		if err := matrix.ValidateDisjoint(out, a); err != nil {
			return Info{}, matrix.Errorf(opDiagonalize, err)
		}
	}
	if err := matrix.ValidateDisjoint(values, vectors); err != nil {
		return Info{}, matrix.Errorf(opDiagonalize, err)
	}

	o := matrix.NewOptions(opts...)
	info := Info{Imag: make([]float64, n)}
	if n == 0 {
		info.Converged = true
		return info, nil
	}

	norm := matrix.FrobeniusNorm(a)
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		matrix.FillNaN(values)
		matrix.FillNaN(vectors)
		o.Logger().Debug("eigen: non-finite input", "n", n)
		return info, nil
	}
	info.Symmetric = matrix.IsSymmetric(a, n, symmetryTolerance)

	s := &schur{
		n:         n,
		h:         make([]float64, n*n),
		z:         make([]float64, n*n),
		values:    values,
		imag:      info.Imag,
		thresh:    o.Tolerance() * norm,
		maxIter:   o.MaxIterations(n),
		symmetric: info.Symmetric,
	}
	if err := qr.HessenbergInto(s.h, s.z, a, n); err != nil {
		return Info{}, matrix.Errorf(opDiagonalize, err)
	}
	converged, err := s.run()
	if err != nil {
		return Info{}, matrix.Errorf(opDiagonalize, err)
	}
	info.Iterations = s.iter
	info.Converged = converged
	if !converged {
		o.Logger().Debug("eigen: sweep cap reached",
			"n", n, "iterations", s.iter, "unreduced", s.hi+1, "tolerance", o.Tolerance())
	}

	if info.Symmetric {
		copy(vectors, s.z)
		for j := 0; j < n; j++ {
			canonicalColumn(vectors, n, j)
		}
		return info, nil
	}
	if err = refineVectors(vectors, a, s, o); err != nil {
		return Info{}, matrix.Errorf(opDiagonalize, err)
	}

	return info, nil
}
