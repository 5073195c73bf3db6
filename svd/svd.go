// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlinalg/eigen"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
	"github.com/katalvlaran/lvlinalg/vector"
)

const opSVD = "SVD"

// epsilon is the float64 machine epsilon.
const epsilon = 0x1p-52

// DecomposeInto computes the full singular value decomposition A = U·diag(S)·Vᵀ.
// Implementation:
//   - Stage 1: Validate a (m×n), u (m×m), s (min(m,n)), vt (n×n) and aliasing.
//   - Stage 2: Work on X = A when n ≤ m, else on X = Aᵀ, so X is tall.
//   - Stage 3: G = XᵀX; eigen.DiagonalizeInto(G) gives the right basis of X;
//     σ_j = ‖X·v_j‖; pairs sorted descending; σ_j ≤ σ_max·max(m,n)·ε is 0.
//   - Stage 4: Left basis of X: x_i = X·v_i/σ_i for σ_i > 0, completed and
//     re-orthogonalized by qr.DecomposeFullInto.
//   - Stage 5: Map back: U, Vᵀ from the bases of X (swapped when X = Aᵀ).
//
// Behavior highlights:
//   - S is non-negative and descending; U and V are orthogonal.
//   - Rank-deficient input: singular values at the rank cut are exact zeros
//     and the matching columns come from the orthogonal complement.
//   - m == 0 or n == 0 writes identities into u and vt.
//
// Inputs:
//   - u: m×m, s: min(m,n), vt: n×n outputs; a: m×n input (read-only).
//   - opts: forwarded to the eigen solver (tolerance, iteration cap, logger).
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch, matrix.ErrAliasedBuffers.
//
// Determinism:
//   - Stable descending sort; eigenvector signs are canonical (largest
//     component positive) so the factors are reproducible.
//
// Complexity:
//   - Time O(m·n·min(m,n) + min(m,n)³ per sweep + max(m,n)³ for completion).
//   - Space O(m² + n²).
//
// AI-Hints:
//   - For the singular values only, discard u and vt; the cost is dominated
//     by the Gram eigen-decomposition anyway.
func DecomposeInto(u, s, vt, a []float64, m, n int, opts ...matrix.Option) error {
	if err := matrix.ValidateBuffer(a, m, n); err != nil {
		return matrix.Errorf(opSVD, err)
	}
	if err := matrix.ValidateBuffer(u, m, m); err != nil {
		return matrix.Errorf(opSVD, fmt.Errorf("u: %w", err))
	}
	if err := matrix.ValidateVecLen(s, min(m, n)); err != nil {
		return matrix.Errorf(opSVD, fmt.Errorf("s: %w", err))
	}
	if err := matrix.ValidateBuffer(vt, n, n); err != nil {
		return matrix.Errorf(opSVD, fmt.Errorf("vt: %w", err))
	}
	for _, pair := range [][2][]float64{{u, a}, {s, a}, {vt, a}, {u, s}, {u, vt}, {s, vt}} {
		if err := matrix.ValidateDisjoint(pair[0], pair[1]); err != nil {
			return matrix.Errorf(opSVD, err)
		}
	}

	if m == 0 || n == 0 {
		if err := matrix.IdentityInto(u, m); err != nil {
			return matrix.Errorf(opSVD, err)
		}
		if err := matrix.IdentityInto(vt, n); err != nil {
			return matrix.Errorf(opSVD, err)
		}

		return nil
	}

	o := matrix.NewOptions(opts...)
	if n <= m {
		v := make([]float64, n*n)
		if err := tall(u, v, s, a, m, n, o, opts); err != nil {
			return matrix.Errorf(opSVD, err)
		}
		if err := matrix.TransposeInto(vt, v, n, n); err != nil {
			return matrix.Errorf(opSVD, err)
		}
		return nil
	}

	// Aᵀ = V·Σ·Uᵀ: the left basis of Aᵀ is V, the right one is U.
	at := make([]float64, m*n)
	if err := matrix.TransposeInto(at, a, m, n); err != nil {
		return matrix.Errorf(opSVD, err)
	}
	v := make([]float64, n*n)
	if err := tall(v, u, s, at, n, m, o, opts); err != nil {
		return matrix.Errorf(opSVD, err)
	}
	if err := matrix.TransposeInto(vt, v, n, n); err != nil {
		return matrix.Errorf(opSVD, err)
	}

	return nil
}

// tall decomposes a rows×cols buffer x with rows ≥ cols into its left basis
// (rows×rows), right basis (cols×cols) and singular values (cols).
func tall(left, right, sv, x []float64, rows, cols int, o matrix.Options, opts []matrix.Option) error {
	// Stage 3: Gram matrix and its eigen-decomposition.
	xt := make([]float64, rows*cols)
	if err := matrix.TransposeInto(xt, x, rows, cols); err != nil {
		return err
	}
	g := make([]float64, cols*cols)
	if err := matrix.MulInto(g, xt, x, cols, rows, cols, opts...); err != nil {
		return err
	}
	lam := make([]float64, cols)
	vecs := make([]float64, cols*cols)
	info, err := eigen.DiagonalizeInto(lam, vecs, g, cols, opts...)
	if err != nil {
		return err
	}
	if !info.Converged {
		o.Logger().Debug("svd: gram eigen-decomposition did not converge",
			"cols", cols, "iterations", info.Iterations)
	}

	// σ_j = ‖X·v_j‖ keeps small singular values accurate to ε·σ_max where
	// √λ_j would only reach √ε·σ_max.
	xv := make([]float64, rows*cols)
	if err = matrix.MulInto(xv, x, vecs, rows, cols, cols, opts...); err != nil {
		return err
	}
	norms := make([]float64, cols)
	col := make([]float64, rows)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			col[i] = xv[i*cols+j]
		}
		norms[j] = vector.Norm(col)
	}

	order := make([]int, cols)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return norms[order[i]] > norms[order[j]] })

	cut := norms[order[0]] * float64(rows) * epsilon
	rank := 0
	sorted := make([]float64, rows*cols)
	inv := make([]float64, cols)
	for k, src := range order {
		if norms[src] <= cut {
			sv[k] = 0
		} else {
			sv[k] = norms[src]
			inv[k] = 1 / sv[k]
			rank++
		}
		for i = 0; i < cols; i++ {
			right[i*cols+k] = vecs[i*cols+src]
		}
		for i = 0; i < rows; i++ {
			sorted[i*cols+k] = xv[i*cols+src]
		}
	}

	// Stage 4: partial left basis X·v_j/σ_j for the first rank columns.
	if err = matrix.ScaleColumnsInto(sorted, sorted, rows, cols, inv); err != nil {
		return err
	}
	part := make([]float64, rows*rank)
	if err = matrix.SubmatrixInto(part, sorted, rows, cols, 0, 0, rows, rank); err != nil {
		return err
	}

	if rank < rows {
		o.Logger().Debug("svd: completing orthonormal basis", "rows", rows, "rank", rank)
	}

	return complete(left, part, rows, rank)
}

// complete writes an orthonormal rows×rows basis into left whose first rank
// columns match the columns of part (up to round-off) and whose remaining
// columns span their orthogonal complement.
func complete(left, part []float64, rows, rank int) error {
	q := make([]float64, rows*rows)
	r := make([]float64, rows*rank)
	if err := qr.DecomposeFullInto(q, r, part, rows, rank); err != nil {
		return err
	}
	copy(left, q)
	// Q·R = part: flipping column j of Q by sign(R[j,j]) aligns it with part[:, j].
	var i, j int
	for j = 0; j < rank; j++ {
		if r[j*rank+j] >= 0 {
			continue
		}
		for i = 0; i < rows; i++ {
			left[i*rows+j] = -left[i*rows+j]
		}
	}

	return nil
}
