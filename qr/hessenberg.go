// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// HessenbergInto reduces a square matrix to upper Hessenberg form by an
// orthogonal similarity: A = Z·H·Zᵀ.
// Implementation:
//   - Stage 1: Validate h, z, a as n×n and pairwise disjoint; copy a into h;
//     set z = I.
//   - Stage 2: For k = 0..n−3 build the reflector P_k of h[k+1:n, k], apply it
//     from the left to rows k+1..n−1 and from the right to columns k+1..n−1,
//     and accumulate z ← z·P_k.
//   - Stage 3: Entries below the first sub-diagonal are written as exact zeros.
//
// Behavior highlights:
//   - Symmetric input yields a symmetric tridiagonal h up to round-off.
//   - n ≤ 2 returns h = a and z = I.
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch, matrix.ErrAliasedBuffers.
//
// Complexity:
//   - Time O(n³), Space O(n).
func HessenbergInto(h, z, a []float64, n int) error {
	if err := matrix.ValidateBuffer(a, n, n); err != nil {
		return matrix.Errorf(opHessenberg, err)
	}
	if err := matrix.ValidateBuffer(h, n, n); err != nil {
		return matrix.Errorf(opHessenberg, fmt.Errorf("h: %w", err))
	}
	if err := matrix.ValidateBuffer(z, n, n); err != nil {
		return matrix.Errorf(opHessenberg, fmt.Errorf("z: %w", err))
	}
	if err := disjoint(h, z, a); err != nil {
		return matrix.Errorf(opHessenberg, err)
	}

	copy(h, a)
	if err := matrix.IdentityInto(z, n); err != nil {
		return matrix.Errorf(opHessenberg, err)
	}

	var i, k int
	for k = 0; k+2 < n; k++ {
		p, alpha := newReflector(column(h, n, k+1, n, k), k+1)
		if p.identity() {
			continue
		}
		// left: rows k+1..n-1, columns k+1..n-1 (column k is set directly)
		h[(k+1)*n+k] = alpha
		for i = k + 2; i < n; i++ {
			h[i*n+k] = 0
		}
		p.applyLeft(h, n, k+1, n)
		// right: all rows, columns k+1..n-1
		p.applyRight(h, n, 0, n)
		p.applyRight(z, n, 0, n)
	}

	return nil
}
