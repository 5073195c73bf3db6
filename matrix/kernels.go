// SPDX-License-Identifier: MIT
// Package matrix: flat-buffer kernels of MatrixCore.
//
// Purpose:
//   - Transpose and multiply row-major buffers passed with explicit dimensions.
//   - Write every output element; never assume a zeroed destination.
//   - Never compute in place: outputs must not alias inputs.
//
// Notes:
//   - The *Dense facades (Mul, Transpose) in dense_ops.go delegate here.

package matrix

import "golang.org/x/sync/errgroup"

// ZeroSum is the initial accumulator of every dot-product style reduction.
const ZeroSum = 0.0

// TransposeInto writes aᵀ into dst.
// Implementation:
//   - Stage 1: Validate a (rows×cols), dst (cols×rows) and that dst does not alias a.
//   - Stage 2: Row-major walk over a, scattered writes dst[j*rows+i] = a[i*cols+j].
//
// Behavior highlights:
//   - Every dst element is written exactly once.
//   - In-place transpose (dst == a) is rejected, also for square shapes.
//
// Inputs:
//   - dst : output buffer, len == rows*cols, read as cols×rows.
//   - a   : input buffer, len == rows*cols.
//   - rows, cols: shape of a.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch (buffer lengths), ErrAliasedBuffers.
//
// Determinism:
//   - Fixed i→j traversal.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
//
// AI-Hints:
//   - If only Aᵀx is needed, skip the materialization and index a directly.
func TransposeInto(dst, a []float64, rows, cols int) error {
	if err := ValidateBuffer(a, rows, cols); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := ValidateBuffer(dst, cols, rows); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := ValidateDisjoint(dst, a); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = a[base+j]
		}
	}

	return nil
}

// MulInto computes dst = a × b for row-major a (m×k) and b (k×n).
// Implementation:
//   - Stage 1: ValidateMulShapes (lengths, aliasing); resolve options.
//   - Stage 2: If workers > 1 and m*k*n ≥ threshold, split rows of dst into
//     contiguous strips run by an errgroup; otherwise one serial pass.
//   - Stage 3: Each row i is zeroed then accumulated with an i→t→j loop.
//
// Behavior highlights:
//   - Deterministic: a row is computed by exactly one goroutine in the same
//     t-order as the serial loop, so the parallel result is bit-identical.
//   - dst is fully overwritten (zeroed per row before accumulation).
//   - No zero-skipping: 0·Inf still yields NaN, as IEEE arithmetic dictates.
//
// Inputs:
//   - dst: m×n output, disjoint from a and b.
//   - a, b: m×k and k×n inputs.
//   - opts: WithWorkers / WithParallelThreshold.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrAliasedBuffers.
//
// Complexity:
//   - Time O(m*k*n), Space O(1) besides goroutine stacks.
//
// Notes:
//   - k == 0 yields the m×n zero matrix, matching the empty-sum convention.
//
// AI-Hints:
//   - The i→t→j order streams rows of b, which keeps the inner loop contiguous.
func MulInto(dst, a, b []float64, m, k, n int, opts ...Option) error {
	if err := ValidateMulShapes(dst, a, b, m, k, n); err != nil {
		return matrixErrorf(opMul, err)
	}
	o := NewOptions(opts...)

	workers := min(o.Workers(), m)
	if workers <= 1 || m*k*n < o.ParallelThreshold() {
		mulRows(dst, a, b, k, n, 0, m)
		return nil
	}

	// Fixed strip partition: strip s covers rows [s*size, min((s+1)*size, m)).
	size := (m + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	var start int
	for start = 0; start < m; start += size {
		lo, hi := start, min(start+size, m)
		g.Go(func() error {
			mulRows(dst, a, b, k, n, lo, hi)
			return nil
		})
	}

	return g.Wait()
}

// mulRows computes rows [lo, hi) of dst = a × b.
func mulRows(dst, a, b []float64, k, n, lo, hi int) {
	var (
		i, t, j          int
		rowA, rowB, rowD int
		av               float64
	)
	for i = lo; i < hi; i++ {
		rowA = i * k
		rowD = i * n
		for j = 0; j < n; j++ {
			dst[rowD+j] = ZeroSum
		}
		for t = 0; t < k; t++ {
			av = a[rowA+t]
			rowB = t * n
			for j = 0; j < n; j++ {
				dst[rowD+j] += av * b[rowB+j]
			}
		}
	}
}

// IdentityInto writes the n×n identity into dst.
func IdentityInto(dst []float64, n int) error {
	if err := ValidateBuffer(dst, n, n); err != nil {
		return matrixErrorf(opIdentity, err)
	}
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		dst[i*n+i] = 1
	}

	return nil
}
