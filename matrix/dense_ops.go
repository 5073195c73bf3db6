// SPDX-License-Identifier: MIT
// Package matrix: *Dense facades over the flat kernels plus small numeric
// helpers shared by the decomposition packages.

package matrix

import "math"

// Mul returns a new Dense with a × b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense, opts ...Option) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out := make([]float64, a.r*b.c)
	if err := MulInto(out, a.data, b.data, a.r, a.c, b.c, opts...); err != nil {
		return nil, err
	}

	return wrapDense(a.r, b.c, out), nil
}

// Transpose returns a new Dense holding mᵀ. The input is never mutated.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out := make([]float64, len(m.data))
	if err := TransposeInto(out, m.data, m.r, m.c); err != nil {
		return nil, err
	}

	return wrapDense(m.c, m.r, out), nil
}

// Trace returns Σ a[i,i] of a square n×n buffer.
func Trace(a []float64, n int) (float64, error) {
	if err := ValidateBuffer(a, n, n); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < n; i++ {
		sum += a[i*n+i]
	}

	return sum, nil
}

// FrobeniusNorm returns sqrt(Σ a_ij²) with scaling to avoid premature overflow.
func FrobeniusNorm(a []float64) float64 {
	scale := MaxAbs(a)
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return scale
	}
	sum := ZeroSum
	var v float64
	for _, x := range a {
		v = x / scale
		sum += v * v
	}

	return scale * math.Sqrt(sum)
}

// MaxAbs returns max|a_i| (0 for an empty buffer). NaN propagates.
func MaxAbs(a []float64) float64 {
	best := 0.0
	for _, x := range a {
		if math.IsNaN(x) {
			return x
		}
		if ax := math.Abs(x); ax > best {
			best = ax
		}
	}

	return best
}

// IsSymmetric reports whether the n×n buffer satisfies |a_ij − a_ji| ≤ tol·max(1, max|a|).
// Callers validate the buffer length first.
func IsSymmetric(a []float64, n int, tol float64) bool {
	bound := tol * math.Max(1, MaxAbs(a))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > bound {
				return false
			}
		}
	}

	return true
}

// SubmatrixInto copies the block a[r0:r0+h, c0:c0+w] of a rows×cols buffer into dst (h×w).
func SubmatrixInto(dst, a []float64, rows, cols, r0, c0, h, w int) error {
	if err := ValidateBuffer(a, rows, cols); err != nil {
		return matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateBuffer(dst, h, w); err != nil {
		return matrixErrorf(opSubmatrix, err)
	}
	if r0 < 0 || c0 < 0 || r0+h > rows || c0+w > cols {
		return matrixErrorf(opSubmatrix, ErrOutOfRange)
	}
	for i := 0; i < h; i++ {
		copy(dst[i*w:(i+1)*w], a[(r0+i)*cols+c0:(r0+i)*cols+c0+w])
	}

	return nil
}

// PutSubmatrix writes the h×w buffer src into the block dst[r0:r0+h, c0:c0+w]
// of a rows×cols buffer. It is the inverse of SubmatrixInto.
func PutSubmatrix(dst []float64, rows, cols, r0, c0 int, src []float64, h, w int) error {
	if err := ValidateBuffer(dst, rows, cols); err != nil {
		return matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateBuffer(src, h, w); err != nil {
		return matrixErrorf(opSubmatrix, err)
	}
	if r0 < 0 || c0 < 0 || r0+h > rows || c0+w > cols {
		return matrixErrorf(opSubmatrix, ErrOutOfRange)
	}
	for i := 0; i < h; i++ {
		copy(dst[(r0+i)*cols+c0:(r0+i)*cols+c0+w], src[i*w:(i+1)*w])
	}

	return nil
}

// AllClose reports whether a and b have the same length and
// |a_i − b_i| ≤ atol + rtol·|b_i| for every i.
func AllClose(a, b []float64, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			return false
		}
	}

	return true
}

// FillNaN writes NaN into every element of dst.
func FillNaN(dst []float64) {
	nan := math.NaN()
	for i := range dst {
		dst[i] = nan
	}
}
