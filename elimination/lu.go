// SPDX-License-Identifier: MIT

package elimination

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Operation tags for error wrapping.
const (
	opFactorize   = "Factorize"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opSolve       = "LU.Solve"
)

// LU is a pivoted factorization P·A = L·U of an n×n matrix.
// L (unit lower) and U (upper) share one row-major buffer; the unit diagonal
// of L is implicit. The factorization owns its buffers: it never aliases the
// input of Factorize.
type LU struct {
	n        int
	lu       []float64 // L strictly below the diagonal, U on and above
	perm     []int     // perm[i] = original row now at position i
	swaps    int       // number of row exchanges
	singular bool      // a pivot fell below tol·scale
	scale    float64   // max|a_ij| of the input
	tol      float64   // relative pivot tolerance used
}

// Factorize computes P·A = L·U with partial pivoting.
// Implementation:
//   - Stage 1: Validate a as n×n; copy it into the working buffer; scale = max|a_ij|.
//   - Stage 2: For each column k pick the row p ≥ k with the largest |a[p,k]|
//     (first one on ties), swap rows k and p, record parity.
//   - Stage 3: If |a[k,k]| ≤ tol·scale mark the factorization singular; eliminate
//     below every non-zero pivot (a zero pivot means a zero sub-column).
//
// Behavior highlights:
//   - Never fails on numeric grounds: singularity is a flag, not an error.
//   - A zero matrix (scale == 0) is singular for every n > 0.
//
// Inputs:
//   - a: n×n row-major buffer (read-only).
//   - opts: matrix.WithPivotTolerance.
//
// Returns:
//   - *LU: the factorization.
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed column order and first-max pivot selection.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Factorize once and call SolveInto per right-hand side; forming the
//     inverse is rarely needed.
func Factorize(a []float64, n int, opts ...matrix.Option) (*LU, error) {
	if err := matrix.ValidateBuffer(a, n, n); err != nil {
		return nil, matrix.Errorf(opFactorize, err)
	}
	o := matrix.NewOptions(opts...)

	f := &LU{
		n:     n,
		lu:    make([]float64, n*n),
		perm:  make([]int, n),
		scale: matrix.MaxAbs(a),
		tol:   o.PivotTolerance(),
	}
	copy(f.lu, a)
	for i := range f.perm {
		f.perm[i] = i
	}

	threshold := f.tol * f.scale
	var (
		i, j, k, p int
		best, v    float64
		pivot, l   float64
		rowK, rowI int
		lu         = f.lu
	)
	for k = 0; k < n; k++ {
		// Stage 2: partial pivoting
		p, best = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if p != k {
			swapRows(lu, n, k, p)
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.swaps++
		}

		// Stage 3: singular check, then elimination
		rowK = k * n
		pivot = lu[rowK+k]
		if math.Abs(pivot) <= threshold {
			f.singular = true
			if pivot == 0 {
				// whole sub-column is zero: nothing to eliminate
				continue
			}
		}
		for i = k + 1; i < n; i++ {
			rowI = i * n
			l = lu[rowI+k] / pivot
			lu[rowI+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[rowI+j] -= l * lu[rowK+j]
			}
		}
	}

	return f, nil
}

// swapRows exchanges rows r1 and r2 of an n-column buffer.
func swapRows(a []float64, n, r1, r2 int) {
	x, y := a[r1*n:(r1+1)*n], a[r2*n:(r2+1)*n]
	for j := 0; j < n; j++ {
		x[j], y[j] = y[j], x[j]
	}
}

// N returns the order of the factorized matrix.
func (f *LU) N() int { return f.n }

// Singular reports whether a pivot fell below the relative tolerance.
func (f *LU) Singular() bool { return f.singular }

// Swaps returns the number of row exchanges performed.
func (f *LU) Swaps() int { return f.swaps }

// Perm returns a copy of the row permutation: row i of P·A is row Perm()[i] of A.
func (f *LU) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// Det returns the determinant: Π u_ii · (−1)^swaps, or 0 when singular.
// An empty (0×0) factorization has determinant 1.
func (f *LU) Det() float64 {
	if f.singular {
		return 0
	}
	det := 1.0
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}
	if f.swaps%2 == 1 {
		det = -det
	}

	return det
}

// LInto writes the unit lower-triangular factor into dst (n×n).
func (f *LU) LInto(dst []float64) error {
	if err := matrix.ValidateBuffer(dst, f.n, f.n); err != nil {
		return matrix.Errorf(opFactorize, err)
	}
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < f.n; j++ {
			switch {
			case j < i:
				dst[i*f.n+j] = f.lu[i*f.n+j]
			case j == i:
				dst[i*f.n+j] = 1
			default:
				dst[i*f.n+j] = 0
			}
		}
	}

	return nil
}

// UInto writes the upper-triangular factor into dst (n×n).
func (f *LU) UInto(dst []float64) error {
	if err := matrix.ValidateBuffer(dst, f.n, f.n); err != nil {
		return matrix.Errorf(opFactorize, err)
	}
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < f.n; j++ {
			if j >= i {
				dst[i*f.n+j] = f.lu[i*f.n+j]
			} else {
				dst[i*f.n+j] = 0
			}
		}
	}

	return nil
}

// SolveInto solves A·x = b into dst.
// Implementation:
//   - Stage 1: Validate lengths; refuse singular factorizations.
//   - Stage 2: y = P·b; forward substitution L·y = y (unit diagonal).
//   - Stage 3: backward substitution U·x = y.
//
// Errors:
//   - matrix.ErrDimensionMismatch, matrix.ErrSingular (dst is filled with NaN).
//
// Notes:
//   - dst may alias b: the permuted copy is taken before any write.
func (f *LU) SolveInto(dst, b []float64) error {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return matrix.Errorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(dst, f.n); err != nil {
		return matrix.Errorf(opSolve, err)
	}
	if f.singular {
		matrix.FillNaN(dst)
		return matrix.Errorf(opSolve, matrix.ErrSingular)
	}
	f.solve(dst, b, 0)

	return nil
}

// SolveRegularizedInto solves A·x = b, replacing every pivot below the
// singularity threshold by ±max(tol·scale, ε·scale) (sign preserved).
// It never fails on numeric grounds, which is what inverse iteration needs:
// for a shift that hits an eigenvalue exactly, the huge solution points
// along the eigenvector.
func (f *LU) SolveRegularizedInto(dst, b []float64) error {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return matrix.Errorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(dst, f.n); err != nil {
		return matrix.Errorf(opSolve, err)
	}
	floor := math.Max(f.tol, epsilon) * f.scale
	if floor == 0 {
		floor = epsilon
	}
	f.solve(dst, b, floor)

	return nil
}

// epsilon is the float64 machine epsilon.
const epsilon = 0x1p-52

// solve runs the permuted forward/backward substitution. Pivots with
// |u_ii| ≤ floor are replaced by ±floor when floor > 0.
func (f *LU) solve(dst, b []float64, floor float64) {
	n := f.n
	y := make([]float64, n)
	var i, k, row int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		y[i] = b[f.perm[i]]
	}
	for i = 0; i < n; i++ {
		row = i * n
		sum = y[i]
		for k = 0; k < i; k++ {
			sum -= f.lu[row+k] * y[k]
		}
		y[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		row = i * n
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[row+k] * y[k]
		}
		pivot = f.lu[row+i]
		if floor > 0 && math.Abs(pivot) <= floor {
			pivot = math.Copysign(floor, pivot)
		}
		y[i] = sum / pivot
	}
	copy(dst, y)
}

// Determinant returns det(A) of an n×n buffer via the pivoted factorization.
// Implementation:
//   - Stage 1: Factorize(a, n).
//   - Stage 2: LU.Det: product of pivots, sign flipped per row swap.
//
// Behavior highlights:
//   - n == 0 yields 1 (empty product).
//   - Near-singular input (pivot ≤ tol·max|a_ij|) yields exactly 0 without error.
//
// Errors:
//   - matrix.ErrBadShape, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(a []float64, n int, opts ...matrix.Option) (float64, error) {
	f, err := Factorize(a, n, opts...)
	if err != nil {
		return 0, matrix.Errorf(opDeterminant, err)
	}

	return f.Det(), nil
}
