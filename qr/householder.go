// SPDX-License-Identifier: MIT

package qr

import (
	"math"

	"github.com/katalvlaran/lvlinalg/vector"
)

// reflector holds H = I − tau·v·vᵀ acting on the index range [off, off+len(v)).
type reflector struct {
	v   []float64
	tau float64
	off int
}

// identity reports whether the reflector was skipped (zero column).
func (h reflector) identity() bool { return h.tau == 0 }

// newReflector builds the Householder reflector that maps x onto α·e₀.
// Implementation:
//   - Stage 1: norm = ‖x‖; a zero column yields the identity (tau = 0).
//   - Stage 2: α = −sign(x₀)·norm; v = x − α·e₀; tau = 2 / vᵀv.
//
// The returned α is the new leading entry of the reflected column.
func newReflector(x []float64, off int) (reflector, float64) {
	v := make([]float64, len(x))
	copy(v, x)
	norm := vector.Norm(v)
	if norm == 0 {
		return reflector{v: v, off: off}, 0
	}
	alpha := -math.Copysign(norm, v[0])
	v[0] -= alpha
	beta, _ := vector.Dot(v, v)
	if beta == 0 {
		return reflector{v: v, off: off}, alpha
	}

	return reflector{v: v, tau: 2 / beta, off: off}, alpha
}

// applyLeft computes A ← H·A on rows [off, off+len(v)) and columns [c0, c1)
// of a row-major buffer with the given stride.
func (h reflector) applyLeft(a []float64, stride, c0, c1 int) {
	if h.identity() {
		return
	}
	var i, j int
	var sum float64
	for j = c0; j < c1; j++ {
		sum = 0
		for i = range h.v {
			sum += h.v[i] * a[(h.off+i)*stride+j]
		}
		if sum == 0 {
			continue
		}
		sum *= h.tau
		for i = range h.v {
			a[(h.off+i)*stride+j] -= sum * h.v[i]
		}
	}
}

// applyRight computes A ← A·H on rows [r0, r1) and columns [off, off+len(v)).
func (h reflector) applyRight(a []float64, stride, r0, r1 int) {
	if h.identity() {
		return
	}
	var i, j, row int
	var sum float64
	for i = r0; i < r1; i++ {
		row = i*stride + h.off
		sum = 0
		for j = range h.v {
			sum += a[row+j] * h.v[j]
		}
		if sum == 0 {
			continue
		}
		sum *= h.tau
		for j = range h.v {
			a[row+j] -= sum * h.v[j]
		}
	}
}

// column copies a[r0:r1, c] of a row-major buffer.
func column(a []float64, stride, r0, r1, c int) []float64 {
	out := make([]float64, r1-r0)
	for i := r0; i < r1; i++ {
		out[i-r0] = a[i*stride+c]
	}

	return out
}

// factor runs Householder QR in place on w (rows×cols) and returns the
// reflectors in application order. On return w holds R on and above the
// diagonal; entries below the diagonal are set to exact zeros.
func factor(w []float64, rows, cols int) []reflector {
	steps := min(rows, cols)
	hs := make([]reflector, 0, steps)
	var i, k int
	for k = 0; k < steps; k++ {
		h, alpha := newReflector(column(w, cols, k, rows, k), k)
		hs = append(hs, h)
		if h.identity() {
			continue
		}
		w[k*cols+k] = alpha
		for i = k + 1; i < rows; i++ {
			w[i*cols+k] = 0
		}
		h.applyLeft(w, cols, k+1, cols)
	}

	return hs
}

// accumulate writes Q = H₀·H₁·…·H_{p−1}·I[:, :qcols] into q (rows×qcols),
// applying the reflectors backward to the leading qcols identity columns.
func accumulate(q []float64, rows, qcols int, hs []reflector) {
	for i := range q {
		q[i] = 0
	}
	for i := 0; i < min(rows, qcols); i++ {
		q[i*qcols+i] = 1
	}
	for k := len(hs) - 1; k >= 0; k-- {
		hs[k].applyLeft(q, qcols, 0, qcols)
	}
}
