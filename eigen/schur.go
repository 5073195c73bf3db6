// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
)

const (
	// exceptionalEvery is the number of sweeps without deflation after which
	// an exceptional shift breaks a possible cycle.
	exceptionalEvery = 10
	// exceptionalFactor scales the sub-diagonal magnitude of the exceptional shift.
	exceptionalFactor = 0.75
)

// schur is the working state of one QR iteration: it owns h and z and writes
// values and imaginary parts as windows deflate.
type schur struct {
	n         int
	h, z      []float64 // quasi-triangular iterate and accumulated transform
	values    []float64
	imag      []float64
	thresh    float64 // absolute deflation threshold tol·‖A‖_F
	maxIter   int
	iter      int
	hi        int // last unreduced row when the cap was hit, −1 on convergence
	symmetric bool
}

// run iterates until every window deflated (true) or the sweep cap is hit.
// Implementation:
//   - Stage 1: From hi scan the sub-diagonal upwards to find the start lo of
//     the unreduced window, zeroing the negligible entry that splits it.
//   - Stage 2: A 1×1 window isolates an eigenvalue; a 2×2 window is either
//     triangularized by a rotation (real roots) or kept as a complex block.
//   - Stage 3: Otherwise one shifted sweep on [lo, hi].
func (s *schur) run() (bool, error) {
	n, h := s.n, s.h
	var (
		hi       = n - 1
		lo       int
		stagnant int
	)
	for hi >= 0 {
		lo = hi
		for lo > 0 && math.Abs(h[lo*n+lo-1]) > s.thresh {
			lo--
		}
		if lo > 0 {
			h[lo*n+lo-1] = 0
		}

		switch hi - lo {
		case 0:
			s.values[hi] = h[hi*n+hi]
			hi--
			stagnant = 0
			continue
		case 1:
			s.deflatePair(lo)
			hi -= 2
			stagnant = 0
			continue
		}

		if s.iter >= s.maxIter {
			break
		}
		exceptional := stagnant > 0 && stagnant%exceptionalEvery == 0
		if err := s.sweep(lo, hi, exceptional); err != nil {
			return false, err
		}
		s.iter++
		stagnant++
	}

	s.hi = hi
	for i := 0; i <= hi; i++ {
		s.values[i] = h[i*n+i]
	}

	return hi < 0, nil
}

// deflatePair isolates the 2×2 window [lo, lo+1].
// Real roots: a rotation G whose first column is an eigenvector of the block
// makes Gᵀ·B·G upper triangular; it is applied to the full rows, columns and Z.
// Complex roots p ± iq: the block stays as it is.
func (s *schur) deflatePair(lo int) {
	n, h := s.n, s.h
	hi := lo + 1
	a, b := h[lo*n+lo], h[lo*n+hi]
	c, d := h[hi*n+lo], h[hi*n+hi]
	p := 0.5 * (a + d)
	half := 0.5 * (a - d)
	disc := half*half + b*c
	if disc < 0 && s.symmetric {
		disc = 0
	}
	if disc < 0 {
		q := math.Sqrt(-disc)
		s.values[lo], s.values[hi] = p, p
		s.imag[lo], s.imag[hi] = q, -q
		return
	}
	if c == 0 {
		s.values[lo], s.values[hi] = a, d
		return
	}

	l1 := p + math.Copysign(math.Sqrt(disc), half)
	v0, v1 := b, l1-a
	if w0, w1 := l1-d, c; math.Hypot(w0, w1) > math.Hypot(v0, v1) {
		v0, v1 = w0, w1
	}
	nrm := math.Hypot(v0, v1)
	s.rotate(lo, hi, v0/nrm, v1/nrm)
	h[hi*n+lo] = 0
	s.values[lo], s.values[hi] = h[lo*n+lo], h[hi*n+hi]
}

// rotate applies the similarity Gᵀ·H·G with G = [[cs, −sn], [sn, cs]] acting on
// indices lo and hi, and accumulates Z ← Z·G.
func (s *schur) rotate(lo, hi int, cs, sn float64) {
	n, h, z := s.n, s.h, s.z
	var j int
	var x, y float64
	for j = lo; j < n; j++ {
		x, y = h[lo*n+j], h[hi*n+j]
		h[lo*n+j] = cs*x + sn*y
		h[hi*n+j] = -sn*x + cs*y
	}
	for j = 0; j <= hi; j++ {
		x, y = h[j*n+lo], h[j*n+hi]
		h[j*n+lo] = cs*x + sn*y
		h[j*n+hi] = -sn*x + cs*y
	}
	for j = 0; j < n; j++ {
		x, y = z[j*n+lo], z[j*n+hi]
		z[j*n+lo] = cs*x + sn*y
		z[j*n+hi] = -sn*x + cs*y
	}
}

// sweep performs one shifted QR step on the window [lo, hi] (size ≥ 3).
// Implementation:
//   - Stage 1: Copy the window into blk; read the trailing 2×2 [[a, b], [c, d]].
//   - Stage 2: Single shift μ (Wilkinson, or exceptional):
//     blk − μI = QR, blk ← RQ + μI, W = Q.
//     Double shift (complex trailing roots, sum s and product t):
//     blk² − s·blk + t·I = QR, blk ← Qᵀ·blk·Q restored to Hessenberg form by
//     qr.HessenbergInto (blk = Zb·Hb·Zbᵀ), W = Q·Zb.
//   - Stage 3: Write the window back and apply W to the rows right of the
//     window, the columns above it and the columns of Z.
func (s *schur) sweep(lo, hi int, exceptional bool) error {
	n, h := s.n, s.h
	m := hi - lo + 1
	blk := make([]float64, m*m)
	if err := matrix.SubmatrixInto(blk, h, n, n, lo, lo, m, m); err != nil {
		return err
	}
	a, b := blk[(m-2)*m+m-2], blk[(m-2)*m+m-1]
	c, d := blk[(m-1)*m+m-2], blk[(m-1)*m+m-1]
	half := 0.5 * (a - d)
	disc := half*half + b*c

	q := make([]float64, m*m)
	r := make([]float64, m*m)
	next := make([]float64, m*m)
	var w []float64

	if exceptional || disc >= 0 {
		var mu float64
		if exceptional {
			mu = d + exceptionalFactor*(math.Abs(c)+math.Abs(blk[(m-2)*m+m-3]))
		} else {
			mu = wilkinson(b, c, d, half, disc)
		}
		if err := matrix.ShiftDiagonalInto(blk, blk, m, mu); err != nil {
			return err
		}
		if err := qr.DecomposeInto(q, r, blk, m, m); err != nil {
			return err
		}
		if err := matrix.MulInto(next, r, q, m, m, m); err != nil {
			return err
		}
		if err := matrix.ShiftDiagonalInto(next, next, m, -mu); err != nil {
			return err
		}
		w = q
	} else {
		var err error
		if next, w, err = doubleShift(blk, m, a+d, a*d-b*c); err != nil {
			return err
		}
	}

	if err := matrix.PutSubmatrix(h, n, n, lo, lo, next, m, m); err != nil {
		return err
	}

	return s.applyOutside(lo, hi, w)
}

// wilkinson returns the eigenvalue of [[a, b], [c, d]] closest to d, in the
// cancellation-free form d − bc / (half + sign(half)·√disc).
func wilkinson(b, c, d, half, disc float64) float64 {
	den := half + math.Copysign(math.Sqrt(disc), half)
	if den == 0 {
		return d
	}

	return d - b*c/den
}

// doubleShift runs one explicit double-shift step on the m×m window blk with
// shift sum s and product t. It returns the new Hessenberg window and the
// orthogonal transform W with new = Wᵀ·blk·W.
func doubleShift(blk []float64, m int, s, t float64) (next, w []float64, err error) {
	sq := make([]float64, m*m)
	if err = matrix.MulInto(sq, blk, blk, m, m, m); err != nil {
		return nil, nil, err
	}
	for i := range sq {
		sq[i] -= s * blk[i]
	}
	for i := 0; i < m; i++ {
		sq[i*m+i] += t
	}

	q := make([]float64, m*m)
	r := make([]float64, m*m)
	if err = qr.DecomposeInto(q, r, sq, m, m); err != nil {
		return nil, nil, err
	}

	// qᵀ·blk·q
	qt := make([]float64, m*m)
	tmp := make([]float64, m*m)
	sim := make([]float64, m*m)
	if err = matrix.TransposeInto(qt, q, m, m); err != nil {
		return nil, nil, err
	}
	if err = matrix.MulInto(tmp, qt, blk, m, m, m); err != nil {
		return nil, nil, err
	}
	if err = matrix.MulInto(sim, tmp, q, m, m, m); err != nil {
		return nil, nil, err
	}

	next = make([]float64, m*m)
	zb := make([]float64, m*m)
	if err = qr.HessenbergInto(next, zb, sim, m); err != nil {
		return nil, nil, err
	}
	w = make([]float64, m*m)
	if err = matrix.MulInto(w, q, zb, m, m, m); err != nil {
		return nil, nil, err
	}

	return next, w, nil
}

// applyOutside extends the window similarity Wᵀ·H·W to the rest of H and to Z.
func (s *schur) applyOutside(lo, hi int, w []float64) error {
	n, m := s.n, hi-lo+1

	// rows lo..hi, columns right of the window: Wᵀ·H[lo:hi+1, hi+1:]
	if cols := n - hi - 1; cols > 0 {
		wt := make([]float64, m*m)
		if err := matrix.TransposeInto(wt, w, m, m); err != nil {
			return err
		}
		if err := mulBlock(s.h, n, lo, hi+1, m, cols, wt, true); err != nil {
			return err
		}
	}
	// columns lo..hi, rows above the window: H[:lo, lo:hi+1]·W
	if lo > 0 {
		if err := mulBlock(s.h, n, 0, lo, lo, m, w, false); err != nil {
			return err
		}
	}

	// Z[:, lo:hi+1]·W
	return mulBlock(s.z, n, 0, lo, n, m, w, false)
}

// mulBlock replaces the rows×cols block of the n×n buffer x at (r0, c0) by
// f·block (left) or block·f (right), where f is square.
func mulBlock(x []float64, n, r0, c0, rows, cols int, f []float64, left bool) error {
	blk := make([]float64, rows*cols)
	out := make([]float64, rows*cols)
	if err := matrix.SubmatrixInto(blk, x, n, n, r0, c0, rows, cols); err != nil {
		return err
	}
	var err error
	if left {
		err = matrix.MulInto(out, f, blk, rows, rows, cols)
	} else {
		err = matrix.MulInto(out, blk, f, rows, cols, cols)
	}
	if err != nil {
		return err
	}

	return matrix.PutSubmatrix(x, n, n, r0, c0, out, rows, cols)
}
