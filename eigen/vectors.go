// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlinalg/elimination"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vector"
)

// refineSteps is the number of inverse-iteration solves per eigenvector.
// The shifts come from a converged Schur form, so two solves already reach
// working precision.
const refineSteps = 2

// refineVectors fills vectors for a non-symmetric input by inverse iteration
// on A − λI, starting from the Schur vector of the same position.
// Implementation:
//   - Real λ_k: factor A − λ_k·I once, solve with the regularized LU
//     (near-zero pivots are floored, never rejected), normalize, repeat.
//   - Complex pair λ = p ± iq at (k, k+1): the same on the real 2n×2n form
//     [[A − pI, qI], [−qI, A − pI]]·[xr; xi] = [br; bi]; columns k and k+1
//     receive xr and xi of the eigenvector of p + iq.
func refineVectors(vectors, a []float64, s *schur, o matrix.Options) error {
	n := s.n
	start := make([]float64, n)
	var k int
	for k = 0; k < n; k++ {
		for i := 0; i < n; i++ {
			start[i] = s.z[i*n+k]
		}
		if s.imag[k] == 0 {
			x, err := realVector(a, n, s.values[k], start, o)
			if err != nil {
				return err
			}
			putColumn(vectors, n, k, x)
			canonicalColumn(vectors, n, k)
			continue
		}
		if k+1 >= n {
			// unpaired imaginary part cannot come out of deflatePair
			putColumn(vectors, n, k, start)
			continue
		}
		xr, xi, err := complexVector(a, n, s.values[k], math.Abs(s.imag[k]), start, o)
		if err != nil {
			return err
		}
		if s.imag[k] < 0 {
			// column pair is ordered (p − iq, p + iq): store the conjugate
			vector.Scale(-1, xi)
		}
		putColumn(vectors, n, k, xr)
		putColumn(vectors, n, k+1, xi)
		k++
	}

	return nil
}

// realVector runs inverse iteration for the real eigenvalue lambda.
func realVector(a []float64, n int, lambda float64, start []float64, o matrix.Options) ([]float64, error) {
	shifted := make([]float64, n*n)
	if err := matrix.ShiftDiagonalInto(shifted, a, n, lambda); err != nil {
		return nil, err
	}
	f, err := elimination.Factorize(shifted, n, matrix.WithPivotTolerance(o.PivotTolerance()))
	if err != nil {
		return nil, err
	}

	x := make([]float64, n)
	copy(x, start)
	for step := 0; step < refineSteps; step++ {
		if err = f.SolveRegularizedInto(x, x); err != nil {
			return nil, err
		}
		if !finite(x) {
			copy(x, start)
			break
		}
		_ = vector.NormalizeInto(x, x)
	}

	return x, nil
}

// complexVector runs inverse iteration for λ = p + iq on the real embedding.
func complexVector(a []float64, n int, p, q float64, start []float64, o matrix.Options) (xr, xi []float64, err error) {
	m := 2 * n
	k := make([]float64, m*m)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			k[i*m+j] = a[i*n+j]
			k[(n+i)*m+n+j] = a[i*n+j]
		}
		k[i*m+i] -= p
		k[(n+i)*m+n+i] -= p
		k[i*m+n+i] = q
		k[(n+i)*m+i] = -q
	}
	f, err := elimination.Factorize(k, m, matrix.WithPivotTolerance(o.PivotTolerance()))
	if err != nil {
		return nil, nil, err
	}

	x := make([]float64, m)
	copy(x, start)
	for step := 0; step < refineSteps; step++ {
		if err = f.SolveRegularizedInto(x, x); err != nil {
			return nil, nil, err
		}
		if !finite(x) {
			for i = range x {
				x[i] = 0
			}
			copy(x, start)
			break
		}
		_ = vector.NormalizeInto(x, x)
	}
	xr, xi = x[:n], x[n:]
	canonicalPhase(xr, xi)

	return xr, xi, nil
}

// canonicalPhase rotates xr + i·xi so that its largest component (first one on
// ties) is real and positive, then rescales the pair to unit norm.
func canonicalPhase(xr, xi []float64) {
	best := 0.0
	for i := range xr {
		best = math.Max(best, math.Hypot(xr[i], xi[i]))
	}
	if !(best > 0) {
		return
	}
	at := 0
	for i := range xr {
		if math.Hypot(xr[i], xi[i]) >= best*(1-tieTolerance) {
			at = i
			break
		}
	}
	best = math.Hypot(xr[at], xi[at])
	rot := cmplx.Conj(complex(xr[at], xi[at])) / complex(best, 0)
	var v complex128
	for i := range xr {
		v = complex(xr[i], xi[i]) * rot
		xr[i], xi[i] = real(v), imag(v)
	}
	xi[at] = 0
	nrm := math.Hypot(vector.Norm(xr), vector.Norm(xi))
	if nrm > 0 {
		vector.Scale(1/nrm, xr)
		vector.Scale(1/nrm, xi)
	}
}

// tieTolerance is the relative gap under which two component magnitudes count
// as tied when picking the sign or phase reference.
const tieTolerance = 1e-9

// canonicalColumn normalizes column j of an n×n buffer to unit length with its
// largest-magnitude component positive (first one on ties).
func canonicalColumn(v []float64, n, j int) {
	var i int
	sum, best := 0.0, 0.0
	for i = 0; i < n; i++ {
		x := v[i*n+j]
		sum += x * x
		best = math.Max(best, math.Abs(x))
	}
	if sum == 0 || math.IsNaN(sum) {
		return
	}
	sign := 1.0
	for i = 0; i < n; i++ {
		if x := v[i*n+j]; math.Abs(x) >= best*(1-tieTolerance) {
			sign = math.Copysign(1, x)
			break
		}
	}
	scale := sign / math.Sqrt(sum)
	for i = 0; i < n; i++ {
		v[i*n+j] *= scale
	}
}

func putColumn(v []float64, n, j int, x []float64) {
	for i := 0; i < n; i++ {
		v[i*n+j] = x[i]
	}
}

func finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
