// SPDX-License-Identifier: MIT
package linalg_test

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlinalg/config"
	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// CatalogueSuite checks the catalogue properties through an Engine built
// from the default configuration.
type CatalogueSuite struct {
	suite.Suite
	eng *linalg.Engine
	a   []float64 // [[4,2],[3,5]]
	v   []float64 // [1,2]
}

func (s *CatalogueSuite) SetupTest() {
	eng, err := linalg.NewEngineFromConfig(config.Default())
	s.Require().NoError(err)
	s.eng = eng
	s.a = []float64{4, 2, 3, 5}
	s.v = []float64{1, 2}
}

func TestCatalogueSuite(t *testing.T) {
	suite.Run(t, new(CatalogueSuite))
}

func randomBuffer(r, c int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, r*c)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func identity(n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1
	}

	return out
}

func (s *CatalogueSuite) equal(want, got []float64, tol float64, msg string) {
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		s.T().Fatalf("%s (-want +got):\n%s", msg, diff)
	}
}

func (s *CatalogueSuite) TestDot() {
	d, err := s.eng.Dot(s.v, s.v, 2)
	s.Require().NoError(err)
	s.Equal(5.0, d)

	a, b := randomBuffer(1, 9, 1), randomBuffer(1, 9, 2)
	ab, err := s.eng.Dot(a, b, 9)
	s.Require().NoError(err)
	ba, err := s.eng.Dot(b, a, 9)
	s.Require().NoError(err)
	s.Equal(ab, ba)

	zero, err := s.eng.Dot(nil, nil, 0)
	s.Require().NoError(err)
	s.Equal(0.0, zero)

	_, err = s.eng.Dot(s.v, s.v, 3)
	s.ErrorIs(err, matrix.ErrDimensionMismatch)
}

func (s *CatalogueSuite) TestNormalize() {
	out := []float64{9, 9}
	s.Require().NoError(s.eng.Normalize(s.v, 2, out))
	s.InDelta(0.4472, out[0], 1e-4)
	s.InDelta(0.8944, out[1], 1e-4)
	s.InDelta(1.0, math.Hypot(out[0], out[1]), 1e-9)

	zero := []float64{5, 5, 5}
	s.Require().NoError(s.eng.Normalize(make([]float64, 3), 3, zero))
	s.Equal([]float64{0, 0, 0}, zero)

	s.ErrorIs(s.eng.Normalize(s.v, 2, s.v), matrix.ErrAliasedBuffers)
	s.ErrorIs(s.eng.Normalize(s.v, 2, make([]float64, 3)), matrix.ErrDimensionMismatch)
}

func (s *CatalogueSuite) TestMatMulTranspose() {
	out := make([]float64, 4)
	s.Require().NoError(s.eng.MatMul(s.a, identity(2), 2, 2, 2, out))
	s.Equal(s.a, out)

	a, b := randomBuffer(5, 7, 3), randomBuffer(7, 4, 4)
	got := make([]float64, 20)
	s.Require().NoError(s.eng.MatMul(a, b, 5, 7, 4, got))
	want := make([]float64, 20)
	for i := 0; i < 5; i++ {
		for j := 0; j < 4; j++ {
			for t := 0; t < 7; t++ {
				want[i*4+j] += a[i*7+t] * b[t*4+j]
			}
		}
	}
	s.equal(want, got, 1e-9, "matmul vs triple sum")

	at, att := make([]float64, 35), make([]float64, 35)
	s.Require().NoError(s.eng.Transpose(a, 5, 7, at))
	s.Require().NoError(s.eng.Transpose(at, 7, 5, att))
	s.Equal(a, att)

	s.ErrorIs(s.eng.MatMul(a, b, 5, 7, 5, make([]float64, 25)), matrix.ErrDimensionMismatch)
	s.ErrorIs(s.eng.MatMul(a, a, 5, 7, 4, make([]float64, 20)), matrix.ErrDimensionMismatch)
	s.ErrorIs(s.eng.Transpose(s.a, 2, 2, s.a), matrix.ErrAliasedBuffers)
}

func (s *CatalogueSuite) TestDeterminant() {
	for n := 1; n <= 5; n++ {
		d, err := s.eng.Determinant(identity(n), n)
		s.Require().NoError(err)
		s.Equal(1.0, d)
	}
	d, err := s.eng.Determinant(s.a, 2)
	s.Require().NoError(err)
	s.InDelta(14.0, d, 1e-12)

	d, err = s.eng.Determinant([]float64{1, 2, 2, 4}, 2)
	s.Require().NoError(err)
	s.Equal(0.0, d)

	_, err = s.eng.Determinant(s.a, 3)
	s.ErrorIs(err, matrix.ErrDimensionMismatch)
}

func (s *CatalogueSuite) TestInverse() {
	out := make([]float64, 4)
	s.Require().NoError(s.eng.Inverse([]float64{1, 2, 3, 4}, 2, out))
	s.equal([]float64{-2, 1, 1.5, -0.5}, out, 1e-12, "inverse [[1,2],[3,4]]")

	a := randomBuffer(6, 6, 5)
	inv, prod := make([]float64, 36), make([]float64, 36)
	s.Require().NoError(s.eng.Inverse(a, 6, inv))
	s.Require().NoError(s.eng.MatMul(inv, a, 6, 6, 6, prod))
	for i, v := range prod {
		s.InDelta(identity(6)[i], v, 1e-9)
	}

	// singular input: no error, every entry NaN
	s.Require().NoError(s.eng.Inverse([]float64{1, 2, 2, 4}, 2, out))
	for _, v := range out {
		s.True(math.IsNaN(v))
	}
}

func (s *CatalogueSuite) TestDiagonalize() {
	vals, vecs := make([]float64, 2), make([]float64, 4)
	info, err := s.eng.Diagonalize([]float64{2, 0, 0, 3}, 2, vals, vecs)
	s.Require().NoError(err)
	s.True(info.Converged)
	s.equal([]float64{2, 3}, vals, 1e-12, "diag(2,3)")

	// symmetric: real spectrum, Σλ = trace, Πλ = det
	n := 5
	r := randomBuffer(n, n, 6)
	sym := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym[i*n+j] = r[i*n+j] + r[j*n+i]
		}
	}
	vals, vecs = make([]float64, n), make([]float64, n*n)
	info, err = s.eng.Diagonalize(sym, n, vals, vecs)
	s.Require().NoError(err)
	s.True(info.Real())
	s.True(sort.Float64sAreSorted(vals))

	trace, err := matrix.Trace(sym, n)
	s.Require().NoError(err)
	det, err := s.eng.Determinant(sym, n)
	s.Require().NoError(err)
	sum, prod := 0.0, 1.0
	for _, v := range vals {
		sum += v
		prod *= v
	}
	s.InDelta(trace, sum, 1e-9)
	s.InDelta(det, prod, 1e-9)
}

func (s *CatalogueSuite) TestQRDecompose() {
	a := randomBuffer(6, 4, 7)
	q, r := make([]float64, 24), make([]float64, 16)
	s.Require().NoError(s.eng.QRDecompose(a, 6, 4, q, r))

	qt, qtq, qr := make([]float64, 24), make([]float64, 16), make([]float64, 24)
	s.Require().NoError(s.eng.Transpose(q, 6, 4, qt))
	s.Require().NoError(s.eng.MatMul(qt, q, 4, 6, 4, qtq))
	s.equal(identity(4), qtq, 1e-6, "QᵀQ")
	s.Require().NoError(s.eng.MatMul(q, r, 6, 4, 4, qr))
	s.equal(a, qr, 1e-6, "Q·R")
	for i := 1; i < 4; i++ {
		for j := 0; j < i; j++ {
			s.InDelta(0.0, r[i*4+j], 1e-6)
		}
	}

	s.ErrorIs(s.eng.QRDecompose(a, 6, 4, make([]float64, 24), make([]float64, 24)), matrix.ErrDimensionMismatch)
}

func (s *CatalogueSuite) TestQRDecompose_Wide() {
	a := randomBuffer(4, 6, 8)
	q, r := make([]float64, 16), make([]float64, 24)
	s.Require().NoError(s.eng.QRDecompose(a, 4, 6, q, r))

	qt, qtq, qr := make([]float64, 16), make([]float64, 16), make([]float64, 24)
	s.Require().NoError(s.eng.Transpose(q, 4, 4, qt))
	s.Require().NoError(s.eng.MatMul(qt, q, 4, 4, 4, qtq))
	s.equal(identity(4), qtq, 1e-6, "QᵀQ")
	s.Require().NoError(s.eng.MatMul(q, r, 4, 4, 6, qr))
	s.equal(a, qr, 1e-6, "Q·R")
	for i := 1; i < 4; i++ {
		for j := 0; j < i; j++ {
			s.InDelta(0.0, r[i*6+j], 1e-6)
		}
	}

	// q must be rows×rows when rows < cols
	s.ErrorIs(s.eng.QRDecompose(a, 4, 6, make([]float64, 24), r), matrix.ErrDimensionMismatch)
}

func (s *CatalogueSuite) TestSVDDecompose() {
	for _, sh := range [][2]int{{5, 3}, {3, 5}, {4, 4}} {
		m, n := sh[0], sh[1]
		a := randomBuffer(m, n, int64(m*10+n))
		u, sv, vt := make([]float64, m*m), make([]float64, min(m, n)), make([]float64, n*n)
		s.Require().NoError(s.eng.SVDDecompose(a, m, n, u, sv, vt))

		for j := range sv {
			s.GreaterOrEqual(sv[j], 0.0)
			if j > 0 {
				s.GreaterOrEqual(sv[j-1], sv[j])
			}
		}
		us := make([]float64, m*n)
		for i := 0; i < m; i++ {
			for j := range sv {
				us[i*n+j] = u[i*m+j] * sv[j]
			}
		}
		rec := make([]float64, m*n)
		s.Require().NoError(s.eng.MatMul(us, vt, m, n, n, rec))
		s.equal(a, rec, 1e-9, "U·S·Vᵀ")

		ut, utu := make([]float64, m*m), make([]float64, m*m)
		s.Require().NoError(s.eng.Transpose(u, m, m, ut))
		s.Require().NoError(s.eng.MatMul(ut, u, m, m, m, utu))
		s.equal(identity(m), utu, 1e-9, "UᵀU")
		v, vvt := make([]float64, n*n), make([]float64, n*n)
		s.Require().NoError(s.eng.Transpose(vt, n, n, v))
		s.Require().NoError(s.eng.MatMul(v, vt, n, n, n, vvt))
		s.equal(identity(n), vvt, 1e-9, "V·Vᵀ")
	}
}

func TestNewEngineFromConfig(t *testing.T) {
	t.Parallel()

	bad := config.Default()
	bad.Workers = 0
	if _, err := linalg.NewEngineFromConfig(bad); err == nil {
		t.Fatal("expected validation error for workers = 0")
	}
	eng, err := linalg.NewEngineFromConfig(nil)
	if err != nil || eng == nil {
		t.Fatalf("nil config should give the default engine, got %v", err)
	}
}

// Concurrent calls with disjoint buffers share nothing.
func TestEngine_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	eng := linalg.NewEngine(matrix.WithWorkers(2), matrix.WithParallelThreshold(0))
	a := randomBuffer(16, 16, 9)
	want := make([]float64, 256)
	if err := linalg.MatMul(a, a, 16, 16, 16, want); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 8)
	outs := make([][]float64, 8)
	for g := range outs {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			outs[g] = make([]float64, 256)
			errs[g] = eng.MatMul(a, a, 16, 16, 16, outs[g])
		}(g)
	}
	wg.Wait()
	for g := range outs {
		if errs[g] != nil {
			t.Fatal(errs[g])
		}
		if diff := cmp.Diff(want, outs[g]); diff != "" {
			t.Fatalf("goroutine %d (-want +got):\n%s", g, diff)
		}
	}
}
