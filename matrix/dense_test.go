// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense and its facades.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, make([]float64, 6), m.RawData())

	_, err = matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4}
	m := MustDense(t, 2, 2, src)
	src[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewDenseRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseRows([][]float64{{4, 2}, {3, 5}})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2, 3, 5}, m.RawData())

	_, err = matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_RowColClone(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must not share storage")
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, []float64{1, 2.5, 3, 4})
	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}

func TestMulTranspose_Facades(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.RawData())

	g, err := matrix.Mul(a, at)
	require.NoError(t, err)
	assert.Equal(t, []float64{14, 32, 32, 77}, g.RawData())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	ai, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assert.Equal(t, a.RawData(), ai.RawData())
}

func TestTraceNormsSymmetry(t *testing.T) {
	t.Parallel()

	a := []float64{4, 2, 3, 5}
	tr, err := matrix.Trace(a, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, tr)
	_, err = matrix.Trace(a, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.InDelta(t, math.Sqrt(54), matrix.FrobeniusNorm(a), 1e-12)
	assert.Equal(t, 0.0, matrix.FrobeniusNorm(nil))
	// scaling keeps huge entries finite
	assert.InDelta(t, math.Sqrt2*1e200, matrix.FrobeniusNorm([]float64{1e200, 1e200}), 1e188)

	assert.Equal(t, 5.0, matrix.MaxAbs([]float64{-5, 2}))
	assert.True(t, math.IsNaN(matrix.MaxAbs([]float64{1, math.NaN()})))

	assert.False(t, matrix.IsSymmetric(a, 2, 1e-12))
	assert.True(t, matrix.IsSymmetric([]float64{2, 1, 1, 3}, 2, 1e-12))
}

func TestSubmatrixInto(t *testing.T) {
	t.Parallel()

	a := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	dst := Poisoned(4)
	require.NoError(t, matrix.SubmatrixInto(dst, a, 3, 3, 1, 1, 2, 2))
	assert.Equal(t, []float64{5, 6, 8, 9}, dst)
	require.ErrorIs(t, matrix.SubmatrixInto(dst, a, 3, 3, 2, 2, 2, 2), matrix.ErrOutOfRange)

	require.NoError(t, matrix.PutSubmatrix(a, 3, 3, 0, 1, []float64{-1, -2}, 2, 1))
	assert.Equal(t, []float64{1, -1, 3, 4, -2, 6, 7, 8, 9}, a)
	require.ErrorIs(t, matrix.PutSubmatrix(a, 3, 3, 2, 0, dst, 2, 2), matrix.ErrOutOfRange)
}

func TestAllCloseAndFillNaN(t *testing.T) {
	t.Parallel()

	assert.True(t, matrix.AllClose([]float64{1, 2}, []float64{1 + 1e-10, 2}, 0, 1e-9))
	assert.False(t, matrix.AllClose([]float64{1, 2}, []float64{1.1, 2}, 0, 1e-9))
	assert.False(t, matrix.AllClose([]float64{1}, []float64{1, 2}, 0, 1))

	buf := []float64{1, 2, 3}
	matrix.FillNaN(buf)
	for _, v := range buf {
		assert.True(t, math.IsNaN(v))
	}
}
