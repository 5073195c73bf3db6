// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// TestValidateBuffer covers negative shapes, empty shapes and length mismatches.
func TestValidateBuffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		buf        []float64
		rows, cols int
		wantErr    error
	}{
		{"exact 2x3", make([]float64, 6), 2, 3, nil},
		{"nil empty", nil, 0, 5, nil},
		{"negative rows", nil, -1, 2, matrix.ErrBadShape},
		{"short", make([]float64, 5), 2, 3, matrix.ErrDimensionMismatch},
		{"long", make([]float64, 7), 2, 3, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBuffer(tc.buf, tc.rows, tc.cols)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(3, 3))
	require.NoError(t, matrix.ValidateSquare(0, 0))
	require.ErrorIs(t, matrix.ValidateSquare(2, 3), matrix.ErrNonSquare)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, -1), matrix.ErrBadShape)
}

func TestValidateDisjoint(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3}
	require.ErrorIs(t, matrix.ValidateDisjoint(a, a), matrix.ErrAliasedBuffers)
	require.ErrorIs(t, matrix.ValidateDisjoint(a[:1], a), matrix.ErrAliasedBuffers)
	require.NoError(t, matrix.ValidateDisjoint(a, []float64{1, 2, 3}))
	require.NoError(t, matrix.ValidateDisjoint(nil, a))

	buf := make([]float64, 10)
	require.ErrorIs(t, matrix.ValidateDisjoint(buf[2:6], buf), matrix.ErrAliasedBuffers, "sub-slice")
	require.ErrorIs(t, matrix.ValidateDisjoint(buf[0:5], buf[4:9]), matrix.ErrAliasedBuffers, "one shared element")
	require.ErrorIs(t, matrix.ValidateDisjoint(buf[5:], buf[:6]), matrix.ErrAliasedBuffers, "tail overlaps head")
	require.NoError(t, matrix.ValidateDisjoint(buf[0:5], buf[5:10]), "adjacent windows")
	require.NoError(t, matrix.ValidateDisjoint(buf[6:], buf[:6]))
}

func TestValidateMulShapes(t *testing.T) {
	t.Parallel()

	a, b := make([]float64, 6), make([]float64, 12)
	require.NoError(t, matrix.ValidateMulShapes(make([]float64, 8), a, b, 2, 3, 4))
	require.ErrorIs(t, matrix.ValidateMulShapes(make([]float64, 8), a, b, 3, 2, 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulShapes(make([]float64, 7), a, b, 2, 3, 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulShapes(b[:8], a, b, 2, 3, 4), matrix.ErrAliasedBuffers)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite(1.5))
	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(-1)), matrix.ErrNaNInf)
}
