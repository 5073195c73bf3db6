// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"

	"github.com/katalvlaran/lvlinalg/config"
	"github.com/katalvlaran/lvlinalg/eigen"
	"github.com/katalvlaran/lvlinalg/elimination"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
	"github.com/katalvlaran/lvlinalg/svd"
	"github.com/katalvlaran/lvlinalg/vector"
)

const (
	opDot       = "Dot"
	opNormalize = "Normalize"
)

// Engine runs the catalogue with a fixed numeric policy. The zero value uses
// the matrix defaults. An Engine is immutable and safe for concurrent use.
type Engine struct {
	opts []matrix.Option
}

// NewEngine returns an Engine applying opts to every operation.
func NewEngine(opts ...matrix.Option) *Engine {
	return &Engine{opts: append([]matrix.Option(nil), opts...)}
}

// NewEngineFromConfig validates c and returns an Engine using c.Options().
func NewEngineFromConfig(c *config.Config) (*Engine, error) {
	if c == nil {
		return &Engine{}, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return NewEngine(c.Options()...), nil
}

// Dot returns Σ a[i]·b[i] over n elements.
func (e *Engine) Dot(a, b []float64, n int) (float64, error) {
	if err := matrix.ValidateVecLen(a, n); err != nil {
		return 0, matrix.Errorf(opDot, err)
	}
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return 0, matrix.Errorf(opDot, err)
	}

	return vector.Dot(a, b)
}

// Normalize writes a/‖a‖ into out; a zero vector yields zeros.
func (e *Engine) Normalize(a []float64, n int, out []float64) error {
	if err := matrix.ValidateVecLen(a, n); err != nil {
		return matrix.Errorf(opNormalize, err)
	}
	if err := matrix.ValidateVecLen(out, n); err != nil {
		return matrix.Errorf(opNormalize, err)
	}
	if err := matrix.ValidateDisjoint(out, a); err != nil {
		return matrix.Errorf(opNormalize, err)
	}

	return vector.NormalizeInto(out, a)
}

// MatMul writes the m×n product of a (m×k) and b (k×n) into out.
func (e *Engine) MatMul(a, b []float64, m, k, n int, out []float64) error {
	return matrix.MulInto(out, a, b, m, k, n, e.opts...)
}

// Transpose writes the cols×rows transpose of a into out.
func (e *Engine) Transpose(a []float64, rows, cols int, out []float64) error {
	return matrix.TransposeInto(out, a, rows, cols)
}

// Determinant returns det(a); near-singular input yields 0.
func (e *Engine) Determinant(a []float64, n int) (float64, error) {
	return elimination.Determinant(a, n, e.opts...)
}

// Inverse writes a⁻¹ into out. A near-singular a fills out with NaN and
// returns nil: singularity is reported in-band.
func (e *Engine) Inverse(a []float64, n int, out []float64) error {
	err := elimination.InverseInto(out, a, n, e.opts...)
	if errors.Is(err, matrix.ErrSingular) {
		return nil
	}

	return err
}

// Diagonalize writes the eigenvalues of a, ascending by real part, into vals
// and the matching eigenvectors into the columns of vecs.
// Complex pairs are reported through Info.Imag (see eigen.DiagonalizeInto
// for the column convention).
func (e *Engine) Diagonalize(a []float64, n int, vals, vecs []float64) (eigen.Info, error) {
	info, err := eigen.DiagonalizeInto(vals, vecs, a, n, e.opts...)
	if err != nil {
		return info, err
	}
	if err = eigen.SortByValue(vals, info.Imag, vecs, n); err != nil {
		return info, err
	}

	return info, nil
}

// QRDecompose writes the reduced factors of a with k = min(rows, cols):
// q is rows×k with orthonormal columns and r is k×cols upper trapezoidal.
// Tall and square input use qr.DecomposeInto; wide input (rows < cols) uses
// qr.DecomposeFullInto, whose Q is then square.
func (e *Engine) QRDecompose(a []float64, rows, cols int, q, r []float64) error {
	if rows < cols {
		return qr.DecomposeFullInto(q, r, a, rows, cols)
	}

	return qr.DecomposeInto(q, r, a, rows, cols)
}

// SVDDecompose writes u (rows×rows), s (min(rows,cols)) and vt (cols×cols).
func (e *Engine) SVDDecompose(a []float64, rows, cols int, u, s, vt []float64) error {
	return svd.DecomposeInto(u, s, vt, a, rows, cols, e.opts...)
}
