// SPDX-License-Identifier: MIT

package qr

import "github.com/katalvlaran/lvlinalg/matrix"

// Decompose returns the thin factors Q (rows×cols) and R (cols×cols) of m.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (rows < cols).
func Decompose(m *matrix.Dense) (q, r *matrix.Dense, err error) {
	if m == nil {
		return nil, nil, matrix.Errorf(opDecompose, matrix.ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if q, err = matrix.NewDense(rows, cols); err != nil {
		return nil, nil, matrix.Errorf(opDecompose, err)
	}
	if r, err = matrix.NewDense(cols, cols); err != nil {
		return nil, nil, matrix.Errorf(opDecompose, err)
	}
	if err = DecomposeInto(q.RawData(), r.RawData(), m.RawData(), rows, cols); err != nil {
		return nil, nil, err
	}

	return q, r, nil
}
