// SPDX-License-Identifier: MIT

package elimination

import "github.com/katalvlaran/lvlinalg/matrix"

// Det returns the determinant of a square *matrix.Dense.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Det(m *matrix.Dense, opts ...matrix.Option) (float64, error) {
	if m == nil {
		return 0, matrix.Errorf(opDeterminant, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(m.Rows(), m.Cols()); err != nil {
		return 0, matrix.Errorf(opDeterminant, err)
	}

	return Determinant(m.RawData(), m.Rows(), opts...)
}

// Inverse returns a new *matrix.Dense holding m⁻¹.
// On matrix.ErrSingular the NaN-filled matrix is returned together with the error.
func Inverse(m *matrix.Dense, opts ...matrix.Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, matrix.Errorf(opInverse, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(m.Rows(), m.Cols()); err != nil {
		return nil, matrix.Errorf(opInverse, err)
	}
	n := m.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, matrix.Errorf(opInverse, err)
	}
	err = InverseInto(out.RawData(), m.RawData(), n, opts...)

	return out, err
}
