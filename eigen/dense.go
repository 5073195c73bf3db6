// SPDX-License-Identifier: MIT

package eigen

import "github.com/katalvlaran/lvlinalg/matrix"

// Result bundles the output of Decompose.
type Result struct {
	Values  []float64     // real parts, ascending
	Imag    []float64     // imaginary parts
	Vectors *matrix.Dense // column j pairs with Values[j]
	Info    Info
}

// Decompose diagonalizes a square *matrix.Dense and sorts the pairs by value.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Decompose(m *matrix.Dense, opts ...matrix.Option) (*Result, error) {
	if m == nil {
		return nil, matrix.Errorf(opDiagonalize, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(m.Rows(), m.Cols()); err != nil {
		return nil, matrix.Errorf(opDiagonalize, err)
	}
	n := m.Rows()
	vecs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, matrix.Errorf(opDiagonalize, err)
	}
	values := make([]float64, n)
	info, err := DiagonalizeInto(values, vecs.RawData(), m.RawData(), n, opts...)
	if err != nil {
		return nil, err
	}
	if err = SortByValue(values, info.Imag, vecs.RawData(), n); err != nil {
		return nil, err
	}

	return &Result{Values: values, Imag: info.Imag, Vectors: vecs, Info: info}, nil
}
