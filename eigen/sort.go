// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlinalg/matrix"
)

const opSort = "SortByValue"

// SortByValue reorders eigenpairs by ascending real part in place.
// A complex pair (imag[k] ≠ 0, imag[k+1] = −imag[k]) moves as one unit, so
// columns k and k+1 keep their real/imaginary-part meaning. Ties on the real
// part are broken by the larger imaginary part first. imag may be nil when
// every eigenvalue is real.
//
// Errors: matrix.ErrDimensionMismatch on inconsistent lengths.
func SortByValue(values, imag, vectors []float64, n int) error {
	if err := matrix.ValidateVecLen(values, n); err != nil {
		return matrix.Errorf(opSort, err)
	}
	if err := matrix.ValidateBuffer(vectors, n, n); err != nil {
		return matrix.Errorf(opSort, fmt.Errorf("vectors: %w", err))
	}
	if imag == nil {
		imag = make([]float64, n)
	} else if err := matrix.ValidateVecLen(imag, n); err != nil {
		return matrix.Errorf(opSort, fmt.Errorf("imag: %w", err))
	}

	// units: start index and width (1 or 2)
	type unit struct{ at, width int }
	units := make([]unit, 0, n)
	for k := 0; k < n; k++ {
		if imag[k] != 0 && k+1 < n && imag[k+1] == -imag[k] {
			units = append(units, unit{k, 2})
			k++
			continue
		}
		units = append(units, unit{k, 1})
	}
	sort.SliceStable(units, func(i, j int) bool {
		vi, vj := values[units[i].at], values[units[j].at]
		if vi != vj {
			return vi < vj
		}
		return imag[units[i].at] > imag[units[j].at]
	})

	vals := make([]float64, n)
	ims := make([]float64, n)
	vecs := make([]float64, n*n)
	dst := 0
	for _, u := range units {
		for w := 0; w < u.width; w++ {
			src := u.at + w
			vals[dst], ims[dst] = values[src], imag[src]
			for i := 0; i < n; i++ {
				vecs[i*n+dst] = vectors[i*n+src]
			}
			dst++
		}
	}
	copy(values, vals)
	copy(imag, ims)
	copy(vectors, vecs)

	return nil
}
