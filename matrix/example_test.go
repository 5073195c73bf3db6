// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// ExampleMulInto multiplies two row-major buffers into a caller-owned output.
func ExampleMulInto() {
	a := []float64{4, 2, 3, 5}
	dst := make([]float64, 4)
	if err := matrix.MulInto(dst, a, a, 2, 2, 2); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dst)
	// Output:
	// [22 18 27 31]
}

// ExampleTransposeInto shows the shape swap of a 2×3 buffer.
func ExampleTransposeInto() {
	a := []float64{1, 2, 3, 4, 5, 6}
	dst := make([]float64, 6)
	_ = matrix.TransposeInto(dst, a, 2, 3)
	fmt.Println(dst)
	// Output:
	// [1 4 2 5 3 6]
}

// ExampleDense shows the *Dense facade over the same kernels.
func ExampleDense() {
	a, _ := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
	at, _ := matrix.Transpose(a)
	p, _ := matrix.Mul(a, at)
	fmt.Print(p)
	// Output:
	// [5, 11]
	// [11, 25]
}
