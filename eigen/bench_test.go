// SPDX-License-Identifier: MIT
package eigen_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlinalg/eigen"
)

var benchSizes = []int{16, 32, 64}

var sinkV []float64

func BenchmarkDiagonalizeInto_Symmetric(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomSymmetric(n, 1337)
			values, vectors := make([]float64, n), make([]float64, n*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := eigen.DiagonalizeInto(values, vectors, a, n); err != nil {
					b.Fatal(err)
				}
			}
			sinkV = values
		})
	}
}

func BenchmarkDiagonalizeInto_General(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomSquare(n, 4242)
			values, vectors := make([]float64, n), make([]float64, n*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := eigen.DiagonalizeInto(values, vectors, a, n); err != nil {
					b.Fatal(err)
				}
			}
			sinkV = values
		})
	}
}
