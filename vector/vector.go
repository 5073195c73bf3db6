// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when two vectors that must share a length do not.
var ErrLengthMismatch = errors.New("vector: length mismatch")

const (
	opDot       = "Dot"
	opNormalize = "Normalize"
	opAxpy      = "Axpy"
	opSub       = "Sub"
	opScale     = "Scale"
)

// zeroSum is the initial accumulator of every reduction.
const zeroSum = 0.0

func vectorErrorf(tag string, a, b int) error {
	return fmt.Errorf("%s: len %d vs %d: %w", tag, a, b, ErrLengthMismatch)
}

// Dot returns Σ a[i]·b[i].
// Implementation:
//   - Stage 1: Validate len(a) == len(b).
//   - Stage 2: Single forward pass, float64 accumulator.
//
// Behavior highlights:
//   - Empty vectors yield 0.0.
//   - Commutative: Dot(a,b) == Dot(b,a) bit for bit (same pairwise products,
//     same summation order).
//
// Errors:
//   - ErrLengthMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, vectorErrorf(opDot, len(a), len(b))
	}

	return dot(a, b), nil
}

// dot assumes equal lengths.
func dot(a, b []float64) float64 {
	sum := zeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Norm returns the Euclidean norm sqrt(Dot(a, a)).
func Norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

// NormInf returns max|a_i|, 0 for an empty vector.
func NormInf(a []float64) float64 {
	best := 0.0
	for _, v := range a {
		if av := math.Abs(v); av > best || math.IsNaN(av) {
			best = av
		}
	}

	return best
}

// NormalizeInto writes a/‖a‖₂ into dst.
// Implementation:
//   - Stage 1: Validate len(dst) == len(a).
//   - Stage 2: norm = Norm(a). A zero norm writes the zero vector.
//   - Stage 3: dst[i] = a[i] / norm.
//
// Behavior highlights:
//   - The zero vector is not an error: its normalization is the zero vector.
//   - For non-zero finite input, ‖dst‖₂ ≈ 1 within a few ulps.
//   - dst may be a itself; the norm is computed before any write.
//
// Errors:
//   - ErrLengthMismatch.
func NormalizeInto(dst, a []float64) error {
	if len(dst) != len(a) {
		return vectorErrorf(opNormalize, len(dst), len(a))
	}
	norm := Norm(a)
	if norm == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return nil
	}
	for i := range a {
		dst[i] = a[i] / norm
	}

	return nil
}

// Normalize returns a newly allocated unit vector in the direction of a.
func Normalize(a []float64) ([]float64, error) {
	out := make([]float64, len(a))
	if err := NormalizeInto(out, a); err != nil {
		return nil, err
	}

	return out, nil
}

// Axpy computes y += alpha·x in place on y.
func Axpy(alpha float64, x, y []float64) error {
	if len(x) != len(y) {
		return vectorErrorf(opAxpy, len(x), len(y))
	}
	for i := range x {
		y[i] += alpha * x[i]
	}

	return nil
}

// Scale multiplies every element of x by alpha in place.
func Scale(alpha float64, x []float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// ScaleInto writes alpha·x into dst.
func ScaleInto(dst []float64, alpha float64, x []float64) error {
	if len(dst) != len(x) {
		return vectorErrorf(opScale, len(dst), len(x))
	}
	for i := range x {
		dst[i] = alpha * x[i]
	}

	return nil
}

// Sub writes a − b into dst.
func Sub(dst, a, b []float64) error {
	if len(a) != len(b) {
		return vectorErrorf(opSub, len(a), len(b))
	}
	if len(dst) != len(a) {
		return vectorErrorf(opSub, len(dst), len(a))
	}
	for i := range a {
		dst[i] = a[i] - b[i]
	}

	return nil
}
