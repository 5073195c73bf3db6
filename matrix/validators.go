// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for buffer/shape validation.
//   - Keep kernels minimal by delegating length/shape/aliasing checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap once more with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing (except the
//     error value on failure).
//
// AI-Hints:
//   - Call ValidateBuffer for every flat input and output of a kernel before
//     touching memory: it replaces the absence of bounds checking at a raw
//     pointer boundary by an explicit length contract.
//   - Call ValidateDisjoint for every (output, input) pair.

package matrix

import (
	"fmt"
	"math"
	"unsafe"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are non-negative.
// Empty shapes (0×n, n×0) are legal: kernels treat them as no-ops.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateBuffer ensures buf holds exactly rows*cols elements.
//
// Inputs: flat row-major buffer, declared shape.
// Errors: ErrBadShape for negative dims, ErrDimensionMismatch for a length mismatch.
// Complexity: O(1).
// AI-Hints: a nil slice is valid for an empty shape, so no separate nil check.
func ValidateBuffer(buf []float64, rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return validatorErrorf("ValidateBuffer", err)
	}
	if len(buf) != rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateBuffer: len=%d want %dx%d", len(buf), rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if n < 0 {
		return validatorErrorf("ValidateVecLen", ErrBadShape)
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len=%d want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks rows == cols.
//
// Errors: ErrNonSquare (which callers may also match as a dimension problem
// through the wrapping chain of their operation).
// Complexity: O(1).
func ValidateSquare(rows, cols int) error {
	if rows != cols {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", rows, cols), ErrNonSquare)
	}

	return nil
}

// ValidateDisjoint rejects an output buffer whose element range overlaps an
// input buffer: the same slice passed twice, a sub-slice of the input, or two
// windows of one backing array that share an element. Empty buffers never
// alias.
//
// Complexity: O(1); only the first and last element addresses are compared.
func ValidateDisjoint(dst, src []float64) error {
	if len(dst) == 0 || len(src) == 0 {
		return nil
	}
	d0, d1 := span(dst)
	s0, s1 := span(src)
	if d0 <= s1 && s0 <= d1 {
		return validatorErrorf("ValidateDisjoint", ErrAliasedBuffers)
	}

	return nil
}

// span returns the addresses of the first and last element of a non-empty buffer.
func span(buf []float64) (uintptr, uintptr) {
	return uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&buf[len(buf)-1]))
}

// ValidateMulShapes is the composite check of MulInto:
// a is m×k, b is k×n, dst is m×n, dst disjoint from a and b.
func ValidateMulShapes(dst, a, b []float64, m, k, n int) error {
	if err := ValidateBuffer(a, m, k); err != nil {
		return validatorErrorf("ValidateMulShapes: a", err)
	}
	if err := ValidateBuffer(b, k, n); err != nil {
		return validatorErrorf("ValidateMulShapes: b", err)
	}
	if err := ValidateBuffer(dst, m, n); err != nil {
		return validatorErrorf("ValidateMulShapes: dst", err)
	}
	if err := ValidateDisjoint(dst, a); err != nil {
		return validatorErrorf("ValidateMulShapes", err)
	}
	if err := ValidateDisjoint(dst, b); err != nil {
		return validatorErrorf("ValidateMulShapes", err)
	}

	return nil
}

// ValidateFinite reports ErrNaNInf when v is NaN or ±Inf.
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}
