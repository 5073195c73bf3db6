// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared by every kernel of the engine.
// All kernels return these sentinels (wrapped with an operation tag) and tests
// check them via errors.Is. No kernel panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Kernels wrap with matrixErrorf(opTag, ErrX); callers still match via errors.Is.
//
// ERROR PRIORITY (checked in this order by the validators):
// nil buffer -> shape -> buffer length -> aliasing -> numeric conditions.

var (
	// ErrBadShape is returned when requested shape is invalid (e.g., r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a buffer whose length != rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAliasedBuffers signals that an output buffer shares storage with an input.
	// Kernels never compute in place.
	ErrAliasedBuffers = errors.New("matrix: output aliases input")

	// ErrSingular is returned when elimination meets a pivot below tolerance.
	// The output is still fully written (NaN sentinels) before this is returned.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (option values, configuration).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidOption marks a configuration value outside its documented domain.
	ErrInvalidOption = errors.New("matrix: invalid option value")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opIdentity  = "Identity"
	opTrace     = "Trace"
	opSubmatrix = "Submatrix"
	opNewDense  = "NewDense"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Errorf is the exported form of the tag wrapper, used by the sibling
// packages (elimination, qr, eigen, svd) so every operation in the engine
// reports errors with the same "<Op>: <sentinel>" shape.
func Errorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}
