// Package vector provides the VectorOps of lvlinalg: dot product, Euclidean
// norm and normalization over plain []float64 values.
//
// The package is a leaf: it imports nothing from the rest of the engine and
// reports length problems through its own sentinel, ErrLengthMismatch.
// Inputs are never mutated; the *Into variants write every element of a
// caller-supplied destination.
package vector
