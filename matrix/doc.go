// Package matrix is the MatrixCore of lvlinalg: row-major storage conventions,
// transpose, matrix multiplication and the numeric policy shared by every
// decomposition package.
//
// The matrix package provides:
//
//   - Flat-buffer kernels (TransposeInto, MulInto, IdentityInto) that read
//     caller buffers with explicit dimensions and write caller-supplied outputs.
//   - Dense, a row-major wrapper with bounds-checked At/Set and a zero-copy
//     RawData bridge to the kernels.
//   - The unified sentinel errors (ErrDimensionMismatch, ErrSingular, ...)
//     and validators used by elimination, qr, eigen and svd.
//   - Functional options (WithPivotTolerance, WithTolerance, WithWorkers, ...)
//     consumed by every package of the engine.
//
// No kernel keeps state between calls and no package-level mutable variable
// exists, so concurrent calls on disjoint buffers are safe without locking.
//
// See example_test.go for usage patterns.
package matrix
