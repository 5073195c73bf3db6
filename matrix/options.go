// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions resolver used by every kernel package.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - One option type for the whole engine: elimination, qr, eigen and svd all
//     consume ...matrix.Option so a caller configures the engine once.
package matrix

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotTolerance is the relative threshold below which an elimination
	// pivot is treated as zero: |pivot| <= DefaultPivotTolerance * max|a_ij|.
	DefaultPivotTolerance = 1e-12

	// DefaultTolerance is the relative deflation threshold of the eigen solver:
	// a sub-diagonal entry is negligible when |h| <= tol * ‖A‖_F.
	DefaultTolerance = 1e-14

	// DefaultIterationsPerRow scales the eigen iteration cap with the matrix size
	// when no explicit cap is configured: maxIter = DefaultIterationsPerRow * n.
	DefaultIterationsPerRow = 100

	// DefaultMinIterations is the floor of the derived iteration cap.
	DefaultMinIterations = 100
)

// Parallelism policy.
const (
	// DefaultWorkers keeps every kernel single-threaded.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum m*k*n flop volume before MulInto
	// splits output rows across workers. Below it the goroutine overhead wins.
	DefaultParallelThreshold = 64 * 64 * 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid  = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, positive"
	panicMaxIterInvalid   = "matrix: WithMaxIterations: n must be > 0"
	panicWorkersInvalid   = "matrix: WithWorkers: n must be > 0"
	panicThresholdInvalid = "matrix: WithParallelThreshold: n must be >= 0"
	panicLoggerNil        = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; kernels read them through
// the accessor methods.
type Options struct {
	// numeric policy
	pivotTol float64 // >= 0; DefaultPivotTolerance
	tol      float64 // > 0; DefaultTolerance
	maxIter  int     // 0 ⇒ derived from n (see MaxIterations)

	// parallel policy
	workers      int // >= 1; DefaultWorkers
	parThreshold int // >= 0; DefaultParallelThreshold

	// diagnostics
	logger *slog.Logger // never nil after NewOptions
}

// discardLogger is built per NewOptions call; no package-level logger exists.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewOptions resolves opts over the documented defaults.
// Implementation:
//   - Stage 1: start from defaults (no shared mutable default instance).
//   - Stage 2: apply each non-nil Option in order; later options win.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewOptions(opts ...Option) Options {
	o := Options{
		pivotTol:     DefaultPivotTolerance,
		tol:          DefaultTolerance,
		workers:      DefaultWorkers,
		parThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}

// PivotTolerance returns the relative near-singular threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Tolerance returns the relative convergence threshold of iterative solvers.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIterations returns the iteration cap for a problem of size n.
// An explicit WithMaxIterations wins; otherwise the cap grows linearly with n.
func (o Options) MaxIterations(n int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return max(DefaultMinIterations, DefaultIterationsPerRow*n)
}

// Workers returns the number of goroutines MulInto may use.
func (o Options) Workers() int { return o.workers }

// ParallelThreshold returns the m*k*n volume that enables row-strip parallelism.
func (o Options) ParallelThreshold() int { return o.parThreshold }

// Logger returns the diagnostic logger (a discard logger by default).
func (o Options) Logger() *slog.Logger { return o.logger }

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the relative near-singular pivot threshold.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Inputs:
//   - tol: non-negative finite relative tolerance; 0 treats only exact zeros as singular.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - The threshold is relative to max|a_ij| of the input, so scaling A by a
//     constant does not change the singularity verdict.
//
// AI-Hints:
//   - Keep it around 1e-12 for double precision; raise it when inputs come from
//     noisy measurements and near-singular systems must be rejected early.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithTolerance sets the relative deflation threshold of the eigen solver.
// Panics when tol is not finite or not positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the number of QR sweeps of the eigen solver.
// When the cap is reached the best current approximation is returned.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithWorkers lets MulInto split output rows across n goroutines.
// Implementation:
//   - Stage 1: validate n ≥ 1.
//   - Stage 2: return a setter for the worker count.
//
// Behavior highlights:
//   - Results are bit-identical for every n: each output row is produced by a
//     single goroutine with the same accumulation order as the serial loop.
//
// AI-Hints:
//   - runtime.GOMAXPROCS(0) is a sensible value for large products; the
//     ParallelThreshold keeps small products serial anyway.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold overrides the flop volume above which MulInto goes parallel.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parThreshold = n }
}

// WithLogger attaches a structured logger for Debug-level diagnostics
// (eigen non-convergence, SVD basis completion). Nothing is logged by default.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}
