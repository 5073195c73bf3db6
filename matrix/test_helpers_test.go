// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// MustDense ALLOCATES an r×c *Dense from row-major values or fails the test.
// Implementation:
//   - Stage 1: Call matrix.NewDenseFrom(r, c, vals).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Notes:
//   - Prefer MustDense when subsequent steps assume non-nil Dense.
func MustDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomBuffer RETURNS r*c deterministic U(-1,1) values for a seed.
//
// Determinism:
//   - Deterministic for a fixed seed.
//
// AI-Hints:
//   - Sweep multiple seeds in table-driven tests to increase coverage.
func RandomBuffer(r, c int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, r*c)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// Poisoned RETURNS a buffer pre-filled with a sentinel so tests can prove that
// kernels write every output element instead of relying on zeroed memory.
func Poisoned(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 12345.678
	}

	return out
}

// naiveMul is the reference triple-sum, i→j→t order.
func naiveMul(a, b []float64, m, k, n int) []float64 {
	out := make([]float64, m*n)
	var i, j, t int
	var sum float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for t = 0; t < k; t++ {
				sum += a[i*k+t] * b[t*n+j]
			}
			out[i*n+j] = sum
		}
	}

	return out
}

// identity RETURNS the n×n identity as a flat buffer.
func identity(n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1
	}

	return out
}

// ExpectPanic FAILS the test when fn returns without panicking.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// ExpectPanicMessage FAILS the test unless fn panics with exactly want.
func ExpectPanicMessage(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("panic message mismatch: got %v, want %q", r, want)
		}
	}()
	fn()
}
