// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for vector tests and benchmarks.

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynamat/vector"
)

// MustNew allocates a Vector of n zero values or fails the test.
func MustNew[T any](tb testing.TB, n int) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.New[T](n)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}

	return v
}

// MustFrom copies vals into a new Vector or fails the test.
func MustFrom[T any](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(vals, len(vals))
	if err != nil {
		tb.Fatalf("FromSlice(len=%d): %v", len(vals), err)
	}

	return v
}

// Iota returns [0, 1, ..., n-1].
func Iota(tb testing.TB, n int) *vector.Vector[int] {
	tb.Helper()
	v := MustNew[int](tb, n)
	for i := 0; i < n; i++ {
		v.Set(i, i)
	}

	return v
}

// fillRand fills v with deterministic pseudo-random values in [-1, 1).
func fillRand(v *vector.Vector[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < v.Size(); i++ {
		v.Set(i, rng.Float64()*2-1)
	}
}
