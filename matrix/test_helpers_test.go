// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests and benchmarks.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynamat/matrix"
	"github.com/katalvlaran/dynamat/vector"
)

// MustMatrix allocates an n×n zero matrix or fails the test.
func MustMatrix[T vector.Number](tb testing.TB, n int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](n)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// MustRows builds a matrix from literal rows or fails the test.
func MustRows[T vector.Number](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustVec copies vals into a new vector or fails the test.
func MustVec[T vector.Number](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(vals, len(vals))
	if err != nil {
		tb.Fatalf("FromSlice: %v", err)
	}

	return v
}

// ColumnIndexMatrix returns an n×n matrix with m[i][j] = j.
func ColumnIndexMatrix(tb testing.TB, n int) *matrix.Matrix[int] {
	tb.Helper()
	m := MustMatrix[int](tb, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Row(i).Set(j, j)
		}
	}

	return m
}

// Snapshot returns the matrix contents as nested slices.
func Snapshot[T vector.Number](m *matrix.Matrix[T]) [][]T {
	out := make([][]T, m.Size())
	for i := range out {
		out[i] = m.Row(i).Slice()
	}

	return out
}

// fillRand fills m with deterministic pseudo-random values in [-1, 1).
func fillRand(m *matrix.Matrix[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Size(); i++ {
		row := m.Row(i)
		for j := 0; j < row.Size(); j++ {
			row.Set(j, rng.Float64()*2-1)
		}
	}
}
