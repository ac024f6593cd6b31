// SPDX-License-Identifier: MIT

// Package matrix: interop with gonum's dense float64 matrices.
//
// Purpose:
//   - Hand a Matrix to gonum routines (decompositions, norms) and bring
//     square results back.
//   - Both directions copy; neither side aliases the other's storage.

package matrix

import (
	"github.com/katalvlaran/dynamat/vector"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies m into a new n×n *mat.Dense, converting each element to float64.
// Errors: ErrNilMatrix, ErrInvalidSize (empty m).
// Complexity: O(n²).
func ToDense[T vector.Real](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, opErrorf(opToDense, err)
	}
	n := m.Size()
	data := make([]float64, n*n)
	var row *vector.Vector[T]
	for i := 0; i < n; i++ {
		row = m.Row(i)
		for j := 0; j < n; j++ {
			data[i*n+j] = float64(row.Get(j))
		}
	}

	return mat.NewDense(n, n, data), nil
}

// FromDense copies a square gonum matrix into a new Matrix[float64].
//
// Errors:
//   - ErrNilMatrix when d is nil.
//   - ErrSizeMismatch when d is not square.
//   - ErrInvalidSize when d is empty or larger than MaxMatrixSize.
//
// Complexity: O(n²).
func FromDense(d mat.Matrix) (*Matrix[float64], error) {
	if d == nil {
		return nil, matrixErrorf(ctxFromDense, 0, ErrNilMatrix)
	}
	r, c := d.Dims()
	if r != c {
		return nil, matrixErrorf(ctxFromDense, c, ErrSizeMismatch)
	}
	m, err := New[float64](r)
	if err != nil {
		return nil, matrixErrorf(ctxFromDense, r, err)
	}
	var row *vector.Vector[float64]
	for i := 0; i < r; i++ {
		row = m.Row(i)
		for j := 0; j < c; j++ {
			row.Set(j, d.At(i, j))
		}
	}

	return m, nil
}
