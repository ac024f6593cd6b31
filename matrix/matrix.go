// SPDX-License-Identifier: MIT

// Package matrix - square row-major storage composed over vector.Vector.
//
// Purpose:
//   - Store a Size()×Size() matrix as one vector.Vector of row vectors.
//   - Reuse the row vector's storage, copy, move and equality machinery;
//     expose only what is meaningful for a square matrix.
//   - Keep access two-step: select a row (Row unchecked, RowAt checked),
//     then a column inside that row (Get/Set/Ptr unchecked, At/SetAt/PtrAt checked).
//
// Complexity quicksheet:
//   - New/Clone/Assign: O(n²); Move/MoveAssign: O(1); Row/RowAt: O(1).

package matrix

import "github.com/katalvlaran/dynamat/vector"

// MaxMatrixSize is the largest row (and column) count a Matrix may have.
const MaxMatrixSize = 10_000

// Option configures the text codec; see vector.WithSeparator,
// vector.WithRowTerminator and vector.WithVerb.
type Option = vector.Option

// Matrix is a square matrix of Size() rows, each a vector of Size() elements.
// The zero Matrix and a moved-from Matrix are empty (Size()==0); arithmetic
// on them fails with ErrInvalidSize.
type Matrix[T vector.Number] struct {
	rows vector.Vector[vector.Vector[T]] // row-major, every row has len == rows.Size()
}

// New creates a size×size matrix of zero values.
// Implementation:
//   - Stage 1: validate 1 ≤ size ≤ MaxMatrixSize.
//   - Stage 2: default-fill the outer vector with size (empty) rows.
//   - Stage 3: replace every row with a fresh zero-filled vector of length size.
//
// Errors:
//   - ErrInvalidSize (wrapped with the requested size).
//
// Complexity:
//   - Time O(size²), Space O(size²).
func New[T vector.Number](size int) (*Matrix[T], error) {
	if size <= 0 || size > MaxMatrixSize {
		return nil, matrixErrorf(ctxNew, size, ErrInvalidSize)
	}
	rows, err := vector.New[vector.Vector[T]](size)
	if err != nil {
		return nil, matrixErrorf(ctxNew, size, err)
	}
	var row *vector.Vector[T]
	for i := 0; i < size; i++ {
		if row, err = vector.New[T](size); err != nil {
			return nil, matrixErrorf(ctxNew, size, err)
		}
		rows.Ptr(i).MoveAssign(row)
	}

	m := &Matrix[T]{}
	m.rows.MoveAssign(rows)

	return m, nil
}

// FromRows builds a matrix from len(rows) rows of len(rows) elements each.
// The input is copied; the result never aliases it.
//
// Errors:
//   - ErrInvalidSize when len(rows) is outside [1, MaxMatrixSize].
//   - ErrSizeMismatch when some row length differs from len(rows).
func FromRows[T vector.Number](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	m, err := New[T](n)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, n, ErrInvalidSize)
	}
	var row *vector.Vector[T]
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, matrixErrorf(ctxFromRows, i, ErrSizeMismatch)
		}
		if row, err = vector.FromSlice(rows[i], n); err != nil {
			return nil, matrixErrorf(ctxFromRows, i, err)
		}
		m.rows.Ptr(i).MoveAssign(row)
	}

	return m, nil
}

// Clone returns a deep copy of m.
// Every row is cloned explicitly, one by one, so row independence does not
// depend on how the outer vector copies its elements.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{}
	n := m.rows.Size()
	if n == 0 {
		return out
	}
	rows := mustRows[T](n)
	for i := 0; i < n; i++ {
		rows.Ptr(i).MoveAssign(m.rows.Ptr(i).Clone())
	}
	out.rows.MoveAssign(rows)

	return out
}

// mustRows allocates the outer vector for an n that already passed
// validation. A failure means the size invariant is broken.
func mustRows[T vector.Number](n int) *vector.Vector[vector.Vector[T]] {
	rows, err := vector.New[vector.Vector[T]](n)
	if err != nil {
		panic(matrixErrorf(ctxClone, n, err))
	}

	return rows
}

// Move transfers m's rows into a new Matrix in O(1) and leaves m empty.
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{}
	out.rows.MoveAssign(&m.rows)

	return out
}

// Assign makes m an independent copy of src, resizing m when sizes differ.
// Self-assignment is a no-op.
// Complexity: O(n²).
func (m *Matrix[T]) Assign(src *Matrix[T]) {
	m.rows.Assign(&src.rows)
}

// MoveAssign makes m adopt src's rows in O(1); src receives m's previous rows.
func (m *Matrix[T]) MoveAssign(src *Matrix[T]) {
	m.rows.MoveAssign(&src.rows)
}

// Size returns the row count, which is also the column count. O(1).
func (m *Matrix[T]) Size() int { return m.rows.Size() }

// Row returns row i for element access. Unchecked: the caller guarantees
// 0 ≤ i < Size(). Writes through the returned vector change m.
// Do not resize the row (Assign/MoveAssign/Move with another size):
// every row must keep Size() elements, and Mul reports ErrSizeMismatch
// when one does not.
func (m *Matrix[T]) Row(i int) *vector.Vector[T] { return m.rows.Ptr(i) }

// RowAt returns row i or ErrIndexOutOfRange.
// Writes through the returned vector change m; as with Row, the row must
// not be resized.
func (m *Matrix[T]) RowAt(i int) (*vector.Vector[T], error) {
	row, err := m.rows.PtrAt(i)
	if err != nil {
		return nil, matrixErrorf(ctxRowAt, i, err)
	}

	return row, nil
}

// rowsEqual compares two rows element by element.
func rowsEqual[T vector.Number](a, b vector.Vector[T]) bool {
	return vector.Equal(&a, &b)
}

// Equal reports whether a and b have the same size and equal rows.
// It delegates to the outer vector's equality, which compares row by row.
// Complexity: O(n²).
func Equal[T vector.Number](a, b *Matrix[T]) bool {
	return a.rows.EqualFunc(&b.rows, rowsEqual[T])
}

// NotEqual is the negation of Equal.
func NotEqual[T vector.Number](a, b *Matrix[T]) bool {
	return !Equal(a, b)
}
