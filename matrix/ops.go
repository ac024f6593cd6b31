// SPDX-License-Identifier: MIT

// Package matrix: arithmetic on square matrices.
// Scalar scaling, matrix-vector product, and matrix-matrix addition,
// subtraction and multiplication. All functions perform strict fail-fast
// validation, build their result in a fresh value and never mutate their
// operands.

package matrix

import "github.com/katalvlaran/dynamat/vector"

// Scale returns a copy of m with every element multiplied by s.
// Stage 1 (Validate): m must be live.
// Stage 2 (Prepare): clone m.
// Stage 3 (Execute): replace each row with its scalar product.
// Complexity: O(n²) time and memory.
func Scale[T vector.Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateLive(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	res := m.Clone()
	for i := 0; i < res.Size(); i++ {
		res.rows.Ptr(i).MoveAssign(vector.MulScalar(res.Row(i), s))
	}

	return res, nil
}

// MulVec returns the matrix-vector product m·v, where result[i] is the dot
// product of row i with v.
// Errors: ErrNilMatrix, ErrInvalidSize (empty m), ErrSizeMismatch.
// Complexity: O(n²) time, O(n) memory.
func MulVec[T vector.Number](m *Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateVecLen(m, v); err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	n := m.Size()
	res, err := vector.New[T](n)
	if err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	var dot T
	for i := 0; i < n; i++ {
		if dot, err = vector.Dot(m.Row(i), v); err != nil {
			return nil, opErrorf(opMulVec, err)
		}
		res.Set(i, dot)
	}

	return res, nil
}

// Add returns the element-wise sum a + b, computed row by row.
// Errors: ErrNilMatrix, ErrInvalidSize (empty operand), ErrSizeMismatch.
// Complexity: O(n²) time and memory.
func Add[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	res := a.Clone()
	for i := 0; i < res.Size(); i++ {
		row, err := vector.Add(res.Row(i), b.Row(i))
		if err != nil {
			return nil, opErrorf(opAdd, err)
		}
		res.rows.Ptr(i).MoveAssign(row)
	}

	return res, nil
}

// Sub returns the element-wise difference a - b, computed row by row.
// Errors: ErrNilMatrix, ErrInvalidSize (empty operand), ErrSizeMismatch.
// Complexity: O(n²) time and memory.
func Sub[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opSub, err)
	}
	res := a.Clone()
	for i := 0; i < res.Size(); i++ {
		row, err := vector.Sub(res.Row(i), b.Row(i))
		if err != nil {
			return nil, opErrorf(opSub, err)
		}
		res.rows.Ptr(i).MoveAssign(row)
	}

	return res, nil
}

// Mul performs standard matrix multiplication a × b.
// Stage 1 (Validate): both live, equal sizes, every row of length n.
// Stage 2 (Prepare): allocate a zero-filled result.
// Stage 3 (Execute): triple loop i→j→k, res[i][j] += a[i][k]*b[k][j].
// Complexity: O(n³) time and O(n²) memory.
func Mul[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateRows(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateRows(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	n := a.Size()
	res, err := New[T](n)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		ai, ri  *vector.Vector[T]
		cell    *T
	)
	for i = 0; i < n; i++ {
		ai, ri = a.Row(i), res.Row(i)
		for j = 0; j < n; j++ {
			cell = ri.Ptr(j) // starts at the zero value
			for k = 0; k < n; k++ {
				*cell += ai.Get(k) * b.Row(k).Get(j)
			}
		}
	}

	return res, nil
}
