// SPDX-License-Identifier: MIT

// Package vector: arithmetic on Vectors of numeric elements.
// Scalar ops are infallible. Binary ops validate their operands in the
// fixed sequence NotNil → Live → Size and never mutate them.

package vector

import "golang.org/x/exp/constraints"

// Number is the element constraint for arithmetic: every type with
// +, -, * and a zero value that behaves as the additive identity.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real narrows Number to ordered, non-complex element types.
type Real interface {
	constraints.Integer | constraints.Float
}

// validateOperands checks a and b for a binary operation.
// Returns ErrNilVector, ErrInvalidSize (moved-from operand) or
// ErrSizeMismatch, in that priority, wrapped with op.
func validateOperands[T any](op string, a, b *Vector[T]) error {
	if a == nil || b == nil {
		return operandErrorf(op, ErrNilVector)
	}
	if a.sz == 0 || b.sz == 0 {
		return operandErrorf(op, ErrInvalidSize)
	}
	if a.sz != b.sz {
		return mismatchErrorf(op, a.sz, b.sz)
	}

	return nil
}

// AddScalar returns a copy of v with s added to every element.
// v must be non-nil; a moved-from v yields another empty Vector.
// Complexity: O(n).
func AddScalar[T Number](v *Vector[T], s T) *Vector[T] {
	res := v.Clone()
	for i := 0; i < res.sz; i++ {
		res.mem[i] += s
	}

	return res
}

// SubScalar returns a copy of v with s subtracted from every element.
// v must be non-nil.
// Complexity: O(n).
func SubScalar[T Number](v *Vector[T], s T) *Vector[T] {
	res := v.Clone()
	for i := 0; i < res.sz; i++ {
		res.mem[i] -= s
	}

	return res
}

// MulScalar returns a copy of v with every element multiplied by s.
// v must be non-nil.
// Complexity: O(n).
func MulScalar[T Number](v *Vector[T], s T) *Vector[T] {
	res := v.Clone()
	for i := 0; i < res.sz; i++ {
		res.mem[i] *= s
	}

	return res
}

// Add returns the element-wise sum a + b.
// Stage 1 (Validate): non-nil, non-empty, equal sizes.
// Stage 2 (Prepare): clone a.
// Stage 3 (Execute): accumulate b into the clone.
// Complexity: O(n) time and memory.
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := validateOperands(opAdd, a, b); err != nil {
		return nil, err
	}
	res := a.Clone()
	for i := 0; i < res.sz; i++ {
		res.mem[i] += b.mem[i]
	}

	return res, nil
}

// Sub returns the element-wise difference a - b.
// Errors: ErrNilVector, ErrInvalidSize (empty operand), ErrSizeMismatch.
// Complexity: O(n) time and memory.
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := validateOperands(opSub, a, b); err != nil {
		return nil, err
	}
	res := a.Clone()
	for i := 0; i < res.sz; i++ {
		res.mem[i] -= b.mem[i]
	}

	return res, nil
}

// Dot returns Σ a[i]*b[i], accumulated from T's zero value in index order.
// Errors: ErrNilVector, ErrInvalidSize (empty operand), ErrSizeMismatch.
// Complexity: O(n) time, O(1) memory.
func Dot[T Number](a, b *Vector[T]) (T, error) {
	var acc T // additive identity
	if err := validateOperands(opDot, a, b); err != nil {
		return acc, err
	}
	for i := 0; i < a.sz; i++ {
		acc += a.mem[i] * b.mem[i]
	}

	return acc, nil
}
