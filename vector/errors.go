// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public functions
// return these sentinels (optionally wrapped with call-site context) and
// tests MUST check them via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "vector: ..." for easy grepping. When
// context is attached, it is attached with %w so errors.Is keeps matching.

var (
	// ErrInvalidSize is returned when a requested size is zero, negative
	// or larger than MaxVectorSize.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrIndexOutOfRange indicates that a checked accessor received an
	// index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates that the operands of a binary operation
	// have different sizes.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a binary operation received a nil operand.
	ErrNilVector = errors.New("vector: nil operand")
)

// Method tags used in error wrappers.
const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxSetAt     = "SetAt"
	ctxPtrAt     = "PtrAt"
	ctxFscan     = "Fscan"
)

// Operation tags used in error wrappers.
const (
	opAdd = "Add"
	opSub = "Sub"
	opDot = "Dot"
)

// vectorErrorf wraps err with the method name and the offending index/size.
func vectorErrorf(method string, n int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, n, err)
}

// operandErrorf wraps err with the operation name.
func operandErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// mismatchErrorf wraps ErrSizeMismatch with both operand sizes.
func mismatchErrorf(op string, a, b int) error {
	return fmt.Errorf("%s(%d vs %d): %w", op, a, b, ErrSizeMismatch)
}
