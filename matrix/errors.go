// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped
// with %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynamat/vector"
)

// SHARED SENTINELS
// ----------------
// Rows are vectors, so size and index failures are the vector sentinels
// themselves. errors.Is(err, matrix.ErrSizeMismatch) and
// errors.Is(err, vector.ErrSizeMismatch) are interchangeable.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty (moved-from) -> size mismatch.

var (
	// ErrInvalidSize is returned when a requested size is zero, negative or
	// larger than MaxMatrixSize, and when an operand is an empty
	// (moved-from) Matrix.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates that RowAt (or a row's At) received an
	// index outside [0, Size()).
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates incompatible operand sizes: matrix+matrix,
	// matrix×matrix, matrix×vector, or a non-square input.
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilMatrix indicates that a nil operand was used: a nil *Matrix
	// (receiver or argument) or a nil *vector.Vector passed to MulVec.
	ErrNilMatrix = errors.New("matrix: nil operand")
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromRows  = "FromRows"
	ctxRowAt     = "RowAt"
	ctxFscan     = "Fscan"
	ctxFromDense = "FromDense"
	ctxClone     = "Clone"
)

// Operation name constants for unified error wrapping.
const (
	opScale   = "Scale"
	opMulVec  = "MulVec"
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opToDense = "ToDense"
)

// matrixErrorf wraps err with a method tag and the offending index/size.
func matrixErrorf(method string, n int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, n, err)
}

// opErrorf wraps err with an operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
