// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep arithmetic kernels minimal by delegating nil/size checks here.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Live → Size.
//  - Every check is O(1) except ValidateRows (O(n)); none allocates on success.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynamat/vector"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T vector.Number](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateLive ensures m is non-nil and still owns its rows (it was not
// moved from). Returns ErrNilMatrix or ErrInvalidSize.
func ValidateLive[T vector.Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.rows.Size() == 0 {
		return ErrInvalidSize
	}

	return nil
}

// ValidateSameSize ensures a and b are live and have equal sizes.
// Returns ErrNilMatrix, ErrInvalidSize or ErrSizeMismatch (in that priority).
func ValidateSameSize[T vector.Number](a, b *Matrix[T]) error {
	if err := ValidateLive(a); err != nil {
		return err
	}
	if err := ValidateLive(b); err != nil {
		return err
	}
	if a.Size() != b.Size() {
		return fmt.Errorf("size %d vs %d: %w", a.Size(), b.Size(), ErrSizeMismatch)
	}

	return nil
}

// ValidateVecLen ensures m is live and v has exactly m.Size() elements.
func ValidateVecLen[T vector.Number](m *Matrix[T], v *vector.Vector[T]) error {
	if err := ValidateLive(m); err != nil {
		return err
	}
	if v == nil {
		return ErrNilMatrix
	}
	if v.Size() != m.Size() {
		return fmt.Errorf("size %d vs vector %d: %w", m.Size(), v.Size(), ErrSizeMismatch)
	}

	return nil
}

// ValidateRows ensures m is live and every row still has Size() elements.
// A row resized through Row(i).Assign breaks that; ErrSizeMismatch names
// the first offending row. Complexity: O(n).
func ValidateRows[T vector.Number](m *Matrix[T]) error {
	if err := ValidateLive(m); err != nil {
		return err
	}
	n := m.Size()
	for i := 0; i < n; i++ {
		if got := m.Row(i).Size(); got != n {
			return fmt.Errorf("row %d has %d of %d: %w", i, got, n, ErrSizeMismatch)
		}
	}

	return nil
}
