// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dynamat/matrix"
	"github.com/katalvlaran/dynamat/vector"
	"github.com/stretchr/testify/require"
)

// TestValidateSameSize covers nil, empty, matching and mismatched operands.
func TestValidateSameSize(t *testing.T) {
	t.Parallel()

	square := func(n int) *matrix.Matrix[int] { return MustMatrix[int](t, n) }
	empty := square(2)
	_ = empty.Move()

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[int]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, square(2), matrix.ErrNilMatrix},
		{"second nil", square(2), nil, matrix.ErrNilMatrix},
		{"moved-from", empty, square(2), matrix.ErrInvalidSize},
		{"equal 3", square(3), square(3), nil},
		{"mismatch", square(2), square(3), matrix.ErrSizeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameSize(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateVecLen covers the matrix-vector operand checks.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	m := MustMatrix[float64](t, 3)
	three, err := vector.New[float64](3)
	require.NoError(t, err)
	four, err := vector.New[float64](4)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateVecLen(m, three))
	require.ErrorIs(t, matrix.ValidateVecLen(m, four), matrix.ErrSizeMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(m, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, three), matrix.ErrNilMatrix)
}

// TestValidateRows covers live, resized-row and nil matrices.
func TestValidateRows(t *testing.T) {
	t.Parallel()

	m := MustMatrix[int](t, 3)
	require.NoError(t, matrix.ValidateRows(m))

	m.Row(1).Assign(MustVec(t, 1, 2, 3, 4))
	require.ErrorIs(t, matrix.ValidateRows(m), matrix.ErrSizeMismatch)

	require.ErrorIs(t, matrix.ValidateRows[int](nil), matrix.ErrNilMatrix)
}
