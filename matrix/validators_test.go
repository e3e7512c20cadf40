// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hillimg/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquareNonNil covers nil inputs, square and rectangular shapes.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       *matrix.Dense
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"square 2x2", MustDenseFrom(t, [][]int64{{1, 2}, {3, 4}}), nil},
		{"rect 1x2", MustDenseFrom(t, [][]int64{{1, 2}}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidateModulus rejects moduli below 2.
func TestValidateModulus(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateModulus(1), matrix.ErrBadModulus)
	require.ErrorIs(t, matrix.ValidateModulus(-256), matrix.ErrBadModulus)
	require.NoError(t, matrix.ValidateModulus(2))
	require.NoError(t, matrix.ValidateModulus(256))
}

// TestValidateVecLenAndMul covers the product guards.
func TestValidateVecLenAndMul(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen([]int64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]int64{1, 2}, 2))

	a := MustDenseFrom(t, [][]int64{{1, 2, 3}})
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
}
