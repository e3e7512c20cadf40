// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hillimg/matrix"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want int64
	}{
		{48, 18, 6},
		{18, 48, 6},
		{0, 0, 0},
		{7, 0, 7},
		{0, 256, 256},
		{-12, 18, 6},
		{11, 256, 1},
		{2, 256, 2},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, matrix.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
	}
}

func TestMod(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(254), matrix.Mod(-2, 256))
	require.Equal(t, int64(0), matrix.Mod(512, 256))
	require.Equal(t, int64(3), matrix.Mod(3, 256))
}

func TestModInverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, m    int64
		want    int64
		wantErr error
	}{
		{"7 mod 26", 7, 26, 15, nil},
		{"11 mod 256", 11, 256, 163, nil},
		{"negative residue", -3, 7, 2, nil},
		{"one", 1, 256, 1, nil},
		{"even mod 256", 2, 256, 0, matrix.ErrNoInverse},
		{"zero", 0, 256, 0, matrix.ErrNoInverse},
		{"bad modulus", 3, 1, 0, matrix.ErrBadModulus},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.ModInverse(tc.a, tc.m)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, int64(1), matrix.Mod(tc.a*got, tc.m))
		})
	}
}

// TestModInverseAllOddResidues checks every unit of ℤ/256ℤ.
func TestModInverseAllOddResidues(t *testing.T) {
	t.Parallel()

	for a := int64(1); a < 256; a += 2 {
		inv, err := matrix.ModInverse(a, mod256)
		require.NoError(t, err)
		require.GreaterOrEqual(t, inv, int64(0))
		require.Less(t, inv, mod256)
		require.Equalf(t, int64(1), (a*inv)%mod256, "a=%d inv=%d", a, inv)
	}
}
