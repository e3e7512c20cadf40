// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillimg/matrix"
	"github.com/stretchr/testify/require"
)

func TestInverseMod2x2(t *testing.T) {
	t.Parallel()

	k := MustDenseFrom(t, [][]int64{{3, 2}, {5, 7}})
	inv, err := matrix.InverseMod(k, mod256)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{117, 186}, {209, 233}}, inv.ToRows())

	left, err := matrix.MulMod(inv, k, mod256)
	require.NoError(t, err)
	RequireIdentityMod(t, left, mod256)

	right, err := matrix.MulMod(k, inv, mod256)
	require.NoError(t, err)
	RequireIdentityMod(t, right, mod256)
}

func TestInverseModSingular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int64
	}{
		{"zero determinant", [][]int64{{2, 4}, {1, 2}}},
		{"even determinant", [][]int64{{2, 0}, {0, 1}}},
		{"all zero 3x3", [][]int64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.InverseMod(MustDenseFrom(t, tc.rows), mod256)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInverseModErrorPriority(t *testing.T) {
	t.Parallel()

	_, err := matrix.InverseMod(nil, 1)
	require.ErrorIs(t, err, matrix.ErrBadModulus)

	_, err = matrix.InverseMod(nil, mod256)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.InverseMod(MustDenseFrom(t, [][]int64{{1, 2, 3}, {3, 5, 7}}), mod256)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverseModProperty: for every invertible K, InverseMod(K)·K ≡ I.
func TestInverseModProperty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	for n := 2; n <= 4; n++ {
		checked := 0
		for trial := 0; trial < 200; trial++ {
			k := RandSquare(t, n, rng)
			det, err := matrix.DeterminantMod(k, mod256)
			require.NoError(t, err)

			inv, err := matrix.InverseMod(k, mod256)
			if matrix.GCD(det, mod256) != 1 {
				require.ErrorIs(t, err, matrix.ErrSingular)
				continue
			}
			require.NoError(t, err)
			prod, err := matrix.MulMod(inv, k, mod256)
			require.NoError(t, err)
			RequireIdentityMod(t, prod, mod256)
			checked++
		}
		require.Positivef(t, checked, "no invertible %dx%d sample", n, n)
	}
}

// TestInverseModOtherModulus exercises a non-power-of-two ring.
func TestInverseModOtherModulus(t *testing.T) {
	t.Parallel()

	k := MustDenseFrom(t, [][]int64{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}})
	inv, err := matrix.InverseMod(k, 26)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{8, 5, 10}, {21, 8, 21}, {21, 12, 8}}, inv.ToRows())
}

func TestMatVecMod(t *testing.T) {
	t.Parallel()

	k := MustDenseFrom(t, [][]int64{{3, 2}, {5, 7}})
	y, err := matrix.MatVecMod(k, []int64{100, 200}, mod256)
	require.NoError(t, err)
	// 3*100+2*200 = 700 ≡ 188; 5*100+7*200 = 1900 ≡ 108
	require.Equal(t, []int64{188, 108}, y)

	_, err = matrix.MatVecMod(k, []int64{1}, mod256)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulModReducesNegatives(t *testing.T) {
	t.Parallel()

	a := MustDenseFrom(t, [][]int64{{-1, 0}, {0, -1}})
	got, err := matrix.MulMod(a, a, mod256)
	require.NoError(t, err)
	RequireIdentityMod(t, got, mod256)

	_, err = matrix.MulMod(a, MustDenseFrom(t, [][]int64{{1, 2, 3}}), mod256)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	tr, err := matrix.Transpose(MustDenseFrom(t, [][]int64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReduceModAndIdentity(t *testing.T) {
	t.Parallel()

	r := matrix.ReduceMod(MustDenseFrom(t, [][]int64{{257, -1}, {-256, 513}}), mod256)
	require.Equal(t, [][]int64{{1, 255}, {0, 1}}, r.ToRows())

	ok, err := matrix.IsIdentityMod(MustDenseFrom(t, [][]int64{{257, 256}, {-256, 1}}), mod256)
	require.NoError(t, err)
	require.True(t, ok)
}
