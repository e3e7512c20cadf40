// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep fixtures as rows-of-rows literals so expected values read naturally.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillimg/matrix"
	"github.com/stretchr/testify/require"
)

// modulus used throughout: one byte per pixel channel.
const mod256 = matrix.DefaultModulus

// MustDenseFrom BUILDS a *Dense from a literal or fails the test.
// Implementation:
//   - Stage 1: Call matrix.NewDenseFrom(rows).
//   - Stage 2: require.NoError to abort the test early.
func MustDenseFrom(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandSquare fills an n×n matrix with entries in [0, 256) from a seeded source.
// Determinism: same (n, seed) always yields the same matrix.
func RandSquare(t testing.TB, n int, rng *rand.Rand) *matrix.Dense {
	t.Helper()
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(mod256)
		}
	}

	return MustDenseFrom(t, rows)
}

// RequireIdentityMod asserts M ≡ I (mod m).
func RequireIdentityMod(t testing.TB, m *matrix.Dense, mod int64) {
	t.Helper()
	ok, err := matrix.IsIdentityMod(m, mod)
	require.NoError(t, err)
	require.Truef(t, ok, "expected identity mod %d, got:\n%s", mod, m)
}
