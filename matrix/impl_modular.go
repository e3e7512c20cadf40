// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Scalar number theory over ℤ/mℤ: GCD, least non-negative residue,
//     modular inverse by the extended Euclidean algorithm.
//   - Overflow-free residue products (math/bits) shared by the matrix kernels.
//
// Determinism & Performance:
//   - Iterative loops only (no recursion), O(log min(a, m)) steps.

package matrix

import (
	"fmt"
	"math/bits"
)

// GCD returns the greatest common divisor of |a| and |b|.
// MAIN DESCRIPTION:
//   - Standard Euclidean algorithm; total over all inputs.
//
// Behavior highlights:
//   - GCD(0, 0) == 0; GCD(a, 0) == |a|.
//   - Result is never negative.
//
// Complexity:
//   - Time O(log min(|a|,|b|)), Space O(1).
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Mod returns the least non-negative residue of a modulo m (m > 0).
// Go's % keeps the sign of the dividend; this folds negatives into [0, m).
func Mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// ModInverse returns the unique x in [0, m) with a*x ≡ 1 (mod m).
// MAIN DESCRIPTION:
//   - Extended Euclidean algorithm on (a mod m, m), tracking only the
//     Bézout coefficient of a.
//
// Implementation:
//   - Stage 1: validate m >= 2; reduce a into [0, m).
//   - Stage 2: iterate (r, s) pairs until the remainder hits zero.
//   - Stage 3: the last non-zero remainder is gcd(a, m); fail unless it is 1.
//   - Stage 4: fold the coefficient into [0, m).
//
// Errors:
//   - ErrBadModulus (m < 2), ErrNoInverse (gcd(a, m) != 1).
//
// Complexity:
//   - Time O(log m), Space O(1).
func ModInverse(a, m int64) (int64, error) {
	if err := ValidateModulus(m); err != nil {
		return 0, matrixErrorf(opModInverse, err)
	}
	a = Mod(a, m)

	// Invariant: oldS*a ≡ oldR (mod m) and s*a ≡ r (mod m).
	oldR, r := a, m
	var oldS, s int64 = 1, 0
	var q int64
	for r != 0 {
		q = oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, matrixErrorf(opModInverse, fmt.Errorf("gcd(%d, %d) = %d: %w", a, m, oldR, ErrNoInverse))
	}

	return Mod(oldS, m), nil
}

// mulMod returns a*b mod m for residues a, b in [0, m) without overflow.
// The 128-bit product is reduced with bits.Div64; hi < m holds because a, b < m.
func mulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(m))

	return int64(rem)
}

// addMod returns a+b mod m for residues a, b in [0, m).
func addMod(a, b, m int64) int64 {
	s := uint64(a) + uint64(b)
	if s >= uint64(m) {
		s -= uint64(m)
	}

	return int64(s)
}
