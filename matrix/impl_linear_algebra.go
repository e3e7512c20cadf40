// SPDX-License-Identifier: MIT
// Package matrix provides modular operations on Dense matrices: inversion,
// products, reduction and transpose. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - InverseMod, the heart of key acceptance: (det⁻¹ · adj(M)) mod m.
//   - MulMod / MatVecMod for applying and verifying keys.
//
// Notes:
//   - Every result is a fresh Dense; operands are never mutated.
//   - Residue products go through mulMod/addMod, so any modulus that fits
//     int64 is safe from overflow.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// InverseMod returns the inverse of a square matrix over ℤ/mℤ.
// MAIN DESCRIPTION:
//   - det = Determinant(M) mod m; the matrix is invertible iff gcd(det, m) == 1.
//   - M⁻¹ = (ModInverse(det, m) · Adjugate(M)) mod m, entries in [0, m).
//
// Implementation:
//   - Stage 1: validate modulus, non-nil and squareness.
//   - Stage 2: exact determinant reduced mod m; reject non-units with ErrSingular.
//   - Stage 3: scale the reduced adjugate by det⁻¹ entry by entry.
//
// Errors:
//   - ErrBadModulus, ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Fixed row-major traversal; no randomness.
//
// Complexity:
//   - Time O(n² · (n-1)!) dominated by the cofactors, Space O(n²).
//
// Notes:
//   - MulMod(InverseMod(M, m), M, m) is the identity for every accepted M.
func InverseMod(m *Dense, mod int64) (*Dense, error) {
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}

	det, err := DeterminantMod(m, mod)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if GCD(det, mod) != 1 {
		return nil, matrixErrorf(opInverseMod, fmt.Errorf("det ≡ %d (mod %d): %w", det, mod, ErrSingular))
	}
	detInv, err := ModInverse(det, mod)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}

	adj, err := AdjugateMod(m, mod)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	for k := range adj.data {
		adj.data[k] = mulMod(detInv, adj.data[k], mod)
	}

	return adj, nil
}

// MulMod computes C = A·B mod m with entries in [0, m).
// Inputs are reduced first, so negative or large entries are fine.
// Errors: ErrBadModulus, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·k·c).
func MulMod(a, b *Dense, mod int64) (*Dense, error) {
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	ra, rb := ReduceMod(a, mod), ReduceMod(b, mod)
	rows, inner, cols := a.r, a.c, b.c
	out := &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}

	var i, j, k int
	var acc int64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc = addMod(acc, mulMod(ra.data[i*inner+k], rb.data[k*cols+j], mod), mod)
			}
			out.data[i*cols+j] = acc
		}
	}

	return out, nil
}

// MatVecMod computes y = M·x mod m with entries in [0, m).
// Errors: ErrBadModulus, ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
func MatVecMod(m *Dense, x []int64, mod int64) ([]int64, error) {
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	rm := ReduceMod(m, mod)
	y := make([]int64, m.r)
	var acc int64
	for i := 0; i < m.r; i++ {
		acc = 0
		for j := 0; j < m.c; j++ {
			acc = addMod(acc, mulMod(rm.data[i*m.c+j], Mod(x[j], mod), mod), mod)
		}
		y[i] = acc
	}

	return y, nil
}

// ReduceMod returns a copy of M with every entry folded into [0, m).
// The caller guarantees m >= 2 and M != nil; kernels validate before calling.
func ReduceMod(m *Dense, mod int64) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]int64, len(m.data))}
	for k, v := range m.data {
		out.data[k] = Mod(v, mod)
	}

	return out
}

// Transpose returns Mᵀ as a new Dense.
// Errors: ErrNilMatrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]int64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// IsIdentityMod reports whether M ≡ I (mod m).
// Errors: ErrBadModulus, ErrNilMatrix, ErrNonSquare.
func IsIdentityMod(m *Dense, mod int64) (bool, error) {
	if err := ValidateModulus(mod); err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	var want int64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if Mod(m.data[i*m.c+j], mod) != want {
				return false, nil
			}
		}
	}

	return true, nil
}
