// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact integer determinants, minors, cofactors and adjugates.
//   - All intermediate arithmetic runs on math/big so the result is exact for
//     any int64 entries; floating point is never used.
//
// Exposed API:
//   - Determinant(M)        -> (*big.Int)   // cofactor expansion along row 0
//   - DeterminantMod(M, m)  -> (int64)      // det(M) reduced into [0, m)
//   - Minor(M, i, j)        -> (*Dense)     // delete row i, column j
//   - Adjugate(M)           -> (*Dense)     // transposed signed cofactors
//   - AdjugateMod(M, m)     -> (*Dense)     // adjugate reduced into [0, m)
//
// Determinism & Performance:
//   - Fixed j=0..n-1 expansion order; zero entries of row 0 are skipped.
//   - Cofactor expansion is O(n!) which is fine for key sizes up to 8.

package matrix

import (
	"fmt"
	"math/big"
)

// Determinant returns the exact determinant of a square matrix.
// MAIN DESCRIPTION:
//   - 1×1 and 2×2 use closed forms; larger sizes expand recursively along
//     the first row: det(M) = Σ_j (-1)^j · M[0][j] · det(minor(0, j)).
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: run detBig on a flat row-major copy.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m *Dense) (*big.Int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	return detBig(m.data, m.r), nil
}

// DeterminantMod returns det(M) mod m as a residue in [0, m).
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadModulus.
func DeterminantMod(m *Dense, mod int64) (int64, error) {
	if err := ValidateModulus(mod); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return 0, err
	}

	// big.Int.Mod is Euclidean: the result is already non-negative.
	return det.Mod(det, big.NewInt(mod)).Int64(), nil
}

// detBig computes the determinant of the n×n row-major buffer a.
func detBig(a []int64, n int) *big.Int {
	switch n {
	case 1:
		return big.NewInt(a[0])
	case 2:
		ad := new(big.Int).Mul(big.NewInt(a[0]), big.NewInt(a[3]))
		bc := new(big.Int).Mul(big.NewInt(a[1]), big.NewInt(a[2]))

		return ad.Sub(ad, bc)
	}

	det := new(big.Int)
	sub := make([]int64, (n-1)*(n-1))
	var term *big.Int
	for j := 0; j < n; j++ {
		if a[j] == 0 {
			continue // zero entries contribute nothing
		}
		fillMinor(a, n, 0, j, sub)
		term = detBig(sub, n-1)
		term.Mul(term, big.NewInt(a[j]))
		if j%2 == 1 {
			det.Sub(det, term)
		} else {
			det.Add(det, term)
		}
	}

	return det
}

// fillMinor writes the (n-1)×(n-1) submatrix of a without row skipR and
// column skipC into dst (len(dst) == (n-1)²).
func fillMinor(a []int64, n, skipR, skipC int, dst []int64) {
	k := 0
	for i := 0; i < n; i++ {
		if i == skipR {
			continue
		}
		for j := 0; j < n; j++ {
			if j == skipC {
				continue
			}
			dst[k] = a[i*n+j]
			k++
		}
	}
}

// Minor returns M with row i and column j deleted.
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (n < 2), ErrOutOfRange.
func Minor(m *Dense, i, j int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.r
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if _, err := m.indexOf(i, j); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", i, j, err))
	}
	out := &Dense{r: n - 1, c: n - 1, data: make([]int64, (n-1)*(n-1))}
	fillMinor(m.data, n, i, j, out.data)

	return out, nil
}

// cofactorsBig returns the adjugate entries as big integers in row-major
// order: adj[j][i] = (-1)^(i+j) · det(minor(i, j)).
func cofactorsBig(m *Dense) []*big.Int {
	n := m.r
	adj := make([]*big.Int, n*n)
	switch n {
	case 1:
		adj[0] = big.NewInt(1)

		return adj
	case 2:
		// [[a,b],[c,d]] -> [[d,-b],[-c,a]]
		adj[0] = big.NewInt(m.data[3])
		adj[1] = new(big.Int).Neg(big.NewInt(m.data[1]))
		adj[2] = new(big.Int).Neg(big.NewInt(m.data[2]))
		adj[3] = big.NewInt(m.data[0])

		return adj
	}

	sub := make([]int64, (n-1)*(n-1))
	var cof *big.Int
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			fillMinor(m.data, n, i, j, sub)
			cof = detBig(sub, n-1)
			if (i+j)%2 == 1 {
				cof.Neg(cof)
			}
			adj[j*n+i] = cof // transposed placement
		}
	}

	return adj
}

// Adjugate returns the transpose of the signed cofactor matrix.
// MAIN DESCRIPTION:
//   - 2×2 closed form [[d,-b],[-c,a]]; N×N by deleting row i / column j,
//     taking the minor's determinant, applying (-1)^(i+j) and placing the
//     result at [j,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOverflow when a cofactor exceeds int64.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
//
// Notes:
//   - M · Adjugate(M) = det(M) · I over the integers.
func Adjugate(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj := cofactorsBig(m)
	out := &Dense{r: m.r, c: m.c, data: make([]int64, len(adj))}
	for k, v := range adj {
		if !v.IsInt64() {
			return nil, matrixErrorf(opAdjugate, fmt.Errorf("cofactor %d: %w", k, ErrOverflow))
		}
		out.data[k] = v.Int64()
	}

	return out, nil
}

// AdjugateMod returns the adjugate with every entry reduced into [0, m).
// Reduction happens on the exact big cofactors, so it never overflows.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadModulus.
func AdjugateMod(m *Dense, mod int64) (*Dense, error) {
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	bm := big.NewInt(mod)
	adj := cofactorsBig(m)
	out := &Dense{r: m.r, c: m.c, data: make([]int64, len(adj))}
	for k, v := range adj {
		out.data[k] = v.Mod(v, bm).Int64()
	}

	return out, nil
}
