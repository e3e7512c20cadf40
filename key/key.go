// SPDX-License-Identifier: MIT

package key

import (
	"fmt"

	"github.com/katalvlaran/hillimg/matrix"
)

// Key is an accepted Hill cipher key and its cached modular inverse.
//   - m is the matrix exactly as supplied (what gets persisted).
//   - fwd is m reduced into [0, modulus), used for encryption.
//   - inv is InverseMod(m, modulus), used for decryption.
//
// All three are private copies; accessors hand out clones.
type Key struct {
	m       *matrix.Dense
	fwd     *matrix.Dense
	inv     *matrix.Dense
	modulus int64
}

// New validates rows as a key matrix and computes its inverse.
// MAIN DESCRIPTION:
//   - The "set key" operation: validation happens here and only here, never
//     deferred to encryption time.
//
// Implementation:
//   - Stage 1: ingest rows (ErrInvalidKey on empty/ragged input).
//   - Stage 2: delegate to FromMatrix.
//
// Errors:
//   - ErrInvalidKey (shape or size), ErrSingularMatrix (det not a unit).
func New(rows [][]int64, opts ...Option) (*Key, error) {
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, keyErrorf(opNew, fmt.Errorf("%w: %w", ErrInvalidKey, err))
	}

	return FromMatrix(m, opts...)
}

// FromMatrix validates m as a key matrix and computes its inverse.
// MAIN DESCRIPTION:
//   - Accepts a square matrix of size MinSize..MaxSize whose determinant is
//     a unit modulo the configured modulus.
//
// Implementation:
//   - Stage 1: shape checks (nil, square, size bounds) → ErrInvalidKey.
//   - Stage 2: matrix.InverseMod → ErrSingularMatrix on failure.
//   - Stage 3: self-check M·M⁻¹ ≡ I (mod m).
//   - Stage 4: cache private copies of the matrix, its reduction and inverse.
//
// Errors:
//   - ErrInvalidKey, ErrSingularMatrix (also when the self-check fails).
//
// Complexity:
//   - Time O(n² · (n-1)!) for the cofactors; n ≤ MaxSize.
func FromMatrix(m *matrix.Dense, opts ...Option) (*Key, error) {
	o := gatherOptions(opts)

	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, keyErrorf(opNew, fmt.Errorf("%w: %w", ErrInvalidKey, err))
	}
	if n := m.Rows(); n < MinSize || n > MaxSize {
		return nil, keyErrorf(opNew, fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidKey, n, MinSize, MaxSize))
	}

	inv, err := matrix.InverseMod(m, o.modulus)
	if err != nil {
		return nil, keyErrorf(opNew, err)
	}
	if err = checkInverse(m, inv, o.modulus); err != nil {
		return nil, keyErrorf(opNew, err)
	}

	return &Key{
		m:       m.Clone(),
		fwd:     matrix.ReduceMod(m, o.modulus),
		inv:     inv,
		modulus: o.modulus,
	}, nil
}

// Size returns the key dimension N, which is also the block size.
func (k *Key) Size() int { return k.m.Rows() }

// BlockSize is an alias of Size, named after the persisted field.
func (k *Key) BlockSize() int { return k.m.Rows() }

// Modulus returns the ring size the key was validated against.
func (k *Key) Modulus() int64 { return k.modulus }

// Matrix returns a copy of the key matrix as supplied.
func (k *Key) Matrix() *matrix.Dense { return k.m.Clone() }

// Forward returns a copy of the key matrix reduced into [0, modulus).
func (k *Key) Forward() *matrix.Dense { return k.fwd.Clone() }

// Inverse returns a copy of the cached inverse matrix.
func (k *Key) Inverse() *matrix.Dense { return k.inv.Clone() }

// Rows returns the key matrix as rows-of-rows.
func (k *Key) Rows() [][]int64 { return k.m.ToRows() }

// Determinant returns det(K) mod modulus.
func (k *Key) Determinant() int64 {
	// Cannot fail: the matrix was validated square and the modulus >= 2.
	d, _ := matrix.DeterminantMod(k.m, k.modulus)

	return d
}

// Equal reports whether two keys hold the same matrix and modulus.
func (k *Key) Equal(o *Key) bool {
	if k == nil || o == nil {
		return k == o
	}

	return k.modulus == o.modulus && k.m.Equal(o.m)
}

// String renders the key matrix row by row.
func (k *Key) String() string { return k.m.String() }

// checkInverse verifies M·inv ≡ I (mod m) before a key is accepted.
func checkInverse(m, inv *matrix.Dense, mod int64) error {
	prod, err := matrix.MulMod(m, inv, mod)
	if err != nil {
		return err
	}
	ok, err := matrix.IsIdentityMod(prod, mod)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("inverse self-check failed: %w", ErrSingularMatrix)
	}

	return nil
}
