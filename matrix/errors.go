// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf at the
// operation boundary; callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> modulus -> dimension mismatch -> algebraic failures
// (ErrSingular / ErrNoInverse) -> ErrOverflow.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when row data is empty or ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadModulus is returned for a modulus smaller than 2.
	ErrBadModulus = errors.New("matrix: modulus must be >= 2")

	// ErrNoInverse is returned by ModInverse when gcd(a, m) != 1.
	ErrNoInverse = errors.New("matrix: modular inverse does not exist")

	// ErrSingular is returned when the determinant is not a unit modulo m,
	// i.e. the matrix has no inverse in the residue ring.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOverflow is returned when an exact integer result does not fit int64.
	ErrOverflow = errors.New("matrix: integer overflow")
)
