// SPDX-License-Identifier: MIT

// Package matrix: shared constants and operation tags.
// Errors live in errors.go; kernels live in impl_*.go.
package matrix

// DefaultModulus is the ring size matching one 8-bit pixel intensity.
const DefaultModulus int64 = 256

// minModulus is the smallest modulus with a non-trivial residue ring.
const minModulus int64 = 2

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense    = "NewDenseFrom"
	opIdentity    = "Identity"
	opModInverse  = "ModInverse"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opAdjugate    = "Adjugate"
	opInverseMod  = "InverseMod"
	opMulMod      = "MulMod"
	opMatVecMod   = "MatVecMod"
	opIsIdentity  = "IsIdentityMod"
	opTranspose   = "Transpose"
)
