// SPDX-License-Identifier: MIT

// Package matrix provides exact integer matrices and the modular arithmetic
// the Hill cipher engine is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix with bounds-checked accessors.
//   - Number theory helpers: GCD, ModInverse (extended Euclid) and Mod.
//   - Exact determinants by cofactor expansion (math/big, never floating point).
//   - Adjugate and InverseMod, the modular inverse of a square matrix.
//   - Modular products (MulMod, MatVecMod) used to verify and apply keys.
//
// Every kernel validates its inputs and returns sentinel errors from errors.go;
// callers match them with errors.Is. Nothing panics on user-supplied data.
//
// Matrices here are small (key sizes 2..8), so clarity wins over speed: the
// cofactor expansion is O(n!) and is only run when a key is accepted.
package matrix
