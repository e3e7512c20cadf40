// SPDX-License-Identifier: MIT

// Package block implements the Hill cipher at block granularity: zero
// padding, partitioning a byte sequence into N-value blocks, and the
// per-block product out = K·b mod 256.
//
// Blocks are plain []uint8 slices of length N, where N is the key size.
// Sequence helpers keep the ciphertext the same length as the plaintext by
// splitting the encrypted padding off as a separate "tail"; re-attaching the
// tail before decryption makes the last partial block invertible.
package block
