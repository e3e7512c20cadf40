// SPDX-License-Identifier: MIT

// Package key owns the Hill cipher key: a validated square integer matrix
// together with its inverse modulo 256.
//
// A *Key is immutable. Every constructor (New, FromMatrix, Generate,
// FromPassphrase, FromRecord, Load) validates the matrix and computes the
// inverse before returning, so a key that exists is a key that can decrypt.
// Replacing a key means building a new *Key; there is no setter that could
// pair a new matrix with a stale inverse.
//
// Keys persist as a small JSON record:
//
//	{"key_matrix": [[3, 2], [5, 7]], "block_size": 2}
//
// with no header or integrity tag.
package key
