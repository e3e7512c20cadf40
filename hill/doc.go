// SPDX-License-Identifier: MIT

// Package hill is the engine behind the hillimg tool: a Cipher holds the
// current key and turns image files into ciphertext images plus JSON
// sidecars, and back.
//
// The in-memory operations (EncryptImage, DecryptImage) return Go errors.
// The file-level operations (EncryptFile, DecryptFile) return a Result with
// a human-readable message, the shape a UI or CLI reports to its user; the
// underlying error is still available in Result.Err for errors.Is checks.
//
// A Cipher is not safe for concurrent use. Keys are immutable values and
// may be shared between Ciphers freely.
package hill
