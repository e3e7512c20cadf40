// SPDX-License-Identifier: MIT
// Package key: sentinel error set.
// Every message is prefixed with "key: ..."; callers match with errors.Is.

package key

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillimg/matrix"
)

var (
	// ErrInvalidKey is returned for a malformed key: not square, ragged,
	// empty, outside [MinSize, MaxSize], or disagreeing with its block size.
	ErrInvalidKey = errors.New("key: invalid key matrix")

	// ErrGenerationExhausted is returned when Generate hit its attempt bound
	// without drawing an invertible matrix.
	ErrGenerationExhausted = errors.New("key: no invertible matrix within attempt bound")

	// ErrEmptyPassphrase is returned by FromPassphrase for an empty passphrase.
	ErrEmptyPassphrase = errors.New("key: empty passphrase")

	// ErrIO marks key file read/write failures.
	ErrIO = errors.New("key: i/o failure")
)

// ErrSingularMatrix aliases matrix.ErrSingular: the determinant is not a
// unit modulo the key's modulus. errors.Is matches either name.
var ErrSingularMatrix = matrix.ErrSingular

// ErrNoInverse aliases matrix.ErrNoInverse for callers that only import key.
var ErrNoInverse = matrix.ErrNoInverse

// Operation tags for keyErrorf.
const (
	opNew        = "New"
	opGenerate   = "Generate"
	opPassphrase = "FromPassphrase"
	opRecord     = "FromRecord"
	opEncode     = "Encode"
	opDecode     = "Decode"
	opSave       = "Save"
	opLoad       = "Load"
)

// keyErrorf wraps err with an operation tag, preserving it for errors.Is.
func keyErrorf(tag string, err error) error {
	return fmt.Errorf("key.%s: %w", tag, err)
}
