// SPDX-License-Identifier: MIT

package block

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockSize is returned when a block's length differs from the key size.
	ErrBlockSize = errors.New("block: block length does not match key size")

	// ErrUnaligned is returned by Partition when len(seq) is not a multiple of n.
	ErrUnaligned = errors.New("block: sequence length is not a multiple of block size")

	// ErrTailLength is returned when a stored padding tail has the wrong length.
	ErrTailLength = errors.New("block: padding tail length mismatch")

	// ErrNilKey is returned when a nil key is passed to a codec function.
	ErrNilKey = errors.New("block: nil key")

	// ErrModulus is returned when the ring is not exactly ℤ/256ℤ.
	ErrModulus = errors.New("block: modulus must be 256")

	// ErrInvalidBlockSize is returned for block sizes below 1.
	ErrInvalidBlockSize = errors.New("block: block size must be >= 1")
)

const (
	opPartition = "Partition"
	opTransform = "Transform"
	opEncrypt   = "EncryptBlock"
	opDecrypt   = "DecryptBlock"
	opEncSeq    = "EncryptSequence"
	opDecSeq    = "DecryptSequence"
)

// blockErrorf wraps err with an operation tag, preserving it for errors.Is.
func blockErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
