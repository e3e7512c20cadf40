// SPDX-License-Identifier: MIT

package imagecodec

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned for an unsupported pixel mode, a malformed shape,
	// an unknown file format, or element counts that do not match a shape.
	ErrFormat = errors.New("imagecodec: unsupported or malformed format")

	// ErrMissingMetadata is returned when the original shape cannot be
	// determined for reconstruction.
	ErrMissingMetadata = errors.New("imagecodec: missing metadata")

	// ErrNoKey is returned when decryption has neither a key nor a key
	// embedded in the metadata.
	ErrNoKey = errors.New("imagecodec: no key available")

	// ErrIO marks image and sidecar read/write failures.
	ErrIO = errors.New("imagecodec: i/o failure")
)

// ErrLossyFormat is returned when ciphertext would be written to a lossy
// format. It matches ErrFormat under errors.Is.
var ErrLossyFormat = fmt.Errorf("%w: lossy format cannot hold ciphertext", ErrFormat)

const (
	opNewPixels    = "NewPixels"
	opEncryptImage = "EncryptImage"
	opDecryptImage = "DecryptImage"
	opFromImage    = "FromImage"
	opToImage      = "ToImage"
	opRead         = "ReadImage"
	opWrite        = "WriteImage"
	opMetadata     = "Metadata"
)

// codecErrorf wraps err with an operation tag, preserving it for errors.Is.
func codecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
