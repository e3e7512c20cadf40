// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/hillimg/imagecodec"
)

// ErrNoKey is returned when an operation needs a key and none is set.
// It is the same value as imagecodec.ErrNoKey.
var ErrNoKey = imagecodec.ErrNoKey

const (
	opGenerateKey = "GenerateKey"
	opDeriveKey   = "DeriveKey"
	opSetKey      = "SetKey"
	opSaveKey     = "SaveKey"
	opLoadKey     = "LoadKey"
	opEncrypt     = "EncryptImage"
	opDecrypt     = "DecryptImage"
)

// hillErrorf wraps err with an operation tag, preserving it for errors.Is.
func hillErrorf(tag string, err error) error {
	return fmt.Errorf("hill.%s: %w", tag, err)
}
