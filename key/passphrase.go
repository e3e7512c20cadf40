// SPDX-License-Identifier: MIT

package key

import (
	"crypto/sha256"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// hkdfInfo binds the derived stream to its purpose.
const hkdfInfo = "hillimg key matrix v1"

// seedLen is the PBKDF2 output length fed into HKDF.
const seedLen = 32

// FromPassphrase derives a reproducible key from a passphrase and salt.
// MAIN DESCRIPTION:
//   - PBKDF2-SHA256 stretches the passphrase into a seed; HKDF-SHA256 expands
//     the seed into the byte stream that Generate samples from.
//
// Behavior highlights:
//   - Same (passphrase, salt, size, iterations) always yields the same key.
//   - The HKDF stream caps at 8160 bytes; running out surfaces as a source
//     read error, which needs ~127 consecutive singular 8×8 draws.
//
// Errors:
//   - ErrEmptyPassphrase, plus everything Generate returns.
func FromPassphrase(passphrase, salt []byte, size int, opts ...Option) (*Key, error) {
	if len(passphrase) == 0 {
		return nil, keyErrorf(opPassphrase, ErrEmptyPassphrase)
	}
	o := gatherOptions(opts)

	seed := pbkdf2.Key(passphrase, salt, o.kdfIterations, seedLen, sha256.New)
	stream := hkdf.New(sha256.New, seed, salt, []byte(hkdfInfo))

	genOpts := make([]Option, 0, len(opts)+1)
	genOpts = append(genOpts, opts...)

	return Generate(size, append(genOpts, WithSource(stream))...)
}
