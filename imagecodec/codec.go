// SPDX-License-Identifier: MIT

package imagecodec

import (
	"fmt"

	"github.com/katalvlaran/hillimg/block"
	"github.com/katalvlaran/hillimg/key"
)

// EncryptImage encrypts every channel of p independently.
// MAIN DESCRIPTION:
//   - Each channel is read as a flat H*W sequence in row-major order,
//     padded, encrypted block by block and truncated back to H*W values.
//   - The output has the same shape and mode as p; p is not modified.
//
// Implementation:
//   - Stage 1: validate p and k.
//   - Stage 2: block.EncryptSequence per channel; body goes back into the
//     output, tail into the metadata.
//   - Stage 3: fill in shape, mode, block size and (optionally) the key.
//
// Errors:
//   - ErrFormat (invalid p), ErrNoKey (k == nil).
//   - key.ErrInvalidKey: k was built over a ring other than ℤ/256ℤ.
func EncryptImage(p *Pixels, k *key.Key, opts ...Option) (*Pixels, *Metadata, error) {
	o := gatherOptions(opts)
	if err := p.Validate(); err != nil {
		return nil, nil, codecErrorf(opEncryptImage, err)
	}
	if k == nil {
		return nil, nil, codecErrorf(opEncryptImage, ErrNoKey)
	}
	if err := requireByteKey(k); err != nil {
		return nil, nil, codecErrorf(opEncryptImage, err)
	}

	out := p.Clone()
	nc := p.Channels()
	var tails [][]int
	for c := 0; c < nc; c++ {
		body, tail, err := block.EncryptSequence(p.Channel(c), k)
		if err != nil {
			return nil, nil, codecErrorf(opEncryptImage, err)
		}
		if err = out.SetChannel(c, body); err != nil {
			return nil, nil, codecErrorf(opEncryptImage, err)
		}
		if len(tail) == 0 {
			continue // aligned: every channel has the same length, so none has a tail
		}
		if tails == nil {
			tails = make([][]int, nc)
		}
		tails[c] = widen(tail)
	}

	meta := &Metadata{
		OriginalShape: append([]int(nil), p.Shape...),
		ImageMode:     p.Mode,
		BlockSize:     k.Size(),
		PaddingTail:   tails,
	}
	if o.embedKey {
		meta.KeyMatrix = k.Rows()
	}

	return out, meta, nil
}

// DecryptImage reverses EncryptImage.
// MAIN DESCRIPTION:
//   - Shape and mode come from meta when present, else from p itself.
//   - k == nil falls back to the key embedded in meta.
//   - Each channel is decrypted with its recorded padding tail, which makes
//     the round trip exact even when H*W is not a multiple of the block size.
//
// Errors:
//   - ErrMissingMetadata: no shape is known.
//   - ErrFormat: element counts disagree, or the metadata is malformed.
//   - ErrNoKey (also key.ErrInvalidKey): no key given and none embedded.
//   - key.ErrInvalidKey: block size does not match the key, or the key's
//     modulus is not 256.
func DecryptImage(p *Pixels, k *key.Key, meta *Metadata) (*Pixels, error) {
	if p == nil {
		return nil, codecErrorf(opDecryptImage, fmt.Errorf("nil pixels: %w", ErrFormat))
	}

	shape, mode := p.Shape, p.Mode
	if meta != nil {
		if err := meta.Validate(); err != nil {
			return nil, codecErrorf(opDecryptImage, err)
		}
		shape, mode = meta.OriginalShape, meta.ImageMode
	}
	if len(shape) == 0 {
		return nil, codecErrorf(opDecryptImage, ErrMissingMetadata)
	}
	n, err := validateShape(shape, mode)
	if err != nil {
		return nil, codecErrorf(opDecryptImage, err)
	}
	if len(p.Pix) != n {
		return nil, codecErrorf(opDecryptImage, fmt.Errorf("%d values, shape %v needs %d: %w", len(p.Pix), shape, n, ErrFormat))
	}

	if k, err = resolveKey(k, meta); err != nil {
		return nil, codecErrorf(opDecryptImage, err)
	}

	out := &Pixels{Shape: append([]int(nil), shape...), Mode: mode, Pix: append([]uint8(nil), p.Pix...)}
	var tail, plain []uint8
	for c := 0; c < mode.Channels(); c++ {
		if tail, err = meta.tail(c); err != nil {
			return nil, codecErrorf(opDecryptImage, err)
		}
		if plain, err = block.DecryptSequence(out.Channel(c), tail, k); err != nil {
			return nil, codecErrorf(opDecryptImage, err)
		}
		if err = out.SetChannel(c, plain); err != nil {
			return nil, codecErrorf(opDecryptImage, err)
		}
	}

	return out, nil
}

// resolveKey picks the caller's key or the embedded one and checks it
// against the recorded block size.
func resolveKey(k *key.Key, meta *Metadata) (*key.Key, error) {
	if k == nil {
		if meta == nil || len(meta.KeyMatrix) == 0 {
			return nil, fmt.Errorf("%w: %w", ErrNoKey, key.ErrInvalidKey)
		}
		return key.FromRecord(key.Record{Matrix: meta.KeyMatrix, BlockSize: meta.BlockSize})
	}
	if err := requireByteKey(k); err != nil {
		return nil, err
	}
	if meta != nil && meta.BlockSize != 0 && meta.BlockSize != k.Size() {
		return nil, fmt.Errorf("%w: block_size %d, key is %dx%d", key.ErrInvalidKey, meta.BlockSize, k.Size(), k.Size())
	}

	return k, nil
}

// requireByteKey rejects keys whose modulus is not 256. The sidecar records
// no modulus, so embedded keys are always rebuilt over ℤ/256ℤ.
func requireByteKey(k *key.Key) error {
	if k.Modulus() != key.DefaultModulus {
		return fmt.Errorf("%w: modulus %d, images need %d", key.ErrInvalidKey, k.Modulus(), key.DefaultModulus)
	}

	return nil
}

func widen(b []uint8) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}

	return out
}
