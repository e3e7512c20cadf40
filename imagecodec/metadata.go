// SPDX-License-Identifier: MIT

package imagecodec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/hillimg/internal/fileutil"
)

// SidecarSuffix replaces the ciphertext image's extension to name its sidecar.
const SidecarSuffix = "_metadata.json"

// Metadata describes how to reverse one encryption.
//   - OriginalShape / ImageMode rebuild the pixel array exactly.
//   - BlockSize must match the decrypting key.
//   - KeyMatrix is a cleartext copy of the key; legacy, omitted when the
//     encryption ran with WithEmbeddedKey(false).
//   - PaddingTail holds, per channel, the encrypted padding that did not fit
//     in the same-shape ciphertext.
type Metadata struct {
	OriginalShape []int     `json:"original_shape"`
	ImageMode     Mode      `json:"image_mode"`
	BlockSize     int       `json:"block_size"`
	KeyMatrix     [][]int64 `json:"key_matrix,omitempty"`
	PaddingTail   [][]int   `json:"padding_tail,omitempty"`
}

// Validate checks shape/mode pairing, block size and tail count.
func (m *Metadata) Validate() error {
	if m == nil {
		return ErrMissingMetadata
	}
	if _, err := validateShape(m.OriginalShape, m.ImageMode); err != nil {
		return err
	}
	if m.BlockSize < 0 {
		return fmt.Errorf("block_size %d: %w", m.BlockSize, ErrFormat)
	}
	if m.PaddingTail != nil && len(m.PaddingTail) != m.ImageMode.Channels() {
		return fmt.Errorf("%d padding tails for %d channels: %w", len(m.PaddingTail), m.ImageMode.Channels(), ErrFormat)
	}

	return nil
}

// tail returns channel c's padding tail as bytes, or nil when not recorded.
func (m *Metadata) tail(c int) ([]uint8, error) {
	if m == nil || m.PaddingTail == nil {
		return nil, nil
	}
	src := m.PaddingTail[c]
	out := make([]uint8, len(src))
	for i, v := range src {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("padding tail value %d: %w", v, ErrFormat)
		}
		out[i] = uint8(v)
	}

	return out, nil
}

// SidecarPath derives the metadata path for an image path by replacing its
// extension with SidecarSuffix: "out/enc.png" -> "out/enc_metadata.json".
func SidecarPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + SidecarSuffix
}

// EncodeMetadata writes m as JSON.
func EncodeMetadata(w io.Writer, m *Metadata) error {
	if err := json.NewEncoder(w).Encode(m); err != nil {
		return codecErrorf(opMetadata, fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

// DecodeMetadata reads and validates a JSON sidecar.
// Errors: ErrIO (reader), ErrFormat (malformed JSON or invalid content).
func DecodeMetadata(r io.Reader) (*Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, codecErrorf(opMetadata, fmt.Errorf("%w: %w", ErrIO, err))
	}
	var m Metadata
	if err = json.Unmarshal(data, &m); err != nil {
		return nil, codecErrorf(opMetadata, fmt.Errorf("%w: %w", ErrFormat, err))
	}
	if err = m.Validate(); err != nil {
		return nil, codecErrorf(opMetadata, err)
	}

	return &m, nil
}

// SaveMetadata writes m to path atomically.
func SaveMetadata(path string, m *Metadata) error {
	err := fileutil.WriteAtomic(path, fileutil.PublicMode, func(w io.Writer) error {
		return EncodeMetadata(w, m)
	})
	if err != nil {
		return codecErrorf(opMetadata, fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

// LoadMetadata reads the sidecar at path. A missing file matches both
// ErrIO and fs.ErrNotExist.
func LoadMetadata(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, codecErrorf(opMetadata, fmt.Errorf("%w: %w", ErrIO, err))
	}
	defer f.Close()

	return DecodeMetadata(f)
}
