// SPDX-License-Identifier: MIT

package key

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hillimg/internal/fileutil"
)

// Record is the persisted form of a key.
type Record struct {
	Matrix    [][]int64 `json:"key_matrix"`
	BlockSize int       `json:"block_size"`
}

// Record returns the serializable form of k.
func (k *Key) Record() Record {
	return Record{Matrix: k.Rows(), BlockSize: k.Size()}
}

// FromRecord rebuilds a key from its record.
// A zero BlockSize means the field was absent and defaults to DefaultBlockSize.
// Errors: ErrInvalidKey (also on block size mismatch), ErrSingularMatrix.
func FromRecord(r Record, opts ...Option) (*Key, error) {
	bs := r.BlockSize
	if bs == 0 {
		bs = DefaultBlockSize
	}
	k, err := New(r.Matrix, opts...)
	if err != nil {
		return nil, keyErrorf(opRecord, err)
	}
	if k.Size() != bs {
		return nil, keyErrorf(opRecord, fmt.Errorf("%w: block_size %d, matrix is %dx%d", ErrInvalidKey, bs, k.Size(), k.Size()))
	}

	return k, nil
}

// Encode writes k as JSON.
func (k *Key) Encode(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(k.Record()); err != nil {
		return keyErrorf(opEncode, fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

// Decode reads a JSON key record and validates it.
// Malformed JSON is ErrInvalidKey; a failing reader is ErrIO.
func Decode(r io.Reader, opts ...Option) (*Key, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, keyErrorf(opDecode, fmt.Errorf("%w: %w", ErrIO, err))
	}
	var rec Record
	if err = json.Unmarshal(data, &rec); err != nil {
		return nil, keyErrorf(opDecode, fmt.Errorf("%w: %w", ErrInvalidKey, err))
	}

	return FromRecord(rec, opts...)
}

// Save writes k to path atomically.
func (k *Key) Save(path string) error {
	err := fileutil.WriteAtomic(path, fileutil.PrivateMode, func(w io.Writer) error {
		return k.Encode(w)
	})
	if err != nil {
		return keyErrorf(opSave, fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

// Load reads and validates the key stored at path.
func Load(path string, opts ...Option) (*Key, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, keyErrorf(opLoad, fmt.Errorf("%w: %w", ErrIO, err))
	}
	defer f.Close()

	k, err := Decode(f, opts...)
	if err != nil {
		return nil, keyErrorf(opLoad, err)
	}

	return k, nil
}
