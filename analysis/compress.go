// SPDX-License-Identifier: MIT

package analysis

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		return enc
	},
}

// compressZstd returns the zstd frame for data.
func compressZstd(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	enc := zstdEncPool.Get().(*zstd.Encoder)
	enc.Reset(&buf)

	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		zstdEncPool.Put(enc)
		return nil, err
	}
	if err := enc.Close(); err != nil {
		zstdEncPool.Put(enc)
		return nil, err
	}

	zstdEncPool.Put(enc)
	return buf.Bytes(), nil
}

// CompressionRatio returns len(zstd(data)) / len(data).
// Redundant plaintext compresses well (ratio far below 1); ciphertext that
// looks random does not (ratio near or slightly above 1).
// Errors: ErrEmpty, ErrCompress.
func CompressionRatio(data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, analysisErrorf(opCompression, ErrEmpty)
	}
	z, err := compressZstd(data)
	if err != nil {
		return 0, analysisErrorf(opCompression, fmt.Errorf("%w: %w", ErrCompress, err))
	}

	return float64(len(z)) / float64(len(data)), nil
}
