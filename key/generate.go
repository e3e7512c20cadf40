// SPDX-License-Identifier: MIT

package key

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/hillimg/matrix"
)

// Generate draws a random invertible size×size key.
// MAIN DESCRIPTION:
//   - Rejection sampling: draw entries uniformly from [0, modulus), keep the
//     first matrix whose determinant is a unit modulo the modulus.
//
// Implementation:
//   - Stage 1: validate size and gather options.
//   - Stage 2: up to maxAttempts times, sample and try FromMatrix.
//   - Stage 3: singular samples are retried; any other error aborts.
//
// Errors:
//   - ErrInvalidKey (size out of bounds), ErrGenerationExhausted,
//     wrapped source read errors.
//
// Determinism:
//   - Fully determined by the byte source (see WithSource).
//
// Notes:
//   - Every returned key passes New: it was built by FromMatrix.
func Generate(size int, opts ...Option) (*Key, error) {
	if size < MinSize || size > MaxSize {
		return nil, keyErrorf(opGenerate, fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidKey, size, MinSize, MaxSize))
	}
	o := gatherOptions(opts)
	s := newSampler(o.source, o.modulus)

	rows := make([][]int64, size)
	for i := range rows {
		rows[i] = make([]int64, size)
	}

	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		for i := range rows {
			for j := range rows[i] {
				v, err := s.next()
				if err != nil {
					return nil, keyErrorf(opGenerate, fmt.Errorf("read random source: %w", err))
				}
				rows[i][j] = v
			}
		}
		m, err := matrix.NewDenseFrom(rows)
		if err != nil {
			return nil, keyErrorf(opGenerate, err)
		}
		k, err := FromMatrix(m, WithModulus(o.modulus))
		if err == nil {
			return k, nil
		}
		if !errors.Is(err, ErrSingularMatrix) {
			return nil, err
		}
	}

	return nil, keyErrorf(opGenerate, fmt.Errorf("%d attempts: %w", o.maxAttempts, ErrGenerationExhausted))
}

// sampler draws uniform residues in [0, n) from a byte stream.
// It reads the fewest whole bytes that cover n-1 and rejects values at or
// above the largest multiple of n, so there is no modulo bias.
type sampler struct {
	r     io.Reader
	n     uint64
	width int    // bytes per draw (1..8)
	limit uint64 // accept v < limit; 0 means the full 64-bit range
	buf   [8]byte
}

func newSampler(r io.Reader, n int64) *sampler {
	s := &sampler{r: r, n: uint64(n)}
	for rem := s.n - 1; rem > 0; rem >>= 8 {
		s.width++
	}
	if s.width == 0 {
		s.width = 1
	}
	if s.width < 8 {
		span := uint64(1) << (8 * uint(s.width))
		s.limit = span - span%s.n
	}

	return s
}

func (s *sampler) next() (int64, error) {
	for {
		clear(s.buf[:])
		if _, err := io.ReadFull(s.r, s.buf[8-s.width:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(s.buf[:])
		if s.limit != 0 && v >= s.limit {
			continue
		}

		return int64(v % s.n), nil
	}
}
