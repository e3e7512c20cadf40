// SPDX-License-Identifier: MIT

package block

import "fmt"

// PadLen returns how many zeros Pad appends to a sequence of length n:
// (size - n%size) % size.
func PadLen(n, size int) int {
	return (size - n%size) % size
}

// Pad returns seq extended with zeros to a multiple of size.
// It never truncates and never modifies seq; the result is a fresh slice
// (or seq itself when no padding is needed). Panics if size < 1.
func Pad(seq []uint8, size int) []uint8 {
	if size < 1 {
		panic("block: Pad: size must be >= 1")
	}
	p := PadLen(len(seq), size)
	if p == 0 {
		return seq
	}
	out := make([]uint8, len(seq)+p) // zero-filled tail
	copy(out, seq)

	return out
}

// Partition splits seq into consecutive non-overlapping blocks of length size.
// Blocks alias seq; callers that mutate them mutate seq.
// Errors: ErrInvalidBlockSize, ErrUnaligned.
func Partition(seq []uint8, size int) ([][]uint8, error) {
	if size < 1 {
		return nil, blockErrorf(opPartition, ErrInvalidBlockSize)
	}
	if len(seq)%size != 0 {
		return nil, blockErrorf(opPartition, fmt.Errorf("len %d, size %d: %w", len(seq), size, ErrUnaligned))
	}
	blocks := make([][]uint8, 0, len(seq)/size)
	for i := 0; i < len(seq); i += size {
		blocks = append(blocks, seq[i:i+size:i+size])
	}

	return blocks, nil
}
