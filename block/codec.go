// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"github.com/katalvlaran/hillimg/key"
	"github.com/katalvlaran/hillimg/matrix"
)

// byteModulus is the only ring a []uint8 block can hold exactly: a smaller
// modulus would fold byte values at or above it.
const byteModulus = 256

// kernel is a flattened, reduced square matrix ready for repeated block
// products. Building it once per sequence keeps bounds checks and clones
// out of the per-block loop.
type kernel struct {
	n   int
	m   []int64 // row-major, entries in [0, mod)
	mod int64
	acc []int64 // scratch: one accumulator per output row
}

func newKernel(d *matrix.Dense, mod int64) (*kernel, error) {
	if err := matrix.ValidateSquareNonNil(d); err != nil {
		return nil, err
	}
	if mod != byteModulus {
		return nil, fmt.Errorf("%d: %w", mod, ErrModulus)
	}
	n := d.Rows()

	return &kernel{
		n:   n,
		m:   matrix.ReduceMod(d, mod).Data(),
		mod: mod,
		acc: make([]int64, n),
	}, nil
}

// apply overwrites b with (M·b) mod m. len(b) must equal k.n.
func (k *kernel) apply(b []uint8) {
	var i, j int
	var s int64
	for i = 0; i < k.n; i++ {
		s = 0
		for j = 0; j < k.n; j++ {
			s += k.m[i*k.n+j] * int64(b[j])
		}
		k.acc[i] = s % k.mod
	}
	for i = 0; i < k.n; i++ {
		b[i] = uint8(k.acc[i])
	}
}

// Transform returns (M·b) mod m as a new block: out[i] = Σ_j M[i][j]·b[j] mod m,
// each value coerced to uint8.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrModulus, ErrBlockSize.
func Transform(b []uint8, m *matrix.Dense, mod int64) ([]uint8, error) {
	k, err := newKernel(m, mod)
	if err != nil {
		return nil, blockErrorf(opTransform, err)
	}
	if len(b) != k.n {
		return nil, blockErrorf(opTransform, fmt.Errorf("len %d, want %d: %w", len(b), k.n, ErrBlockSize))
	}
	out := make([]uint8, len(b))
	copy(out, b)
	k.apply(out)

	return out, nil
}

// EncryptBlock multiplies b by the key matrix modulo the key's modulus.
// Errors: ErrNilKey, ErrBlockSize, ErrModulus.
func EncryptBlock(b []uint8, k *key.Key) ([]uint8, error) {
	if k == nil {
		return nil, blockErrorf(opEncrypt, ErrNilKey)
	}
	out, err := Transform(b, k.Forward(), k.Modulus())
	if err != nil {
		return nil, blockErrorf(opEncrypt, err)
	}

	return out, nil
}

// DecryptBlock multiplies b by the key's cached inverse.
// DecryptBlock(EncryptBlock(b, k), k) == b for every valid key and block.
// Errors: ErrNilKey, ErrBlockSize, ErrModulus.
func DecryptBlock(b []uint8, k *key.Key) ([]uint8, error) {
	if k == nil {
		return nil, blockErrorf(opDecrypt, ErrNilKey)
	}
	out, err := Transform(b, k.Inverse(), k.Modulus())
	if err != nil {
		return nil, blockErrorf(opDecrypt, err)
	}

	return out, nil
}

// EncryptSequence encrypts a whole single-channel sequence.
// MAIN DESCRIPTION:
//   - Pad with zeros to a multiple of the key size, encrypt every block, then
//     split the result into body (same length as seq) and tail (the encrypted
//     padding, PadLen(len(seq), N) values).
//
// Behavior highlights:
//   - seq is never modified; body and tail are independent slices.
//   - An empty seq yields empty body and tail.
//
// Errors:
//   - ErrNilKey, ErrModulus.
//
// Complexity:
//   - Time O(len(seq) · N), Space O(len(seq) + N).
func EncryptSequence(seq []uint8, k *key.Key) (body, tail []uint8, err error) {
	if k == nil {
		return nil, nil, blockErrorf(opEncSeq, ErrNilKey)
	}
	kern, err := newKernel(k.Forward(), k.Modulus())
	if err != nil {
		return nil, nil, blockErrorf(opEncSeq, err)
	}

	n := len(seq)
	buf := make([]uint8, n+PadLen(n, kern.n))
	copy(buf, seq)
	for i := 0; i < len(buf); i += kern.n {
		kern.apply(buf[i : i+kern.n])
	}

	tail = make([]uint8, len(buf)-n)
	copy(tail, buf[n:])

	return buf[:n:n], tail, nil
}

// DecryptSequence inverts EncryptSequence.
// MAIN DESCRIPTION:
//   - Re-attach the encrypted padding tail, decrypt every block with the
//     cached inverse, truncate to len(body).
//
// Behavior highlights:
//   - tail == nil means "not recorded": zeros are used instead, which is
//     exact whenever len(body) is a multiple of N and only approximates the
//     final partial block otherwise.
//
// Errors:
//   - ErrNilKey, ErrModulus, ErrTailLength.
func DecryptSequence(body, tail []uint8, k *key.Key) ([]uint8, error) {
	if k == nil {
		return nil, blockErrorf(opDecSeq, ErrNilKey)
	}
	kern, err := newKernel(k.Inverse(), k.Modulus())
	if err != nil {
		return nil, blockErrorf(opDecSeq, err)
	}

	n := len(body)
	p := PadLen(n, kern.n)
	if tail != nil && len(tail) != p {
		return nil, blockErrorf(opDecSeq, fmt.Errorf("got %d, want %d: %w", len(tail), p, ErrTailLength))
	}
	buf := make([]uint8, n+p)
	copy(buf, body)
	copy(buf[n:], tail)
	for i := 0; i < len(buf); i += kern.n {
		kern.apply(buf[i : i+kern.n])
	}

	return buf[:n:n], nil
}
