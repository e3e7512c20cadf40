// SPDX-License-Identifier: MIT

package imagecodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillimg/imagecodec"
	"github.com/katalvlaran/hillimg/key"
)

var refKey = [][]int64{{3, 2}, {5, 7}}

func mustKey(t testing.TB, rows [][]int64) *key.Key {
	t.Helper()
	k, err := key.New(rows)
	require.NoError(t, err)

	return k
}

// gradient fills a pixel array with a deterministic, non-constant pattern.
func gradient(t testing.TB, shape []int, mode imagecodec.Mode) *imagecodec.Pixels {
	t.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	pix := make([]uint8, n)
	for i := range pix {
		pix[i] = uint8(i*37 + 11)
	}
	p, err := imagecodec.NewPixels(shape, mode, pix)
	require.NoError(t, err)

	return p
}

func TestEncryptImageRGB4x4RoundTrip(t *testing.T) {
	t.Parallel()

	k := mustKey(t, refKey)
	plain := gradient(t, []int{4, 4, 3}, imagecodec.ModeRGB)
	orig := plain.Clone()

	enc, meta, err := imagecodec.EncryptImage(plain, k)
	require.NoError(t, err)
	require.True(t, plain.Equal(orig), "input must not be modified")
	require.Equal(t, []int{4, 4, 3}, enc.Shape)
	require.Equal(t, imagecodec.ModeRGB, enc.Mode)
	require.NotEqual(t, plain.Pix, enc.Pix)

	require.Equal(t, []int{4, 4, 3}, meta.OriginalShape)
	require.Equal(t, imagecodec.ModeRGB, meta.ImageMode)
	require.Equal(t, 2, meta.BlockSize)
	require.Equal(t, refKey, meta.KeyMatrix)
	require.Nil(t, meta.PaddingTail, "16 values per channel leave no padding")

	dec, err := imagecodec.DecryptImage(enc, k, meta)
	require.NoError(t, err)
	require.True(t, dec.Equal(plain))
}

// TestEncryptImagePartialBlock covers a channel of length 5 with a 2×2 key:
// the sequence is padded to 6, truncated back to 5, and decrypts exactly.
func TestEncryptImagePartialBlock(t *testing.T) {
	t.Parallel()

	k := mustKey(t, refKey)
	plain, err := imagecodec.NewPixels([]int{1, 5}, imagecodec.ModeL, []uint8{50, 0, 50, 0, 7})
	require.NoError(t, err)

	enc, meta, err := imagecodec.EncryptImage(plain, k)
	require.NoError(t, err)
	// [50,0] -> [150,250]; [7,0] -> [21,35], of which 35 is the padding tail.
	require.Equal(t, []uint8{150, 250, 150, 250, 21}, enc.Pix)
	require.Equal(t, [][]int{{35}}, meta.PaddingTail)

	dec, err := imagecodec.DecryptImage(enc, k, meta)
	require.NoError(t, err)
	require.Len(t, dec.Pix, 5)
	require.Equal(t, plain.Pix, dec.Pix)
}

func TestEncryptImageAllModes(t *testing.T) {
	t.Parallel()

	keys := map[string][][]int64{
		"2x2": refKey,
		"3x3": {{6, 24, 1}, {13, 16, 10}, {20, 17, 15}},
		"4x4": {{1, 2, 0, 1}, {0, 1, 3, 0}, {2, 0, 1, 1}, {1, 1, 0, 3}},
	}
	images := []struct {
		name  string
		shape []int
		mode  imagecodec.Mode
	}{
		{"L 3x3", []int{3, 3}, imagecodec.ModeL},
		{"RGB 5x3", []int{5, 3, 3}, imagecodec.ModeRGB},
		{"RGBA 7x2", []int{7, 2, 4}, imagecodec.ModeRGBA},
	}
	for kn, rows := range keys {
		k := mustKey(t, rows)
		for _, img := range images {
			t.Run(kn+"/"+img.name, func(t *testing.T) {
				plain := gradient(t, img.shape, img.mode)
				enc, meta, err := imagecodec.EncryptImage(plain, k)
				require.NoError(t, err)
				require.Equal(t, img.shape, enc.Shape)

				dec, err := imagecodec.DecryptImage(enc, k, meta)
				require.NoError(t, err)
				require.True(t, dec.Equal(plain))
			})
		}
	}
}

func TestEncryptImageWithoutEmbeddedKey(t *testing.T) {
	t.Parallel()

	k := mustKey(t, refKey)
	plain := gradient(t, []int{2, 3}, imagecodec.ModeL)
	enc, meta, err := imagecodec.EncryptImage(plain, k, imagecodec.WithEmbeddedKey(false))
	require.NoError(t, err)
	require.Nil(t, meta.KeyMatrix)

	_, err = imagecodec.DecryptImage(enc, nil, meta)
	require.ErrorIs(t, err, imagecodec.ErrNoKey)
	require.ErrorIs(t, err, key.ErrInvalidKey)

	dec, err := imagecodec.DecryptImage(enc, k, meta)
	require.NoError(t, err)
	require.True(t, dec.Equal(plain))
}

func TestDecryptImageEmbeddedKey(t *testing.T) {
	t.Parallel()

	k := mustKey(t, refKey)
	plain := gradient(t, []int{3, 3, 3}, imagecodec.ModeRGB)
	enc, meta, err := imagecodec.EncryptImage(plain, k)
	require.NoError(t, err)

	dec, err := imagecodec.DecryptImage(enc, nil, meta)
	require.NoError(t, err)
	require.True(t, dec.Equal(plain))
}

// TestDecryptImageWithoutMetadata relies on the ciphertext's own shape,
// which is exact when every channel length is a multiple of the key size.
func TestDecryptImageWithoutMetadata(t *testing.T) {
	t.Parallel()

	k := mustKey(t, refKey)
	plain := gradient(t, []int{2, 2, 4}, imagecodec.ModeRGBA)
	enc, _, err := imagecodec.EncryptImage(plain, k)
	require.NoError(t, err)

	dec, err := imagecodec.DecryptImage(enc, k, nil)
	require.NoError(t, err)
	require.True(t, dec.Equal(plain))
}

func TestDecryptImageErrors(t *testing.T) {
	t.Parallel()

	k := mustKey(t, refKey)
	plain := gradient(t, []int{2, 2, 3}, imagecodec.ModeRGB)
	enc, meta, err := imagecodec.EncryptImage(plain, k)
	require.NoError(t, err)

	t.Run("no shape anywhere", func(t *testing.T) {
		_, err := imagecodec.DecryptImage(&imagecodec.Pixels{Pix: enc.Pix}, k, nil)
		require.ErrorIs(t, err, imagecodec.ErrMissingMetadata)
	})
	t.Run("element count mismatch", func(t *testing.T) {
		short := &imagecodec.Pixels{Pix: enc.Pix[:9]}
		_, err := imagecodec.DecryptImage(short, k, meta)
		require.ErrorIs(t, err, imagecodec.ErrFormat)
	})
	t.Run("block size mismatch", func(t *testing.T) {
		bad := *meta
		bad.BlockSize = 3
		_, err := imagecodec.DecryptImage(enc, k, &bad)
		require.ErrorIs(t, err, key.ErrInvalidKey)
	})
	t.Run("unknown mode", func(t *testing.T) {
		bad := *meta
		bad.ImageMode = "CMYK"
		_, err := imagecodec.DecryptImage(enc, k, &bad)
		require.ErrorIs(t, err, imagecodec.ErrFormat)
	})
	t.Run("nil pixels", func(t *testing.T) {
		_, err := imagecodec.DecryptImage(nil, k, meta)
		require.ErrorIs(t, err, imagecodec.ErrFormat)
	})
}

func TestEncryptImageErrors(t *testing.T) {
	t.Parallel()

	_, _, err := imagecodec.EncryptImage(gradient(t, []int{2, 2}, imagecodec.ModeL), nil)
	require.ErrorIs(t, err, imagecodec.ErrNoKey)

	bad := &imagecodec.Pixels{Shape: []int{2, 2}, Mode: imagecodec.ModeL, Pix: make([]uint8, 3)}
	_, _, err = imagecodec.EncryptImage(bad, mustKey(t, refKey))
	require.ErrorIs(t, err, imagecodec.ErrFormat)
}

// TestNonByteModulusRejected: a key over ℤ/251ℤ would fold the values 251..255
// and its modulus is not recorded in the sidecar, so both directions refuse it.
func TestNonByteModulusRejected(t *testing.T) {
	t.Parallel()

	small, err := key.New(refKey, key.WithModulus(251))
	require.NoError(t, err)
	plain, err := imagecodec.NewPixels([]int{1, 2}, imagecodec.ModeL, []uint8{255, 254})
	require.NoError(t, err)

	_, _, err = imagecodec.EncryptImage(plain, small)
	require.ErrorIs(t, err, key.ErrInvalidKey)

	enc, meta, err := imagecodec.EncryptImage(plain, mustKey(t, refKey))
	require.NoError(t, err)
	_, err = imagecodec.DecryptImage(enc, small, meta)
	require.ErrorIs(t, err, key.ErrInvalidKey)

	dec, err := imagecodec.DecryptImage(enc, nil, meta)
	require.NoError(t, err)
	require.Equal(t, []uint8{255, 254}, dec.Pix)
}
