// SPDX-License-Identifier: MIT

package imagecodec_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillimg/imagecodec"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]imagecodec.Format{
		"a.png":  imagecodec.FormatPNG,
		"a.JPG":  imagecodec.FormatJPEG,
		"a.jpeg": imagecodec.FormatJPEG,
		"a.gif":  imagecodec.FormatGIF,
		"a.bmp":  imagecodec.FormatBMP,
		"a.tif":  imagecodec.FormatTIFF,
		"a.TIFF": imagecodec.FormatTIFF,
	}
	for path, want := range tests {
		got, err := imagecodec.FormatFromPath(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	_, err := imagecodec.FormatFromPath("a.webp")
	require.ErrorIs(t, err, imagecodec.ErrFormat)
}

func TestRequireLossless(t *testing.T) {
	t.Parallel()

	for _, mode := range []imagecodec.Mode{imagecodec.ModeL, imagecodec.ModeRGB, imagecodec.ModeRGBA} {
		require.NoError(t, imagecodec.RequireLossless("x.png", mode), mode)
		require.NoError(t, imagecodec.RequireLossless("x.tiff", mode), mode)
		require.ErrorIs(t, imagecodec.RequireLossless("x.gif", mode), imagecodec.ErrLossyFormat, mode)
	}
	require.NoError(t, imagecodec.RequireLossless("x.bmp", imagecodec.ModeL))
	require.NoError(t, imagecodec.RequireLossless("x.bmp", imagecodec.ModeRGB))
	require.ErrorIs(t, imagecodec.RequireLossless("x.bmp", imagecodec.ModeRGBA), imagecodec.ErrLossyFormat)

	err := imagecodec.RequireLossless("x.jpg", imagecodec.ModeL)
	require.ErrorIs(t, err, imagecodec.ErrLossyFormat)
	require.ErrorIs(t, err, imagecodec.ErrFormat)
	require.ErrorIs(t, imagecodec.RequireLossless("x.webp", imagecodec.ModeL), imagecodec.ErrFormat)
}

// TestFileRoundTrip writes ciphertext to disk, reads it back in the mode
// the sidecar records and decrypts it.
func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	k := mustKey(t, refKey)
	cases := []struct {
		ext   string
		shape []int
		mode  imagecodec.Mode
	}{
		{".png", []int{5, 7}, imagecodec.ModeL},
		{".png", []int{5, 7, 3}, imagecodec.ModeRGB},
		{".png", []int{5, 7, 4}, imagecodec.ModeRGBA},
		{".bmp", []int{5, 7}, imagecodec.ModeL},
		{".bmp", []int{5, 7, 3}, imagecodec.ModeRGB},
		{".tiff", []int{5, 7}, imagecodec.ModeL},
		{".tiff", []int{5, 7, 3}, imagecodec.ModeRGB},
		{".tiff", []int{5, 7, 4}, imagecodec.ModeRGBA},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode)+tc.ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "enc"+tc.ext)
			require.NoError(t, imagecodec.RequireLossless(path, tc.mode))

			plain := gradient(t, tc.shape, tc.mode)
			enc, meta, err := imagecodec.EncryptImage(plain, k)
			require.NoError(t, err)

			require.NoError(t, imagecodec.SavePixels(path, enc))

			back, err := imagecodec.LoadPixelsMode(path, meta.ImageMode)
			require.NoError(t, err)
			require.True(t, back.Equal(enc), "container must preserve ciphertext bytes")

			dec, err := imagecodec.DecryptImage(back, k, meta)
			require.NoError(t, err)
			require.True(t, dec.Equal(plain))
		})
	}
}

func TestReadImageErrors(t *testing.T) {
	t.Parallel()

	_, err := imagecodec.ReadImage(filepath.Join(t.TempDir(), "none.png"))
	require.ErrorIs(t, err, imagecodec.ErrIO)

	require.ErrorIs(t, imagecodec.WriteImage("x.webp", image.NewGray(image.Rect(0, 0, 1, 1))), imagecodec.ErrFormat)
}

func TestFromImageDetectsMode(t *testing.T) {
	t.Parallel()

	r := image.Rect(0, 0, 2, 2)

	gray := image.NewGray(r)
	gray.SetGray(1, 1, color.Gray{Y: 200})
	p, err := imagecodec.FromImage(gray)
	require.NoError(t, err)
	require.Equal(t, imagecodec.ModeL, p.Mode)
	require.Equal(t, []int{2, 2}, p.Shape)
	require.Equal(t, []uint8{0, 0, 0, 200}, p.Pix)

	opaque := image.NewNRGBA(r)
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}
	opaque.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})
	p, err = imagecodec.FromImage(opaque)
	require.NoError(t, err)
	require.Equal(t, imagecodec.ModeRGB, p.Mode)
	require.Equal(t, []uint8{1, 2, 3}, p.Pix[:3])

	translucent := image.NewNRGBA(r)
	translucent.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	p, err = imagecodec.FromImage(translucent)
	require.NoError(t, err)
	require.Equal(t, imagecodec.ModeRGBA, p.Mode)
	require.Equal(t, []uint8{10, 20, 30, 40}, p.Pix[:4])

	pal := image.NewPaletted(r, color.Palette{color.Gray{Y: 0}, color.Gray{Y: 128}})
	pal.SetColorIndex(0, 1, 1)
	p, err = imagecodec.FromImage(pal)
	require.NoError(t, err)
	require.Equal(t, imagecodec.ModeL, p.Mode)
	require.Equal(t, []uint8{0, 0, 128, 0}, p.Pix)
}

func TestToImage(t *testing.T) {
	t.Parallel()

	p, err := imagecodec.NewPixels([]int{1, 2, 3}, imagecodec.ModeRGB, []uint8{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	img, err := p.ToImage()
	require.NoError(t, err)
	n, ok := img.(*image.NRGBA)
	require.True(t, ok)
	require.Equal(t, []uint8{1, 2, 3, 255, 4, 5, 6, 255}, n.Pix)

	back, err := imagecodec.FromImageMode(img, imagecodec.ModeRGB)
	require.NoError(t, err)
	require.True(t, back.Equal(p))

	_, err = imagecodec.FromImage(nil)
	require.ErrorIs(t, err, imagecodec.ErrFormat)
}
