// SPDX-License-Identifier: MIT

package imagecodec

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/hillimg/internal/fileutil"
)

// Format is an image container chosen by file extension.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// JPEGQuality is used when plaintext is written as JPEG.
const JPEGQuality = 95

// FormatFromPath maps a file extension (case-insensitive) to a Format.
// Errors: ErrFormat for unknown extensions.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("extension %q: %w", filepath.Ext(path), ErrFormat)
	}
}

// Lossless reports whether f stores every 8-bit channel of mode exactly.
// GIF is excluded: its 256-color palette quantizes RGB data. BMP is lossless
// for L and RGB only; the bmp encoder does not keep non-opaque alpha.
func (f Format) Lossless(mode Mode) bool {
	switch f {
	case FormatPNG, FormatTIFF:
		return true
	case FormatBMP:
		return mode != ModeRGBA
	default:
		return false
	}
}

// RequireLossless fails with ErrLossyFormat unless path names a format that
// holds mode's channels exactly.
func RequireLossless(path string, mode Mode) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return codecErrorf(opWrite, err)
	}
	if !f.Lossless(mode) {
		return codecErrorf(opWrite, fmt.Errorf("%s cannot hold %s: %w", f, mode, ErrLossyFormat))
	}

	return nil
}

// ReadImage decodes the image at path. BMP and TIFF decoders are registered
// by importing golang.org/x/image.
// Errors: ErrIO (open), ErrFormat (undecodable content).
func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, codecErrorf(opRead, fmt.Errorf("%w: %w", ErrIO, err))
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, codecErrorf(opRead, fmt.Errorf("%s: %w: %w", path, ErrFormat, err))
	}

	return img, nil
}

// WriteImage encodes img to path, picking the encoder from the extension.
// The file is replaced atomically, so a failure leaves no partial output.
// Errors: ErrFormat (unknown extension), ErrIO.
func WriteImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return codecErrorf(opWrite, err)
	}
	err = fileutil.WriteAtomic(path, fileutil.PublicMode, func(w io.Writer) error {
		return encode(w, img, f)
	})
	if err != nil {
		return codecErrorf(opWrite, fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

func encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("format %q: %w", f, ErrFormat)
	}
}

// LoadPixels reads path and converts it with FromImage.
func LoadPixels(path string) (*Pixels, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}

	return FromImage(img)
}

// LoadPixelsMode reads path and converts it to mode, as decryption does
// with the mode recorded in the sidecar.
func LoadPixelsMode(path string, mode Mode) (*Pixels, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}

	return FromImageMode(img, mode)
}

// SavePixels renders p and writes it to path.
func SavePixels(path string, p *Pixels) error {
	img, err := p.ToImage()
	if err != nil {
		return err
	}

	return WriteImage(path, img)
}
