// SPDX-License-Identifier: MIT

package imagecodec

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage converts a decoded image into Pixels, choosing the mode from
// the image itself:
//   - *image.Gray, *image.Gray16 and all-gray opaque palettes → ModeL,
//   - other opaque images → ModeRGB,
//   - everything else → ModeRGBA (non-premultiplied, so ciphertext alpha
//     survives exactly).
func FromImage(img image.Image) (*Pixels, error) {
	if img == nil {
		return nil, codecErrorf(opFromImage, fmt.Errorf("nil image: %w", ErrFormat))
	}

	return FromImageMode(img, detectMode(img))
}

// FromImageMode converts img into Pixels of the requested mode.
// Errors: ErrFormat (nil or empty image, unknown mode).
func FromImageMode(img image.Image, mode Mode) (*Pixels, error) {
	if img == nil {
		return nil, codecErrorf(opFromImage, fmt.Errorf("nil image: %w", ErrFormat))
	}
	if !mode.Valid() {
		return nil, codecErrorf(opFromImage, fmt.Errorf("mode %q: %w", mode, ErrFormat))
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, codecErrorf(opFromImage, fmt.Errorf("empty image %v: %w", b, ErrFormat))
	}

	nc := mode.Channels()
	shape := []int{h, w, nc}
	if mode == ModeL {
		shape = shape[:2]
	}
	pix := make([]uint8, h*w*nc)

	switch src := img.(type) {
	case *image.Gray:
		if mode == ModeL {
			for y := 0; y < h; y++ {
				copy(pix[y*w:(y+1)*w], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
			}

			return &Pixels{Shape: shape, Mode: mode, Pix: pix}, nil
		}
	case *image.NRGBA:
		if mode == ModeRGBA {
			for y := 0; y < h; y++ {
				copy(pix[y*w*4:(y+1)*w*4], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
			}

			return &Pixels{Shape: shape, Mode: mode, Pix: pix}, nil
		}
	}

	var i int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if mode == ModeL {
				pix[i] = color.GrayModel.Convert(c).(color.Gray).Y
				i++
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			pix[i], pix[i+1], pix[i+2] = n.R, n.G, n.B
			if nc == 4 {
				pix[i+3] = n.A
			}
			i += nc
		}
	}

	return &Pixels{Shape: shape, Mode: mode, Pix: pix}, nil
}

func detectMode(img image.Image) Mode {
	switch src := img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeL
	case *image.Paletted:
		if grayPalette(src.Palette) {
			return ModeL
		}
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return ModeRGB
	}

	return ModeRGBA
}

// grayPalette reports whether every palette entry is an opaque gray.
func grayPalette(p color.Palette) bool {
	for _, c := range p {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		if n.A != 0xff || n.R != n.G || n.G != n.B {
			return false
		}
	}

	return len(p) > 0
}

// ToImage renders p as *image.Gray (ModeL) or *image.NRGBA (RGB, RGBA).
// RGB pixels get an opaque alpha channel.
func (p *Pixels) ToImage() (image.Image, error) {
	if err := p.Validate(); err != nil {
		return nil, codecErrorf(opToImage, err)
	}
	h, w := p.Height(), p.Width()
	r := image.Rect(0, 0, w, h)

	switch p.Mode {
	case ModeL:
		g := image.NewGray(r)
		copy(g.Pix, p.Pix)

		return g, nil
	case ModeRGBA:
		n := image.NewNRGBA(r)
		copy(n.Pix, p.Pix)

		return n, nil
	default:
		n := image.NewNRGBA(r)
		for i, j := 0, 0; i < len(p.Pix); i, j = i+3, j+4 {
			n.Pix[j], n.Pix[j+1], n.Pix[j+2], n.Pix[j+3] = p.Pix[i], p.Pix[i+1], p.Pix[i+2], 0xff
		}

		return n, nil
	}
}
