// SPDX-License-Identifier: MIT

package imagecodec

import (
	"bytes"
	"fmt"
)

// Pixels is a decoded 8-bit image.
//   - Shape is [H, W] for ModeL and [H, W, C] otherwise.
//   - Pix is row-major and channel-interleaved: the value of channel c at
//     (y, x) lives at Pix[(y*W+x)*C + c].
type Pixels struct {
	Shape []int
	Mode  Mode
	Pix   []uint8
}

// NewPixels validates shape, mode and length and wraps pix without copying.
// Errors: ErrFormat.
func NewPixels(shape []int, mode Mode, pix []uint8) (*Pixels, error) {
	p := &Pixels{Shape: append([]int(nil), shape...), Mode: mode, Pix: pix}
	if err := p.Validate(); err != nil {
		return nil, codecErrorf(opNewPixels, err)
	}

	return p, nil
}

// Validate checks the shape/mode pairing and len(Pix).
func (p *Pixels) Validate() error {
	if p == nil {
		return fmt.Errorf("nil pixels: %w", ErrFormat)
	}
	n, err := validateShape(p.Shape, p.Mode)
	if err != nil {
		return err
	}
	if len(p.Pix) != n {
		return fmt.Errorf("%d values for shape %v: %w", len(p.Pix), p.Shape, ErrFormat)
	}

	return nil
}

// Height returns the number of rows.
func (p *Pixels) Height() int { return p.Shape[0] }

// Width returns the number of columns.
func (p *Pixels) Width() int { return p.Shape[1] }

// Channels returns the channel count implied by the mode.
func (p *Pixels) Channels() int { return p.Mode.Channels() }

// Channel returns a copy of channel c as a flat H*W sequence.
// Panics if c is out of range (programmer error).
func (p *Pixels) Channel(c int) []uint8 {
	nc := p.Channels()
	if c < 0 || c >= nc {
		panic(fmt.Sprintf("imagecodec: channel %d out of range [0,%d)", c, nc))
	}
	out := make([]uint8, len(p.Pix)/nc)
	for i := range out {
		out[i] = p.Pix[i*nc+c]
	}

	return out
}

// SetChannel writes v back into channel c.
// Errors: ErrFormat when len(v) != H*W or c is out of range.
func (p *Pixels) SetChannel(c int, v []uint8) error {
	nc := p.Channels()
	if c < 0 || c >= nc {
		return fmt.Errorf("channel %d out of range [0,%d): %w", c, nc, ErrFormat)
	}
	if len(v)*nc != len(p.Pix) {
		return fmt.Errorf("channel length %d, want %d: %w", len(v), len(p.Pix)/nc, ErrFormat)
	}
	for i, b := range v {
		p.Pix[i*nc+c] = b
	}

	return nil
}

// Clone returns a deep copy.
func (p *Pixels) Clone() *Pixels {
	return &Pixels{
		Shape: append([]int(nil), p.Shape...),
		Mode:  p.Mode,
		Pix:   append([]uint8(nil), p.Pix...),
	}
}

// Equal reports identical shape, mode and pixel values.
func (p *Pixels) Equal(o *Pixels) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.Mode != o.Mode || len(p.Shape) != len(o.Shape) {
		return false
	}
	for i := range p.Shape {
		if p.Shape[i] != o.Shape[i] {
			return false
		}
	}

	return bytes.Equal(p.Pix, o.Pix)
}
