// SPDX-License-Identifier: MIT

package imagecodec

import "fmt"

// Mode tags the pixel layout, using the names image tools put in sidecars.
type Mode string

const (
	// ModeL is single-channel 8-bit grayscale; shape [H, W].
	ModeL Mode = "L"
	// ModeRGB is three-channel 8-bit color; shape [H, W, 3].
	ModeRGB Mode = "RGB"
	// ModeRGBA is three-channel color plus alpha; shape [H, W, 4].
	ModeRGBA Mode = "RGBA"
)

// Channels returns the channel count of m, or 0 for an unknown mode.
func (m Mode) Channels() int {
	switch m {
	case ModeL:
		return 1
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	default:
		return 0
	}
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool { return m.Channels() > 0 }

// ParseMode validates a mode tag read from a sidecar or flag.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("mode %q: %w", s, ErrFormat)
	}

	return m, nil
}

// validateShape checks that shape is well-formed for mode and returns the
// total element count.
//   - L:        [H, W]
//   - RGB/RGBA: [H, W, C] with C == mode.Channels()
func validateShape(shape []int, mode Mode) (int, error) {
	if !mode.Valid() {
		return 0, fmt.Errorf("mode %q: %w", mode, ErrFormat)
	}
	want := 3
	if mode == ModeL {
		want = 2
	}
	if len(shape) != want {
		return 0, fmt.Errorf("shape %v for mode %s: %w", shape, mode, ErrFormat)
	}
	if want == 3 && shape[2] != mode.Channels() {
		return 0, fmt.Errorf("shape %v has %d channels, mode %s needs %d: %w", shape, shape[2], mode, mode.Channels(), ErrFormat)
	}
	if shape[0] <= 0 || shape[1] <= 0 {
		return 0, fmt.Errorf("shape %v: %w", shape, ErrFormat)
	}

	return shape[0] * shape[1] * mode.Channels(), nil
}
