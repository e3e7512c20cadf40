// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hillimg/imagecodec"
)

// Direction selects the neighbour used by AdjacentCorrelation.
type Direction int

const (
	// Horizontal pairs (y, x) with (y, x+1).
	Horizontal Direction = iota
	// Vertical pairs (y, x) with (y+1, x).
	Vertical
	// Diagonal pairs (y, x) with (y+1, x+1).
	Diagonal
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Correlation returns the Pearson correlation coefficient of a and b.
// MAIN DESCRIPTION:
//   - r = Σ(a-ā)(b-b̄) / sqrt(Σ(a-ā)² · Σ(b-b̄)²).
//
// Behavior highlights:
//   - A constant sample has zero variance; the coefficient is reported as 0
//     rather than NaN.
//
// Errors:
//   - ErrEmpty, ErrLengthMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func Correlation(a, b []uint8) (float64, error) {
	if len(a) != len(b) {
		return 0, analysisErrorf(opCorrelation, fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrLengthMismatch))
	}
	if len(a) == 0 {
		return 0, analysisErrorf(opCorrelation, ErrEmpty)
	}

	n := float64(len(a))
	var sa, sb float64
	for i := range a {
		sa += float64(a[i])
		sb += float64(b[i])
	}
	ma, mb := sa/n, sb/n

	var cov, va, vb, da, db float64
	for i := range a {
		da = float64(a[i]) - ma
		db = float64(b[i]) - mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return 0, nil
	}

	return cov / math.Sqrt(va*vb), nil
}

// AdjacentCorrelation correlates every pixel with its neighbour in
// direction d, pooling the pairs of all channels.
// Errors: ErrFormat (invalid p), ErrEmpty (no pair exists, e.g. width 1
// for Horizontal).
func AdjacentCorrelation(p *imagecodec.Pixels, d Direction) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, analysisErrorf(opAdjacent, err)
	}
	dy, dx := 0, 1
	switch d {
	case Vertical:
		dy, dx = 1, 0
	case Diagonal:
		dy, dx = 1, 1
	}

	h, w, nc := p.Height(), p.Width(), p.Channels()
	pairs := nc * (h - dy) * (w - dx)
	if pairs <= 0 {
		return 0, analysisErrorf(opAdjacent, fmt.Errorf("%s on %dx%d: %w", d, h, w, ErrEmpty))
	}
	a := make([]uint8, 0, pairs)
	b := make([]uint8, 0, pairs)
	var y, x, c int
	for y = 0; y+dy < h; y++ {
		for x = 0; x+dx < w; x++ {
			for c = 0; c < nc; c++ {
				a = append(a, p.Pix[(y*w+x)*nc+c])
				b = append(b, p.Pix[((y+dy)*w+x+dx)*nc+c])
			}
		}
	}

	r, err := Correlation(a, b)
	if err != nil {
		return 0, analysisErrorf(opAdjacent, err)
	}

	return r, nil
}
