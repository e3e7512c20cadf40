// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillimg/imagecodec"
)

// ImageStats describes one image of a comparison.
type ImageStats struct {
	Shape       []int
	Mode        imagecodec.Mode
	Summary     Summary
	Entropy     float64
	Adjacent    [3]float64 // indexed by Direction
	Compression float64
}

// Report compares a plaintext image with its ciphertext.
type Report struct {
	Plain            ImageStats
	Cipher           ImageStats
	Correlation      float64
	CorrelationGrade Grade
	EntropyGrade     Grade
}

// Compare computes a Report for a plaintext/ciphertext pair.
// MAIN DESCRIPTION:
//   - Both images are summarised independently.
//   - The cross correlation pairs values at the same flat index, so the
//     shapes must match.
//
// Errors:
//   - imagecodec.ErrFormat (invalid input), ErrShapeMismatch.
func Compare(plain, cipher *imagecodec.Pixels) (Report, error) {
	ps, err := describe(plain)
	if err != nil {
		return Report{}, analysisErrorf(opCompare, err)
	}
	cs, err := describe(cipher)
	if err != nil {
		return Report{}, analysisErrorf(opCompare, err)
	}
	if len(plain.Pix) != len(cipher.Pix) || plain.Mode != cipher.Mode {
		return Report{}, analysisErrorf(opCompare, fmt.Errorf("%v %s vs %v %s: %w",
			plain.Shape, plain.Mode, cipher.Shape, cipher.Mode, ErrShapeMismatch))
	}
	r, err := Correlation(plain.Pix, cipher.Pix)
	if err != nil {
		return Report{}, analysisErrorf(opCompare, err)
	}

	return Report{
		Plain:            ps,
		Cipher:           cs,
		Correlation:      r,
		CorrelationGrade: GradeCorrelation(r),
		EntropyGrade:     GradeEntropy(cs.Entropy),
	}, nil
}

func describe(p *imagecodec.Pixels) (ImageStats, error) {
	if err := p.Validate(); err != nil {
		return ImageStats{}, err
	}
	s, err := Summarize(p.Pix)
	if err != nil {
		return ImageStats{}, err
	}
	cr, err := CompressionRatio(p.Pix)
	if err != nil {
		return ImageStats{}, err
	}
	st := ImageStats{
		Shape:       append([]int(nil), p.Shape...),
		Mode:        p.Mode,
		Summary:     s,
		Entropy:     Entropy(p.Pix),
		Compression: cr,
	}
	for d := Horizontal; d <= Diagonal; d++ {
		// A 1-pixel-wide or 1-pixel-tall image has no pairs in some
		// directions; those stay 0.
		if r, err := AdjacentCorrelation(p, d); err == nil {
			st.Adjacent[d] = r
		}
	}

	return st, nil
}

// String renders the report as plain text.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("=== IMAGE ANALYSIS RESULTS ===\n\n")
	writeStats(&b, "Original Image", r.Plain)
	writeStats(&b, "Encrypted Image", r.Cipher)
	fmt.Fprintf(&b, "Correlation Coefficient: %.6f\n", r.Correlation)
	fmt.Fprintf(&b, "Encryption Quality: %s\n", r.CorrelationGrade)
	fmt.Fprintf(&b, "Entropy Increase: %.4f bits\n", r.Cipher.Entropy-r.Plain.Entropy)
	fmt.Fprintf(&b, "Entropy Quality: %s\n", r.EntropyGrade)

	return b.String()
}

func writeStats(b *strings.Builder, title string, s ImageStats) {
	fmt.Fprintf(b, "%s:\n", title)
	fmt.Fprintf(b, "  Shape: %v\n", s.Shape)
	fmt.Fprintf(b, "  Mode: %s\n", s.Mode)
	fmt.Fprintf(b, "  Min value: %d\n", s.Summary.Min)
	fmt.Fprintf(b, "  Max value: %d\n", s.Summary.Max)
	fmt.Fprintf(b, "  Mean: %.2f\n", s.Summary.Mean)
	fmt.Fprintf(b, "  Std Dev: %.2f\n", s.Summary.StdDev)
	fmt.Fprintf(b, "  Entropy: %.4f bits\n", s.Entropy)
	fmt.Fprintf(b, "  Adjacent correlation (h/v/d): %.4f / %.4f / %.4f\n", s.Adjacent[Horizontal], s.Adjacent[Vertical], s.Adjacent[Diagonal])
	fmt.Fprintf(b, "  zstd ratio: %.3f\n\n", s.Compression)
}
