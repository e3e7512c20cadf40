// SPDX-License-Identifier: MIT
// Package: analysis
//
// Purpose:
//   - Byte-level descriptive statistics: histogram, entropy, min/max/mean/std.
//
// Determinism & Performance:
//   - Single pass over the input per statistic; no allocation beyond the
//     fixed 256-bin histogram.

package analysis

import (
	"math"

	"github.com/katalvlaran/hillimg/imagecodec"
)

// Bins is the number of histogram bins, one per byte value.
const Bins = 256

// Histogram counts occurrences of each byte value.
func Histogram(values []uint8) [Bins]int {
	var h [Bins]int
	for _, v := range values {
		h[v]++
	}

	return h
}

// ChannelHistograms returns one histogram per channel of p, in channel order.
func ChannelHistograms(p *imagecodec.Pixels) [][Bins]int {
	nc := p.Channels()
	out := make([][Bins]int, nc)
	for i, v := range p.Pix {
		out[i%nc][v]++
	}

	return out
}

// Entropy returns the Shannon entropy of values in bits per symbol:
// H = -Σ p_i · log2(p_i) over the non-empty bins.
// An empty input has entropy 0. The maximum is 8.
func Entropy(values []uint8) float64 {
	if len(values) == 0 {
		return 0
	}
	h := Histogram(values)
	n := float64(len(values))
	var e, p float64
	for _, c := range h {
		if c == 0 {
			continue
		}
		p = float64(c) / n
		e -= p * math.Log2(p)
	}

	return e
}

// Summary holds descriptive statistics of a byte sample.
type Summary struct {
	Min, Max uint8
	Mean     float64
	StdDev   float64 // population standard deviation
}

// Summarize computes min, max, mean and population standard deviation.
// Errors: ErrEmpty.
func Summarize(values []uint8) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, analysisErrorf(opSummarize, ErrEmpty)
	}
	s := Summary{Min: values[0], Max: values[0]}
	var sum float64
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += float64(v)
	}
	n := float64(len(values))
	s.Mean = sum / n

	var ss, d float64
	for _, v := range values {
		d = float64(v) - s.Mean
		ss += d * d
	}
	s.StdDev = math.Sqrt(ss / n)

	return s, nil
}
