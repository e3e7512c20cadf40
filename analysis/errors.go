// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for an empty sample where a statistic is undefined.
	ErrEmpty = errors.New("analysis: empty input")

	// ErrLengthMismatch is returned when paired samples differ in length.
	ErrLengthMismatch = errors.New("analysis: sample lengths differ")

	// ErrShapeMismatch is returned when two images cannot be compared.
	ErrShapeMismatch = errors.New("analysis: image shapes differ")

	// ErrCompress wraps a zstd encoder failure.
	ErrCompress = errors.New("analysis: compression failed")
)

const (
	opSummarize   = "Summarize"
	opCorrelation = "Correlation"
	opAdjacent    = "AdjacentCorrelation"
	opCompression = "CompressionRatio"
	opCompare     = "Compare"
	opThumbnail   = "Thumbnail"
)

// analysisErrorf wraps err with an operation tag, preserving it for errors.Is.
func analysisErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
