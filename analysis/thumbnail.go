// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down to fit within maxW×maxH, keeping its aspect
// ratio, with Lanczos3 resampling. Images that already fit are returned
// as is.
// Errors: ErrEmpty when a bound is zero or img is nil.
func Thumbnail(img image.Image, maxW, maxH uint) (image.Image, error) {
	if img == nil || maxW == 0 || maxH == 0 {
		return nil, analysisErrorf(opThumbnail, fmt.Errorf("bounds %dx%d: %w", maxW, maxH, ErrEmpty))
	}

	return resize.Thumbnail(maxW, maxH, img, resize.Lanczos3), nil
}
