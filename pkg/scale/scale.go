// Package scale computes the uniform enlargement factor that makes a
// page cover a target paper format without cropping or distortion.
package scale

import (
	"errors"
	"fmt"
)

var ErrInvalidGeometry = errors.New("invalid page geometry")

// DefaultThreshold is the per-axis slack, in points, below which a page
// counts as already matching the target and is left untouched.
const DefaultThreshold = 1.0

// Factor returns the uniform scale factor that enlarges a page of
// pageWidth x pageHeight so it covers targetWidth x targetHeight.
// The binding axis is whichever needs the larger enlargement, so the
// other axis ends up at or beyond the target. Pages already meeting or
// exceeding the target on both axes are never shrunk: the factor is
// clamped to 1.0 from below.
//
// All dimensions are in points. Any non-positive input is rejected
// with ErrInvalidGeometry.
func Factor(pageWidth, pageHeight, targetWidth, targetHeight float64) (float64, error) {
	for _, dim := range []float64{pageWidth, pageHeight, targetWidth, targetHeight} {
		if dim <= 0 {
			return 0, fmt.Errorf("%w: %.2f x %.2f -> %.2f x %.2f",
				ErrInvalidGeometry, pageWidth, pageHeight, targetWidth, targetHeight)
		}
	}

	factor := targetWidth / pageWidth
	if f := targetHeight / pageHeight; f > factor {
		factor = f
	}
	if factor < 1.0 {
		factor = 1.0
	}
	return factor, nil
}

// Negligible reports whether applying factor to a page of the given
// dimensions would move either axis by less than threshold points.
// Such pages are skipped so their content streams stay untouched.
func Negligible(factor, pageWidth, pageHeight, threshold float64) bool {
	growth := factor - 1.0
	return growth*pageWidth < threshold && growth*pageHeight < threshold
}
