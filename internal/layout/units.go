// Package layout computes joint cut patterns from physical board
// measurements. Everything here is pure math over millimeters; the render
// and export packages decide how the resulting spans and tails end up on
// paper.
package layout

import "math"

// mmPerInch is the definition underlying every mm/DPI conversion.
const mmPerInch = 25.4

// PxPerMm returns the raster scale factor for a resolution.
func PxPerMm(dpi int) float64 {
	return float64(dpi) / mmPerInch
}

// MmToPx converts a physical length to whole pixels. Rounding is
// half-away-from-zero and every conversion in a request goes through this
// function, so adjacent converted lengths never disagree by an off-by-one.
func MmToPx(mm float64, dpi int) int {
	return int(math.Round(mm * PxPerMm(dpi)))
}
