package raster

import "math"

// composite linearly interpolates a single channel between the existing and
// the incoming value. The real-valued result is rounded half away from zero
// before the cast back to uint8.
//
// Callers handle the cheap boundary cases themselves: opacity >= 1 is a
// direct overwrite that never reaches this function, and opacity <= 0 is
// filtered out before any per-pixel work begins.
func composite(dst, src uint8, opacity float64) uint8 {
	return uint8(math.Round(float64(dst)*(1-opacity) + float64(src)*opacity))
}
