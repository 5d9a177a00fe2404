package textmeasure

import "golang.org/x/image/math/fixed"

// unfix converts a fixed.Int26_6 value (1/64 px precision) to float64,
// adapted from the teacher's internal/core/geom.Unfix — font metrics
// (Ascent, Descent, Height, glyph advances) all come back in this format.
func unfix(x fixed.Int26_6) float64 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float64(x>>shift) + float64(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float64(x>>shift) + float64(x&mask)/64)
	}
	return 0
}

// clampF64 constrains x to stay within [lo, hi], adapted from the
// teacher's internal/core/geom.ClampF64.
func clampF64(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
