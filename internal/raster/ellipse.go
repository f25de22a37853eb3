package raster

import "math"

// DrawEllipse draws an ellipse centered at (cx, cy) with the given semi-axis
// lengths; a circle is the equal-axis case.
//
// The call is a no-op unless both axes are positive, opacity is
// non-negative, and the full bounding box (center ± axis on both dimensions)
// lies inside the buffer — ellipses are never partially clipped. A zero
// thickness fills the ellipse; a positive thickness draws that many nested
// one-pixel outline rings. A thickness of min(hAxis, vAxis) or more is
// equivalent to the filled shape, which is also how over-large requests are
// clamped.
//
// Only one quadrant's boundary is computed; every write is mirrored about
// the center into the other three. The boundary is walked in two passes that
// meet where its local slope reaches unit magnitude (radius/sqrt2 for a
// circle): an x-driven pass over the flat top arc and a y-driven pass over
// the steep side arc, with the seam scanline handled exactly once.
func (b *Buffer) DrawEllipse(cx, cy, hAxis, vAxis int, c Color, thickness int, opacity float64) {
	if hAxis <= 0 || vAxis <= 0 || opacity < 0 || len(c) != Channels {
		return
	}
	if cx-hAxis < 0 || cx+hAxis >= b.width || cy-vAxis < 0 || cy+vAxis >= b.height {
		return
	}
	if thickness == 0 || thickness >= min(hAxis, vAxis) {
		b.fillEllipse(cx, cy, hAxis, vAxis, c, opacity)
		return
	}
	for i := 0; i < thickness; i++ {
		b.outlineEllipse(cx, cy, hAxis-i, vAxis-i, c, opacity)
	}
}

// fillEllipse writes the solid interior as horizontal spans, one per row,
// each row exactly once. Pixels outside the implicit boundary are never
// written.
//
// Rows flatter than the 45-degree-equivalent point get their half-width
// directly from the implicit curve (y-driven). The remaining rows near the
// top are closed out by walking the boundary column by column and filling
// each row the moment the curve drops past it (x-driven).
func (b *Buffer) fillEllipse(cx, cy, a, v int, c Color, opacity float64) {
	af, vf := float64(a), float64(v)
	diag := math.Sqrt(af*af + vf*vf)

	// y-driven rows: |slope| <= 1, one span per row from the curve.
	yLimit := int(vf * vf / diag)
	for dy := 0; dy <= yLimit; dy++ {
		t := float64(dy) / vf
		xv := af * math.Sqrt(1 - t*t)
		b.mirrorSpan(cx, cy, int(math.Floor(xv+epsilon)), dy, c, opacity)
	}

	// x-driven rows: walk the top arc; a row is complete when the boundary
	// height falls below it, and its half-width is the previous column.
	xLimit := int(af * af / diag)
	top := v
	for dx := 1; dx <= xLimit; dx++ {
		t := float64(dx) / af
		reach := int(math.Floor(vf*math.Sqrt(1-t*t) + epsilon))
		for row := top; row > reach; row-- {
			if row > yLimit {
				b.mirrorSpan(cx, cy, dx-1, row, c, opacity)
			}
		}
		top = min(top, reach)
	}
	// The seam: rows the walk never closed belong to the widest column.
	for row := top; row > yLimit; row-- {
		b.mirrorSpan(cx, cy, xLimit, row, c, opacity)
	}
}

// mirrorSpan fills the row dy above and below the center across
// [cx-halfW, cx+halfW]. The center row is written once.
func (b *Buffer) mirrorSpan(cx, cy, halfW, dy int, c Color, opacity float64) {
	n := 2*halfW + 1
	if opacity >= 1 {
		b.fillSpan(b.index(cx-halfW, cy+dy), n, c)
		if dy != 0 {
			b.fillSpan(b.index(cx-halfW, cy-dy), n, c)
		}
		return
	}
	b.blendSpan(b.index(cx-halfW, cy+dy), n, c, opacity)
	if dy != 0 {
		b.blendSpan(b.index(cx-halfW, cy-dy), n, c, opacity)
	}
}

// outlineEllipse draws a one-pixel anti-aliased ring.
func (b *Buffer) outlineEllipse(cx, cy, a, v int, c Color, opacity float64) {
	af, vf := float64(a), float64(v)
	diag := math.Sqrt(af*af + vf*vf)
	xLimit := int(af * af / diag)
	yLimit := int(vf * vf / diag)

	// x-driven: the flat top arc, one sample per column.
	for dx := 0; dx <= xLimit; dx++ {
		t := float64(dx) / af
		yv := vf * math.Sqrt(1-t*t)
		yr := math.Round(yv)
		if math.Abs(yv-yr) <= epsilon {
			b.mirror4(cx, cy, dx, int(yr), 1, c, opacity)
			continue
		}
		yf := int(math.Floor(yv))
		frac := yv - float64(yf)
		b.mirror4(cx, cy, dx, yf, 1-frac, c, opacity)
		b.mirror4(cx, cy, dx, yf+1, frac, c, opacity)
	}

	// y-driven: the steep side arc, one sample per row. Columns at or left
	// of xLimit were already covered above, so at the seam only the new
	// boundary pixel is drawn.
	for dy := 0; dy <= yLimit; dy++ {
		t := float64(dy) / vf
		xv := af * math.Sqrt(1-t*t)
		xr := math.Round(xv)
		if math.Abs(xv-xr) <= epsilon {
			if int(xr) > xLimit {
				b.mirror4(cx, cy, int(xr), dy, 1, c, opacity)
			}
			continue
		}
		xf := int(math.Floor(xv))
		frac := xv - float64(xf)
		if xf > xLimit {
			b.mirror4(cx, cy, xf, dy, 1-frac, c, opacity)
		}
		b.mirror4(cx, cy, xf+1, dy, frac, c, opacity)
	}
}

// mirror4 writes one weighted boundary sample into all four quadrants,
// deduplicating writes on the axes.
func (b *Buffer) mirror4(cx, cy, dx, dy int, coverage float64, c Color, opacity float64) {
	if opacity < 1 {
		coverage *= opacity
	}
	b.weighted(cx+dx, cy+dy, coverage, c)
	if dx != 0 {
		b.weighted(cx-dx, cy+dy, coverage, c)
	}
	if dy != 0 {
		b.weighted(cx+dx, cy-dy, coverage, c)
		if dx != 0 {
			b.weighted(cx-dx, cy-dy, coverage, c)
		}
	}
}

// weighted writes one pixel at the given blend weight; full weight is a
// direct overwrite. Bounds were validated once per shape.
func (b *Buffer) weighted(x, y int, w float64, c Color) {
	i := b.index(x, y)
	if w >= 1 {
		b.setPix(i, c)
		return
	}
	b.blendPix(i, c, w)
}
