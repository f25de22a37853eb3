package raster

import "math"

// epsilon treats a computed boundary coordinate within this distance of an
// integer as landing exactly on a pixel center.
const epsilon = 1e-5

// DrawLine draws a straight segment between (x1, y1) and (x2, y2).
//
// A zero thickness draws nothing; any other thickness draws a single-pixel
// line. Negative opacity is a whole-call no-op. Axis-aligned segments take a
// clamped fast path; everything else is clipped against the buffer edges and
// anti-aliased with Wu-style weight splitting along the dominant axis.
func (b *Buffer) DrawLine(x1, y1, x2, y2 int, c Color, thickness int, opacity float64) {
	if thickness == 0 || opacity < 0 || len(c) != Channels {
		return
	}
	switch {
	case x1 == x2:
		b.verticalLine(x1, y1, y2, c, opacity)
	case y1 == y2:
		b.horizontalLine(y1, x1, x2, c, opacity)
	default:
		b.diagonalLine(x1, y1, x2, y2, c, opacity)
	}
}

func (b *Buffer) verticalLine(x, y1, y2 int, c Color, opacity float64) {
	if x < 0 || x >= b.width {
		return
	}
	lo, hi := minmax(y1, y2)
	if hi < 0 || lo >= b.height {
		return
	}
	lo, hi = max(lo, 0), min(hi, b.height-1)
	if opacity >= 1 {
		for y := lo; y <= hi; y++ {
			b.setPix(b.index(x, y), c)
		}
		return
	}
	for y := lo; y <= hi; y++ {
		b.blendPix(b.index(x, y), c, opacity)
	}
}

func (b *Buffer) horizontalLine(y, x1, x2 int, c Color, opacity float64) {
	if y < 0 || y >= b.height {
		return
	}
	lo, hi := minmax(x1, x2)
	if hi < 0 || lo >= b.width {
		return
	}
	lo, hi = max(lo, 0), min(hi, b.width-1)
	// A row is contiguous in storage, so the solid case is one bulk write.
	if opacity >= 1 {
		b.fillSpan(b.index(lo, y), hi-lo+1, c)
		return
	}
	b.blendSpan(b.index(lo, y), hi-lo+1, c, opacity)
}

func (b *Buffer) diagonalLine(x1, y1, x2, y2 int, c Color, opacity float64) {
	slope := float64(y1-y2) / float64(x1-x2)

	cx1, cy1, ok := b.clipToEdges(x1, y1, float64(x1), float64(y1), slope)
	if !ok {
		return
	}
	cx2, cy2, ok := b.clipToEdges(x2, y2, float64(x1), float64(y1), slope)
	if !ok {
		return
	}
	if cx1 == cx2 && cy1 == cy2 {
		return
	}

	if math.Abs(slope) <= 1 {
		xa, xb := minmax(cx1, cx2)
		for x := xa; x <= xb; x++ {
			y := slope*float64(x-x1) + float64(y1)
			b.plotSplitRow(x, y, c, opacity)
		}
		return
	}
	ya, yb := minmax(cy1, cy2)
	for y := ya; y <= yb; y++ {
		x := float64(y-y1)/slope + float64(x1)
		b.plotSplitCol(x, y, c, opacity)
	}
}

// clipToEdges projects an out-of-bounds endpoint along the infinite line
// anchored at (ax, ay) with the given slope. The y edge is tried first; if
// the intersection's x is still out of range, the x edge is tried instead.
// ok is false when no projection lands inside the buffer.
func (b *Buffer) clipToEdges(ex, ey int, ax, ay, slope float64) (x, y int, ok bool) {
	if b.inBounds(ex, ey) {
		return ex, ey, true
	}

	xEdge := ex
	if ey < 0 || ey >= b.height {
		yEdge := b.height - 1
		if ey < 0 {
			yEdge = 0
		}
		xAt := int(math.Round(ax + (float64(yEdge)-ay)/slope))
		if xAt >= 0 && xAt < b.width {
			return xAt, yEdge, true
		}
		// Remember which side the projection overshot so the x edge below
		// is the one actually crossed.
		xEdge = xAt
	}

	var edge int
	switch {
	case xEdge >= b.width:
		edge = b.width - 1
	case xEdge < 0:
		edge = 0
	default:
		return 0, 0, false
	}
	yAt := int(math.Round(slope*(float64(edge)-ax) + ay))
	if yAt >= 0 && yAt < b.height {
		return edge, yAt, true
	}
	return 0, 0, false
}

// plotSplitRow writes the sample for column x at real height y, either as a
// single exact-hit pixel or as a Wu pair split across the two nearest rows.
func (b *Buffer) plotSplitRow(x int, y float64, c Color, opacity float64) {
	yr := math.Round(y)
	if math.Abs(y-yr) <= epsilon {
		b.plotPoint(x, int(yr), 1, opacity, c)
		return
	}
	yf := int(math.Floor(y))
	frac := y - float64(yf)
	b.plotPoint(x, yf, 1-frac, opacity, c)
	b.plotPoint(x, yf+1, frac, opacity, c)
}

// plotSplitCol is the symmetric pass for row y at real position x.
func (b *Buffer) plotSplitCol(x float64, y int, c Color, opacity float64) {
	xr := math.Round(x)
	if math.Abs(x-xr) <= epsilon {
		b.plotPoint(int(xr), y, 1, opacity, c)
		return
	}
	xf := int(math.Floor(x))
	frac := x - float64(xf)
	b.plotPoint(xf, y, 1-frac, opacity, c)
	b.plotPoint(xf+1, y, frac, opacity, c)
}

// plotPoint writes one weighted sample. The minor-axis neighbor of a clipped
// endpoint can fall one pixel outside the buffer, so the bounds check stays.
func (b *Buffer) plotPoint(x, y int, coverage, opacity float64, c Color) {
	if !b.inBounds(x, y) {
		return
	}
	i := b.index(x, y)
	if opacity < 1 {
		coverage *= opacity
	}
	if coverage >= 1 {
		b.setPix(i, c)
		return
	}
	b.blendPix(i, c, coverage)
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
