package raster

// DrawRectangle draws an axis-aligned rectangle with opposite corners
// (x1, y1) and (x2, y2), both inclusive.
//
// Corners beyond the buffer are clamped, not rejected. A zero thickness
// fills the rectangle; a positive thickness draws that many nested one-pixel
// borders shrinking inward, clamped so the outline can never cross itself.
// Negative opacity is a whole-call no-op.
func (b *Buffer) DrawRectangle(x1, y1, x2, y2 int, c Color, thickness int, opacity float64) {
	if opacity < 0 || len(c) != Channels {
		return
	}
	lx, hx := minmax(x1, x2)
	ly, hy := minmax(y1, y2)
	if hx < 0 || lx >= b.width || hy < 0 || ly >= b.height {
		return
	}
	lx, ly = max(lx, 0), max(ly, 0)
	hx, hy = min(hx, b.width-1), min(hy, b.height-1)

	if thickness == 0 {
		b.fillRect(lx, ly, hx, hy, c, opacity)
		return
	}

	// Borders tile the filled rectangle exactly at this thickness, so any
	// larger request produces the same pixels.
	maxT := min(hx-lx, hy-ly)/2 + 1
	thickness = min(thickness, maxT)

	solid := opacity >= 1
	for i := 0; i < thickness; i++ {
		bx0, by0, bx1, by1 := lx+i, ly+i, hx-i, hy-i
		if bx0 > bx1 || by0 > by1 {
			break
		}
		b.borderRect(bx0, by0, bx1, by1, c, opacity, solid)
	}
}

// fillRect writes the inclusive block row by row; rows are contiguous in
// storage, so the solid case is pure bulk spans.
func (b *Buffer) fillRect(lx, ly, hx, hy int, c Color, opacity float64) {
	n := hx - lx + 1
	if opacity >= 1 {
		for y := ly; y <= hy; y++ {
			b.fillSpan(b.index(lx, y), n, c)
		}
		return
	}
	for y := ly; y <= hy; y++ {
		b.blendSpan(b.index(lx, y), n, c, opacity)
	}
}

// borderRect draws one one-pixel border: two horizontal spans and, for the
// rows strictly between them, one pixel per vertical edge. Corners are
// covered once by the spans.
func (b *Buffer) borderRect(lx, ly, hx, hy int, c Color, opacity float64, solid bool) {
	n := hx - lx + 1
	if solid {
		b.fillSpan(b.index(lx, hy), n, c)
		if hy != ly {
			b.fillSpan(b.index(lx, ly), n, c)
		}
		for y := ly + 1; y < hy; y++ {
			b.setPix(b.index(lx, y), c)
			if hx != lx {
				b.setPix(b.index(hx, y), c)
			}
		}
		return
	}
	b.blendSpan(b.index(lx, hy), n, c, opacity)
	if hy != ly {
		b.blendSpan(b.index(lx, ly), n, c, opacity)
	}
	for y := ly + 1; y < hy; y++ {
		b.blendPix(b.index(lx, y), c, opacity)
		if hx != lx {
			b.blendPix(b.index(hx, y), c, opacity)
		}
	}
}
