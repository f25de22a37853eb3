package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = RGB(0, 0, 0)
	white = RGB(255, 255, 255)
)

// redAt returns the first channel of (x, y), which is enough to identify
// grayscale test colors.
func redAt(t *testing.T, b *Buffer, x, y int) uint8 {
	t.Helper()
	c, err := b.GetPixel(x, y)
	require.NoError(t, err)
	return c[0]
}

func TestDrawLineMainDiagonal(t *testing.T) {
	// The unit-slope diagonal hits every pixel center exactly: ten full
	// writes and nothing else.
	b := mustNew(t, 10, 10, black)
	b.DrawLine(0, 0, 9, 9, white, 1, 1.0)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := uint8(0)
			if x == y {
				want = 255
			}
			assert.Equal(t, want, redAt(t, b, x, y), "(%d, %d)", x, y)
		}
	}
}

func TestDrawLineVertical(t *testing.T) {
	b := mustNew(t, 10, 10, black)
	b.DrawLine(3, 5, 3, 2, white, 1, 1.0)

	for y := 0; y < 10; y++ {
		want := uint8(0)
		if y >= 2 && y <= 5 {
			want = 255
		}
		assert.Equal(t, want, redAt(t, b, 3, y), "row %d", y)
	}
}

func TestDrawLineVerticalClamped(t *testing.T) {
	b := mustNew(t, 10, 10, black)
	b.DrawLine(3, 8, 3, 20, white, 1, 1.0)
	assert.Equal(t, uint8(255), redAt(t, b, 3, 8))
	assert.Equal(t, uint8(255), redAt(t, b, 3, 9))
	assert.Equal(t, uint8(0), redAt(t, b, 3, 7))
}

func TestDrawLineVerticalOutside(t *testing.T) {
	b := mustNew(t, 10, 10, black)
	before := snapshot(b)
	b.DrawLine(12, 0, 12, 9, white, 1, 1.0)  // column out of bounds
	b.DrawLine(3, 11, 3, 20, white, 1, 1.0)  // fully above
	b.DrawLine(3, -5, 3, -1, white, 1, 1.0)  // fully below
	assert.Equal(t, before, b.Bytes())
}

func TestDrawLineHorizontalBlended(t *testing.T) {
	b := mustNew(t, 10, 10, black)
	b.DrawLine(2, 4, 7, 4, white, 1, 0.5)

	for x := 0; x < 10; x++ {
		want := uint8(0)
		if x >= 2 && x <= 7 {
			want = 128
		}
		assert.Equal(t, want, redAt(t, b, x, 4), "col %d", x)
	}
}

func TestDrawLineHorizontalSolidMatchesSetPixel(t *testing.T) {
	// The bulk-span fast path must be bit-identical to direct overwrites.
	b1 := mustNew(t, 10, 10, RGB(30, 40, 50))
	b2 := mustNew(t, 10, 10, RGB(30, 40, 50))

	b1.DrawLine(1, 6, 8, 6, RGB(9, 8, 7), 1, 1.0)
	for x := 1; x <= 8; x++ {
		require.NoError(t, b2.SetPixel(x, 6, RGB(9, 8, 7)))
	}
	assert.Equal(t, b2.Bytes(), b1.Bytes())
}

func TestDrawLineZeroThickness(t *testing.T) {
	b := mustNew(t, 10, 10, black)
	before := snapshot(b)
	b.DrawLine(0, 0, 9, 9, white, 0, 1.0)
	assert.Equal(t, before, b.Bytes())
}

func TestDrawLineNegativeOpacity(t *testing.T) {
	b := mustNew(t, 10, 10, black)
	before := snapshot(b)
	b.DrawLine(0, 0, 9, 9, white, 1, -0.01)
	assert.Equal(t, before, b.Bytes())
}

func TestDrawLineZeroOpacityLeavesBytes(t *testing.T) {
	b := mustNew(t, 10, 10, RGB(11, 22, 33))
	before := snapshot(b)
	b.DrawLine(0, 0, 9, 9, white, 1, 0)
	b.DrawLine(0, 3, 9, 3, white, 1, 0)
	assert.Equal(t, before, b.Bytes())
}

func TestDrawLineWuSplit(t *testing.T) {
	// Slope 1/2: odd columns land halfway between rows and split evenly.
	b := mustNew(t, 5, 5, black)
	b.DrawLine(0, 0, 4, 2, white, 1, 1.0)

	assert.Equal(t, uint8(255), redAt(t, b, 0, 0))
	assert.Equal(t, uint8(255), redAt(t, b, 2, 1))
	assert.Equal(t, uint8(255), redAt(t, b, 4, 2))

	assert.Equal(t, uint8(128), redAt(t, b, 1, 0))
	assert.Equal(t, uint8(128), redAt(t, b, 1, 1))
	assert.Equal(t, uint8(128), redAt(t, b, 3, 1))
	assert.Equal(t, uint8(128), redAt(t, b, 3, 2))

	// No stray writes outside the split pairs.
	assert.Equal(t, uint8(0), redAt(t, b, 2, 0))
	assert.Equal(t, uint8(0), redAt(t, b, 2, 2))
	assert.Equal(t, uint8(0), redAt(t, b, 0, 1))
}

func TestDrawLineWuSplitScaledByOpacity(t *testing.T) {
	b := mustNew(t, 5, 5, black)
	b.DrawLine(0, 0, 4, 2, white, 1, 0.5)

	assert.Equal(t, uint8(128), redAt(t, b, 0, 0), "exact hit at half opacity")
	assert.Equal(t, uint8(64), redAt(t, b, 1, 0), "split weight 0.25")
	assert.Equal(t, uint8(64), redAt(t, b, 1, 1))
}

func TestDrawLineSteep(t *testing.T) {
	// |slope| > 1 walks the y axis and splits across columns.
	b := mustNew(t, 5, 5, black)
	b.DrawLine(0, 0, 2, 4, white, 1, 1.0)

	assert.Equal(t, uint8(255), redAt(t, b, 0, 0))
	assert.Equal(t, uint8(255), redAt(t, b, 1, 2))
	assert.Equal(t, uint8(255), redAt(t, b, 2, 4))

	assert.Equal(t, uint8(128), redAt(t, b, 0, 1))
	assert.Equal(t, uint8(128), redAt(t, b, 1, 1))
	assert.Equal(t, uint8(128), redAt(t, b, 1, 3))
	assert.Equal(t, uint8(128), redAt(t, b, 2, 3))
}

func TestDrawLineClippedToEdge(t *testing.T) {
	// The overflowing endpoint projects back onto the top edge along the
	// infinite line.
	b := mustNew(t, 10, 10, black)
	b.DrawLine(5, 5, 15, 15, white, 1, 1.0)

	for d := 5; d <= 9; d++ {
		assert.Equal(t, uint8(255), redAt(t, b, d, d), "(%d, %d)", d, d)
	}
	assert.Equal(t, uint8(0), redAt(t, b, 4, 4))
}

func TestDrawLineNoValidProjection(t *testing.T) {
	b := mustNew(t, 10, 10, black)
	before := snapshot(b)
	b.DrawLine(12, 0, 20, 5, white, 1, 1.0)
	b.DrawLine(0, 15, 9, 20, white, 1, 1.0)
	assert.Equal(t, before, b.Bytes())
}

func TestDrawLineBoundsSafety(t *testing.T) {
	// Wild parameters must never touch memory outside the pixel array;
	// an out-of-bounds write would panic on the backing slice.
	b := mustNew(t, 16, 16, black)
	params := []struct{ x1, y1, x2, y2 int }{
		{-100, -100, 200, 200},
		{-50, 8, 70, 9},
		{8, -50, 9, 70},
		{-10, -10, -5, -2},
		{100, 3, 3, 100},
		{15, 15, 1000, 16},
		{0, 16, 16, 0},
	}
	for _, p := range params {
		b.DrawLine(p.x1, p.y1, p.x2, p.y2, white, 1, 1.0)
		b.DrawLine(p.x1, p.y1, p.x2, p.y2, white, 1, 0.5)
	}
}
