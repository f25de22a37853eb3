// Package raster implements a fixed-size RGB pixel buffer and anti-aliased
// rasterizers for lines, rectangles and ellipses. Each draw call composites
// directly into the buffer and its cost is proportional to the pixels it
// touches.
package raster

import (
	"errors"
	"fmt"
)

// Channels is the number of color channels per pixel.
const Channels = 3

// Color is an ordered list of channel values. The buffer stores 3-channel
// 8-bit pixels; operations that take a Color reject any other length.
type Color []uint8

// RGB builds a 3-channel color.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

var (
	// ErrOutOfBounds reports an index or coordinate outside the buffer.
	ErrOutOfBounds = errors.New("raster: index out of bounds")
	// ErrWrongColor reports a color whose channel count does not match the buffer.
	ErrWrongColor = errors.New("raster: wrong channel count")
	// ErrInvalidOpacity reports a blend weight outside [0, 1].
	ErrInvalidOpacity = errors.New("raster: invalid opacity")
)

// Buffer holds the rendering target as one flat slice for cache locality.
//
// Coordinates use a bottom-left origin while storage stays top-to-bottom:
// the pixel (x, y) lives at ((height-1-y)*width + x) * Channels. Row y=0 is
// therefore the last stored row.
//
// The background (a solid color or a full snapshot) is used only by Clear;
// drawing never consults it.
type Buffer struct {
	width  int
	height int
	pix    []uint8

	bg     Color   // solid background, ignored when bgSnap is set
	bgSnap []uint8 // background snapshot, same length as pix
}

// New allocates a buffer of the given dimensions filled with the background
// color.
func New(width, height int, background Color) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: dimensions %dx%d: %w", width, height, ErrOutOfBounds)
	}
	if len(background) != Channels {
		return nil, fmt.Errorf("raster: background has %d channels, want %d: %w",
			len(background), Channels, ErrWrongColor)
	}
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*Channels),
		bg:     append(Color(nil), background...),
	}
	b.Clear()
	return b, nil
}

// NewFromBytes adopts raw pixel bytes (row-major, bottom row stored last, no
// padding) and keeps a private copy as the background snapshot that Clear
// restores. The caller hands over ownership of pix.
func NewFromBytes(width, height int, pix []uint8) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: dimensions %dx%d: %w", width, height, ErrOutOfBounds)
	}
	if len(pix) != width*height*Channels {
		return nil, fmt.Errorf("raster: %d pixel bytes, want %d: %w",
			len(pix), width*height*Channels, ErrWrongColor)
	}
	snap := make([]uint8, len(pix))
	copy(snap, pix)
	return &Buffer{width: width, height: height, pix: pix, bgSnap: snap}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bytes exposes the raw pixel storage: row-major, bottom row last, no
// inter-pixel or inter-row padding. Callers must treat it as read-only.
func (b *Buffer) Bytes() []uint8 { return b.pix }

// index returns the channel offset of (x, y). No bounds check: the
// rasterizers validate once per shape, not once per pixel.
func (b *Buffer) index(x, y int) int {
	return ((b.height-1-y)*b.width + x) * Channels
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// GetPixel returns a copy of the color at (x, y).
func (b *Buffer) GetPixel(x, y int) (Color, error) {
	if !b.inBounds(x, y) {
		return nil, fmt.Errorf("raster: get (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	i := b.index(x, y)
	return Color{b.pix[i], b.pix[i+1], b.pix[i+2]}, nil
}

// SetPixel overwrites the color at (x, y).
func (b *Buffer) SetPixel(x, y int, c Color) error {
	if len(c) != Channels {
		return fmt.Errorf("raster: set (%d, %d) with %d channels: %w", x, y, len(c), ErrWrongColor)
	}
	if !b.inBounds(x, y) {
		return fmt.Errorf("raster: set (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	b.setPix(b.index(x, y), c)
	return nil
}

// ComposePixel blends c over the pixel at (x, y) at the given weight.
// The weight must be a real number in [0, 1].
func (b *Buffer) ComposePixel(x, y int, c Color, weight float64) error {
	if len(c) != Channels {
		return fmt.Errorf("raster: compose (%d, %d) with %d channels: %w", x, y, len(c), ErrWrongColor)
	}
	if weight != weight || weight < 0 || weight > 1 {
		return fmt.Errorf("raster: compose weight %v: %w", weight, ErrInvalidOpacity)
	}
	if !b.inBounds(x, y) {
		return fmt.Errorf("raster: compose (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	b.blendPix(b.index(x, y), c, weight)
	return nil
}

// Clear restores every pixel from the background snapshot or solid color.
func (b *Buffer) Clear() {
	if b.bgSnap != nil {
		copy(b.pix, b.bgSnap)
		return
	}
	b.fillSpan(0, b.width*b.height, b.bg)
}

// SetBackgroundColor replaces the background with a solid color. The buffer
// contents are untouched until the next Clear.
func (b *Buffer) SetBackgroundColor(c Color) error {
	if len(c) != Channels {
		return fmt.Errorf("raster: background has %d channels, want %d: %w", len(c), Channels, ErrWrongColor)
	}
	b.bg = append(Color(nil), c...)
	b.bgSnap = nil
	return nil
}

// setPix overwrites one pixel at channel offset i. No bounds check.
func (b *Buffer) setPix(i int, c Color) {
	b.pix[i] = c[0]
	b.pix[i+1] = c[1]
	b.pix[i+2] = c[2]
}

// blendPix composites one pixel at channel offset i. No bounds check.
func (b *Buffer) blendPix(i int, c Color, weight float64) {
	b.pix[i] = composite(b.pix[i], c[0], weight)
	b.pix[i+1] = composite(b.pix[i+1], c[1], weight)
	b.pix[i+2] = composite(b.pix[i+2], c[2], weight)
}

// fillSpan overwrites n consecutive pixels starting at channel offset i as
// one bulk write. No bounds check.
func (b *Buffer) fillSpan(i, n int, c Color) {
	end := i + n*Channels
	for ; i < end; i += Channels {
		b.pix[i] = c[0]
		b.pix[i+1] = c[1]
		b.pix[i+2] = c[2]
	}
}

// blendSpan composites n consecutive pixels at the given weight. No bounds
// check.
func (b *Buffer) blendSpan(i, n int, c Color, weight float64) {
	end := i + n*Channels
	for ; i < end; i += Channels {
		b.pix[i] = composite(b.pix[i], c[0], weight)
		b.pix[i+1] = composite(b.pix[i+1], c[1], weight)
		b.pix[i+2] = composite(b.pix[i+2], c[2], weight)
	}
}
