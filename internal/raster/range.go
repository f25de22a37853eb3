package raster

import "fmt"

// RangeKind selects how a Range's bounds are interpreted.
type RangeKind uint8

const (
	// RangeAll covers every pixel.
	RangeAll RangeKind = iota
	// RangePoint covers the single pixel at Start.
	RangePoint
	// RangeBounded covers [Start, End).
	RangeBounded
	// RangeInclusive covers [Start, End].
	RangeInclusive
	// RangeFrom covers [Start, len).
	RangeFrom
	// RangeTo covers [0, End).
	RangeTo
)

// Range selects a run of pixel indices in storage order. The zero value
// covers the whole buffer.
type Range struct {
	Kind  RangeKind
	Start int
	End   int
}

// All covers every pixel.
func All() Range { return Range{Kind: RangeAll} }

// Point covers the single pixel at i.
func Point(i int) Range { return Range{Kind: RangePoint, Start: i} }

// Between covers the half-open run [start, end).
func Between(start, end int) Range { return Range{Kind: RangeBounded, Start: start, End: end} }

// Through covers the inclusive run [start, end].
func Through(start, end int) Range { return Range{Kind: RangeInclusive, Start: start, End: end} }

// From covers [i, len).
func From(i int) Range { return Range{Kind: RangeFrom, Start: i} }

// To covers [0, i).
func To(i int) Range { return Range{Kind: RangeTo, End: i} }

// bounds resolves the range against a buffer of n pixels, returning a
// half-open index pair.
func (r Range) bounds(n int) (lo, hi int, err error) {
	switch r.Kind {
	case RangeAll:
		lo, hi = 0, n
	case RangePoint:
		lo, hi = r.Start, r.Start+1
	case RangeBounded:
		lo, hi = r.Start, r.End
	case RangeInclusive:
		lo, hi = r.Start, r.End+1
	case RangeFrom:
		lo, hi = r.Start, n
	case RangeTo:
		lo, hi = 0, r.End
	default:
		return 0, 0, fmt.Errorf("raster: range kind %d: %w", r.Kind, ErrOutOfBounds)
	}
	if lo < 0 || hi > n || lo > hi {
		return 0, 0, fmt.Errorf("raster: range [%d, %d) of %d pixels: %w", lo, hi, n, ErrOutOfBounds)
	}
	return lo, hi, nil
}

// FillRange overwrites a run of pixels, selected in storage order, with one
// bulk write.
func (b *Buffer) FillRange(r Range, c Color) error {
	if len(c) != Channels {
		return fmt.Errorf("raster: fill with %d channels: %w", len(c), ErrWrongColor)
	}
	lo, hi, err := r.bounds(b.width * b.height)
	if err != nil {
		return err
	}
	if lo == hi {
		return nil
	}
	b.fillSpan(lo*Channels, hi-lo, c)
	return nil
}
