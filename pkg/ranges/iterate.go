package ranges

import (
	"iter"
	"math"
)

// Iterate yields discrete values from low up to (not including) high,
// stepping by the range's step. A degenerate point range yields
// exactly one value. The sequence is derived from the bounds at call
// time; calling again produces a fresh sequence.
func (r Range[E]) Iterate() iter.Seq[E] {
	return r.IterateBy(r.Step())
}

// IterateBy is Iterate with an explicit step. A step of zero or less
// would never advance, so it falls back to the default.
func (r Range[E]) IterateBy(step E) iter.Seq[E] {
	if r.arith.Compare(step, r.arith.Zero()) <= 0 {
		step = r.arith.One()
	}
	return func(yield func(E) bool) {
		if r.arith.Compare(r.low, r.high) == 0 {
			yield(r.low)
			return
		}
		for v := r.low; r.arith.Compare(v, r.high) < 0; v = r.arith.Add(v, step) {
			if !yield(v) {
				return
			}
		}
	}
}

// IterateRanges tiles contiguous sub-ranges of the step width forward
// from low. The sequence never terminates on its own for a
// non-degenerate range; the consumer controls how far to go.
func (r Range[E]) IterateRanges() iter.Seq[Range[E]] {
	return r.IterateRangesBy(r.Step())
}

// IterateRangesBy is IterateRanges with an explicit width. A width of
// zero or less would tile in place, so it falls back to the default.
func (r Range[E]) IterateRangesBy(width E) iter.Seq[Range[E]] {
	if r.arith.Compare(width, r.arith.Zero()) <= 0 {
		width = r.arith.One()
	}
	return func(yield func(Range[E]) bool) {
		if r.arith.Compare(r.low, r.high) == 0 {
			yield(r.Copy())
			return
		}
		last := r.low
		for {
			next := r.arith.Add(last, width)
			if !yield(New(r.arith, last, next)) {
				return
			}
			last = next
		}
	}
}

// IterateEvenly yields exactly numParts equal-width sub-ranges whose
// widths sum to the full span, with no gaps or overlaps. The final
// edge is pinned to high so float drift cannot leave a sliver.
func (r Range[E]) IterateEvenly(numParts int) iter.Seq[Range[E]] {
	return func(yield func(Range[E]) bool) {
		if numParts < 1 || r.arith.Compare(r.low, r.high) == 0 {
			yield(r.Copy())
			return
		}
		width := r.arith.Scale(r.Span(), 1/float64(numParts))
		last := r.low
		for i := 0; i < numParts; i++ {
			next := r.arith.Add(last, width)
			if i == numParts-1 {
				next = r.high
			}
			if !yield(New(r.arith, last, next)) {
				return
			}
			last = next
		}
	}
}

// MaxParts is the maximum whole number of parts of the given size
// that fit within the span: Range(0,10).MaxParts(3) == 3.
func (r Range[E]) MaxParts(partSize E) int {
	return int(math.Floor(r.arith.Ratio(r.Span(), partSize)))
}

// Remainder is the space left over after MaxParts(partSize) parts:
// Range(0,10).Remainder(3) == 1.
func (r Range[E]) Remainder(partSize E) E {
	return r.RemainderFor(partSize, r.MaxParts(partSize))
}

// RemainderFor is the space left over after the given number of
// parts.
func (r Range[E]) RemainderFor(partSize E, numParts int) E {
	return r.arith.Sub(r.Span(), r.arith.Scale(partSize, float64(numParts)))
}

// GapSize is the width of the gaps that spread the remainder between
// MaxParts(partSize) parts.
func (r Range[E]) GapSize(partSize E) E {
	return r.GapSizeFor(partSize, r.MaxParts(partSize))
}

// GapSizeFor is GapSize with an explicit part count.
func (r Range[E]) GapSizeFor(partSize E, numParts int) E {
	remainder := r.RemainderFor(partSize, numParts)
	gaps := numParts - 1
	if gaps < 1 {
		gaps = 1
	}
	return r.arith.Scale(remainder, 1/float64(gaps))
}

// IterateWithGaps yields a part/gap/part/.../part pattern: parts of
// the step width, gaps sized so that MaxParts parts plus the gaps
// between them exactly fill the span. Always starts and ends with a
// part, never a gap. A range no wider than one part yields itself.
func (r Range[E]) IterateWithGaps() iter.Seq[Range[E]] {
	return r.IterateWithGapsBy(r.Step())
}

// IterateWithGapsBy is IterateWithGaps with an explicit part width.
func (r Range[E]) IterateWithGapsBy(partSize E) iter.Seq[Range[E]] {
	return func(yield func(Range[E]) bool) {
		if r.arith.Compare(r.Span(), partSize) <= 0 {
			yield(r.Copy())
			return
		}
		numParts := r.MaxParts(partSize)
		gapSize := r.GapSizeFor(partSize, numParts)
		last := r.low
		for i := 0; i < numParts; i++ {
			next := r.arith.Add(last, partSize)
			if i == numParts-1 {
				next = r.high
			}
			if !yield(New(r.arith, last, next)) {
				return
			}
			last = next
			if i < numParts-1 {
				next = r.arith.Add(last, gapSize)
				if !yield(New(r.arith, last, next)) {
					return
				}
				last = next
			}
		}
	}
}
