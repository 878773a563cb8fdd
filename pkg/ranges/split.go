package ranges

import (
	"fmt"
	"iter"
	"math"
)

// RemainderPolicy names the rule for distributing leftover space when
// a span does not divide evenly into the requested section size.
type RemainderPolicy string

const (
	// RemainderSection emits one extra section sized to the leftover,
	// appended after the regular sections.
	RemainderSection RemainderPolicy = "remainder_section"
	// SectionStretch distributes the leftover evenly across the
	// existing sections, growing each. This is the default.
	SectionStretch RemainderPolicy = "section_stretch"
	// SectionShrink adds one more section and shrinks every section
	// to fit.
	SectionShrink RemainderPolicy = "section_shrink"
	// SectionStretchShrink behaves as SectionShrink when the leftover
	// is at least half a section, else as SectionStretch.
	SectionStretchShrink RemainderPolicy = "section_stretch_shrink"
	// TotalShrink drops the leftover; the covered span shrinks.
	TotalShrink RemainderPolicy = "total_shrink"
	// TotalGrow adds one more full section; the covered span grows.
	TotalGrow RemainderPolicy = "total_grow"
	// TotalShrinkGrow picks TotalShrink or TotalGrow by whichever
	// leftover fraction is closer (same half-section rule).
	TotalShrinkGrow RemainderPolicy = "total_shrink_grow"
)

func (p RemainderPolicy) valid() bool {
	switch p {
	case RemainderSection, SectionStretch, SectionShrink,
		SectionStretchShrink, TotalShrink, TotalGrow, TotalShrinkGrow:
		return true
	}
	return false
}

// SplitOptions configures Split.
//
// Exactly one sizing mode applies: NumSections when positive (exact
// division, no remainder handling), otherwise SectionSize (defaulting
// to the range's step) with the remainder resolved by Policy.
type SplitOptions[E any] struct {
	// SectionSize is the width of each interior section. Nil means
	// use NumSections when set, else the range's step.
	SectionSize *E
	// NumSections divides the interior into this many equal sections.
	NumSections int
	// EndSize, when set, places a fixed-size section at each extreme.
	EndSize *E
	// SeparatorSize, when set, places a fixed-size divider between
	// interior sections.
	SeparatorSize *E
	// Policy resolves the leftover in by-size mode. Empty selects
	// SectionStretch. Unknown names fail with a ConfigurationError.
	Policy RemainderPolicy
	// SkipEnds, SkipSections and SkipSeparators suppress the
	// corresponding pieces from the output without changing the
	// layout arithmetic.
	SkipEnds       bool
	SkipSections   bool
	SkipSeparators bool
}

// Split divides the range into an optional pair of fixed-size end
// sections, a run of equal interior sections, optional fixed-size
// separators between them, and (policy permitting) a remainder
// section. Every emitted piece is itself a Range positioned within
// the receiver, and in stretch/shrink modes the pieces tile the span
// exactly. Fixed pieces that cannot fit in the span fail with a
// ConfigurationError rather than emitting geometry past the bounds.
func (r Range[E]) Split(opts SplitOptions[E]) (iter.Seq[Range[E]], error) {
	a := r.arith
	policy := opts.Policy
	if policy == "" {
		policy = SectionStretch
	}
	if !policy.valid() {
		return nil, &ConfigurationError{Policy: string(policy)}
	}

	total := r.Span()
	if opts.EndSize != nil {
		total = a.Sub(total, a.Scale(*opts.EndSize, 2))
		if a.Compare(total, a.Zero()) < 0 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf(
				"end sections of size %s do not fit in a span of %s",
				a.Format(*opts.EndSize), a.Format(r.Span()))}
		}
	}

	var sectionSize E
	numSections := 0
	var remainderSection *E

	if opts.NumSections > 0 {
		// By count: exact division, no remainder to distribute.
		numSections = opts.NumSections
		if opts.SeparatorSize != nil {
			total = a.Sub(total, a.Scale(*opts.SeparatorSize, float64(numSections-1)))
			if a.Compare(total, a.Zero()) < 0 {
				return nil, &ConfigurationError{Reason: fmt.Sprintf(
					"%d sections with separators of size %s do not fit in a span of %s",
					numSections, a.Format(*opts.SeparatorSize), a.Format(r.Span()))}
			}
		}
		sectionSize = a.Scale(total, 1/float64(numSections))
	} else {
		if opts.SectionSize != nil {
			sectionSize = *opts.SectionSize
		} else {
			sectionSize = r.Step()
		}
		var exact float64
		if opts.SeparatorSize != nil {
			// n sections carry n-1 separators, so each section
			// effectively costs sectionSize+separatorSize with one
			// separator given back.
			exact = a.Ratio(a.Add(total, *opts.SeparatorSize), a.Add(sectionSize, *opts.SeparatorSize))
		} else {
			exact = a.Ratio(total, sectionSize)
		}
		numSections = int(math.Floor(exact))
		if numSections < 0 {
			numSections = 0
		}

		// Leftover measured in span units so the emitted pieces can
		// tile the range exactly.
		leftover := a.Sub(total, a.Scale(sectionSize, float64(numSections)))
		if opts.SeparatorSize != nil && numSections > 1 {
			leftover = a.Sub(leftover, a.Scale(*opts.SeparatorSize, float64(numSections-1)))
		}

		if a.Compare(leftover, a.Zero()) > 0 {
			shrink := func() {
				numSections++
				if opts.SeparatorSize != nil {
					sectionSize = a.Sub(
						a.Scale(a.Add(total, *opts.SeparatorSize), 1/float64(numSections)),
						*opts.SeparatorSize)
				} else {
					sectionSize = a.Scale(total, 1/float64(numSections))
				}
			}
			stretch := func() {
				if numSections > 0 {
					sectionSize = a.Add(sectionSize, a.Scale(leftover, 1/float64(numSections)))
				} else {
					l := leftover
					remainderSection = &l
				}
			}
			switch policy {
			case RemainderSection:
				l := leftover
				remainderSection = &l
			case SectionStretch:
				stretch()
			case SectionShrink:
				shrink()
			case SectionStretchShrink:
				if a.Ratio(leftover, sectionSize) >= 0.5 {
					shrink()
				} else {
					stretch()
				}
			case TotalShrink:
				// Keep the floored section count; the cover shrinks.
			case TotalGrow:
				numSections++
			case TotalShrinkGrow:
				if a.Ratio(leftover, sectionSize) >= 0.5 {
					numSections++
				}
			}
		}
	}

	seq := func(yield func(Range[E]) bool) {
		pos := r.low
		emit := func(width E, skip bool) bool {
			next := a.Add(pos, width)
			if !skip && !yield(New(a, pos, next)) {
				return false
			}
			pos = next
			return true
		}
		if opts.EndSize != nil {
			if !emit(*opts.EndSize, opts.SkipEnds) {
				return
			}
		}
		for i := 0; i < numSections; i++ {
			if !emit(sectionSize, opts.SkipSections) {
				return
			}
			if opts.SeparatorSize != nil && i < numSections-1 {
				if !emit(*opts.SeparatorSize, opts.SkipSeparators) {
					return
				}
			}
		}
		if remainderSection != nil {
			if !emit(*remainderSection, opts.SkipSections) {
				return
			}
		}
		if opts.EndSize != nil {
			if !emit(*opts.EndSize, opts.SkipEnds) {
				return
			}
		}
	}
	return seq, nil
}
