package ranges

import (
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
)

// Before reports whether r lies strictly before other, regardless of
// inclusivity.
func (r Range[E]) Before(other Range[E]) bool {
	return r.arith.Compare(r.high, other.low) < 0
}

// After reports whether r lies strictly after other.
func (r Range[E]) After(other Range[E]) bool {
	return r.arith.Compare(r.low, other.high) > 0
}

// BeforeOrOverlaps is the interval form of <=: strictly before, or
// overlapping.
func (r Range[E]) BeforeOrOverlaps(other Range[E]) bool {
	return r.Before(other) || r.Overlaps(other)
}

// AfterOrOverlaps is the interval form of >=: strictly after, or
// overlapping.
func (r Range[E]) AfterOrOverlaps(other Range[E]) bool {
	return r.After(other) || r.Overlaps(other)
}

// EqualsValue reports whether r is the closed point range at v.
func (r Range[E]) EqualsValue(v E) bool {
	return r.lowInclusive && r.highInclusive &&
		r.arith.Compare(r.low, v) == 0 &&
		r.arith.Compare(r.high, v) == 0
}

// Equal reports whether both bounds and both inclusivity flags match.
func (r Range[E]) Equal(other Range[E]) bool {
	return r.arith.Compare(r.low, other.low) == 0 &&
		r.arith.Compare(r.high, other.high) == 0 &&
		r.lowInclusive == other.lowInclusive &&
		r.highInclusive == other.highInclusive
}

// Overlaps reports whether the two ranges share at least one value.
// A shared boundary counts only when it is inclusive on both sides.
func (r Range[E]) Overlaps(other Range[E]) bool {
	if c := r.arith.Compare(r.low, other.high); c > 0 || (c == 0 && !(r.lowInclusive && other.highInclusive)) {
		return false
	}
	if c := r.arith.Compare(other.low, r.high); c > 0 || (c == 0 && !(other.lowInclusive && r.highInclusive)) {
		return false
	}
	return true
}

// Touches reports whether the ranges adjoin at a boundary with no gap
// between them, so that their union is one contiguous range. Touching
// ranges need not overlap: [3,5) touches [5,9).
func (r Range[E]) Touches(other Range[E]) bool {
	if r.arith.Compare(r.high, other.low) == 0 {
		return r.highInclusive || other.lowInclusive
	}
	if r.arith.Compare(other.high, r.low) == 0 {
		return other.highInclusive || r.lowInclusive
	}
	return false
}

// ContainsValue reports whether v falls inside the range, honoring
// the inclusivity flags at each boundary.
func (r Range[E]) ContainsValue(v E) bool {
	if c := r.arith.Compare(v, r.low); c < 0 || (c == 0 && !r.lowInclusive) {
		return false
	}
	if c := r.arith.Compare(v, r.high); c > 0 || (c == 0 && !r.highInclusive) {
		return false
	}
	return true
}

// Contains reports whether other lies entirely within r.
func (r Range[E]) Contains(other Range[E]) bool {
	if c := r.arith.Compare(other.low, r.low); c < 0 || (c == 0 && other.lowInclusive && !r.lowInclusive) {
		return false
	}
	if c := r.arith.Compare(other.high, r.high); c > 0 || (c == 0 && other.highInclusive && !r.highInclusive) {
		return false
	}
	return true
}

// ContainedBy reports whether r lies entirely within other.
func (r Range[E]) ContainedBy(other Range[E]) bool {
	return other.Contains(r)
}

// Maximize grows the range to cover the others (set union of the
// extents). Equal bounds OR their inclusivity. Returns the receiver
// for chaining.
func (r *Range[E]) Maximize(others ...Range[E]) *Range[E] {
	for _, other := range others {
		switch c := r.arith.Compare(other.low, r.low); {
		case c == 0:
			r.lowInclusive = r.lowInclusive || other.lowInclusive
		case c < 0:
			r.low = other.low
			r.lowInclusive = other.lowInclusive
		}
		switch c := r.arith.Compare(other.high, r.high); {
		case c == 0:
			r.highInclusive = r.highInclusive || other.highInclusive
		case c > 0:
			r.high = other.high
			r.highInclusive = other.highInclusive
		}
	}
	return r
}

// Maximized is the non-mutating form of Maximize.
func (r Range[E]) Maximized(others ...Range[E]) Range[E] {
	c := r.Copy()
	c.Maximize(others...)
	return c
}

// Intersect narrows the range to the values shared with all others.
// When any of them is disjoint from the running intersection it
// reports false and leaves the receiver untouched; there is no silent
// collapse to a degenerate point.
func (r *Range[E]) Intersect(others ...Range[E]) bool {
	res, ok := r.Intersection(others...)
	if !ok {
		return false
	}
	*r = res
	return true
}

// Intersection is the non-mutating form of Intersect. The second
// return is false when the ranges are disjoint.
func (r Range[E]) Intersection(others ...Range[E]) (Range[E], bool) {
	res := r.Copy()
	for _, other := range others {
		if !res.Overlaps(other) {
			return Range[E]{}, false
		}
		switch c := res.arith.Compare(other.low, res.low); {
		case c == 0:
			res.lowInclusive = res.lowInclusive && other.lowInclusive
		case c > 0:
			res.low = other.low
			res.lowInclusive = other.lowInclusive
		}
		switch c := res.arith.Compare(other.high, res.high); {
		case c == 0:
			res.highInclusive = res.highInclusive && other.highInclusive
		case c < 0:
			res.high = other.high
			res.highInclusive = other.highInclusive
		}
	}
	return res, true
}

// Shift translates the whole range by delta. Returns the receiver for
// chaining.
func (r *Range[E]) Shift(delta E) *Range[E] {
	r.low = r.arith.Add(r.low, delta)
	r.high = r.arith.Add(r.high, delta)
	return r
}

// Shifted is the non-mutating form of Shift.
func (r Range[E]) Shifted(delta E) Range[E] {
	c := r.Copy()
	c.Shift(delta)
	return c
}

// CenterDelta is the signed distance of a value from the center.
func (r Range[E]) CenterDelta(v E) E {
	return r.arith.Sub(v, r.Center())
}

// CenterDeltaOf is the signed distance of another range's center from
// this range's center.
func (r Range[E]) CenterDeltaOf(other Range[E]) E {
	return r.CenterDelta(other.Center())
}

// MinimumDistanceTo is the absolute gap between a value and the
// nearer edge, zero when the value is contained.
func (r Range[E]) MinimumDistanceTo(v E) E {
	if r.ContainsValue(v) {
		return r.arith.Zero()
	}
	a := r.arith
	return numberlike.Min(a,
		numberlike.Abs(a, a.Sub(v, r.high)),
		numberlike.Abs(a, a.Sub(v, r.low)))
}

// MinimumDistance is the minimum absolute gap between any pair of
// edges, zero when the ranges overlap.
func (r Range[E]) MinimumDistance(other Range[E]) E {
	if r.Overlaps(other) {
		return r.arith.Zero()
	}
	a := r.arith
	d := numberlike.Abs(a, a.Sub(other.high, r.high))
	d = numberlike.Min(a, d, numberlike.Abs(a, a.Sub(other.high, r.low)))
	d = numberlike.Min(a, d, numberlike.Abs(a, a.Sub(other.low, r.high)))
	d = numberlike.Min(a, d, numberlike.Abs(a, a.Sub(other.low, r.low)))
	return d
}

// DivScalar divides both bounds by a scalar, yielding a range. An
// overridden center is halved. Division by another range instead
// yields a plain scalar, see Ratio; the asymmetry is deliberate.
func (r Range[E]) DivScalar(f float64) Range[E] {
	c := r.Copy()
	lo := r.arith.Scale(r.low, 1/f)
	hi := r.arith.Scale(r.high, 1/f)
	c.low = numberlike.Min(r.arith, lo, hi)
	c.high = numberlike.Max(r.arith, lo, hi)
	if r.center != nil {
		v := r.arith.Scale(*r.center, 0.5)
		c.center = &v
	}
	return c
}

// Ratio divides span by span, yielding a plain scalar: 6d/3d = 2.
func (r Range[E]) Ratio(other Range[E]) float64 {
	return r.arith.Ratio(r.Span(), other.Span())
}
