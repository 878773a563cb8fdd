package ranges

import (
	"iter"
	"sort"
	"strings"

	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
)

// Ranges is an ordered collection of mutually disjoint ranges, kept
// ascending by low bound. Inserting a range that overlaps or touches
// existing members replaces the whole overlapping subset with one
// merged range, so the collection is always the minimal disjoint
// cover of everything ever appended.
type Ranges[E any] struct {
	arith   numberlike.Arithmetic[E]
	members []Range[E]
}

// NewRanges builds a collection, merging any initial members.
func NewRanges[E any](arith numberlike.Arithmetic[E], members ...Range[E]) *Ranges[E] {
	r := &Ranges[E]{arith: arith}
	r.Append(members...)
	return r
}

// Append inserts one or more ranges, merging each with every member
// it overlaps or touches until no overlaps remain.
func (r *Ranges[E]) Append(members ...Range[E]) {
	for _, m := range members {
		r.insert(m.Copy())
	}
}

func (r *Ranges[E]) insert(m Range[E]) {
	// Collect everything the incoming range overlaps or touches and
	// fold it in. Merging can widen the range far enough to reach
	// members that were already ruled out, so sweep again until the
	// merged range stops growing.
	for {
		kept := make([]Range[E], 0, len(r.members))
		merged := false
		for _, existing := range r.members {
			if existing.Overlaps(m) || existing.Touches(m) {
				m.Maximize(existing)
				merged = true
			} else {
				kept = append(kept, existing)
			}
		}
		r.members = kept
		if !merged {
			break
		}
	}
	idx := sort.Search(len(r.members), func(i int) bool {
		return r.arith.Compare(r.members[i].low, m.low) > 0
	})
	r.members = append(r.members, Range[E]{})
	copy(r.members[idx+1:], r.members[idx:])
	r.members[idx] = m
}

// Len is the number of disjoint members.
func (r *Ranges[E]) Len() int { return len(r.members) }

// Members returns a snapshot of the disjoint cover in ascending
// order.
func (r *Ranges[E]) Members() []Range[E] {
	out := make([]Range[E], 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m.Copy())
	}
	return out
}

// All iterates the members in ascending order.
func (r *Ranges[E]) All() iter.Seq[Range[E]] {
	return func(yield func(Range[E]) bool) {
		for _, m := range r.members {
			if !yield(m.Copy()) {
				return
			}
		}
	}
}

// Minimum is the lowest bound across all members. It fails with an
// EmptyCollectionError when there are none; an empty collection is
// not the same as one containing zero.
func (r *Ranges[E]) Minimum() (E, error) {
	if len(r.members) == 0 {
		var zero E
		return zero, &EmptyCollectionError{Op: "Minimum"}
	}
	return r.members[0].low, nil
}

// Maximum is the highest bound across all members, failing with an
// EmptyCollectionError when there are none.
func (r *Ranges[E]) Maximum() (E, error) {
	if len(r.members) == 0 {
		var zero E
		return zero, &EmptyCollectionError{Op: "Maximum"}
	}
	return r.members[len(r.members)-1].high, nil
}

// GetRange returns the first member containing the value.
func (r *Ranges[E]) GetRange(v E) (Range[E], bool) {
	for _, m := range r.members {
		if m.ContainsValue(v) {
			return m.Copy(), true
		}
	}
	return Range[E]{}, false
}

// GetRangeOf returns the first member entirely containing the given
// range.
func (r *Ranges[E]) GetRangeOf(other Range[E]) (Range[E], bool) {
	for _, m := range r.members {
		if m.Contains(other) {
			return m.Copy(), true
		}
	}
	return Range[E]{}, false
}

// Contains reports whether some member contains the value.
func (r *Ranges[E]) Contains(v E) bool {
	_, ok := r.GetRange(v)
	return ok
}

// ContainsRange reports whether some member entirely contains the
// given range.
func (r *Ranges[E]) ContainsRange(other Range[E]) bool {
	_, ok := r.GetRangeOf(other)
	return ok
}

// Intersects reports whether any member overlaps the given range.
func (r *Ranges[E]) Intersects(other Range[E]) bool {
	for _, m := range r.members {
		if m.Overlaps(other) {
			return true
		}
	}
	return false
}

// GetNearestRange returns the containing member if one exists, else
// the member whose nearer edge has minimum absolute distance to the
// value. It fails with an EmptyCollectionError when the collection is
// empty.
func (r *Ranges[E]) GetNearestRange(v E) (Range[E], error) {
	if len(r.members) == 0 {
		return Range[E]{}, &EmptyCollectionError{Op: "GetNearestRange"}
	}
	best := r.members[0]
	bestDist := best.MinimumDistanceTo(v)
	for _, m := range r.members[1:] {
		if m.ContainsValue(v) {
			return m.Copy(), nil
		}
		d := m.MinimumDistanceTo(v)
		if r.arith.Compare(d, bestDist) < 0 {
			best = m
			bestDist = d
		}
	}
	return best.Copy(), nil
}

// Gaps returns the complement of the cover within a bounding range:
// the sub-ranges of within that no member touches.
func (r *Ranges[E]) Gaps(within Range[E]) []Range[E] {
	var gaps []Range[E]
	cursor := within.low
	for _, m := range r.members {
		if r.arith.Compare(m.high, cursor) <= 0 {
			continue
		}
		if r.arith.Compare(cursor, within.high) >= 0 {
			return gaps
		}
		if r.arith.Compare(m.low, cursor) > 0 {
			end := numberlike.Min(r.arith, m.low, within.high)
			gaps = append(gaps, New(r.arith, cursor, end))
		}
		cursor = numberlike.Max(r.arith, cursor, m.high)
	}
	if r.arith.Compare(cursor, within.high) < 0 {
		gaps = append(gaps, New(r.arith, cursor, within.high))
	}
	return gaps
}

func (r *Ranges[E]) String() string {
	parts := make([]string, 0, len(r.members))
	for _, m := range r.members {
		parts = append(parts, "["+m.String()+"]")
	}
	return strings.Join(parts, ", ")
}
