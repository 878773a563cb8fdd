package rangetable

import (
	"fmt"
	"sync"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/ranges"
)

// Table claims intervals out of a bounded universe range. Claims
// carry a label set and stay individually releasable; the claimed
// cover is tracked as a disjoint range collection so free-space
// queries fall out of its complement.
type Table[E any] interface {
	Claim(r ranges.Range[E], lbls labels.Set) error
	// ClaimValue claims the unit-width slot starting at v.
	ClaimValue(v E, lbls labels.Set) error
	Release(r ranges.Range[E]) error
	Update(r ranges.Range[E], lbls labels.Set) error

	Find(v E) (Entry[E], error)
	Has(v E) bool
	IsFree(r ranges.Range[E]) bool
	FindFree(span E) (ranges.Range[E], error)

	Count() int
	Claimed() []ranges.Range[E]
	Free() []ranges.Range[E]
	GetAll() []Entry[E]
	GetByLabel(selector labels.Selector) []Entry[E]
}

// Entry is one claim: the claimed range and its labels.
type Entry[E any] interface {
	Range() ranges.Range[E]
	Labels() labels.Set
	String() string
}

type entry[E any] struct {
	rng  ranges.Range[E]
	lbls labels.Set
}

func (r entry[E]) Range() ranges.Range[E] { return r.rng }
func (r entry[E]) Labels() labels.Set     { return r.lbls }
func (r entry[E]) String() string {
	return fmt.Sprintf("range: %s, labels: %s", r.rng.String(), r.lbls.String())
}

func NewEntry[E any](rng ranges.Range[E], lbls labels.Set) Entry[E] {
	return entry[E]{rng: rng.Copy(), lbls: lbls}
}

func New[E any](arith numberlike.Arithmetic[E], universe ranges.Range[E]) Table[E] {
	return &table[E]{
		m:        new(sync.RWMutex),
		arith:    arith,
		universe: universe.Copy(),
		claimed:  ranges.NewRanges[E](arith),
	}
}

type table[E any] struct {
	m        *sync.RWMutex
	arith    numberlike.Arithmetic[E]
	universe ranges.Range[E]
	claimed  *ranges.Ranges[E]
	entries  []entry[E]
}

func (r *table[E]) Claim(rng ranges.Range[E], lbls labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.claim(rng, lbls)
}

func (r *table[E]) claim(rng ranges.Range[E], lbls labels.Set) error {
	if !r.universe.Contains(rng) {
		return fmt.Errorf("range %s does not fit in the universe %s", rng.String(), r.universe.String())
	}
	if r.claimed.Intersects(rng) {
		return fmt.Errorf("range %s is already claimed", rng.String())
	}
	r.entries = append(r.entries, entry[E]{rng: rng.Copy(), lbls: lbls})
	r.claimed.Append(rng)
	return nil
}

func (r *table[E]) ClaimValue(v E, lbls labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.claim(r.slot(v), lbls)
}

// slot is the half-open unit-width range starting at v, so touching
// claims coalesce in the cover while staying separate entries.
func (r *table[E]) slot(v E) ranges.Range[E] {
	return ranges.New(r.arith, v, r.arith.Add(v, r.arith.One()))
}

func (r *table[E]) Release(rng ranges.Range[E]) error {
	r.m.Lock()
	defer r.m.Unlock()

	idx := r.indexOf(rng)
	if idx < 0 {
		return fmt.Errorf("range %s is not claimed", rng.String())
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	r.rebuild()
	return nil
}

func (r *table[E]) Update(rng ranges.Range[E], lbls labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	idx := r.indexOf(rng)
	if idx < 0 {
		return fmt.Errorf("range %s is not claimed", rng.String())
	}
	r.entries[idx].lbls = lbls
	return nil
}

func (r *table[E]) indexOf(rng ranges.Range[E]) int {
	for i, e := range r.entries {
		if e.rng.Equal(rng) {
			return i
		}
	}
	return -1
}

// rebuild recomputes the claimed cover after a release; the cover
// merges touching entries, so it cannot be edited in place.
func (r *table[E]) rebuild() {
	r.claimed = ranges.NewRanges[E](r.arith)
	for _, e := range r.entries {
		r.claimed.Append(e.rng)
	}
}

func (r *table[E]) Find(v E) (Entry[E], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		if e.rng.ContainsValue(v) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no match found for: %v", v)
}

func (r *table[E]) Has(v E) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Contains(v)
}

func (r *table[E]) IsFree(rng ranges.Range[E]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.universe.Contains(rng) && !r.claimed.Intersects(rng)
}

func (r *table[E]) FindFree(span E) (ranges.Range[E], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, gap := range r.claimed.Gaps(r.universe) {
		if r.arith.Compare(gap.Span(), span) >= 0 {
			return ranges.New(r.arith, gap.Low(), r.arith.Add(gap.Low(), span)), nil
		}
	}
	return ranges.Range[E]{}, fmt.Errorf("no free range of span %s", r.arith.Format(span))
}

func (r *table[E]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table[E]) Claimed() []ranges.Range[E] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Members()
}

func (r *table[E]) Free() []ranges.Range[E] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Gaps(r.universe)
}

func (r *table[E]) GetAll() []Entry[E] {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make([]Entry[E], 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	return entries
}

func (r *table[E]) GetByLabel(selector labels.Selector) []Entry[E] {
	r.m.RLock()
	defer r.m.RUnlock()

	var entries []Entry[E]
	for _, e := range r.entries {
		if selector.Matches(e.lbls) {
			entries = append(entries, e)
		}
	}
	return entries
}
