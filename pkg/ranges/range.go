package ranges

import (
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
)

// Range is a bounded interval [low, high] over any element type with
// an Arithmetic implementation. Bounds carry inclusivity flags
// (default: low inclusive, high exclusive, like a counting range), an
// optional step used for discretization, and an optional manually
// overridden center.
//
// The low <= high invariant always holds: assigning a bound past the
// other collapses the range to a degenerate point instead of
// inverting it.
//
// Range is a plain value. Copies are independent; mutating methods
// mutate only the receiver and return it for chaining.
type Range[E any] struct {
	arith         numberlike.Arithmetic[E]
	low           E
	high          E
	lowInclusive  bool
	highInclusive bool
	step          *E
	center        *E
}

// New returns the range [low, high]. If high is below low the range
// collapses to the point at high.
func New[E any](arith numberlike.Arithmetic[E], low, high E) Range[E] {
	r := Range[E]{
		arith:        arith,
		low:          low,
		high:         low,
		lowInclusive: true,
	}
	r.SetHigh(high)
	return r
}

// Point returns the degenerate range [v, v].
func Point[E any](arith numberlike.Arithmetic[E], v E) Range[E] {
	return New(arith, v, v)
}

// NewFloat64 is a convenience constructor over plain numbers.
func NewFloat64(low, high float64) Range[float64] {
	return New[float64](numberlike.Float64{}, low, high)
}

// FromValues returns a range spanning the minimum and maximum of the
// given values.
func FromValues[E any](arith numberlike.Arithmetic[E], values ...E) (Range[E], error) {
	if len(values) == 0 {
		return Range[E]{}, &EmptyCollectionError{Op: "FromValues"}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = numberlike.Min(arith, lo, v)
		hi = numberlike.Max(arith, hi, v)
	}
	return New(arith, lo, hi), nil
}

// Points converts plain values into degenerate point ranges.
func Points[E any](arith numberlike.Arithmetic[E], values ...E) []Range[E] {
	out := make([]Range[E], 0, len(values))
	for _, v := range values {
		out = append(out, Point(arith, v))
	}
	return out
}

// Copy returns an independent copy; the step and center overrides do
// not alias the original.
func (r Range[E]) Copy() Range[E] {
	c := r
	if r.step != nil {
		s := *r.step
		c.step = &s
	}
	if r.center != nil {
		v := *r.center
		c.center = &v
	}
	return c
}

// Arith exposes the element arithmetic the range was built with.
func (r Range[E]) Arith() numberlike.Arithmetic[E] { return r.arith }

func (r Range[E]) Low() E              { return r.low }
func (r Range[E]) High() E             { return r.high }
func (r Range[E]) LowInclusive() bool  { return r.lowInclusive }
func (r Range[E]) HighInclusive() bool { return r.highInclusive }

// SetLow assigns the low bound. A low beyond the current high drags
// the high up with it, collapsing the range to a point.
func (r *Range[E]) SetLow(low E) *Range[E] {
	r.low = low
	if r.arith.Compare(r.low, r.high) > 0 {
		r.high = r.low
	}
	return r
}

// SetHigh assigns the high bound. A high below the current low drags
// the low down with it, collapsing the range to a point.
func (r *Range[E]) SetHigh(high E) *Range[E] {
	r.high = high
	if r.arith.Compare(r.high, r.low) < 0 {
		r.low = r.high
	}
	return r
}

func (r *Range[E]) SetLowInclusive(inclusive bool) *Range[E] {
	r.lowInclusive = inclusive
	return r
}

func (r *Range[E]) SetHighInclusive(inclusive bool) *Range[E] {
	r.highInclusive = inclusive
	return r
}

// Assign replaces both bounds, low first.
func (r *Range[E]) Assign(low, high E) *Range[E] {
	r.SetLow(low)
	r.SetHigh(high)
	return r
}

// AssignPoint collapses the range to the point at v.
func (r *Range[E]) AssignPoint(v E) *Range[E] {
	return r.Assign(v, v)
}

// AssignValues sets the bounds to the minimum and maximum of the
// given values.
func (r *Range[E]) AssignValues(values ...E) error {
	n, err := FromValues(r.arith, values...)
	if err != nil {
		return err
	}
	r.Assign(n.low, n.high)
	return nil
}

// Step is the discretization increment, defaulting to the
// multiplicative identity when unset.
func (r Range[E]) Step() E {
	if r.step != nil {
		return *r.step
	}
	return r.arith.One()
}

func (r *Range[E]) SetStep(step E) *Range[E] {
	r.step = &step
	return r
}

// Span is high - low.
func (r Range[E]) Span() E {
	return r.arith.Sub(r.high, r.low)
}

// SetSpan keeps low and moves high to low + span. An overridden
// center beyond the new high is clamped down to it.
func (r *Range[E]) SetSpan(span E) *Range[E] {
	r.SetHigh(r.arith.Add(r.low, span))
	if r.center != nil && r.arith.Compare(*r.center, r.high) > 0 {
		h := r.high
		r.center = &h
	}
	return r
}

// Average is the computed midpoint (low + high) / 2, regardless of
// any center override.
func (r Range[E]) Average() E {
	return r.arith.Scale(r.arith.Add(r.low, r.high), 0.5)
}

// Center is the midpoint, unless manually overridden.
func (r Range[E]) Center() E {
	if r.center != nil {
		return *r.center
	}
	return r.Average()
}

// SetCenter overrides the center, decoupling it from the midpoint.
func (r *Range[E]) SetCenter(center E) *Range[E] {
	r.center = &center
	return r
}

// ClearCenter removes the override so Center falls back to Average.
func (r *Range[E]) ClearCenter() *Range[E] {
	r.center = nil
	return r
}

// CenterOverridden reports whether the center was manually set.
func (r Range[E]) CenterOverridden() bool { return r.center != nil }

// Tolerance is the half-width in the "value +/- tolerance" view,
// center - low. It fails with a TolerancePresentationError when the
// center was overridden away from the midpoint, since the two
// representations are then no longer interchangeable.
func (r Range[E]) Tolerance() (E, error) {
	if r.center != nil && r.arith.Compare(*r.center, r.Average()) != 0 {
		var zero E
		return zero, &TolerancePresentationError{
			Center: r.arith.Format(*r.center),
			Low:    r.arith.Format(r.low),
			High:   r.arith.Format(r.high),
		}
	}
	return r.arith.Sub(r.Center(), r.low), nil
}

// SetTolerance rebuilds the bounds as center +/- tolerance around the
// current center.
func (r *Range[E]) SetTolerance(tolerance E) *Range[E] {
	c := r.Center()
	r.SetLow(r.arith.Sub(c, tolerance))
	r.SetHigh(r.arith.Add(c, tolerance))
	return r
}

// SetToleranceAround rebuilds the range as value +/- tolerance,
// overriding the center to the value.
func (r *Range[E]) SetToleranceAround(value, tolerance E) *Range[E] {
	r.SetCenter(value)
	r.SetLow(r.arith.Sub(value, tolerance))
	r.SetHigh(r.arith.Add(value, tolerance))
	return r
}

// Len is the number of logical positions (low and high).
func (r Range[E]) Len() int { return 2 }

// At returns the bound at position 0 (low) or 1 (high).
func (r Range[E]) At(i int) (E, error) {
	switch i {
	case 0:
		return r.low, nil
	case 1:
		return r.high, nil
	}
	var zero E
	return zero, ErrIndexOutOfRange
}
