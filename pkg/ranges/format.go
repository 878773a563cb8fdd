package ranges

import "fmt"

// FormatMinMax renders the explicit "low - high" form with the given
// separator.
func (r Range[E]) FormatMinMax(sep string) string {
	return r.arith.Format(r.low) + sep + r.arith.Format(r.high)
}

// ToleranceString renders the "center +/- tolerance" form. It fails
// with a TolerancePresentationError when the center was overridden
// away from the midpoint; callers can catch that and fall back to
// FormatMinMax or RangeFormat.
func (r Range[E]) ToleranceString() (string, error) {
	tolerance, err := r.Tolerance()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s +/- %s", r.arith.Format(r.Center()), r.arith.Format(tolerance)), nil
}

// RangeFormat renders the counting-range style form
// range(start,stop[,step]), omitting arguments the way the counting
// builtin would.
func (r Range[E]) RangeFormat() string {
	if r.arith.Compare(r.Step(), r.arith.One()) != 0 {
		return fmt.Sprintf("range(%s,%s,%s)",
			r.arith.Format(r.low), r.arith.Format(r.high), r.arith.Format(r.Step()))
	}
	if r.arith.Compare(r.low, r.arith.Zero()) != 0 {
		return fmt.Sprintf("range(%s,%s)", r.arith.Format(r.low), r.arith.Format(r.high))
	}
	return fmt.Sprintf("range(%s)", r.arith.Format(r.high))
}

// String prefers the min-max form, which is always expressible.
func (r Range[E]) String() string {
	return r.FormatMinMax(" - ")
}
