package numberlike

// Arithmetic is the capability set a range element type must provide:
// addition, subtraction, scaling by a scalar, element-over-element
// ratio, ordering, and conversion to/from floats and strings.
//
// An Arithmetic implementation doubles as the element factory: it is
// the only way raw input (floats, strings) becomes an element, so a
// range works identically over plain numbers, durations, or
// unit-carrying quantities.
type Arithmetic[E any] interface {
	Add(a, b E) E
	Sub(a, b E) E
	// Scale multiplies an element by a plain scalar.
	Scale(a E, f float64) E
	// Ratio divides element by element, yielding a plain scalar.
	Ratio(a, b E) float64
	// Compare returns -1, 0 or 1 as a is less than, equal to or
	// greater than b.
	Compare(a, b E) int
	Zero() E
	// One is the multiplicative identity, used as the default step.
	One() E
	FromFloat(f float64) E
	Float(a E) float64
	Parse(s string) (E, error)
	Format(a E) string
}

// Abs returns the absolute value of a under the given arithmetic.
func Abs[E any](arith Arithmetic[E], a E) E {
	if arith.Compare(a, arith.Zero()) < 0 {
		return arith.Scale(a, -1)
	}
	return a
}

// Min returns the smaller of a and b under the given arithmetic.
func Min[E any](arith Arithmetic[E], a, b E) E {
	if arith.Compare(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b under the given arithmetic.
func Max[E any](arith Arithmetic[E], a, b E) E {
	if arith.Compare(b, a) > 0 {
		return b
	}
	return a
}
