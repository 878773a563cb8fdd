package ranges

import (
	"regexp"

	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
)

// A bound is a number with an optional unit suffix attached directly
// to it, so "3", "-2.5", "72h" and "500Mi" all qualify; the element
// arithmetic decides what it will actually accept. The suffix must
// not be preceded by whitespace or it would swallow the "to"
// separator in forms like "3 to 5".
const boundPattern = `[-]?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[a-zA-Z\x{00b5}\x{03bc}%]+[0-9a-zA-Z]*)?`

var (
	// Permissive "from separator to" forms: "3-5", "3 to 5", "3,5",
	// "3..5", "3:5", "3;5", "3|5", "3->5", "3=>5", "[3, 5)", "3 5".
	boundsRe = regexp.MustCompile(
		`^\s*[\[\(]?\s*(` + boundPattern + `)` +
			`(?:\s*(?:->|=>|\.\.+|-+|[:;,|]|[tT][oO])\s*|\s+)` +
			`(` + boundPattern + `)\s*[\]\)]?\s*$`)

	// "value +/- tolerance" forms.
	toleranceRe = regexp.MustCompile(
		`^\s*(` + boundPattern + `)\s*(?:\+/-|\+-|\x{00b1})\s*(` + boundPattern + `)\s*$`)
)

// Parse constructs a range from a bounds expression such as "3-5",
// "3 to 5" or "[3, 5)". Strings that match no recognized form fail
// with a ParseError.
func Parse[E any](arith numberlike.Arithmetic[E], s string) (Range[E], error) {
	r := Range[E]{arith: arith, lowInclusive: true}
	if err := r.AssignString(s); err != nil {
		return Range[E]{}, err
	}
	return r, nil
}

// AssignString replaces the bounds from a bounds expression.
func (r *Range[E]) AssignString(s string) error {
	m := boundsRe.FindStringSubmatch(s)
	if m == nil {
		return &ParseError{Input: s, Reason: "not a recognized range form"}
	}
	low, err := r.arith.Parse(m[1])
	if err != nil {
		return &ParseError{Input: s, Reason: err.Error()}
	}
	high, err := r.arith.Parse(m[2])
	if err != nil {
		return &ParseError{Input: s, Reason: err.Error()}
	}
	r.Assign(low, high)
	return nil
}

// SetToleranceString replaces the bounds from a "value +/- tolerance"
// expression, clearing any center override. Malformed input fails
// with a ParseError rather than producing undefined bounds.
func (r *Range[E]) SetToleranceString(s string) error {
	m := toleranceRe.FindStringSubmatch(s)
	if m == nil {
		return &ParseError{Input: s, Reason: "not a \"value +/- tolerance\" form"}
	}
	value, err := r.arith.Parse(m[1])
	if err != nil {
		return &ParseError{Input: s, Reason: err.Error()}
	}
	tolerance, err := r.arith.Parse(m[2])
	if err != nil {
		return &ParseError{Input: s, Reason: err.Error()}
	}
	r.ClearCenter()
	r.SetLow(r.arith.Sub(value, tolerance))
	r.SetHigh(r.arith.Add(value, tolerance))
	return nil
}
