package ranges

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by At for positions other than the
// two logical ones (0 = low, 1 = high).
var ErrIndexOutOfRange = errors.New("index out of range")

// ParseError reports a bounds or tolerance string that did not match
// any recognized form. It is always surfaced, never defaulted.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// ConfigurationError reports a split configuration that cannot be
// satisfied: an unknown remainder policy, or fixed pieces that do not
// fit in the span.
type ConfigurationError struct {
	Policy string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Policy != "" {
		return fmt.Sprintf("unknown remainder handling policy %q", e.Policy)
	}
	return fmt.Sprintf("invalid split configuration: %s", e.Reason)
}

// TolerancePresentationError reports a request for the symmetric
// "value +/- tolerance" view of a range whose center was manually
// overridden and no longer sits at the midpoint. Callers can catch it
// and fall back to another format.
type TolerancePresentationError struct {
	Center string
	Low    string
	High   string
}

func (e *TolerancePresentationError) Error() string {
	return fmt.Sprintf("range %s - %s with overridden center %s cannot be expressed as \"value +/- tolerance\"", e.Low, e.High, e.Center)
}

// EmptyCollectionError reports an extrema or nearest-range query on an
// empty collection. Callers must distinguish "empty" from "contains
// zero", so this is never silently defaulted.
type EmptyCollectionError struct {
	Op string
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s: collection is empty", e.Op)
}
