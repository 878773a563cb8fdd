package numberlike

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Duration is the Arithmetic implementation for time.Duration
// elements, so ranges can be expressed as e.g. "72h-120h".
type Duration struct{}

func (Duration) Add(a, b time.Duration) time.Duration { return a + b }
func (Duration) Sub(a, b time.Duration) time.Duration { return a - b }
func (Duration) Zero() time.Duration                  { return 0 }
func (Duration) One() time.Duration                   { return time.Nanosecond }
func (Duration) Float(a time.Duration) float64        { return float64(a) }

func (Duration) Scale(a time.Duration, f float64) time.Duration {
	return time.Duration(math.Round(float64(a) * f))
}

func (Duration) Ratio(a, b time.Duration) float64 {
	return float64(a) / float64(b)
}

func (Duration) Compare(a, b time.Duration) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Duration) FromFloat(f float64) time.Duration {
	return time.Duration(math.Round(f))
}

func (Duration) Parse(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid duration %q", s)
	}
	return d, nil
}

func (Duration) Format(a time.Duration) string {
	return a.String()
}
