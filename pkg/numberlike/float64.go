package numberlike

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Float64 is the Arithmetic implementation for plain numbers.
type Float64 struct{}

func (Float64) Add(a, b float64) float64    { return a + b }
func (Float64) Sub(a, b float64) float64    { return a - b }
func (Float64) Scale(a, f float64) float64  { return a * f }
func (Float64) Ratio(a, b float64) float64  { return a / b }
func (Float64) Zero() float64               { return 0 }
func (Float64) One() float64                { return 1 }
func (Float64) FromFloat(f float64) float64 { return f }
func (Float64) Float(a float64) float64     { return a }

func (Float64) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float64) Parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	return f, nil
}

func (Float64) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
