package numberlike

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Int64 is the Arithmetic implementation for integral elements. It is
// also the index space the IP adapter maps addresses into.
type Int64 struct{}

func (Int64) Add(a, b int64) int64  { return a + b }
func (Int64) Sub(a, b int64) int64  { return a - b }
func (Int64) Zero() int64           { return 0 }
func (Int64) One() int64            { return 1 }
func (Int64) Float(a int64) float64 { return float64(a) }

func (Int64) Scale(a int64, f float64) int64 {
	return int64(math.Round(float64(a) * f))
}

func (Int64) Ratio(a, b int64) float64 {
	return float64(a) / float64(b)
}

func (Int64) Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Int64) FromFloat(f float64) int64 {
	return int64(math.Round(f))
}

func (Int64) Parse(s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return i, nil
}

func (Int64) Format(a int64) string {
	return strconv.FormatInt(a, 10)
}
