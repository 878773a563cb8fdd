package numberlike

import (
	"math"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/api/resource"
)

// Quantity is the Arithmetic implementation for unit-carrying
// physical quantities (resource.Quantity), e.g. "500Mi" or "250m".
// Add/Sub/Compare are exact; Scale and Ratio go through the
// approximate float representation at milli precision.
type Quantity struct{}

func (Quantity) Add(a, b resource.Quantity) resource.Quantity {
	c := a.DeepCopy()
	c.Add(b)
	return c
}

func (Quantity) Sub(a, b resource.Quantity) resource.Quantity {
	c := a.DeepCopy()
	c.Sub(b)
	return c
}

func (q Quantity) Scale(a resource.Quantity, f float64) resource.Quantity {
	return q.FromFloat(a.AsApproximateFloat64() * f)
}

func (Quantity) Ratio(a, b resource.Quantity) float64 {
	return a.AsApproximateFloat64() / b.AsApproximateFloat64()
}

func (Quantity) Compare(a, b resource.Quantity) int {
	return a.Cmp(b)
}

func (Quantity) Zero() resource.Quantity {
	return *resource.NewQuantity(0, resource.DecimalSI)
}

func (Quantity) One() resource.Quantity {
	return *resource.NewQuantity(1, resource.DecimalSI)
}

func (Quantity) FromFloat(f float64) resource.Quantity {
	return *resource.NewMilliQuantity(int64(math.Round(f*1000)), resource.DecimalSI)
}

func (Quantity) Float(a resource.Quantity) float64 {
	return a.AsApproximateFloat64()
}

func (Quantity) Parse(s string) (resource.Quantity, error) {
	q, err := resource.ParseQuantity(s)
	if err != nil {
		return resource.Quantity{}, errors.Wrapf(err, "invalid quantity %q", s)
	}
	return q, nil
}

func (Quantity) Format(a resource.Quantity) string {
	return a.String()
}
