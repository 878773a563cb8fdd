package rangetable

import (
	"testing"

	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/ranges"
)

func newFloatTable(low, high float64) Table[float64] {
	return New[float64](numberlike.Float64{}, ranges.NewFloat64(low, high))
}

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		universe          [2]float64
		newSuccessEntries map[[2]float64]labels.Set
		newFailedEntries  map[[2]float64]labels.Set
		expectedEntries   int
	}{

		"Normal": {
			universe: [2]float64{0, 100},
			newSuccessEntries: map[[2]float64]labels.Set{
				{10, 20}: {"type": "a"},
				{20, 30}: {"type": "b"},
			},
			newFailedEntries: map[[2]float64]labels.Set{
				{15, 25}:  {},
				{90, 110}: {},
			},
			expectedEntries: 2,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := newFloatTable(tc.universe[0], tc.universe[1])

			for bounds, d := range tc.newSuccessEntries {
				err := r.Claim(ranges.NewFloat64(bounds[0], bounds[1]), d)
				assert.NoError(t, err)
			}
			for bounds, d := range tc.newFailedEntries {
				err := r.Claim(ranges.NewFloat64(bounds[0], bounds[1]), d)
				assert.Error(t, err)
			}
			for bounds := range tc.newSuccessEntries {
				if !r.Has(bounds[0]) {
					t.Errorf("%s expecting success claim entry: %v\n", name, bounds)
				}
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestClaimedCoverMergesTouchingEntries(t *testing.T) {
	r := newFloatTable(0, 100)

	assert.NoError(t, r.Claim(ranges.NewFloat64(10, 20), labels.Set{}))
	assert.NoError(t, r.Claim(ranges.NewFloat64(20, 30), labels.Set{}))

	claimed := r.Claimed()
	assert.Equal(t, 1, len(claimed))
	assert.Equal(t, 10.0, claimed[0].Low())
	assert.Equal(t, 30.0, claimed[0].High())

	// the entries stay individually tracked
	assert.Equal(t, 2, r.Count())
}

func TestRelease(t *testing.T) {
	r := newFloatTable(0, 100)

	assert.NoError(t, r.Claim(ranges.NewFloat64(10, 20), labels.Set{}))
	assert.NoError(t, r.Claim(ranges.NewFloat64(20, 30), labels.Set{}))

	assert.NoError(t, r.Release(ranges.NewFloat64(10, 20)))
	assert.Equal(t, 1, r.Count())
	assert.False(t, r.Has(15))
	assert.True(t, r.Has(25))

	// releasing a range that was never claimed fails
	assert.Error(t, r.Release(ranges.NewFloat64(50, 60)))

	// the released space is claimable again
	assert.NoError(t, r.Claim(ranges.NewFloat64(10, 20), labels.Set{}))
}

func TestFindFree(t *testing.T) {
	r := newFloatTable(0, 100)

	assert.NoError(t, r.Claim(ranges.NewFloat64(0, 40), labels.Set{}))
	assert.NoError(t, r.Claim(ranges.NewFloat64(50, 90), labels.Set{}))

	free, err := r.FindFree(10)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, free.Low())
	assert.Equal(t, 50.0, free.High())

	free, err = r.FindFree(5)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, free.Low())

	_, err = r.FindFree(30)
	assert.Error(t, err)
}

func TestFree(t *testing.T) {
	r := newFloatTable(0, 100)
	assert.NoError(t, r.Claim(ranges.NewFloat64(20, 80), labels.Set{}))

	free := r.Free()
	assert.Equal(t, 2, len(free))
	assert.Equal(t, 0.0, free[0].Low())
	assert.Equal(t, 20.0, free[0].High())
	assert.Equal(t, 80.0, free[1].Low())
	assert.Equal(t, 100.0, free[1].High())

	assert.True(t, r.IsFree(ranges.NewFloat64(0, 20)))
	assert.False(t, r.IsFree(ranges.NewFloat64(10, 30)))
	assert.False(t, r.IsFree(ranges.NewFloat64(90, 120)))
}

func TestFind(t *testing.T) {
	r := newFloatTable(0, 100)
	assert.NoError(t, r.Claim(ranges.NewFloat64(10, 20), labels.Set{"type": "a"}))

	e, err := r.Find(15)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, e.Range().Low())
	assert.Equal(t, "a", e.Labels()["type"])

	_, err = r.Find(55)
	assert.Error(t, err)
}

func TestClaimValue(t *testing.T) {
	r := New[int64](numberlike.Int64{}, ranges.New[int64](numberlike.Int64{}, 0, 10))

	assert.NoError(t, r.ClaimValue(3, labels.Set{}))
	assert.NoError(t, r.ClaimValue(4, labels.Set{}))
	assert.Error(t, r.ClaimValue(3, labels.Set{}))

	assert.True(t, r.Has(3))
	assert.False(t, r.Has(5))

	// adjacent unit slots coalesce in the cover
	claimed := r.Claimed()
	assert.Equal(t, 1, len(claimed))
	assert.Equal(t, int64(3), claimed[0].Low())
	assert.Equal(t, int64(5), claimed[0].High())
}

func TestUpdateAndGetByLabel(t *testing.T) {
	r := newFloatTable(0, 100)

	assert.NoError(t, r.Claim(ranges.NewFloat64(10, 20), labels.Set{"status": "pending"}))
	assert.NoError(t, r.Claim(ranges.NewFloat64(30, 40), labels.Set{"status": "ready"}))

	entries := r.GetByLabel(labels.SelectorFromSet(labels.Set{"status": "ready"}))
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, 30.0, entries[0].Range().Low())

	assert.NoError(t, r.Update(ranges.NewFloat64(10, 20), labels.Set{"status": "ready"}))
	entries = r.GetByLabel(labels.SelectorFromSet(labels.Set{"status": "ready"}))
	assert.Equal(t, 2, len(entries))

	assert.Error(t, r.Update(ranges.NewFloat64(50, 60), labels.Set{}))

	all := r.GetAll()
	assert.Equal(t, 2, len(all))
}
