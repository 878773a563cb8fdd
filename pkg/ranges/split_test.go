package ranges

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectSplit(t *testing.T, r Range[float64], opts SplitOptions[float64]) []Range[float64] {
	t.Helper()
	seq, err := r.Split(opts)
	assert.NoError(t, err)
	var out []Range[float64]
	for part := range seq {
		out = append(out, part)
	}
	return out
}

func assertPieces(t *testing.T, name string, got []Range[float64], want [][2]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: -want %d pieces, +got: %d\n", name, len(want), len(got))
	}
	for i, w := range want {
		assert.InDelta(t, w[0], got[i].Low(), 1e-9, "piece %d low", i)
		assert.InDelta(t, w[1], got[i].High(), 1e-9, "piece %d high", i)
	}
}

func TestSplitBoxExample(t *testing.T) {
	// a 12 inch box with 3 inch sections, 1/2 inch end boards and
	// 1/4 inch dividers; the stretch default absorbs the leftover so
	// the pieces tile the full 12 inches
	sectionSize, endSize, sepSize := 3.0, 0.5, 0.25
	got := collectSplit(t, NewFloat64(0, 12), SplitOptions[float64]{
		SectionSize:   &sectionSize,
		EndSize:       &endSize,
		SeparatorSize: &sepSize,
	})
	assertPieces(t, "box", got, [][2]float64{
		{0, 0.5},
		{0.5, 4.0},
		{4.0, 4.25},
		{4.25, 7.75},
		{7.75, 8.0},
		{8.0, 11.5},
		{11.5, 12.0},
	})
	// reconstructed span is exactly the original
	assert.InDelta(t, 12.0, got[len(got)-1].High()-got[0].Low(), 1e-9)
}

func TestSplitEmissionFlags(t *testing.T) {
	sectionSize, endSize, sepSize := 3.0, 0.5, 0.25
	base := SplitOptions[float64]{
		SectionSize:   &sectionSize,
		EndSize:       &endSize,
		SeparatorSize: &sepSize,
	}

	cases := map[string]struct {
		mutate   func(o *SplitOptions[float64])
		expected int
	}{
		"All":            {mutate: func(o *SplitOptions[float64]) {}, expected: 7},
		"OnlyEnds":       {mutate: func(o *SplitOptions[float64]) { o.SkipSections = true; o.SkipSeparators = true }, expected: 2},
		"OnlySections":   {mutate: func(o *SplitOptions[float64]) { o.SkipEnds = true; o.SkipSeparators = true }, expected: 3},
		"OnlySeparators": {mutate: func(o *SplitOptions[float64]) { o.SkipEnds = true; o.SkipSections = true }, expected: 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			opts := base
			tc.mutate(&opts)
			got := collectSplit(t, NewFloat64(0, 12), opts)
			if len(got) != tc.expected {
				t.Errorf("%s: -want %d pieces, +got: %d\n", name, tc.expected, len(got))
			}
		})
	}
}

func TestSplitByCount(t *testing.T) {
	got := collectSplit(t, NewFloat64(0, 12), SplitOptions[float64]{NumSections: 4})
	assertPieces(t, "byCount", got, [][2]float64{
		{0, 3}, {3, 6}, {6, 9}, {9, 12},
	})
}

func TestSplitByCountWithEndsAndSeparators(t *testing.T) {
	endSize, sepSize := 1.0, 0.5
	got := collectSplit(t, NewFloat64(0, 13), SplitOptions[float64]{
		NumSections:   2,
		EndSize:       &endSize,
		SeparatorSize: &sepSize,
	})
	// interior is 13 - 2 - 0.5 = 10.5, so sections are 5.25 wide
	assertPieces(t, "byCountDecorated", got, [][2]float64{
		{0, 1},
		{1, 6.25},
		{6.25, 6.75},
		{6.75, 12},
		{12, 13},
	})
}

func TestSplitRemainderPolicies(t *testing.T) {
	sectionSize := 3.0
	cases := map[string]struct {
		policy   RemainderPolicy
		expected [][2]float64
	}{
		"RemainderSection": {
			policy:   RemainderSection,
			expected: [][2]float64{{0, 3}, {3, 6}, {6, 9}, {9, 10}},
		},
		"SectionStretch": {
			policy:   SectionStretch,
			expected: [][2]float64{{0, 10.0 / 3}, {10.0 / 3, 20.0 / 3}, {20.0 / 3, 10}},
		},
		"SectionShrink": {
			policy:   SectionShrink,
			expected: [][2]float64{{0, 2.5}, {2.5, 5}, {5, 7.5}, {7.5, 10}},
		},
		"SectionStretchShrinkSmallRemainder": {
			// remainder 1 is under half a section, so stretch
			policy:   SectionStretchShrink,
			expected: [][2]float64{{0, 10.0 / 3}, {10.0 / 3, 20.0 / 3}, {20.0 / 3, 10}},
		},
		"TotalShrink": {
			policy:   TotalShrink,
			expected: [][2]float64{{0, 3}, {3, 6}, {6, 9}},
		},
		"TotalGrow": {
			policy:   TotalGrow,
			expected: [][2]float64{{0, 3}, {3, 6}, {6, 9}, {9, 12}},
		},
		"TotalShrinkGrowSmallRemainder": {
			policy:   TotalShrinkGrow,
			expected: [][2]float64{{0, 3}, {3, 6}, {6, 9}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := collectSplit(t, NewFloat64(0, 10), SplitOptions[float64]{
				SectionSize: &sectionSize,
				Policy:      tc.policy,
			})
			assertPieces(t, name, got, tc.expected)
		})
	}
}

func TestSplitStretchShrinkLargeRemainder(t *testing.T) {
	// remainder 2 is at least half of a 3-wide section, so shrink
	sectionSize := 3.0
	got := collectSplit(t, NewFloat64(0, 11), SplitOptions[float64]{
		SectionSize: &sectionSize,
		Policy:      SectionStretchShrink,
	})
	assertPieces(t, "shrinkSide", got, [][2]float64{
		{0, 2.75}, {2.75, 5.5}, {5.5, 8.25}, {8.25, 11},
	})

	got = collectSplit(t, NewFloat64(0, 11), SplitOptions[float64]{
		SectionSize: &sectionSize,
		Policy:      TotalShrinkGrow,
	})
	assertPieces(t, "growSide", got, [][2]float64{
		{0, 3}, {3, 6}, {6, 9}, {9, 12},
	})
}

func TestSplitExactFit(t *testing.T) {
	sectionSize := 2.0
	got := collectSplit(t, NewFloat64(0, 10), SplitOptions[float64]{
		SectionSize: &sectionSize,
		Policy:      TotalShrink,
	})
	assertPieces(t, "exact", got, [][2]float64{
		{0, 2}, {2, 4}, {4, 6}, {6, 8}, {8, 10},
	})
}

func TestSplitDefaultsToStep(t *testing.T) {
	r := NewFloat64(0, 6)
	r.SetStep(2)
	got := collectSplit(t, r, SplitOptions[float64]{})
	assertPieces(t, "step", got, [][2]float64{
		{0, 2}, {2, 4}, {4, 6},
	})
}

func TestSplitEndsDoNotFit(t *testing.T) {
	// two 2-wide end boards cannot fit in a 1-wide range; nothing may
	// be emitted past the high bound
	sectionSize, endSize := 3.0, 2.0
	_, err := NewFloat64(0, 1).Split(SplitOptions[float64]{
		SectionSize: &sectionSize,
		EndSize:     &endSize,
	})
	assert.Error(t, err)
	cfgErr := &ConfigurationError{}
	assert.True(t, errors.As(err, &cfgErr))
}

func TestSplitSeparatorsDoNotFitByCount(t *testing.T) {
	endSize, sepSize := 1.0, 5.0
	_, err := NewFloat64(0, 5).Split(SplitOptions[float64]{
		NumSections:   3,
		EndSize:       &endSize,
		SeparatorSize: &sepSize,
	})
	assert.Error(t, err)
	cfgErr := &ConfigurationError{}
	assert.True(t, errors.As(err, &cfgErr))
}

func TestSplitEndsFillSpanExactly(t *testing.T) {
	sectionSize, endSize := 3.0, 2.0
	got := collectSplit(t, NewFloat64(0, 4), SplitOptions[float64]{
		SectionSize: &sectionSize,
		EndSize:     &endSize,
	})
	assertPieces(t, "endsOnly", got, [][2]float64{
		{0, 2}, {2, 4},
	})
}

func TestSplitUnknownPolicy(t *testing.T) {
	sectionSize := 3.0
	_, err := NewFloat64(0, 10).Split(SplitOptions[float64]{
		SectionSize: &sectionSize,
		Policy:      RemainderPolicy("make_it_fit"),
	})
	assert.Error(t, err)
	cfgErr := &ConfigurationError{}
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "make_it_fit", cfgErr.Policy)
}
