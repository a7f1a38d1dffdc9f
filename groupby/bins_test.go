// SPDX-License-Identifier: MIT

package groupby_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/groupby"
	"github.com/katalvlaran/dimgroup/lookup"
)

func TestBins_CountCoversMaximum(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 1.5, 3, 4.5, 6, 7.5, 9, 10}
	dim := dimension.Of(dimension.X, vals)
	gd, part, err := groupby.Resolve(dim, groupby.BinCount(4), nil)
	require.NoError(t, err)
	require.Equal(t, 4, part.Len())
	assert.Equal(t, 4, gd.Len())

	for i, v := range vals {
		hits := 0
		for _, k := range part.Keys {
			if lookup.ContainsValue(k, v) {
				hits++
			}
		}
		assert.Equalf(t, 1, hits, "value %d (%g) in %d bins", i, v, hits)
	}
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}, part.Positions)

	first := part.Keys[0].(lookup.Interval)
	assert.Equal(t, 0.0, first.Lo)
	assert.Equal(t, lookup.ClosedOpen, first.Bounds)
	last := part.Keys[3].(lookup.Interval)
	assert.InDelta(t, 10.01, last.Hi, 1e-12)
	// adjacent bins share their boundary exactly
	assert.Equal(t, part.Keys[1].(lookup.Interval).Hi, part.Keys[2].(lookup.Interval).Lo)
}

func TestBins_CustomPadAndTransform(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []int{1, 2, 3, 4})
	double := func(v any) any { return v.(int) * 2 }
	_, part, err := groupby.Resolve(dim, groupby.Bins{F: double, Count: 2, Pad: 0.5}, nil)
	require.NoError(t, err)
	// values 2..8, stop = 8 + 0.5*6 = 11, width 4.5: [2,6.5) [6.5,11)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, part.Positions)
	assert.Equal(t, 11.0, part.Keys[1].(lookup.Interval).Hi)
}

func TestBins_DegenerateRange(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []float64{5, 5, 5})
	_, part, err := groupby.Resolve(dim, groupby.BinCount(3), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, part.Covered())
	assert.Equal(t, []int{0, 1, 2}, part.Positions[0])
}

func TestBins_NaNIsSkipped(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []float64{1, 2, math.NaN(), 3, 4})
	_, part, err := groupby.Resolve(dim, groupby.BinCount(2), nil)
	require.NoError(t, err)
	require.Equal(t, 2, part.Len())
	lo := part.Keys[0].(lookup.Interval)
	assert.Equal(t, 1.0, lo.Lo)
	assert.Equal(t, [][]int{{0, 1}, {3, 4}}, part.Positions)
	assert.Equal(t, 4, part.Covered())

	_, _, err = groupby.Resolve(dimension.Of(dimension.X, []float64{math.NaN(), math.NaN()}), groupby.BinCount(2), nil)
	require.ErrorIs(t, err, groupby.ErrNotNumeric)
}

func TestBins_InvalidCount(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []int{1, 2})
	for _, c := range []groupby.Criterion{
		groupby.BinCount(0),
		groupby.BinCount(-2),
		groupby.CyclicBins{Cycle: 12, Step: 0},
		groupby.CyclicBins{Cycle: 0, Step: 1},
	} {
		_, _, err := groupby.Resolve(dim, c, nil)
		require.ErrorIsf(t, err, groupby.ErrInvalidBinCount, "criterion %s", c)
	}
}

func TestBins_NotNumeric(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []string{"a", "b"})
	_, _, err := groupby.Resolve(dim, groupby.BinCount(2), nil)
	require.ErrorIs(t, err, groupby.ErrNotNumeric)
}

func TestBins_ExplicitEdgesFirstMatchWins(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []int{1, 4, 7, 12})
	c := groupby.BinEdges(lookup.NewInterval(0, 5), lookup.NewInterval(3, 10))
	gd, part, err := groupby.Resolve(dim, c, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, part.Positions)
	assert.Equal(t, "[0, 5)", lookup.Format(gd.Values()[0]))
}

func TestBins_Labels(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []int{1, 4, 7})
	c := groupby.BinEdges(lookup.NewInterval(0, 5), lookup.NewInterval(5, 10))
	c.Labels = groupby.LabelList{"low", "high"}
	gd, _, err := groupby.Resolve(dim, c, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"low", "high"}, gd.Values())

	// labels passed to Resolve take precedence
	gd, _, err = groupby.Resolve(dim, c, groupby.LabelFunc(func(k any) any { return lookup.Format(k) }))
	require.NoError(t, err)
	assert.Equal(t, []any{"[0, 5)", "[5, 10)"}, gd.Values())

	c.Labels = groupby.LabelList{"only one"}
	_, _, err = groupby.Resolve(dim, c, nil)
	require.ErrorIs(t, err, groupby.ErrLabelLength)
}

func TestCyclicBins_Wrap(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.Ti, monthNumbers())
	c := groupby.CyclicBins{Cycle: 12, Step: 3, Start: 1}
	_, part, err := groupby.Resolve(dim, c, nil)
	require.NoError(t, err)
	require.Equal(t, 4, part.Len())
	for _, k := range part.Keys {
		assert.Len(t, k.(lookup.Residues).Values, 3)
	}
	assert.Equal(t, []int{1, 2, 3}, part.Keys[0].(lookup.Residues).Values)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}}, part.Positions)
	assertPartitionOnce(t, part.Positions, 12)
}

func TestCyclicBins_StartWrapsAcrossCycle(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.Ti, monthNumbers())
	_, part, err := groupby.Resolve(dim, groupby.CyclicBins{Cycle: 12, Step: 3, Start: 12}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 1, 2}, part.Keys[0].(lookup.Residues).Values)
	assert.Equal(t, []int{0, 1, 11}, part.Positions[0])
}

func TestCyclicBins_UnevenStepOverlapsFirstMatch(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.Ti, monthNumbers())
	_, part, err := groupby.Resolve(dim, groupby.CyclicBins{Cycle: 12, Step: 5, Start: 1}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, part.Len())
	assert.Equal(t, []int{11, 12, 1, 2, 3}, part.Keys[2].(lookup.Residues).Values)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, part.Positions[0])
	assert.Equal(t, []int{10, 11}, part.Positions[2])
}

func TestCyclicBins_TuplePrefixesAreOuterKeys(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.Ti, []time.Time{
		day(2020, time.January, 3), day(2020, time.July, 9),
		day(2021, time.March, 1), day(2020, time.February, 2),
	})
	yearMonth := func(v any) any { return lookup.Tuple{groupby.Year(v), groupby.Month(v)} }
	c := groupby.CyclicBins{F: yearMonth, Cycle: 12, Step: 6, Start: 1, Labels: groupby.MonthLabels()}
	gd, part, err := groupby.Resolve(dim, c, nil)
	require.NoError(t, err)

	require.Equal(t, 4, part.Len())
	assert.Equal(t, [][]int{{0, 3}, {1}, {2}, {}}, part.Positions)
	assert.Equal(t, []any{
		"2020_Jan_Feb_Mar_Apr_May_Jun",
		"2020_Jul_Aug_Sep_Oct_Nov_Dec",
		"2021_Jan_Feb_Mar_Apr_May_Jun",
		"2021_Jul_Aug_Sep_Oct_Nov_Dec",
	}, gd.Values())
	first := part.Keys[0].(lookup.Tuple)
	assert.Equal(t, 2020, first[0])
}

func TestBins_TupleCountBinsLastComponent(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.X, []int{0, 1, 2, 3})
	split := func(v any) any {
		i := v.(int)
		return lookup.Tuple{i % 2, float64(i)}
	}
	_, part, err := groupby.Resolve(dim, groupby.Bins{F: split, Count: 2}, nil)
	require.NoError(t, err)
	// outer (0), (1) in first-appearance order × inner bins over 0..3
	require.Equal(t, 4, part.Len())
	assert.Equal(t, [][]int{{0}, {2}, {1}, {3}}, part.Positions)
}
