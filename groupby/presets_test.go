// SPDX-License-Identifier: MIT

package groupby_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/groupby"
	"github.com/katalvlaran/dimgroup/lookup"
)

func TestAccessors(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 9, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, 2024, groupby.Year(ts))
	assert.Equal(t, 3, groupby.Month(ts))
	assert.Equal(t, 9, groupby.Day(ts))
	assert.Equal(t, 17, groupby.Hour(ts))
	assert.Equal(t, 69, groupby.YearDay(ts)) // leap year: 31 + 29 + 9
	assert.Equal(t, 7, groupby.Month(7), "non-time values pass through")
}

func TestMonthLabels(t *testing.T) {
	t.Parallel()

	m := groupby.MonthLabels()
	assert.Len(t, m, 12)
	assert.Equal(t, "Jan", m[1])
	assert.Equal(t, "Dec", m[12])
}

func TestMonths_OverTimestamps(t *testing.T) {
	t.Parallel()

	var days []time.Time
	for m := time.January; m <= time.December; m++ {
		days = append(days, day(2023, m, 15))
	}
	dim := dimension.Of(dimension.Ti, days)
	gd, part, err := groupby.Resolve(dim, groupby.Months(4, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"Jan_Feb_Mar_Apr", "May_Jun_Jul_Aug", "Sep_Oct_Nov_Dec"}, gd.Values())
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}, part.Positions)
}

func TestHours_MidnightWraps(t *testing.T) {
	t.Parallel()

	hours := make([]time.Time, 24)
	for h := range hours {
		hours[h] = time.Date(2023, time.June, 1, h, 0, 0, 0, time.UTC)
	}
	_, part, err := groupby.Resolve(dimension.Of(dimension.Ti, hours), groupby.Hours(6, 0), nil)
	require.NoError(t, err)
	require.Equal(t, 4, part.Len())
	assert.Equal(t, []int{24, 1, 2, 3, 4, 5}, part.Keys[0].(lookup.Residues).Values)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, part.Positions[0])
	assertPartitionOnce(t, part.Positions, 24)
}

func TestYearDaysAndMonthDays(t *testing.T) {
	t.Parallel()

	dims := dimension.Of(dimension.Ti, []time.Time{
		day(2023, time.January, 1), day(2023, time.January, 31), day(2023, time.December, 31),
	})
	_, part, err := groupby.Resolve(dims, groupby.YearDays(183, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, part.Positions)

	_, part, err = groupby.Resolve(dims, groupby.MonthDays(10, 1), nil)
	require.NoError(t, err)
	require.Equal(t, 4, part.Len())
	assert.Equal(t, []int{0}, part.Positions[0])
	assert.Equal(t, []int{1, 2}, part.Positions[3])
}

func TestYears(t *testing.T) {
	t.Parallel()

	dim := dimension.Of(dimension.Ti, []time.Time{day(2021, 5, 1), day(2019, 1, 1), day(2021, 1, 1)})
	gd, part, err := groupby.Resolve(dim, groupby.Years(), nil)
	require.NoError(t, err)
	assert.Equal(t, []any{2019, 2021}, gd.Values())
	assert.Equal(t, [][]int{{1}, {0, 2}}, part.Positions)
	assert.Equal(t, "year", groupby.Years().String())
}
