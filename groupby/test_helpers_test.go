// SPDX-License-Identifier: MIT
// Package groupby_test contains shared fixtures.
//
// Purpose:
//   - Small deterministic arrays indexed by month numbers and timestamps.

package groupby_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
)

// monthNumbers returns 1..12.
func monthNumbers() []int {
	out := make([]int, 12)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// monthGrid returns a 12×6 Array over Ti=1..12, X=0..5 holding
// value(r, c) = 6r + c.
func monthGrid(t *testing.T) *dimarray.Array {
	t.Helper()
	vals := make([]float64, 72)
	for i := range vals {
		vals[i] = float64(i)
	}
	dims := []dimension.Dimension{
		dimension.Of(dimension.Ti, monthNumbers()),
		dimension.Of(dimension.X, []int{0, 1, 2, 3, 4, 5}),
	}
	a, err := dimarray.FromValues(vals, dims, dimarray.WithName("grid"))
	require.NoError(t, err)

	return a
}

// day returns midnight UTC of the given date.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// assertPartitionOnce fails unless every position in 0..n-1 appears in
// exactly one list.
func assertPartitionOnce(t *testing.T, positions [][]int, n int) {
	t.Helper()
	seen := make([]int, n)
	for _, ps := range positions {
		for _, p := range ps {
			require.GreaterOrEqual(t, p, 0)
			require.Less(t, p, n)
			seen[p]++
		}
	}
	for p, c := range seen {
		require.Equalf(t, 1, c, "position %d seen %d times", p, c)
	}
}
