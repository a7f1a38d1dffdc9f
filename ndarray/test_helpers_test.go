// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers
//
// Purpose:
//   - Provide small deterministic fixtures for Dense views and reductions.

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/ndarray"
)

const eps = 1e-12

// MustDense builds a Dense from shape and values or fails the test.
func MustDense(t *testing.T, shape []int, values ...float64) *ndarray.Dense {
	t.Helper()
	d, err := ndarray.New(shape, values)
	require.NoError(t, err)

	return d
}

// Seq returns 0, 1, ..., n-1 as float64.
func Seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// sliceClose compares two slices element-wise with an absolute tolerance;
// NaN equals NaN.
func sliceClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.Truef(t, math.IsNaN(got[i]), "index %d: want NaN, got %g", i, got[i])
			continue
		}
		require.InDeltaf(t, want[i], got[i], tol, "index %d", i)
	}
}
