// SPDX-License-Identifier: MIT

package dimarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
)

// grid returns a 3×2 Array over Ti=[10 20 30], X=["a" "b"] holding 0..5.
func grid(t *testing.T, opts ...dimarray.Option) *dimarray.Array {
	t.Helper()
	dims := []dimension.Dimension{
		dimension.Of(dimension.Ti, []int{10, 20, 30}).WithMetadata(dimension.Metadata{"units": "s"}),
		dimension.Of(dimension.X, []string{"a", "b"}),
	}
	a, err := dimarray.FromValues([]float64{0, 1, 2, 3, 4, 5}, dims, opts...)
	require.NoError(t, err)

	return a
}
