// SPDX-License-Identifier: MIT

package dimarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/ndarray"
)

func TestGrid_ViewAndAt(t *testing.T) {
	t.Parallel()

	dims := []dimension.Dimension{
		dimension.Of(dimension.Ti, []int{10, 20, 30}),
		dimension.Of(dimension.X, []string{"a", "b"}),
	}
	g, err := dimarray.NewGrid([]any{"p", true, "q", false, "r", nil}, dims, dimarray.WithName("flags"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, g.Shape())
	assert.Equal(t, "flags<Ti(3), X(2)>", g.String())

	v, err := g.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	sub, err := g.ViewGrid(dimarray.Take{Dim: dimension.Ti, Positions: []int{2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []any{"r", nil, "p", true}, sub.Values())
	ti, _ := dimension.Lookup(sub.Dims(), dimension.Ti)
	assert.Equal(t, []any{30, 10}, ti.Values())

	_, err = g.At(3, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = g.View(dimarray.Take{Dim: dimension.X}, dimarray.Take{Dim: dimension.X})
	require.ErrorIs(t, err, dimarray.ErrDuplicateTake)
}

func TestNewGrid_Rejects(t *testing.T) {
	t.Parallel()

	_, err := dimarray.NewGrid([]any{1, 2}, []dimension.Dimension{dimension.Of(dimension.X, []int{1, 2, 3})})
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}
