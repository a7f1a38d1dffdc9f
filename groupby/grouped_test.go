// SPDX-License-Identifier: MIT

package groupby_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/groupby"
	"github.com/katalvlaran/dimgroup/ndarray"
)

func seasonsOf(t *testing.T) *groupby.Grouped {
	t.Helper()
	g, err := groupby.Group(monthGrid(t), []groupby.Query{groupby.By(dimension.Ti, groupby.Seasons(12))})
	require.NoError(t, err)

	return g
}

func TestGrouped_ScalarOutputsDemote(t *testing.T) {
	t.Parallel()

	g := seasonsOf(t)
	out, err := g.Sum()
	require.NoError(t, err)
	arr, ok := out.(*dimarray.Array)
	require.True(t, ok, "scalar outputs demote to a plain array")
	assert.Equal(t, []float64{477, 369, 693, 1017}, arr.Values())
	assert.Equal(t, g.Dims(), arr.Dims())
	assert.Equal(t, groupby.DefaultName, arr.Name())

	counts, err := g.Count()
	require.NoError(t, err)
	assert.Equal(t, []float64{18, 18, 18, 18}, counts.(*dimarray.Array).Values())

	maxes, err := g.Max()
	require.NoError(t, err)
	assert.Equal(t, []float64{71, 29, 47, 65}, maxes.(*dimarray.Array).Values())

	mins, err := g.Min()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 12, 30, 48}, mins.(*dimarray.Array).Values())

	means, err := g.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 477.0/18, means.(*dimarray.Array).Values()[0], 1e-12)
}

func TestGrouped_LabeledOutputsStayGrouped(t *testing.T) {
	t.Parallel()

	g := seasonsOf(t)
	out, err := g.Map(func(v dimarray.Labeled) (any, error) {
		return v.(*dimarray.Array).Reduce(ndarray.Mean, dimension.Ti)
	})
	require.NoError(t, err)
	ng, ok := out.(*groupby.Grouped)
	require.True(t, ok)
	assert.Equal(t, g.Dims(), ng.Dims())
	assert.Equal(t, g.String(), ng.String())

	el, err := ng.At(1)
	require.NoError(t, err)
	assert.Equal(t, []string{dimension.X}, dimension.Names(el.Dims()))
	// rows 2,3,4 -> column means 18+c
	assert.Equal(t, []float64{18, 19, 20, 21, 22, 23}, el.(*dimarray.Array).Values())

	// Sum over a named dimension keeps elements labeled.
	partial, err := g.Sum(dimension.X)
	require.NoError(t, err)
	assert.IsType(t, &groupby.Grouped{}, partial)
}

func TestGrouped_ValuesDemoteToGrid(t *testing.T) {
	t.Parallel()

	g := seasonsOf(t)
	names, err := g.Map(func(v dimarray.Labeled) (any, error) { return fmt.Sprint(v), nil })
	require.NoError(t, err)
	grid, ok := names.(*dimarray.Grid)
	require.True(t, ok, "want *dimarray.Grid, got %T", names)
	assert.Equal(t, g.Shape(), grid.Shape())
	assert.Equal(t, dimension.Names(g.Dims()), dimension.Names(grid.Dims()))
	assert.Equal(t, g.Name(), grid.Name())
	assert.Equal(t, "grid[Ti(3), X(6)]", grid.Values()[0])

	flags, err := g.Map(func(v dimarray.Labeled) (any, error) { return v.(*dimarray.Array).Sum() > 400, nil })
	require.NoError(t, err)
	require.IsType(t, &dimarray.Grid{}, flags)
	assert.Equal(t, []any{true, false, true, true}, flags.(*dimarray.Grid).Values())

	// numbers mixed with other values still demote to a value grid
	i := 0
	mixed, err := g.Map(func(v dimarray.Labeled) (any, error) {
		i++
		if i == 1 {
			return "first", nil
		}
		return i, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"first", 2, 3, 4}, mixed.(*dimarray.Grid).Values())
}

func TestGrouped_MixedOutputsFail(t *testing.T) {
	t.Parallel()

	g := seasonsOf(t)
	i := 0
	_, err := g.Map(func(v dimarray.Labeled) (any, error) {
		i++
		if i%2 == 0 {
			return 1.0, nil
		}
		return v, nil
	})
	require.ErrorIs(t, err, groupby.ErrMixedElements)

	_, err = g.Rebuild([]any{1.0})
	require.ErrorIs(t, err, groupby.ErrDimensionMismatch)
}

func TestNewGrouped_ChecksDims(t *testing.T) {
	t.Parallel()

	a := monthGrid(t)
	views := []dimarray.Labeled{a, a}
	keys := dimension.Of("K", []string{"x", "y"})

	g, err := groupby.NewGrouped(views, []int{2}, []dimension.Dimension{keys}, nil, "g", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	_, err = groupby.NewGrouped(views, []int{2}, nil, nil, "g", nil)
	require.ErrorIs(t, err, groupby.ErrDimensionMismatch)

	_, err = groupby.NewGrouped(views, []int{2}, []dimension.Dimension{dimension.Of("K", []int{1, 2, 3})}, nil, "g", nil)
	require.ErrorIs(t, err, groupby.ErrDimensionMismatch)
	require.ErrorIs(t, err, dimension.ErrDimensionMismatch)

	_, err = groupby.NewGrouped(views[:1], []int{2}, []dimension.Dimension{keys}, nil, "g", nil)
	require.ErrorIs(t, err, groupby.ErrDimensionMismatch)
}

func TestGrouped_ViewSelectsGroups(t *testing.T) {
	t.Parallel()

	g := seasonsOf(t)
	v, err := g.ViewGrouped(dimarray.Take{Dim: dimension.Ti, Positions: []int{2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, v.Shape())
	ti, _ := dimension.Lookup(v.Dims(), dimension.Ti)
	assert.Equal(t, []any{"Jun_Jul_Aug", "Dec_Jan_Feb"}, ti.Values())

	first, err := v.At(0)
	require.NoError(t, err)
	orig, err := g.At(2)
	require.NoError(t, err)
	assert.Same(t, orig, first)

	_, err = g.View(dimarray.Take{Dim: dimension.X})
	require.ErrorIs(t, err, groupby.ErrUnknownDimension)

	_, err = g.At(4)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = g.ViewGrouped(
		dimarray.Take{Dim: dimension.Ti, Positions: []int{0}},
		dimarray.Take{Dim: dimension.Ti, Positions: []int{1, 2}},
	)
	require.ErrorIs(t, err, dimarray.ErrDuplicateTake)
}

func TestGrouped_Nests(t *testing.T) {
	t.Parallel()

	g := seasonsOf(t)
	// Group the grouped result again, by the parity of the season position.
	pos := map[any]int{"Dec_Jan_Feb": 0, "Mar_Apr_May": 1, "Jun_Jul_Aug": 2, "Sep_Oct_Nov": 3}
	byHalf := groupby.FuncOf("half", func(v any) any { return pos[v] / 2 })
	outer, err := groupby.Group(g, []groupby.Query{groupby.By(dimension.Ti, byHalf)})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, outer.Shape())

	inner, err := outer.At(1)
	require.NoError(t, err)
	ig, ok := inner.(*groupby.Grouped)
	require.True(t, ok)
	assert.Equal(t, []int{2}, ig.Shape())

	sums, err := outer.Sum()
	require.NoError(t, err)
	first, err := sums.(*groupby.Grouped).At(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{477, 369}, first.(*dimarray.Array).Values())
}
