// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/ndarray"
)

func TestReduceAll(t *testing.T) {
	t.Parallel()

	d := MustDense(t, []int{2, 2}, 1, 2, 3, 4)
	cases := []struct {
		op   ndarray.Reducer
		want float64
	}{
		{ndarray.Sum, 10},
		{ndarray.Mean, 2.5},
		{ndarray.Min, 1},
		{ndarray.Max, 4},
		{ndarray.Var, 1.25},
		{ndarray.Std, math.Sqrt(1.25)},
		{ndarray.Count, 4},
	}
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			got, err := d.ReduceAll(tc.op)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)
		})
	}
}

func TestReduceAll_Empty(t *testing.T) {
	t.Parallel()

	d := MustDense(t, []int{0})
	s, err := d.ReduceAll(ndarray.Sum)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
	m, err := d.ReduceAll(ndarray.Mean)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m))
}

func TestReduce_Axes(t *testing.T) {
	t.Parallel()

	d := MustDense(t, []int{2, 3}, Seq(6)...)

	rows, err := d.Reduce(ndarray.Sum, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rows.Shape())
	assert.Equal(t, []float64{3, 12}, rows.Values())

	cols, err := d.Reduce(ndarray.Mean, 0)
	require.NoError(t, err)
	sliceClose(t, cols.Values(), []float64{1.5, 2.5, 3.5}, eps)

	all, err := d.Reduce(ndarray.Max, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, all.Rank())
	assert.Equal(t, []float64{5}, all.Values())

	same, err := d.Reduce(ndarray.Sum)
	require.NoError(t, err)
	assert.Equal(t, d.Values(), same.Values())
}

func TestReduce_OnView(t *testing.T) {
	t.Parallel()

	d := MustDense(t, []int{3, 2}, Seq(6)...)
	v, err := d.Take([][]int{{0, 2}, nil})
	require.NoError(t, err)
	r, err := v.Reduce(ndarray.Sum, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, r.Values())
}

func TestReduce_Errors(t *testing.T) {
	t.Parallel()

	d := MustDense(t, []int{2}, 1, 2)
	_, err := d.Reduce(ndarray.Reducer(42))
	require.ErrorIs(t, err, ndarray.ErrUnknownReducer)
	_, err = d.Reduce(ndarray.Sum, 1)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = d.Reduce(ndarray.Sum, 0, 0)
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)
}

func TestParseReducer(t *testing.T) {
	t.Parallel()

	r, err := ndarray.ParseReducer("std")
	require.NoError(t, err)
	assert.Equal(t, ndarray.Std, r)
	_, err = ndarray.ParseReducer("median")
	require.ErrorIs(t, err, ndarray.ErrUnknownReducer)
}

func TestBroadcast(t *testing.T) {
	t.Parallel()

	a := MustDense(t, []int{2, 3}, Seq(6)...)
	b := MustDense(t, []int{3}, 10, 20, 30)
	sum := func(x, y float64) float64 { return x + y }

	out, err := ndarray.Broadcast(sum, a, b, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 21, 32, 13, 24, 35}, out.Values())

	rows := MustDense(t, []int{2}, 100, 200)
	out, err = ndarray.Broadcast(sum, a, rows, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 101, 102, 203, 204, 205}, out.Values())

	_, err = ndarray.Broadcast(sum, a, rows, []int{1})
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
	_, err = ndarray.Broadcast(sum, a, rows, nil)
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)
	_, err = ndarray.Broadcast(sum, nil, rows, []int{0})
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}
