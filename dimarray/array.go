// SPDX-License-Identifier: MIT
// Package: dimarray
//
// Purpose:
//   - Array binds an ndarray.Dense to one Dimension per axis, plus refdims,
//     a name and metadata.
//   - Every operation addresses axes by dimension name and returns a new
//     Array; dimension metadata travels with the dimensions it belongs to.
//
// Complexity quicksheet:
//   - New: O(rank); View/Sel: O(Σ positions); Reduce: O(n·rank).

package dimarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/lookup"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// Array is an immutable dimension-labeled dense array.
type Array struct {
	data    *ndarray.Dense
	dims    []dimension.Dimension
	refdims []dimension.Dimension
	name    string
	meta    dimension.Metadata
}

var (
	_ Labeled      = (*Array)(nil)
	_ fmt.Stringer = (*Array)(nil)
)

// New labels data with dims.
// MAIN DESCRIPTION:
//   - dims must satisfy dimension.Format against data's shape.
//
// Errors:
//   - ErrNilData; dimension.ErrDimensionMismatch, ErrDuplicateName,
//     ErrEmptyName from Format.
func New(data *ndarray.Dense, dims []dimension.Dimension, opts ...Option) (*Array, error) {
	if data == nil {
		return nil, ErrNilData
	}
	if err := dimension.Format(dims, data.Shape()); err != nil {
		return nil, fmt.Errorf("dimarray.New: %w", err)
	}
	o := gatherOptions(opts)

	return &Array{
		data:    data,
		dims:    dimension.Clone(dims),
		refdims: o.refdims,
		name:    o.name,
		meta:    o.meta,
	}, nil
}

// FromValues builds an Array whose shape is taken from the dimension lengths.
// values are in row-major order and are copied.
func FromValues(values []float64, dims []dimension.Dimension, opts ...Option) (*Array, error) {
	shape := make([]int, len(dims))
	for i, d := range dims {
		shape[i] = d.Len()
	}
	data, err := ndarray.New(shape, values)
	if err != nil {
		return nil, fmt.Errorf("dimarray.FromValues: %w", err)
	}

	return New(data, dims, opts...)
}

// Scalar returns a 0-d Array holding v.
func Scalar(v float64, opts ...Option) *Array {
	data, _ := ndarray.New(nil, []float64{v}) // 0-d shape is always valid
	o := gatherOptions(opts)

	return &Array{data: data, refdims: o.refdims, name: o.name, meta: o.meta}
}

// rebuild returns a copy of a over new data and dims, keeping name, metadata
// and refdims.
func (a *Array) rebuild(data *ndarray.Dense, dims []dimension.Dimension) *Array {
	return &Array{
		data:    data,
		dims:    dims,
		refdims: dimension.Clone(a.refdims),
		name:    a.name,
		meta:    a.meta.Clone(),
	}
}

// Data returns the underlying dense array (possibly a view).
func (a *Array) Data() *ndarray.Dense { return a.data }

// Dims returns a copy of the dimensions in axis order.
func (a *Array) Dims() []dimension.Dimension { return dimension.Clone(a.dims) }

// Refdims returns a copy of the reference dimensions.
func (a *Array) Refdims() []dimension.Dimension { return dimension.Clone(a.refdims) }

// Name returns the array name.
func (a *Array) Name() string { return a.name }

// Metadata returns a copy of the array metadata.
func (a *Array) Metadata() dimension.Metadata { return a.meta.Clone() }

// Shape returns the extents in axis order.
func (a *Array) Shape() []int { return a.data.Shape() }

// Values returns the elements in row-major order.
func (a *Array) Values() []float64 { return a.data.Values() }

// Dim returns the dimension called name.
func (a *Array) Dim(name string) (dimension.Dimension, bool) {
	return dimension.Lookup(a.dims, name)
}

// Axis returns the axis number of the dimension called name, or -1.
func (a *Array) Axis(name string) int { return dimension.IndexOf(a.dims, name) }

// At reads one element by position.
func (a *Array) At(idx ...int) (float64, error) { return a.data.At(idx...) }

// View implements Labeled.
func (a *Array) View(takes ...Take) (Labeled, error) {
	return a.ViewArray(takes...)
}

// ViewArray is View with a concrete result type.
// Errors:
//   - ErrUnknownDimension (every missing name listed), ErrDuplicateTake,
//     lookup.ErrOutOfRange for positions outside a dimension.
func (a *Array) ViewArray(takes ...Take) (*Array, error) {
	sel, dims, err := resolveTakes(a.dims, takes)
	if err != nil {
		return nil, fmt.Errorf("Array.View: %w", err)
	}
	data, err := a.data.Take(sel)
	if err != nil {
		return nil, fmt.Errorf("Array.View: %w", err)
	}

	return a.rebuild(data, dims), nil
}

// Sel restricts the dimension called name to the coordinates matched by sel.
func (a *Array) Sel(name string, sel lookup.Selector) (*Array, error) {
	d, ok := a.Dim(name)
	if !ok {
		return nil, fmt.Errorf("Array.Sel: %w", dimension.CheckPresent(a.dims, []string{name}))
	}

	return a.ViewArray(Take{Dim: name, Positions: d.Lookup().Select(sel)})
}

// Reduce collapses the named dimensions with op. Naming no dimension reduces
// all of them and yields a 0-d Array.
func (a *Array) Reduce(op ndarray.Reducer, dims ...string) (*Array, error) {
	var axes []int
	if len(dims) == 0 {
		axes = ndarray.Range(0, len(a.dims))
	} else {
		var err error
		if axes, err = axesOf(a.dims, dims); err != nil {
			return nil, fmt.Errorf("Array.Reduce: %w", err)
		}
	}
	data, err := a.data.Reduce(op, axes...)
	if err != nil {
		return nil, fmt.Errorf("Array.Reduce: %w", err)
	}

	return a.rebuild(data, dropAxes(a.dims, axes)), nil
}

func (a *Array) reduceAll(op ndarray.Reducer) float64 {
	v, _ := a.data.ReduceAll(op) // op is one of the defined reducers

	return v
}

// Sum returns the sum of all elements.
func (a *Array) Sum() float64 { return a.reduceAll(ndarray.Sum) }

// Mean returns the mean of all elements (NaN when empty).
func (a *Array) Mean() float64 { return a.reduceAll(ndarray.Mean) }

// Min returns the smallest element (NaN when empty).
func (a *Array) Min() float64 { return a.reduceAll(ndarray.Min) }

// Max returns the largest element (NaN when empty).
func (a *Array) Max() float64 { return a.reduceAll(ndarray.Max) }

// Std returns the population standard deviation (NaN when empty).
func (a *Array) Std() float64 { return a.reduceAll(ndarray.Std) }

// Map applies f element-wise; dims, name and metadata are kept.
func (a *Array) Map(f func(float64) float64) *Array {
	return a.rebuild(a.data.Map(f), dimension.Clone(a.dims))
}

// WithName returns a copy of a renamed to name.
func (a *Array) WithName(name string) *Array {
	out := a.rebuild(a.data, dimension.Clone(a.dims))
	out.name = name

	return out
}

// String renders a one-line summary, e.g. `temp[Ti(12), X(3)]`.
func (a *Array) String() string {
	parts := make([]string, len(a.dims))
	for i, d := range a.dims {
		parts[i] = d.String()
	}

	return a.name + "[" + strings.Join(parts, ", ") + "]"
}
