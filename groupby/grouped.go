// SPDX-License-Identifier: MIT
// Package: groupby
//
// Purpose:
//   - Grouped is a labeled array whose elements are labeled views of the
//     grouped source, dimensioned by the group keys.
//   - Element-wise transforms rebuild through rebuildFrom: labeled outputs
//     stay a Grouped, scalar outputs demote to a plain *dimarray.Array.
//
// Hints:
//   - Elements alias the source's storage; nothing here copies data.
//   - Grouped itself implements dimarray.Labeled, so grouped results nest.

package groupby

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/lookup"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// Grouped is an immutable grid of labeled views.
type Grouped struct {
	views   []dimarray.Labeled // row-major over shape
	shape   []int
	dims    []dimension.Dimension
	refdims []dimension.Dimension
	name    string
	meta    dimension.Metadata
}

var (
	_ dimarray.Labeled = (*Grouped)(nil)
	_ fmt.Stringer     = (*Grouped)(nil)
)

// NewGrouped wraps a row-major grid of views.
// MAIN DESCRIPTION:
//   - dims label the grid axes: len(dims) == len(shape) and
//     dims[i].Len() == shape[i]; the grid holds Π shape views.
//
// Errors:
//   - ErrDimensionMismatch (also matching dimension.ErrDimensionMismatch
//     when the dims fail dimension.Format).
//
// Complexity:
//   - Time O(rank + len(views)), Space O(len(views)).
func NewGrouped(views []dimarray.Labeled, shape []int, dims, refdims []dimension.Dimension, name string, meta dimension.Metadata) (*Grouped, error) {
	if err := dimension.Format(dims, shape); err != nil {
		return nil, groupErrorf(opNewGrouped, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	if n := ndarray.SizeOf(shape); n != len(views) {
		return nil, groupErrorf(opNewGrouped, fmt.Errorf("%d views for shape %v: %w", len(views), shape, ErrDimensionMismatch))
	}
	for i, v := range views {
		if v == nil {
			return nil, groupErrorf(opNewGrouped, fmt.Errorf("view %d: %w", i, ErrNilSource))
		}
	}

	return &Grouped{
		views:   append([]dimarray.Labeled(nil), views...),
		shape:   append([]int(nil), shape...),
		dims:    dimension.Clone(dims),
		refdims: dimension.Clone(refdims),
		name:    name,
		meta:    meta.Clone(),
	}, nil
}

// Dims returns the group dimensions.
func (g *Grouped) Dims() []dimension.Dimension { return dimension.Clone(g.dims) }

// Refdims returns the reference dimensions (empty for grouping results).
func (g *Grouped) Refdims() []dimension.Dimension { return dimension.Clone(g.refdims) }

// Name returns the container name.
func (g *Grouped) Name() string { return g.name }

// Metadata returns a copy of the metadata.
func (g *Grouped) Metadata() dimension.Metadata { return g.meta.Clone() }

// Shape returns the grid extents.
func (g *Grouped) Shape() []int { return append([]int(nil), g.shape...) }

// Len returns the number of elements.
func (g *Grouped) Len() int { return len(g.views) }

// Elements returns the views in row-major order.
func (g *Grouped) Elements() []dimarray.Labeled {
	return append([]dimarray.Labeled(nil), g.views...)
}

// At returns the view at a grid position.
func (g *Grouped) At(idx ...int) (dimarray.Labeled, error) {
	if err := ndarray.ValidateIndex(g.shape, idx); err != nil {
		return nil, fmt.Errorf("Grouped.At%v: %w", idx, err)
	}

	return g.views[g.flat(idx)], nil
}

// Lookup returns the view whose group keys (labels) equal keys, in
// dimension order.
func (g *Grouped) Lookup(keys ...any) (dimarray.Labeled, bool) {
	if len(keys) != len(g.dims) {
		return nil, false
	}
	idx := make([]int, len(keys))
	for k, key := range keys {
		i, ok := g.dims[k].Lookup().IndexOf(lookup.At{Value: key})
		if !ok {
			return nil, false
		}
		idx[k] = i
	}

	return g.views[g.flat(idx)], true
}

func (g *Grouped) flat(idx []int) int {
	off := 0
	for k, i := range idx {
		off = off*g.shape[k] + i
	}

	return off
}

// Each visits the elements in row-major order; stops when f returns false.
// The idx slice is reused between calls.
func (g *Grouped) Each(f func(idx []int, v dimarray.Labeled) bool) {
	if len(g.views) == 0 {
		return
	}
	idx := make([]int, len(g.shape))
	for _, v := range g.views {
		if !f(idx, v) {
			return
		}
		advance(idx, g.shape)
	}
}

// Queries returns the grouping queries recorded in the metadata.
func (g *Grouped) Queries() []Query {
	switch q := g.meta[MetadataKey].(type) {
	case Query:
		return []Query{q}
	case []Query:
		return append([]Query(nil), q...)
	}

	return nil
}

// View implements dimarray.Labeled: it keeps the listed group positions.
func (g *Grouped) View(takes ...dimarray.Take) (dimarray.Labeled, error) {
	return g.ViewGrouped(takes...)
}

// ViewGrouped selects a subset of groups per group dimension.
// Errors: ErrUnknownDimension, dimarray.ErrDuplicateTake,
// ndarray.ErrOutOfRange.
func (g *Grouped) ViewGrouped(takes ...dimarray.Take) (*Grouped, error) {
	names := make([]string, len(takes))
	for i, tk := range takes {
		names[i] = tk.Dim
	}
	if err := dimension.CheckPresent(g.dims, names); err != nil {
		return nil, groupErrorf(opView, err)
	}
	sel := make([][]int, len(g.dims))
	for k, n := range g.shape {
		sel[k] = ndarray.Range(0, n)
	}
	dims := dimension.Clone(g.dims)
	taken := make([]bool, len(g.dims))
	for _, tk := range takes {
		k := dimension.IndexOf(g.dims, tk.Dim)
		if taken[k] {
			return nil, groupErrorf(opView, fmt.Errorf("%q: %w", tk.Dim, dimarray.ErrDuplicateTake))
		}
		taken[k] = true
		positions := append([]int{}, tk.Positions...)
		d, err := g.dims[k].Take(positions)
		if err != nil {
			return nil, groupErrorf(opView, err)
		}
		sel[k], dims[k] = positions, d
	}

	shape := make([]int, len(sel))
	for k := range sel {
		shape[k] = len(sel[k])
	}
	views := make([]dimarray.Labeled, 0, ndarray.SizeOf(shape))
	if ndarray.SizeOf(shape) > 0 {
		idx := make([]int, len(shape))
		src := make([]int, len(shape))
		for {
			for k := range idx {
				src[k] = sel[k][idx[k]]
			}
			views = append(views, g.views[g.flat(src)])
			if !advance(idx, shape) {
				break
			}
		}
	}

	return NewGrouped(views, shape, dims, g.refdims, g.name, g.meta)
}

// Map applies fn to every element and rebuilds the result with Rebuild.
// The first error from fn aborts the call.
func (g *Grouped) Map(fn func(v dimarray.Labeled) (any, error)) (dimarray.Labeled, error) {
	outs := make([]any, len(g.views))
	for i, v := range g.views {
		out, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("Grouped.Map: element %d: %w", i, err)
		}
		outs[i] = out
	}

	return g.Rebuild(outs)
}

// Rebuild wraps one output per element in the shape and dims of g.
// MAIN DESCRIPTION:
//   - All outputs labeled (arrays, stacks, grouped) -> *Grouped with the same
//     dims, name and metadata.
//   - All outputs numeric scalars -> *dimarray.Array over the group dims.
//   - Any other non-labeled outputs -> *dimarray.Grid over the group dims.
//   - Labeled and non-labeled outputs mixed -> ErrMixedElements.
func (g *Grouped) Rebuild(outputs []any) (dimarray.Labeled, error) {
	if len(outputs) != len(g.views) {
		return nil, groupErrorf(opRebuild, fmt.Errorf("%d outputs for %d elements: %w", len(outputs), len(g.views), ErrDimensionMismatch))
	}

	return rebuildFrom(g, outputs)
}

// elementKind classifies a transform output.
type elementKind int

const (
	kindScalar elementKind = iota
	kindValue
	kindLabeled
)

func classify(v any) elementKind {
	if _, ok := v.(dimarray.Labeled); ok {
		return kindLabeled
	}
	if lookup.IsNumber(v) {
		return kindScalar
	}

	return kindValue
}

// rebuildFrom decides the result type from the outputs themselves.
// An empty grid demotes, as there is no element to keep labeled.
func rebuildFrom(g *Grouped, outputs []any) (dimarray.Labeled, error) {
	kind := kindScalar
	for i, out := range outputs {
		k := classify(out)
		if i > 0 && (k == kindLabeled) != (kind == kindLabeled) {
			return nil, groupErrorf(opRebuild, fmt.Errorf("element %d (%T): %w", i, out, ErrMixedElements))
		}
		kind = max(kind, k)
	}

	opts := []dimarray.Option{dimarray.WithName(g.name), dimarray.WithMetadata(g.meta)}
	switch kind {
	case kindLabeled:
		views := make([]dimarray.Labeled, len(outputs))
		for i, out := range outputs {
			views[i] = out.(dimarray.Labeled)
		}
		return NewGrouped(views, g.shape, g.dims, g.refdims, g.name, g.meta)
	case kindValue:
		grid, err := dimarray.NewGrid(outputs, g.dims, opts...)
		if err != nil {
			return nil, groupErrorf(opRebuild, err)
		}
		return grid, nil
	}

	vals := make([]float64, len(outputs))
	for i, out := range outputs {
		vals[i], _ = lookup.ToFloat(out) // classified numeric above
	}
	a, err := dimarray.FromValues(vals, g.dims, opts...)
	if err != nil {
		return nil, groupErrorf(opRebuild, err)
	}

	return a, nil
}

// Reduce applies op to every element. With no dims each array element
// collapses to a scalar, so a grid of arrays demotes to a *dimarray.Array;
// stacks and nested groups reduce element-wise and stay grouped.
func (g *Grouped) Reduce(op ndarray.Reducer, dims ...string) (dimarray.Labeled, error) {
	return g.Map(func(v dimarray.Labeled) (any, error) {
		return reduceElement(v, op, dims)
	})
}

func reduceElement(v dimarray.Labeled, op ndarray.Reducer, dims []string) (any, error) {
	switch x := v.(type) {
	case *dimarray.Array:
		if len(dims) == 0 {
			return x.Data().ReduceAll(op)
		}
		return x.Reduce(op, dims...)
	case *dimarray.Stack:
		return x.Reduce(op, dims...)
	case *Grouped:
		return x.Reduce(op, dims...)
	}

	return nil, fmt.Errorf("%T: %w", v, ErrNotNumeric)
}

// Sum reduces every element with ndarray.Sum.
func (g *Grouped) Sum(dims ...string) (dimarray.Labeled, error) { return g.Reduce(ndarray.Sum, dims...) }

// Mean reduces every element with ndarray.Mean.
func (g *Grouped) Mean(dims ...string) (dimarray.Labeled, error) {
	return g.Reduce(ndarray.Mean, dims...)
}

// Min reduces every element with ndarray.Min.
func (g *Grouped) Min(dims ...string) (dimarray.Labeled, error) { return g.Reduce(ndarray.Min, dims...) }

// Max reduces every element with ndarray.Max.
func (g *Grouped) Max(dims ...string) (dimarray.Labeled, error) { return g.Reduce(ndarray.Max, dims...) }

// Count counts the elements of every group.
func (g *Grouped) Count(dims ...string) (dimarray.Labeled, error) {
	return g.Reduce(ndarray.Count, dims...)
}

// String renders e.g. `groupby[Ti(4)] by Ti=>Bins(4)`.
func (g *Grouped) String() string {
	parts := make([]string, len(g.dims))
	for i, d := range g.dims {
		parts[i] = d.String()
	}
	qs := g.Queries()
	qparts := make([]string, len(qs))
	for i, q := range qs {
		qparts[i] = q.String()
	}

	return g.name + "[" + strings.Join(parts, ", ") + "] by " + strings.Join(qparts, ", ")
}
