// SPDX-License-Identifier: MIT
// Package: dimarray
//
// Purpose:
//   - Grid is a dimension-labeled array of arbitrary values (strings, bools,
//     times, keys), the non-numeric counterpart of Array.
//   - Values live in one flat slice; an ndarray.Dense of offsets into that
//     slice carries the shape, so views reuse ndarray.Take and never copy.
//
// Complexity quicksheet:
//   - NewGrid: O(n); At: O(rank); View: O(Σ positions); Values: O(n·rank).

package dimarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// Grid is an immutable dimension-labeled array of arbitrary values.
type Grid struct {
	values  []any          // shared base storage
	offsets *ndarray.Dense // offsets[idx] is the position of idx in values
	dims    []dimension.Dimension
	refdims []dimension.Dimension
	name    string
	meta    dimension.Metadata
}

var (
	_ Labeled      = (*Grid)(nil)
	_ fmt.Stringer = (*Grid)(nil)
)

// NewGrid labels row-major values with dims; the shape is taken from the
// dimension lengths and values are copied.
// Errors:
//   - ndarray.ErrBadShape when len(values) != Π dim lengths; Format errors.
func NewGrid(values []any, dims []dimension.Dimension, opts ...Option) (*Grid, error) {
	shape := make([]int, len(dims))
	for i, d := range dims {
		shape[i] = d.Len()
	}
	offs := make([]float64, len(values))
	for i := range offs {
		offs[i] = float64(i)
	}
	offsets, err := ndarray.New(shape, offs)
	if err != nil {
		return nil, fmt.Errorf("dimarray.NewGrid: %w", err)
	}
	if err := dimension.Format(dims, shape); err != nil {
		return nil, fmt.Errorf("dimarray.NewGrid: %w", err)
	}
	o := gatherOptions(opts)

	return &Grid{
		values:  append([]any(nil), values...),
		offsets: offsets,
		dims:    dimension.Clone(dims),
		refdims: o.refdims,
		name:    o.name,
		meta:    o.meta,
	}, nil
}

// Dims returns a copy of the dimensions in axis order.
func (g *Grid) Dims() []dimension.Dimension { return dimension.Clone(g.dims) }

// Refdims returns a copy of the reference dimensions.
func (g *Grid) Refdims() []dimension.Dimension { return dimension.Clone(g.refdims) }

// Name returns the grid name.
func (g *Grid) Name() string { return g.name }

// Metadata returns a copy of the grid metadata.
func (g *Grid) Metadata() dimension.Metadata { return g.meta.Clone() }

// Shape returns the extents in axis order.
func (g *Grid) Shape() []int { return g.offsets.Shape() }

// At reads one element by position.
func (g *Grid) At(idx ...int) (any, error) {
	off, err := g.offsets.At(idx...)
	if err != nil {
		return nil, fmt.Errorf("Grid.At: %w", err)
	}

	return g.values[int(off)], nil
}

// Values returns the elements in row-major order.
func (g *Grid) Values() []any {
	offs := g.offsets.Values()
	out := make([]any, len(offs))
	for i, off := range offs {
		out[i] = g.values[int(off)]
	}

	return out
}

// View implements Labeled.
func (g *Grid) View(takes ...Take) (Labeled, error) {
	return g.ViewGrid(takes...)
}

// ViewGrid is View with a concrete result type.
// Errors: ErrUnknownDimension, ErrDuplicateTake, out-of-range positions.
func (g *Grid) ViewGrid(takes ...Take) (*Grid, error) {
	sel, dims, err := resolveTakes(g.dims, takes)
	if err != nil {
		return nil, fmt.Errorf("Grid.View: %w", err)
	}
	offsets, err := g.offsets.Take(sel)
	if err != nil {
		return nil, fmt.Errorf("Grid.View: %w", err)
	}

	return &Grid{
		values:  g.values,
		offsets: offsets,
		dims:    dims,
		refdims: dimension.Clone(g.refdims),
		name:    g.name,
		meta:    g.meta.Clone(),
	}, nil
}

// String renders a one-line summary, e.g. `labels<Ti(4)>`.
func (g *Grid) String() string {
	parts := make([]string, len(g.dims))
	for i, d := range g.dims {
		parts[i] = d.String()
	}

	return g.name + "<" + strings.Join(parts, ", ") + ">"
}
