// SPDX-License-Identifier: MIT
// Package: dimarray
//
// Purpose:
//   - Stack is an ordered set of named Array layers that share dimensions.
//   - Views and reductions apply to every layer in lockstep.

package dimarray

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/lookup"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// Stack is an immutable collection of layers over the same dimensions.
type Stack struct {
	names   []string
	layers  []*Array
	dims    []dimension.Dimension
	refdims []dimension.Dimension
	name    string
	meta    dimension.Metadata
}

var (
	_ Labeled      = (*Stack)(nil)
	_ fmt.Stringer = (*Stack)(nil)
)

// NewStack builds a Stack from parallel names and layers.
// MAIN DESCRIPTION:
//   - Every layer must carry the same dimension names, extents and
//     coordinates as the first one; the first layer's dimensions become the
//     stack's.
//
// Errors:
//   - ErrEmptyStack, ErrDuplicateLayer, ErrDimensionMismatch.
func NewStack(names []string, layers []*Array, opts ...Option) (*Stack, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyStack
	}
	if len(names) != len(layers) {
		return nil, fmt.Errorf("NewStack: %d names for %d layers: %w", len(names), len(layers), ErrDimensionMismatch)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("NewStack: %q: %w", n, ErrDuplicateLayer)
		}
		seen[n] = struct{}{}
	}
	first := layers[0]
	for i, l := range layers[1:] {
		if !slices.Equal(dimension.Names(l.dims), dimension.Names(first.dims)) ||
			!slices.Equal(l.Shape(), first.Shape()) {
			return nil, fmt.Errorf("NewStack: layer %q %v vs %v: %w", names[i+1], l, first, ErrDimensionMismatch)
		}
		for k, d := range l.dims {
			if !sameCoordinates(d, first.dims[k]) {
				return nil, fmt.Errorf("NewStack: layer %q dimension %q coordinates differ: %w", names[i+1], d.Name(), ErrDimensionMismatch)
			}
		}
	}
	o := gatherOptions(opts)

	return &Stack{
		names:   slices.Clone(names),
		layers:  slices.Clone(layers),
		dims:    dimension.Clone(first.dims),
		refdims: o.refdims,
		name:    o.name,
		meta:    o.meta,
	}, nil
}

// sameCoordinates reports whether a and b hold equal coordinates in order.
func sameCoordinates(a, b dimension.Dimension) bool {
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if !lookup.Equal(av[i], bv[i]) {
			return false
		}
	}

	return true
}

// rebuild returns a stack over new layers and dims, keeping everything else.
func (s *Stack) rebuild(layers []*Array, dims []dimension.Dimension) *Stack {
	return &Stack{
		names:   slices.Clone(s.names),
		layers:  layers,
		dims:    dims,
		refdims: dimension.Clone(s.refdims),
		name:    s.name,
		meta:    s.meta.Clone(),
	}
}

// Dims returns a copy of the shared dimensions.
func (s *Stack) Dims() []dimension.Dimension { return dimension.Clone(s.dims) }

// Refdims returns a copy of the reference dimensions.
func (s *Stack) Refdims() []dimension.Dimension { return dimension.Clone(s.refdims) }

// Name returns the stack name.
func (s *Stack) Name() string { return s.name }

// Metadata returns a copy of the stack metadata.
func (s *Stack) Metadata() dimension.Metadata { return s.meta.Clone() }

// Shape returns the shared extents.
func (s *Stack) Shape() []int { return s.layers[0].Shape() }

// Len returns the number of layers.
func (s *Stack) Len() int { return len(s.layers) }

// LayerNames returns the layer names in order.
func (s *Stack) LayerNames() []string { return slices.Clone(s.names) }

// Layer returns the layer called name.
func (s *Stack) Layer(name string) (*Array, bool) {
	i := slices.Index(s.names, name)
	if i < 0 {
		return nil, false
	}

	return s.layers[i], true
}

// View implements Labeled.
func (s *Stack) View(takes ...Take) (Labeled, error) {
	return s.ViewStack(takes...)
}

// ViewStack applies the same takes to every layer.
func (s *Stack) ViewStack(takes ...Take) (*Stack, error) {
	layers := make([]*Array, len(s.layers))
	for i, l := range s.layers {
		v, err := l.ViewArray(takes...)
		if err != nil {
			return nil, fmt.Errorf("Stack.View: layer %q: %w", s.names[i], err)
		}
		layers[i] = v
	}

	return s.rebuild(layers, layers[0].Dims()), nil
}

// Reduce collapses the named dimensions in every layer.
func (s *Stack) Reduce(op ndarray.Reducer, dims ...string) (*Stack, error) {
	layers := make([]*Array, len(s.layers))
	for i, l := range s.layers {
		r, err := l.Reduce(op, dims...)
		if err != nil {
			return nil, fmt.Errorf("Stack.Reduce: layer %q: %w", s.names[i], err)
		}
		layers[i] = r
	}

	return s.rebuild(layers, layers[0].Dims()), nil
}

// Map applies f element-wise to every layer.
func (s *Stack) Map(f func(float64) float64) *Stack {
	layers := make([]*Array, len(s.layers))
	for i, l := range s.layers {
		layers[i] = l.Map(f)
	}

	return s.rebuild(layers, dimension.Clone(s.dims))
}

// String renders a one-line summary listing the layers.
func (s *Stack) String() string {
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = d.String()
	}

	return fmt.Sprintf("%s{%s}[%s]", s.name, strings.Join(s.names, ", "), strings.Join(parts, ", "))
}
