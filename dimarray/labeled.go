// SPDX-License-Identifier: MIT

package dimarray

import (
	"fmt"

	"github.com/katalvlaran/dimgroup/dimension"
)

// Labeled is implemented by every dimension-labeled value: arrays, stacks and
// grouped results.
type Labeled interface {
	Dims() []dimension.Dimension
	Refdims() []dimension.Dimension
	Name() string
	Metadata() dimension.Metadata
	Shape() []int

	// View returns a no-copy view restricted to the positions listed per
	// dimension. Dimensions without a Take keep their full span.
	View(takes ...Take) (Labeled, error)
}

// Take restricts one dimension, by name, to an ordered position list.
// A nil or empty Positions yields a zero-length dimension.
type Take struct {
	Dim       string
	Positions []int
}

// resolveTakes turns by-name takes into per-axis selections for ndarray.Take
// together with the restricted dimensions.
func resolveTakes(dims []dimension.Dimension, takes []Take) ([][]int, []dimension.Dimension, error) {
	names := make([]string, len(takes))
	for i, tk := range takes {
		names[i] = tk.Dim
	}
	if err := dimension.CheckPresent(dims, names); err != nil {
		return nil, nil, err
	}

	sel := make([][]int, len(dims))
	out := dimension.Clone(dims)
	for _, tk := range takes {
		k := dimension.IndexOf(dims, tk.Dim)
		if sel[k] != nil {
			return nil, nil, fmt.Errorf("%q: %w", tk.Dim, ErrDuplicateTake)
		}
		positions := tk.Positions
		if positions == nil {
			positions = []int{}
		}
		d, err := dims[k].Take(positions)
		if err != nil {
			return nil, nil, err
		}
		sel[k] = positions
		out[k] = d
	}

	return sel, out, nil
}

// axesOf maps dimension names to axis numbers.
func axesOf(dims []dimension.Dimension, names []string) ([]int, error) {
	if err := dimension.CheckPresent(dims, names); err != nil {
		return nil, err
	}
	axes := make([]int, len(names))
	for i, n := range names {
		axes[i] = dimension.IndexOf(dims, n)
	}

	return axes, nil
}

// dropAxes returns dims without the listed axes.
func dropAxes(dims []dimension.Dimension, axes []int) []dimension.Dimension {
	drop := make(map[int]bool, len(axes))
	for _, a := range axes {
		drop[a] = true
	}
	out := make([]dimension.Dimension, 0, len(dims))
	for k, d := range dims {
		if !drop[k] {
			out = append(out, d)
		}
	}

	return out
}
