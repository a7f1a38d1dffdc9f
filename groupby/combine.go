// SPDX-License-Identifier: MIT

package groupby

import (
	"fmt"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// Resolved pairs a group dimension with the partition it labels.
type Resolved struct {
	Dim       dimension.Dimension
	Partition Partition
}

// Combine builds one view of src per combination of group keys.
// MAIN DESCRIPTION:
//   - Each partition's position list is attached to its own axis as a
//     dimarray.Take; axes that are not grouped keep their full span. The
//     grid is walked row-major over the grouped axes in the given order.
//
// Behavior highlights:
//   - Ungrouped dimensions stay in every view but not in the returned dims.
//   - A key with no positions yields a view of extent 0 on that axis.
//
// Errors:
//   - ErrUnknownDimension listing every grouped name absent from src.
//   - ErrDimensionMismatch when a dimension is grouped twice.
//
// Complexity:
//   - Time O(Π k_i · Σ positions), Space O(Π k_i).
func Combine(src dimarray.Labeled, resolved []Resolved) ([]dimarray.Labeled, []int, []dimension.Dimension, error) {
	if src == nil {
		return nil, nil, nil, groupErrorf(opCombine, ErrNilSource)
	}
	dims := make([]dimension.Dimension, len(resolved))
	for i, r := range resolved {
		dims[i] = r.Dim
	}
	names := dimension.Names(dims)
	if err := dimension.CheckPresent(src.Dims(), names); err != nil {
		return nil, nil, nil, groupErrorf(opCombine, err)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return nil, nil, nil, groupErrorf(opCombine, fmt.Errorf("%q grouped twice: %w", n, ErrDimensionMismatch))
		}
		seen[n] = struct{}{}
	}

	shape := make([]int, len(resolved))
	for i, r := range resolved {
		shape[i] = r.Partition.Len()
	}
	views := make([]dimarray.Labeled, 0, ndarray.SizeOf(shape))
	if ndarray.SizeOf(shape) == 0 {
		return views, shape, dims, nil
	}

	idx := make([]int, len(shape))
	takes := make([]dimarray.Take, len(resolved))
	for {
		for k, r := range resolved {
			takes[k] = dimarray.Take{Dim: names[k], Positions: r.Partition.Positions[idx[k]]}
		}
		v, err := src.View(takes...)
		if err != nil {
			return nil, nil, nil, groupErrorf(opCombine, err)
		}
		views = append(views, v)
		if !advance(idx, shape) {
			break
		}
	}

	return views, shape, dims, nil
}

// advance steps idx in row-major order over shape; false after the last
// index.
func advance(idx, shape []int) bool {
	for k := len(idx) - 1; k >= 0; k-- {
		idx[k]++
		if idx[k] < shape[k] {
			return true
		}
		idx[k] = 0
	}

	return false
}
