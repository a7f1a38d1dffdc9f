// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Take returns a no-copy view selecting positions per axis.
// MAIN DESCRIPTION:
//   - Indirect indexing: sel[k] lists the positions kept along axis k, in
//     order; a nil sel[k] keeps the full span of that axis.
//
// Implementation:
//   - Stage 1: validate rank and every position against the current view.
//   - Stage 2: compose each list with the receiver's existing position map, so
//     views of views still address the shared base buffer directly.
//
// Behavior highlights:
//   - Duplicates are allowed (repeated rows in the result).
//   - Empty lists are allowed and produce a zero-extent axis.
//   - The base buffer is shared, never copied or written.
//
// Errors:
//   - ErrRankMismatch when len(sel) != Rank().
//   - ErrOutOfRange for any position outside its axis.
//
// Complexity:
//   - Time O(Σ len(sel[k])), Space O(Σ len(sel[k])).
func (d *Dense) Take(sel [][]int) (*Dense, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, ndErrorf(opTake, err)
	}
	if len(sel) != len(d.shape) {
		return nil, fmt.Errorf("Dense.%s: %d selections for rank %d: %w", opTake, len(sel), len(d.shape), ErrRankMismatch)
	}

	out := &Dense{
		data:    d.data,
		strides: d.strides,
		shape:   append([]int(nil), d.shape...),
		axes:    make([][]int, len(d.shape)),
	}
	for k, positions := range sel {
		if positions == nil {
			out.axes[k] = d.axes[k] // full span keeps the existing map
			continue
		}
		m := make([]int, len(positions))
		for j, p := range positions {
			if p < 0 || p >= d.shape[k] {
				return nil, fmt.Errorf("Dense.%s: axis %d position %d: %w", opTake, k, p, ErrOutOfRange)
			}
			if base := d.axes[k]; base != nil {
				p = base[p]
			}
			m[j] = p
		}
		out.axes[k] = m
		out.shape[k] = len(positions)
	}

	return out, nil
}

// Slice returns a view keeping [start, stop) along one axis.
// Complexity: O(stop-start).
func (d *Dense) Slice(axis, start, stop int) (*Dense, error) {
	if axis < 0 || axis >= len(d.shape) {
		return nil, fmt.Errorf("Dense.%s: axis %d: %w", opTake, axis, ErrOutOfRange)
	}
	if start < 0 || stop < start || stop > d.shape[axis] {
		return nil, fmt.Errorf("Dense.%s: [%d, %d) on axis %d: %w", opTake, start, stop, axis, ErrOutOfRange)
	}
	sel := make([][]int, len(d.shape))
	sel[axis] = Range(start, stop)

	return d.Take(sel)
}

// Range returns the positions start, start+1, ..., stop-1.
func Range(start, stop int) []int {
	if stop <= start {
		return []int{}
	}
	out := make([]int, stop-start)
	for i := range out {
		out[i] = start + i
	}

	return out
}
