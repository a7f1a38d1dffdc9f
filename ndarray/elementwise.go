// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Binary element-wise combination with broadcasting of the right operand.
//
// Contract:
//   - axisMap[j] names the axis of a that b's axis j aligns with; extents must
//     match. Axes of a not named in axisMap are broadcast over.
//   - The result always has a's shape and a fresh compact buffer.

package ndarray

import "fmt"

// Broadcast returns f(a[idx], b[proj(idx)]) for every idx of a.
// MAIN DESCRIPTION:
//   - Generalizes row/column broadcasting to N axes: b is read at the
//     projection of a's index onto the axes listed in axisMap.
//
// Errors:
//   - ErrNilArray for nil operands.
//   - ErrRankMismatch when len(axisMap) != b.Rank() or axisMap repeats an axis.
//   - ErrOutOfRange when axisMap names an axis a does not have.
//   - ErrDimensionMismatch when aligned extents differ.
//
// Complexity:
//   - Time O(n·rank), Space O(n).
func Broadcast(f func(x, y float64) float64, a, b *Dense, axisMap []int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, ndErrorf(opBroadcast, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, ndErrorf(opBroadcast, err)
	}
	if len(axisMap) != b.Rank() {
		return nil, fmt.Errorf("Dense.%s: %d aligned axes for rank %d: %w", opBroadcast, len(axisMap), b.Rank(), ErrRankMismatch)
	}
	if err := ValidateAxes(a.Rank(), axisMap); err != nil {
		return nil, fmt.Errorf("Dense.%s: axis map %v: %w", opBroadcast, axisMap, err)
	}
	for j, k := range axisMap {
		if a.shape[k] != b.shape[j] {
			return nil, fmt.Errorf("Dense.%s: axis %d has %d, operand axis %d has %d: %w",
				opBroadcast, k, a.shape[k], j, b.shape[j], ErrDimensionMismatch)
		}
	}

	out := make([]float64, 0, a.Size())
	bidx := make([]int, len(axisMap))
	a.Do(func(idx []int, x float64) bool {
		for j, k := range axisMap {
			bidx[j] = idx[k]
		}
		out = append(out, f(x, b.data[b.offset(bidx)]))
		return true
	})

	return newOwned(a.shape, out), nil
}
