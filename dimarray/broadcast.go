// SPDX-License-Identifier: MIT

package dimarray

import (
	"fmt"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// BroadcastDims combines a and b element-wise, matching axes by dimension
// name. b's dimensions must all appear in a with equal lengths; a's other
// dimensions are broadcast over. The result carries a's dims, name and
// metadata.
// Errors:
//   - ErrUnknownDimension when b has a dimension a lacks.
//   - ErrDimensionMismatch when a shared dimension differs in length.
func BroadcastDims(f func(x, y float64) float64, a, b *Array) (*Array, error) {
	if a == nil || b == nil {
		return nil, ErrNilData
	}
	axisMap, err := axesOf(a.dims, dimension.Names(b.dims))
	if err != nil {
		return nil, fmt.Errorf("BroadcastDims: %w", err)
	}
	data, err := ndarray.Broadcast(f, a.data, b.data, axisMap)
	if err != nil {
		return nil, fmt.Errorf("BroadcastDims: %w: %w", ErrDimensionMismatch, err)
	}

	return a.rebuild(data, dimension.Clone(a.dims)), nil
}
