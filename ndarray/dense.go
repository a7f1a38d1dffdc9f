// SPDX-License-Identifier: MIT

// Package ndarray - Dense storage (row-major, N-d) & indirect views.
//
// Purpose:
//   - Provide a flat row-major float64 buffer addressed by an N-d index.
//   - Support no-copy indirect views (Take): every axis carries an optional
//     position map into the base buffer, so index-list selections alias the
//     original storage instead of copying it.
//   - Keep algorithmic determinism (fixed row-major traversal, no map iteration).
//
// Hints:
//   - Views never mutate: Dense has no public setter; New copies its input.
//   - Use Clone to obtain a compact buffer when the view's lifetime must be
//     independent of the base.
//
// Complexity quicksheet:
//   - New: O(n) copy; At: O(rank); Take: O(Σ positions); Values/Clone: O(n·rank).

package ndarray

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Dense is an immutable N-d float64 array.
//   - data is the base buffer shared by every view derived from it.
//   - strides are the row-major strides of the base buffer.
//   - shape is the extent of this view along each axis.
//   - axes[k], when non-nil, maps view position i on axis k to base position
//     axes[k][i]; nil means identity (full span of the base axis).
type Dense struct {
	data    []float64 // shared base storage (never written after New)
	strides []int     // base strides, len == rank
	shape   []int     // view extents, len == rank
	axes    [][]int   // per-axis position maps into the base; nil entry = identity
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates a Dense of the given shape over a private copy of values.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate extents (>= 0) and len(values) == Π shape.
//   - Stage 2: copy values and compute row-major strides.
//
// Behavior highlights:
//   - Zero extents are legal (empty groups produce zero-length views).
//   - An empty shape is a 0-d array holding exactly one value.
//
// Errors:
//   - ErrBadShape (negative extent or value count mismatch).
//
// Complexity:
//   - Time O(n), Space O(n).
func New(shape []int, values []float64) (*Dense, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, ndErrorf(opNew, err)
	}
	if n := SizeOf(shape); n != len(values) {
		return nil, fmt.Errorf("Dense.%s: %d values for shape %v: %w", opNew, len(values), shape, ErrBadShape)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return newOwned(shape, buf), nil
}

// Zeros creates a zero-filled Dense of the given shape.
// Complexity: O(n).
func Zeros(shape ...int) (*Dense, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, ndErrorf(opNew, err)
	}

	return newOwned(shape, make([]float64, SizeOf(shape))), nil
}

// newOwned takes ownership of buf (no copy); shape must already be valid.
func newOwned(shape []int, buf []float64) *Dense {
	sh := append([]int(nil), shape...)

	return &Dense{
		data:    buf,
		strides: rowMajorStrides(sh),
		shape:   sh,
		axes:    make([][]int, len(sh)),
	}
}

// rowMajorStrides computes strides where the last axis varies fastest.
func rowMajorStrides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= shape[k]
	}

	return st
}

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.shape) }

// Shape returns a copy of the view extents.
func (d *Dense) Shape() []int { return append([]int(nil), d.shape...) }

// Size returns the number of elements in the view.
func (d *Dense) Size() int { return SizeOf(d.shape) }

// offset translates a view index into a base buffer offset. idx must be valid.
func (d *Dense) offset(idx []int) int {
	off := 0
	for k, i := range idx {
		if m := d.axes[k]; m != nil {
			i = m[i]
		}
		off += i * d.strides[k]
	}

	return off
}

// At returns the value at idx or an error.
// MAIN DESCRIPTION:
//   - Safe element read at an N-d coordinate of this view.
//
// Errors:
//   - ErrRankMismatch when len(idx) != Rank().
//   - ErrOutOfRange when a component exceeds its axis.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (d *Dense) At(idx ...int) (float64, error) {
	if err := ValidateIndex(d.shape, idx); err != nil {
		return 0, fmt.Errorf("Dense.%s%v: %w", opAt, idx, err)
	}

	return d.data[d.offset(idx)], nil
}

// Do visits every element in row-major order and calls f(idx, v).
// The idx slice is reused between calls; copy it to retain it.
// Stops early when f returns false.
// Complexity: O(n·rank).
func (d *Dense) Do(f func(idx []int, v float64) bool) {
	if d.Size() == 0 {
		return
	}
	idx := make([]int, len(d.shape))
	for {
		if !f(idx, d.data[d.offset(idx)]) {
			return
		}
		if !nextIndex(idx, d.shape) {
			return
		}
	}
}

// Values materializes the view as a compact row-major slice.
// Complexity: O(n·rank).
func (d *Dense) Values() []float64 {
	out := make([]float64, 0, d.Size())
	d.Do(func(_ []int, v float64) bool {
		out = append(out, v)
		return true
	})

	return out
}

// Clone returns a compact copy with its own buffer and identity axes.
// Complexity: O(n·rank).
func (d *Dense) Clone() *Dense {
	return newOwned(d.shape, d.Values())
}

// IsView reports whether d addresses its base through a position map.
func (d *Dense) IsView() bool {
	for _, m := range d.axes {
		if m != nil {
			return true
		}
	}

	return false
}

// Map returns a new compact Dense with f applied to every element.
// Complexity: O(n·rank).
func (d *Dense) Map(f func(v float64) float64) *Dense {
	vals := d.Values()
	for i, v := range vals {
		vals[i] = f(v)
	}

	return newOwned(d.shape, vals)
}

// String renders the view as nested brackets, e.g. [[1, 2], [3, 4]].
// Intended for diagnostics; not for hot paths.
func (d *Dense) String() string {
	vals := d.Values()
	if len(d.shape) == 0 {
		if len(vals) == 1 {
			return fmt.Sprintf("%g", vals[0])
		}
		return _fmtOpen + _fmtClose
	}
	var b strings.Builder
	pos := 0
	var write func(axis int)
	write = func(axis int) {
		b.WriteString(_fmtOpen)
		for i := 0; i < d.shape[axis]; i++ {
			if i > 0 {
				b.WriteString(_fmtSep)
			}
			if axis == len(d.shape)-1 {
				b.WriteString(fmt.Sprintf("%g", vals[pos]))
				pos++
			} else {
				write(axis + 1)
			}
		}
		b.WriteString(_fmtClose)
	}
	write(0)

	return b.String()
}

// nextIndex advances idx in row-major order; false once it wraps past the end.
func nextIndex(idx, shape []int) bool {
	for k := len(idx) - 1; k >= 0; k-- {
		idx[k]++
		if idx[k] < shape[k] {
			return true
		}
		idx[k] = 0
	}

	return false
}
