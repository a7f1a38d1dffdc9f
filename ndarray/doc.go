// SPDX-License-Identifier: MIT

// Package ndarray provides an immutable N-dimensional float64 array with
// no-copy indirect views.
//
// A Dense owns (or shares) one row-major buffer. Take selects an arbitrary
// list of positions along each axis and returns a view over the same buffer;
// views of views compose their position maps, so they always address the
// base storage in one hop.
//
// Operations:
//   - New / Zeros          construct from a shape and values
//   - At / Do / Values     read access in row-major order
//   - Take / Slice         indirect views
//   - Reduce / ReduceAll   sum, mean, min, max, var, std, count
//   - Broadcast            binary element-wise combination
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange, ...) wrapped with
// an operation tag; match them with errors.Is.
package ndarray
