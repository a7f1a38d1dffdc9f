// SPDX-License-Identifier: MIT

package dimension

import "errors"

var (
	// ErrDimensionMismatch indicates that a dimension tuple does not match the
	// shape it labels (count, order or per-axis length).
	ErrDimensionMismatch = errors.New("dimension: dimensions do not match array shape")

	// ErrDuplicateName indicates two dimensions with the same name in one tuple.
	ErrDuplicateName = errors.New("dimension: duplicate dimension name")

	// ErrEmptyName indicates a dimension without a name.
	ErrEmptyName = errors.New("dimension: empty dimension name")

	// ErrUnknownDimension indicates a reference to a dimension name that is
	// not part of the tuple.
	ErrUnknownDimension = errors.New("dimension: unknown dimension")
)
