// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across ndarray.
// All operations return these sentinels (possibly wrapped with an op tag via
// ndErrorf) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package ndarray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for consistency. Wrap with
// ndErrorf(op, err) at the detection site; callers still match with errors.Is.

var (
	// ErrBadShape is returned when a shape is invalid (negative extent) or does
	// not agree with the number of values supplied.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index outside the bounds of its axis.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrRankMismatch indicates an index tuple or axis list whose length does not
	// match the array rank.
	ErrRankMismatch = errors.New("ndarray: rank mismatch")

	// ErrDimensionMismatch indicates incompatible extents between operands.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrUnknownReducer indicates a Reducer value outside the defined set.
	ErrUnknownReducer = errors.New("ndarray: unknown reducer")

	// ErrNilArray indicates a nil *Dense receiver or argument.
	ErrNilArray = errors.New("ndarray: nil array")
)
