// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Provide a single source of truth for shape/index validation.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package ndarray

import "fmt"

// Operation tags used with ndErrorf (no magic strings at call sites).
const (
	opNew       = "New"
	opAt        = "At"
	opTake      = "Take"
	opReduce    = "Reduce"
	opBroadcast = "Broadcast"
)

// ndErrorf wraps err with a uniform "Dense.<op>" context.
func ndErrorf(op string, err error) error {
	return fmt.Errorf("Dense.%s: %w", op, err)
}

// ValidateShape – Ensures every extent is non-negative.
//
// Inputs: shape slice (may be empty for a 0-d scalar array).
// Returns: nil or ErrBadShape.
// Complexity: O(rank).
func ValidateShape(shape []int) error {
	for _, n := range shape {
		if n < 0 {
			return ErrBadShape
		}
	}

	return nil
}

// ValidateNotNil – Ensures the array reference is non-nil.
//
// Returns ErrNilArray if d == nil.
// Complexity: O(1).
func ValidateNotNil(d *Dense) error {
	if d == nil {
		return ErrNilArray
	}

	return nil
}

// ValidateIndex – Ensures idx addresses one element of shape.
//
// Returns ErrRankMismatch when len(idx) != len(shape), ErrOutOfRange when any
// component is outside [0, shape[k]).
// Complexity: O(rank).
func ValidateIndex(shape, idx []int) error {
	if len(idx) != len(shape) {
		return ErrRankMismatch
	}
	for k, i := range idx {
		if i < 0 || i >= shape[k] {
			return ErrOutOfRange
		}
	}

	return nil
}

// ValidateAxes – Ensures every axis is within [0, rank) and appears once.
//
// Complexity: O(len(axes) * rank).
func ValidateAxes(rank int, axes []int) error {
	seen := make([]bool, rank)
	for _, a := range axes {
		if a < 0 || a >= rank {
			return ErrOutOfRange
		}
		if seen[a] {
			return ErrRankMismatch
		}
		seen[a] = true
	}

	return nil
}

// SizeOf returns the product of extents (1 for a 0-d shape).
// Complexity: O(rank).
func SizeOf(shape []int) int {
	n := 1
	for _, e := range shape {
		n *= e
	}

	return n
}
