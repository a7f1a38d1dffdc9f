// SPDX-License-Identifier: MIT
// Package lookup: sentinel error set.
// Every message is prefixed with "lookup: ..." so it can be grepped in logs.
// Callers match with errors.Is; wrapping sites add the offending values.

package lookup

import "errors"

var (
	// ErrUnorderable is returned when two keys have no common total order
	// (e.g., a string compared with a number, or an unsupported key type).
	ErrUnorderable = errors.New("lookup: values are not mutually orderable")

	// ErrNotNumeric is returned when a numeric value was required (bin edges,
	// cyclic residues) but the value has no numeric interpretation.
	ErrNotNumeric = errors.New("lookup: value is not numeric")

	// ErrOutOfRange indicates a position outside [0, Len()).
	ErrOutOfRange = errors.New("lookup: position out of range")
)
