// SPDX-License-Identifier: MIT

package querydoc

import "errors"

var (
	// ErrInvalidDocument indicates a structurally invalid grouping document.
	ErrInvalidDocument = errors.New("querydoc: invalid document")

	// ErrUnknownCriterion indicates an unsupported `by:` value.
	ErrUnknownCriterion = errors.New("querydoc: unknown criterion")

	// ErrBadValue indicates a coordinate, edge or label that cannot be parsed
	// for its dimension kind.
	ErrBadValue = errors.New("querydoc: bad value")
)
