// SPDX-License-Identifier: MIT
// Package dimarray: sentinel error set.
// Sentinels shared with the dimension package are re-exported as aliases so
// callers can match either name with errors.Is.

package dimarray

import (
	"errors"

	"github.com/katalvlaran/dimgroup/dimension"
)

var (
	// ErrNilData indicates a nil *ndarray.Dense passed to a constructor.
	ErrNilData = errors.New("dimarray: nil data")

	// ErrEmptyStack indicates a Stack built without layers.
	ErrEmptyStack = errors.New("dimarray: stack has no layers")

	// ErrDuplicateLayer indicates two stack layers with the same name.
	ErrDuplicateLayer = errors.New("dimarray: duplicate layer name")

	// ErrDuplicateTake indicates two Take directives for the same dimension.
	ErrDuplicateTake = errors.New("dimarray: dimension taken twice")
)

// Aliases of the dimension sentinels.
var (
	ErrDimensionMismatch = dimension.ErrDimensionMismatch
	ErrUnknownDimension  = dimension.ErrUnknownDimension
)
