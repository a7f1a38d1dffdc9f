// SPDX-License-Identifier: MIT
// Package groupby: sentinel error set.
// This file defines ONLY sentinels. Detection sites wrap them with the
// operation (and usually the dimension) via groupErrorf; callers match with
// errors.Is. Grouping is all-or-nothing: no partial result accompanies an
// error.

package groupby

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/lookup"
)

var (
	// ErrEmptyDimension is returned when a grouped dimension has no
	// coordinates, so no key type can be inferred.
	ErrEmptyDimension = errors.New("groupby: dimension has no coordinates")

	// ErrUnorderableKeys is returned when the distinct keys produced by a
	// function criterion have no common total order.
	ErrUnorderableKeys = errors.New("groupby: group keys are not orderable")

	// ErrInvalidBinCount is returned for a non-positive bin count, cycle or
	// step.
	ErrInvalidBinCount = errors.New("groupby: bin count must be positive")

	// ErrLabelLength is returned when a LabelList does not have one label
	// per group key.
	ErrLabelLength = errors.New("groupby: label count does not match key count")

	// ErrDimensionMismatch is returned when group dimensions do not match the
	// grid of views they label.
	ErrDimensionMismatch = errors.New("groupby: dimensions do not match grouped shape")

	// ErrMixedElements is returned when a transform of a Grouped yields
	// labeled outputs for some elements and plain values for others.
	ErrMixedElements = errors.New("groupby: outputs mix labeled and non-labeled elements")

	// ErrNilSource is returned for a nil source or a nil criterion.
	ErrNilSource = errors.New("groupby: nil source")

	// ErrNoQueries is returned when Group is called without any query.
	ErrNoQueries = errors.New("groupby: no grouping queries")

	// ErrUnknownCriterion is returned for a Criterion this package did not
	// define (e.g. a nil interface).
	ErrUnknownCriterion = errors.New("groupby: unknown criterion")
)

// Aliases of sentinels owned by the packages groupby builds on.
var (
	// ErrUnknownDimension: a query names a dimension the source lacks.
	ErrUnknownDimension = dimension.ErrUnknownDimension

	// ErrNotNumeric: bin edges were requested over non-numeric values.
	ErrNotNumeric = lookup.ErrNotNumeric
)

// Operation tags used with groupErrorf.
const (
	opGroup      = "Group"
	opResolve    = "Resolve"
	opCombine    = "Combine"
	opNewGrouped = "NewGrouped"
	opRebuild    = "Rebuild"
	opView       = "View"
)

// groupErrorf wraps err with the operation tag.
func groupErrorf(op string, err error) error {
	return fmt.Errorf("groupby.%s: %w", op, err)
}
