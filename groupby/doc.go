// SPDX-License-Identifier: MIT

// Package groupby partitions labeled arrays by dimension.
//
// A grouping request is a list of Query values, each naming one dimension
// of the source and a Criterion:
//
//   - Func        distinct values of a key function, sorted ascending
//   - Explicit    an ordered lookup of target points/intervals/sets
//   - Bins        equal-width intervals from a count, or explicit edges
//   - CyclicBins  residues modulo a period (months, hours, days)
//
// Resolve turns one (dimension, criterion) pair into a group dimension and
// a Partition of positions. Combine attaches each partition to its own axis
// and materializes one dimarray view per combination of keys. Group runs
// both and returns a *Grouped: a labeled grid of views over the source,
// dimensioned by the group keys, named "groupby", with no refdims and the
// queries recorded under the "groupby" metadata key.
//
// Grouped composes with element-wise transforms through Map and Rebuild:
// when every output is labeled (array, stack, grouped) the result is again
// a *Grouped; otherwise the result demotes to a plain labeled array over the
// group dimensions: *dimarray.Array when every output is a number,
// *dimarray.Grid for any other values.
//
// Calendar presets (Months, Seasons, Hours, YearDays, MonthDays, Years,
// YearMonths) are plain factories over the generic criteria.
//
// Errors are sentinels matched with errors.Is: ErrUnknownDimension,
// ErrEmptyDimension, ErrUnorderableKeys, ErrInvalidBinCount, ErrLabelLength,
// ErrDimensionMismatch and ErrMixedElements.
package groupby
