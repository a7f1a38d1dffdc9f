// SPDX-License-Identifier: MIT

// Package dimension defines named axis descriptors for labeled arrays.
//
// A Dimension couples a name with a lookup.Lookup of coordinates and a
// metadata map. Arrays carry one Dimension per axis; Format enforces that the
// dimension tuple matches the array shape (count, order, per-axis length).
// Dimensions are immutable values: Rebuild, Take and WithMetadata return new
// ones.
package dimension
