// SPDX-License-Identifier: MIT

// Package dimarray labels ndarray.Dense storage with named dimensions.
//
// An Array pairs a dense array with one dimension.Dimension per axis.
// A Stack holds several named Arrays over the same dimensions. Both implement
// Labeled, the interface the grouping layer works against: it exposes
// dimensions, reference dimensions, name, metadata and shape, and produces
// no-copy views through View(takes ...Take).
//
// All values are immutable. Views alias the source buffer; use
// Array.Data().Clone() for an independent copy.
package dimarray
