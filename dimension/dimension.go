// SPDX-License-Identifier: MIT
// Package: dimension
//
// Purpose:
//   - Dimension is a named axis descriptor: identity (name), coordinates
//     (a *lookup.Lookup) and free-form metadata.
//   - Values are immutable; every "update" (Rebuild, Take, WithMetadata)
//     returns a new Dimension that shares nothing mutable with the receiver.

package dimension

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/dimgroup/lookup"
)

// Common dimension names. Any non-empty string is a valid name; these exist so
// callers agree on spelling.
const (
	X    = "X"
	Y    = "Y"
	Z    = "Z"
	Ti   = "Ti"
	Band = "Band"
)

// Metadata is an attribute map attached to dimensions and arrays.
type Metadata map[string]any

// Clone returns a shallow copy (nil stays nil).
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}

	return maps.Clone(m)
}

// Dimension labels one axis of a dense array.
type Dimension struct {
	name   string
	lookup *lookup.Lookup
	meta   Metadata
}

// New returns a Dimension called name over l. A nil lookup means zero length.
func New(name string, l *lookup.Lookup) Dimension {
	if l == nil {
		l = lookup.New(nil)
	}

	return Dimension{name: name, lookup: l}
}

// Of is shorthand for New(name, lookup.FromSlice(values)).
func Of[T any](name string, values []T) Dimension {
	return New(name, lookup.FromSlice(values))
}

// Name returns the dimension identity.
func (d Dimension) Name() string { return d.name }

// Lookup returns the coordinate lookup.
func (d Dimension) Lookup() *lookup.Lookup { return d.lookup }

// Len returns the number of coordinates.
func (d Dimension) Len() int { return d.lookup.Len() }

// Values returns a copy of the coordinates.
func (d Dimension) Values() []any { return d.lookup.Values() }

// Metadata returns a copy of the attached metadata.
func (d Dimension) Metadata() Metadata { return d.meta.Clone() }

// Rebuild returns a copy of d over a new lookup. Name and metadata are kept.
func (d Dimension) Rebuild(l *lookup.Lookup) Dimension {
	out := New(d.name, l)
	out.meta = d.meta.Clone()

	return out
}

// WithMetadata returns a copy of d carrying meta.
func (d Dimension) WithMetadata(meta Metadata) Dimension {
	out := d
	out.meta = meta.Clone()

	return out
}

// Take returns d restricted to the coordinates at positions.
func (d Dimension) Take(positions []int) (Dimension, error) {
	l, err := d.lookup.Take(positions)
	if err != nil {
		return Dimension{}, fmt.Errorf("dimension %q: %w", d.name, err)
	}

	return d.Rebuild(l), nil
}

func (d Dimension) String() string {
	return fmt.Sprintf("%s(%d)", d.name, d.Len())
}
