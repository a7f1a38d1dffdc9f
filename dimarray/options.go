// SPDX-License-Identifier: MIT
// Package: dimarray
//
// Purpose:
//   - Functional options for Array and Stack constructors.
//   - Zero options yield an unnamed value with no metadata and no refdims.

package dimarray

import "github.com/katalvlaran/dimgroup/dimension"

// Option configures an Array or Stack at construction.
type Option func(*options)

type options struct {
	name    string
	meta    dimension.Metadata
	refdims []dimension.Dimension
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithName sets the value's name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithMetadata attaches a copy of meta.
func WithMetadata(meta dimension.Metadata) Option {
	return func(o *options) { o.meta = meta.Clone() }
}

// WithRefdims records reference dimensions (dimensions the value was sliced
// out of). They are carried, never validated against the shape.
func WithRefdims(refdims ...dimension.Dimension) Option {
	return func(o *options) { o.refdims = dimension.Clone(refdims) }
}
