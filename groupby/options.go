// SPDX-License-Identifier: MIT

// Package groupby: functional configuration for Group and Resolve.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: options never change key order, only how the
//     keys are computed or labeled.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package groupby

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultName is the name given to every grouping result.
	DefaultName = "groupby"

	// DefaultWorkers evaluates key functions on the calling goroutine.
	DefaultWorkers = 1

	// DefaultBinPad is the fraction of (max-min) added above the maximum when
	// Bins derives equal-width intervals from a count.
	DefaultBinPad = 0.001

	// MetadataKey is the metadata entry recording the grouping queries.
	MetadataKey = "groupby"
)

// minParallelChunk is the smallest per-worker share worth a goroutine.
const minParallelChunk = 64

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "groupby: WithWorkers: n must be >= 1"
	panicLoggerNil      = "groupby: WithLogger: logger must not be nil"
	panicNameEmpty      = "groupby: WithName: name must not be empty"
	panicLabelsDimEmpty = "groupby: WithLabels: dimension name must not be empty"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int
	logger  *slog.Logger
	name    string
	labels  map[string]Labels // per-dimension fallback labels
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		workers: DefaultWorkers,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		name:    DefaultName,
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithWorkers evaluates key functions on n goroutines.
// Key functions must be pure; the resulting key order is a sort and does
// not depend on n.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes debug records (resolved key counts, hash collisions,
// grid shape) to logger. The default logger discards everything.
// Panics when logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithName overrides DefaultName for the result.
// Panics when name is empty.
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(o *Options) { o.name = name }
}

// WithLabels relabels the group keys of dim when the query for dim carries no
// labels of its own.
// Panics when dim is empty.
func WithLabels(dim string, labels Labels) Option {
	if dim == "" {
		panic(panicLabelsDimEmpty)
	}

	return func(o *Options) {
		if o.labels == nil {
			o.labels = make(map[string]Labels)
		}
		o.labels[dim] = labels
	}
}
