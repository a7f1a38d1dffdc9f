// SPDX-License-Identifier: MIT
// Package: groupby
//
// Purpose:
//   - Resolve one dimension under one criterion into a group dimension and
//     an index partition.
//
// Contract:
//   - Func: distinct keys sorted ascending; every position lands in exactly
//     one key.
//   - Explicit/Bins/CyclicBins: keys are the targets in target order; each
//     position lands in the first target containing it, or nowhere.
//   - Every key has a non-nil (possibly empty) position list.

package groupby

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/internal/keyindex"
	"github.com/katalvlaran/dimgroup/lookup"
)

// Partition maps group keys to the positions along one axis.
// Keys[i] owns Positions[i]; positions are ascending within each list.
type Partition struct {
	Keys      []any
	Positions [][]int
}

// Len returns the number of keys.
func (p Partition) Len() int { return len(p.Keys) }

// Covered returns the number of positions assigned to some key.
func (p Partition) Covered() int {
	n := 0
	for _, ps := range p.Positions {
		n += len(ps)
	}

	return n
}

// Resolve partitions dim under c.
// MAIN DESCRIPTION:
//   - Computes the group keys for dim and, for every key, the positions
//     along dim that belong to it. The returned dimension keeps dim's name
//     and metadata; its lookup holds the keys relabeled by labels (or by the
//     criterion's own Labels when labels is nil).
//
// Implementation:
//   - Stage 1: evaluate the key function over every coordinate (on
//     WithWorkers goroutines when configured).
//   - Stage 2: Func buckets by key value and sorts; the other variants
//     derive their targets and bucket by containment.
//   - Stage 3: relabel keys.
//
// Errors:
//   - ErrEmptyDimension, ErrUnorderableKeys, ErrInvalidBinCount,
//     ErrNotNumeric, ErrLabelLength, ErrUnknownCriterion.
//
// Complexity:
//   - Func: O(n log k) with hashing; bins: O(n·k) containment probes.
func Resolve(dim dimension.Dimension, c Criterion, labels Labels, opts ...Option) (dimension.Dimension, Partition, error) {
	o := gatherOptions(opts...)

	return resolve(dim, c, labels, o)
}

func resolve(dim dimension.Dimension, c Criterion, labels Labels, o Options) (dimension.Dimension, Partition, error) {
	fail := func(err error) (dimension.Dimension, Partition, error) {
		return dimension.Dimension{}, Partition{}, fmt.Errorf("groupby.%s(%s): %w", opResolve, dim.Name(), err)
	}
	if c == nil {
		return fail(ErrUnknownCriterion)
	}
	if dim.Len() == 0 {
		return fail(ErrEmptyDimension)
	}
	coords := dim.Values()

	var (
		part Partition
		err  error
	)
	switch cr := c.(type) {
	case Func:
		part, err = bucketByKey(evaluate(coords, cr.F, o.workers), o.logger)
	case Explicit:
		part = bucketInto(cr.Targets.Values(), coords)
	case Bins:
		vals := evaluate(coords, cr.F, o.workers)
		var targets []any
		if targets, err = binTargets(cr, vals); err == nil {
			part = bucketInto(targets, vals)
		}
		labels = firstLabels(labels, cr.Labels)
	case CyclicBins:
		vals := evaluate(coords, cr.F, o.workers)
		var targets []any
		if targets, err = cyclicTargets(cr, vals); err == nil {
			part = bucketInto(targets, vals)
		}
		labels = firstLabels(labels, cr.Labels)
	default:
		err = fmt.Errorf("%T: %w", c, ErrUnknownCriterion)
	}
	if err != nil {
		return fail(err)
	}

	names, err := applyLabels(labels, part.Keys)
	if err != nil {
		return fail(err)
	}
	o.logger.Debug("resolved dimension",
		slog.String("dim", dim.Name()),
		slog.String("criterion", c.String()),
		slog.Int("keys", part.Len()),
		slog.Int("covered", part.Covered()),
		slog.Int("positions", len(coords)))

	return dim.Rebuild(lookup.New(names)), part, nil
}

// firstLabels returns the first non-nil labels.
func firstLabels(ls ...Labels) Labels {
	for _, l := range ls {
		if l != nil {
			return l
		}
	}

	return nil
}

// evaluate applies f to every coordinate; nil f returns coords unchanged.
// With workers > 1 the slice is split into contiguous chunks; each result
// lands at its own index, so the output does not depend on scheduling.
func evaluate(coords []any, f KeyFunc, workers int) []any {
	if f == nil {
		return coords
	}
	out := make([]any, len(coords))
	if workers <= 1 || len(coords) < 2*minParallelChunk {
		for i, v := range coords {
			out[i] = f(v)
		}
		return out
	}

	chunk := (len(coords) + workers - 1) / workers
	chunk = max(chunk, minParallelChunk)
	var wg sync.WaitGroup
	for lo := 0; lo < len(coords); lo += chunk {
		hi := min(lo+chunk, len(coords))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = f(coords[i])
			}
		}(lo, hi)
	}
	wg.Wait()

	return out
}

// bucketByKey groups positions by key value and sorts the distinct keys.
func bucketByKey(keys []any, logger *slog.Logger) (Partition, error) {
	ix := keyindex.New(0)
	for i, k := range keys {
		ix.Add(k, i)
	}
	if n := ix.Collisions(); n > 0 {
		logger.Debug("key hash collisions", slog.Int("count", n))
	}

	distinct := ix.Keys()
	order := make([]int, len(distinct))
	for i := range order {
		order[i] = i
	}
	var cmpErr error
	slices.SortStableFunc(order, func(a, b int) int {
		c, err := lookup.Compare(distinct[a], distinct[b])
		if err != nil && cmpErr == nil {
			cmpErr = fmt.Errorf("%s vs %s: %w: %w",
				lookup.Format(distinct[a]), lookup.Format(distinct[b]), ErrUnorderableKeys, err)
		}
		return c
	})
	if cmpErr != nil {
		return Partition{}, cmpErr
	}

	part := Partition{Keys: make([]any, len(order)), Positions: make([][]int, len(order))}
	for i, id := range order {
		part.Keys[i] = distinct[id]
		part.Positions[i] = ix.Positions(id)
	}

	return part, nil
}

// bucketInto assigns every value to the first target containing it.
// Values contained by no target are dropped.
func bucketInto(targets, vals []any) Partition {
	part := Partition{Keys: targets, Positions: make([][]int, len(targets))}
	for j := range part.Positions {
		part.Positions[j] = []int{}
	}
	for i, v := range vals {
		for j, t := range targets {
			if lookup.ContainsValue(t, v) {
				part.Positions[j] = append(part.Positions[j], i)
				break
			}
		}
	}

	return part
}
