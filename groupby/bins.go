// SPDX-License-Identifier: MIT
// Package: groupby
//
// Purpose:
//   - Derive the concrete bucket list (targets) for Bins and CyclicBins.
//     Resolve then buckets values into targets by containment, exactly as
//     for an Explicit criterion.
//
// Numeric conventions:
//   - Count bins are half-open [lo, hi) over [min, max + pad·(max-min)).
//   - Cyclic buckets hold residues normalized to 1..Cycle.
//   - Tuple values bin their last component only; leading components are
//     free keys, combined outer-major with the inner buckets.

package groupby

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dimgroup/internal/keyindex"
	"github.com/katalvlaran/dimgroup/lookup"
)

// countEdges splits the range of vals into count equal-width intervals.
// MAIN DESCRIPTION:
//   - One edges array of count+1 values is computed, so adjacent intervals
//     share their boundary exactly.
//
// Behavior highlights:
//   - NaN values are ignored for the range and fall in no interval.
//   - min == max uses a unit width so the single value is covered.
//   - If rounding leaves max outside the last interval, that interval is
//     closed on the right.
//
// Errors:
//   - ErrInvalidBinCount when count <= 0; ErrNotNumeric for non-numeric vals
//     or when every value is NaN.
//
// Complexity:
//   - Time O(n + count), Space O(count).
func countEdges(vals []any, count int, pad float64) ([]any, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidBinCount)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	finite := 0
	for _, v := range vals {
		f, err := lookup.ToFloat(v)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) {
			continue
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
		finite++
	}
	if len(vals) == 0 {
		return nil, ErrEmptyDimension
	}
	if finite == 0 {
		return nil, fmt.Errorf("all %d values are NaN: %w", len(vals), ErrNotNumeric)
	}

	stop := hi + pad*(hi-lo)
	if hi == lo {
		stop = lo + 1
	}
	edges := make([]float64, count+1)
	width := (stop - lo) / float64(count)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[count] = stop

	out := make([]any, count)
	for i := 0; i < count; i++ {
		out[i] = lookup.NewInterval(edges[i], edges[i+1])
	}
	if !(hi < stop) {
		last := out[count-1].(lookup.Interval)
		last.Bounds = lookup.ClosedClosed
		out[count-1] = last
	}

	return out, nil
}

// cyclicBuckets returns ceil(cycle/step) residue buckets; bucket b holds
// Mod1(start + b·step + n, cycle) for n in 0..step-1.
// Errors: ErrInvalidBinCount when cycle or step is not positive.
// Complexity: O(cycle + step).
func cyclicBuckets(c CyclicBins) ([]any, error) {
	if c.Cycle <= 0 || c.Step <= 0 {
		return nil, fmt.Errorf("cycle %d, step %d: %w", c.Cycle, c.Step, ErrInvalidBinCount)
	}
	n := (c.Cycle + c.Step - 1) / c.Step
	out := make([]any, n)
	for b := 0; b < n; b++ {
		g := c.Start + b*c.Step
		res := make([]int, c.Step)
		for k := range res {
			res[k] = lookup.Mod1(g+k, c.Cycle)
		}
		out[b] = lookup.Residues{Cycle: c.Cycle, Values: res}
	}

	return out, nil
}

// splitTuples reports whether every value is a non-empty lookup.Tuple and,
// if so, returns the distinct prefixes (first appearance order) and the last
// components.
func splitTuples(vals []any) (prefixes []lookup.Tuple, lasts []any, ok bool) {
	if len(vals) == 0 {
		return nil, nil, false
	}
	ix := keyindex.New(0)
	lasts = make([]any, len(vals))
	for i, v := range vals {
		t, isTuple := v.(lookup.Tuple)
		if !isTuple || len(t) == 0 {
			return nil, nil, false
		}
		ix.Intern(t.Prefix())
		lasts[i] = t.Last()
	}
	for _, p := range ix.Keys() {
		prefixes = append(prefixes, p.(lookup.Tuple))
	}

	return prefixes, lasts, true
}

// tupleTargets derives inner buckets from the values (or their last
// components) and, for tuple values, crosses them with the distinct
// prefixes, outer-major.
func tupleTargets(vals []any, inner func(vals []any) ([]any, error)) ([]any, error) {
	prefixes, lasts, ok := splitTuples(vals)
	if !ok {
		return inner(vals)
	}
	buckets, err := inner(lasts)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(prefixes)*len(buckets))
	for _, p := range prefixes {
		for _, b := range buckets {
			key := make(lookup.Tuple, 0, len(p)+1)
			key = append(key, p...)
			out = append(out, append(key, b))
		}
	}

	return out, nil
}

// binTargets returns the bucket list for a Bins criterion over vals.
func binTargets(c Bins, vals []any) ([]any, error) {
	return tupleTargets(vals, func(vs []any) ([]any, error) {
		if c.Edges != nil {
			return append([]any(nil), c.Edges...), nil
		}
		return countEdges(vs, c.Count, c.pad())
	})
}

// cyclicTargets returns the bucket list for a CyclicBins criterion over vals.
func cyclicTargets(c CyclicBins, vals []any) ([]any, error) {
	return tupleTargets(vals, func([]any) ([]any, error) {
		return cyclicBuckets(c)
	})
}
