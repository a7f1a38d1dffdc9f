// SPDX-License-Identifier: MIT
// Package: lookup
//
// Purpose:
//   - Lookup is the ordered coordinate sequence backing one dimension.
//   - It is immutable: Rebuild and Take return new values and never touch
//     the receiver's backing slice.
//   - Order and Sampling are inferred once at construction time.
//
// Complexity quicksheet:
//   - New: O(n) (order inference); At: O(1); Take: O(k); Select: O(n),
//     O(log n) for exact selection on forward-ordered points.

package lookup

import (
	"fmt"
	"sort"
)

// Order describes how the coordinates of a Lookup are arranged.
type Order int

const (
	// Unordered coordinates have no monotone arrangement (or are not orderable).
	Unordered Order = iota
	// ForwardOrdered coordinates are non-decreasing.
	ForwardOrdered
	// ReverseOrdered coordinates are non-increasing.
	ReverseOrdered
)

func (o Order) String() string {
	switch o {
	case ForwardOrdered:
		return "ForwardOrdered"
	case ReverseOrdered:
		return "ReverseOrdered"
	default:
		return "Unordered"
	}
}

// Sampling tells whether coordinates are points or cover ranges.
type Sampling int

const (
	// Points coordinates are single values (closed-closed point intervals).
	Points Sampling = iota
	// Intervals coordinates are Interval/Set/Residues (or tuples ending in one).
	Intervals
)

func (s Sampling) String() string {
	if s == Intervals {
		return "Intervals"
	}

	return "Points"
}

// Lookup is an immutable ordered sequence of coordinate values.
type Lookup struct {
	values   []any
	order    Order
	sampling Sampling
}

// New builds a Lookup over a private copy of values.
func New(values []any) *Lookup {
	cp := make([]any, len(values))
	copy(cp, values)

	return newOwned(cp)
}

// FromSlice builds a Lookup from a typed slice.
func FromSlice[T any](values []T) *Lookup {
	cp := make([]any, len(values))
	for i, v := range values {
		cp[i] = v
	}

	return newOwned(cp)
}

// newOwned takes ownership of values (no copy).
func newOwned(values []any) *Lookup {
	return &Lookup{
		values:   values,
		order:    inferOrder(values),
		sampling: inferSampling(values),
	}
}

// Len returns the number of coordinates.
func (l *Lookup) Len() int {
	if l == nil {
		return 0
	}

	return len(l.values)
}

// At returns the coordinate at position i.
func (l *Lookup) At(i int) (any, error) {
	if i < 0 || i >= l.Len() {
		return nil, fmt.Errorf("Lookup.At(%d): %w", i, ErrOutOfRange)
	}

	return l.values[i], nil
}

// Values returns a copy of the coordinates.
func (l *Lookup) Values() []any {
	cp := make([]any, l.Len())
	if l != nil {
		copy(cp, l.values)
	}

	return cp
}

// Order returns the inferred ordering.
func (l *Lookup) Order() Order { return l.order }

// Sampling returns the inferred sampling.
func (l *Lookup) Sampling() Sampling { return l.sampling }

// Rebuild returns a new Lookup over values; the receiver is unchanged.
func (l *Lookup) Rebuild(values []any) *Lookup {
	return New(values)
}

// Take returns a new Lookup holding the coordinates at positions, in order.
// Duplicates are allowed.
func (l *Lookup) Take(positions []int) (*Lookup, error) {
	out := make([]any, len(positions))
	for k, p := range positions {
		if p < 0 || p >= l.Len() {
			return nil, fmt.Errorf("Lookup.Take: position %d: %w", p, ErrOutOfRange)
		}
		out[k] = l.values[p]
	}

	return newOwned(out), nil
}

// Select returns every position whose coordinate matches sel, ascending.
func (l *Lookup) Select(sel Selector) []int {
	var out []int
	for i, v := range l.values {
		if sel.match(v) {
			out = append(out, i)
		}
	}

	return out
}

// IndexOf returns the first position matching sel.
// First match wins when several coordinates match (e.g. overlapping bins).
func (l *Lookup) IndexOf(sel Selector) (int, bool) {
	if at, ok := sel.(At); ok && l.order == ForwardOrdered && l.sampling == Points {
		if i, found := l.searchForward(at.Value); found {
			return i, true
		}
		// Mixed numeric kinds may still match by equality; fall through.
	}
	for i, v := range l.values {
		if sel.match(v) {
			return i, true
		}
	}

	return -1, false
}

// searchForward binary-searches a forward-ordered point lookup.
func (l *Lookup) searchForward(v any) (int, bool) {
	var cmpErr error
	i := sort.Search(len(l.values), func(k int) bool {
		c, err := Compare(l.values[k], v)
		if err != nil {
			cmpErr = err
			return true
		}
		return c >= 0
	})
	if cmpErr != nil || i >= len(l.values) {
		return -1, false
	}
	if Equal(l.values[i], v) {
		return i, true
	}

	return -1, false
}

func (l *Lookup) String() string {
	return fmt.Sprintf("Lookup(%d, %s, %s)", l.Len(), l.order, l.sampling)
}

// inferOrder scans once; a comparison failure means Unordered.
func inferOrder(values []any) Order {
	if len(values) < 2 {
		return ForwardOrdered
	}
	fwd, rev := true, true
	for i := 1; i < len(values); i++ {
		c, err := Compare(values[i-1], values[i])
		if err != nil {
			return Unordered
		}
		if c > 0 {
			fwd = false
		}
		if c < 0 {
			rev = false
		}
	}

	switch {
	case fwd:
		return ForwardOrdered
	case rev:
		return ReverseOrdered
	default:
		return Unordered
	}
}

func inferSampling(values []any) Sampling {
	if len(values) == 0 {
		return Points
	}
	if isRange(values[0]) {
		return Intervals
	}

	return Points
}

func isRange(v any) bool {
	switch x := v.(type) {
	case Interval, Set, Residues:
		return true
	case Tuple:
		return isRange(x.Last())
	}

	return false
}
