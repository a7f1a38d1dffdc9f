// SPDX-License-Identifier: MIT
// Package: lookup
//
// Purpose:
//   - Define the compound key shapes produced by grouping: Tuple (multi-part
//     keys), Interval (bins), Set (explicit point groups) and Residues (cyclic
//     bins such as month-of-year buckets).
//   - Define containment, the test used when a coordinate is bucketed into an
//     explicit target lookup.
//
// Containment rules:
//   - Interval contains v when v lies within its bounds.
//   - Set contains v when any member is Equal to v.
//   - Residues contains v when v is a whole number whose residue modulo Cycle
//     (normalized to 1..Cycle) is a member.
//   - Tuple contains a Tuple of the same length when every leading component
//     is Equal and the last component contains (or equals) the last value.
//   - Any other value is a closed-closed point: it contains only itself.

package lookup

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Container is implemented by key shapes that cover more than one value.
type Container interface {
	Contains(v any) bool
}

// ContainsValue reports whether target covers v under the rules above.
func ContainsValue(target, v any) bool {
	if c, ok := target.(Container); ok {
		return c.Contains(v)
	}

	return Equal(target, v)
}

// ---------- Tuple ----------

// Tuple is an ordered multi-part key, e.g. (year, month).
type Tuple []any

// Prefix returns all but the last component.
func (t Tuple) Prefix() Tuple {
	if len(t) == 0 {
		return Tuple{}
	}

	return t[:len(t)-1]
}

// Last returns the final component, or nil for an empty tuple.
func (t Tuple) Last() any {
	if len(t) == 0 {
		return nil
	}

	return t[len(t)-1]
}

// Contains implements Container.
func (t Tuple) Contains(v any) bool {
	o, ok := v.(Tuple)
	if !ok || len(o) != len(t) || len(t) == 0 {
		return false
	}
	last := len(t) - 1
	for i := 0; i < last; i++ {
		if !Equal(t[i], o[i]) {
			return false
		}
	}

	return ContainsValue(t[last], o[last])
}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = Format(v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// ---------- Set ----------

// Set is an explicit group of point values.
type Set []any

// Contains implements Container.
func (s Set) Contains(v any) bool {
	for _, m := range s {
		if Equal(m, v) {
			return true
		}
	}

	return false
}

func (s Set) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = Format(v)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// ---------- Interval ----------

// Bounds selects which interval ends are closed.
// The zero value is ClosedOpen, the convention used for generated bins.
type Bounds int

const (
	ClosedOpen Bounds = iota
	ClosedClosed
	OpenClosed
	OpenOpen
)

// Interval is a range of orderable values with explicit end closure.
type Interval struct {
	Lo, Hi any
	Bounds Bounds
}

// NewInterval returns the half-open interval [lo, hi).
func NewInterval(lo, hi any) Interval {
	return Interval{Lo: lo, Hi: hi, Bounds: ClosedOpen}
}

// Contains implements Container. Values not orderable against the endpoints
// are never contained.
func (iv Interval) Contains(v any) bool {
	lo, err := Compare(iv.Lo, v)
	if err != nil {
		return false
	}
	hi, err := Compare(v, iv.Hi)
	if err != nil {
		return false
	}

	switch iv.Bounds {
	case ClosedClosed:
		return lo <= 0 && hi <= 0
	case OpenClosed:
		return lo < 0 && hi <= 0
	case OpenOpen:
		return lo < 0 && hi < 0
	default:
		return lo <= 0 && hi < 0
	}
}

func (iv Interval) String() string {
	left, right := "[", ")"
	switch iv.Bounds {
	case ClosedClosed:
		right = "]"
	case OpenClosed:
		left, right = "(", "]"
	case OpenOpen:
		left = "("
	}

	return left + Format(iv.Lo) + ", " + Format(iv.Hi) + right
}

// ---------- Residues ----------

// Residues is a cyclic bucket: a set of residues in 1..Cycle.
type Residues struct {
	Cycle  int
	Values []int
}

// Mod1 wraps n into 1..cycle, so Mod1(0, 12) == 12 and Mod1(13, 12) == 1.
func Mod1(n, cycle int) int {
	r := n % cycle
	if r <= 0 {
		r += cycle
	}

	return r
}

// Contains implements Container.
func (r Residues) Contains(v any) bool {
	if r.Cycle <= 0 {
		return false
	}
	f, err := ToFloat(v)
	if err != nil || !isIntegral(f) || math.Abs(f) > math.MaxInt32 {
		return false
	}
	n := Mod1(int(f), r.Cycle)
	for _, m := range r.Values {
		if m == n {
			return true
		}
	}

	return false
}

func (r Residues) String() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Format renders a key for display and label stringification.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return x.String()
	}

	return fmt.Sprint(v)
}
