// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"
	"strings"
)

// Format validates dims against shape: same count, unique non-empty names and
// each lookup length equal to the extent of its axis.
func Format(dims []Dimension, shape []int) error {
	if len(dims) != len(shape) {
		return fmt.Errorf("Format: %d dims for rank %d: %w", len(dims), len(shape), ErrDimensionMismatch)
	}
	seen := make(map[string]struct{}, len(dims))
	for i, d := range dims {
		if d.name == "" {
			return fmt.Errorf("Format: axis %d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[d.name]; dup {
			return fmt.Errorf("Format: %q: %w", d.name, ErrDuplicateName)
		}
		seen[d.name] = struct{}{}
		if d.Len() != shape[i] {
			return fmt.Errorf("Format: %q has %d coordinates, axis %d has extent %d: %w",
				d.name, d.Len(), i, shape[i], ErrDimensionMismatch)
		}
	}

	return nil
}

// Names returns the names of dims in order.
func Names(dims []Dimension) []string {
	out := make([]string, len(dims))
	for i, d := range dims {
		out[i] = d.name
	}

	return out
}

// IndexOf returns the axis of the dimension called name, or -1.
func IndexOf(dims []Dimension, name string) int {
	for i, d := range dims {
		if d.name == name {
			return i
		}
	}

	return -1
}

// Lookup finds the dimension called name.
func Lookup(dims []Dimension, name string) (Dimension, bool) {
	if i := IndexOf(dims, name); i >= 0 {
		return dims[i], true
	}

	return Dimension{}, false
}

// Missing returns the names that are not present in dims, in request order.
func Missing(dims []Dimension, names []string) []string {
	var out []string
	for _, n := range names {
		if IndexOf(dims, n) < 0 {
			out = append(out, n)
		}
	}

	return out
}

// CheckPresent wraps ErrUnknownDimension listing every absent name.
func CheckPresent(dims []Dimension, names []string) error {
	missing := Missing(dims, names)
	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s not in (%s)", ErrUnknownDimension,
		strings.Join(missing, ", "), strings.Join(Names(dims), ", "))
}

// Clone returns a copy of the dims slice (Dimension values are immutable).
func Clone(dims []Dimension) []Dimension {
	if dims == nil {
		return nil
	}
	out := make([]Dimension, len(dims))
	copy(out, dims)

	return out
}
