// SPDX-License-Identifier: MIT
// Package: groupby
//
// Purpose:
//   - Labels renames sorted group keys for the result's dimensions. The
//     Partition keeps the raw keys.
//
// Variants:
//   - LabelFunc: applied to every key.
//   - LabelMap:  looked up per key. A compound key (Tuple, Residues, Set)
//     missing from the map is labeled by joining its components' labels
//     with "_"; a missing scalar key keeps its value.
//   - LabelList: positional; must have exactly one entry per key.

package groupby

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/dimgroup/lookup"
)

// labelSep joins component labels of compound keys.
const labelSep = "_"

// Labels relabels group keys. A nil Labels is the identity.
type Labels interface {
	apply(keys []any) ([]any, error)
}

var (
	_ Labels = LabelFunc(nil)
	_ Labels = LabelMap(nil)
	_ Labels = LabelList(nil)
)

// LabelFunc computes a label from a key.
type LabelFunc func(key any) any

// LabelMap maps keys to labels.
type LabelMap map[any]any

// LabelList lists one label per key, in key order.
type LabelList []any

func (f LabelFunc) apply(keys []any) ([]any, error) {
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = f(k)
	}

	return out, nil
}

func (m LabelMap) apply(keys []any) ([]any, error) {
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = m.label(k)
	}

	return out, nil
}

// label returns the mapped label of k, falling back to component joins for
// compound keys.
func (m LabelMap) label(k any) any {
	if v, ok := m.get(k); ok {
		return v
	}
	var parts []any
	switch x := k.(type) {
	case lookup.Tuple:
		parts = x
	case lookup.Set:
		parts = x
	case lookup.Residues:
		parts = make([]any, len(x.Values))
		for i, r := range x.Values {
			parts[i] = r
		}
	default:
		return k
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = lookup.Format(m.label(p))
	}

	return strings.Join(strs, labelSep)
}

// get looks k up, tolerating keys that cannot be map keys.
func (m LabelMap) get(k any) (any, bool) {
	if k == nil || !reflect.ValueOf(k).Comparable() {
		return nil, false
	}
	v, ok := m[k]

	return v, ok
}

func (l LabelList) apply(keys []any) ([]any, error) {
	if len(l) != len(keys) {
		return nil, fmt.Errorf("%d labels for %d keys: %w", len(l), len(keys), ErrLabelLength)
	}

	return append([]any(nil), l...), nil
}

// applyLabels relabels keys; nil labels return a copy of keys.
func applyLabels(labels Labels, keys []any) ([]any, error) {
	if labels == nil || reflect.ValueOf(labels).IsNil() {
		return append([]any(nil), keys...), nil
	}

	return labels.apply(keys)
}
