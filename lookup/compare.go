// SPDX-License-Identifier: MIT
// Package: lookup
//
// Purpose:
//   - Provide the single total order used for coordinates and group keys.
//   - Keep numeric kinds interoperable (int 3 == float64 3.0) so keys produced
//     by different accessor functions still collapse into one group.
//
// Ordering rules:
//   - numbers (all int/uint/float kinds and time.Duration) compare by value;
//   - strings lexicographically; false < true;
//   - time.Time by instant;
//   - Tuple and Set lexicographically, shorter prefix first;
//   - Interval by Lo, then Hi, then bound kind;
//   - Residues by their first residue, then length.
//
// Anything else (or a cross-kind pair) is ErrUnorderable.

package lookup

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// kind tags used to decide whether two values share an order.
type kind int

const (
	kindUnknown kind = iota
	kindNumber
	kindString
	kindBool
	kindTime
	kindTuple
	kindSet
	kindInterval
	kindResidues
)

func kindOf(v any) kind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64, time.Duration:
		return kindNumber
	case string:
		return kindString
	case bool:
		return kindBool
	case time.Time:
		return kindTime
	case Tuple:
		return kindTuple
	case Set:
		return kindSet
	case Interval:
		return kindInterval
	case Residues:
		return kindResidues
	default:
		return kindUnknown
	}
}

// Compare returns -1, 0 or +1 when a orders before, equal to or after b.
// Returns ErrUnorderable (wrapped with both dynamic types) when a and b do not
// share an order.
func Compare(a, b any) (int, error) {
	ka, kb := kindOf(a), kindOf(b)
	if ka == kindUnknown || ka != kb {
		return 0, fmt.Errorf("compare %T with %T: %w", a, b, ErrUnorderable)
	}

	switch ka {
	case kindNumber:
		return compareNumbers(a, b), nil
	case kindString:
		return strings.Compare(a.(string), b.(string)), nil
	case kindBool:
		return compareBools(a.(bool), b.(bool)), nil
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time)), nil
	case kindTuple:
		return compareSeq(a.(Tuple), b.(Tuple))
	case kindSet:
		return compareSeq(a.(Set), b.(Set))
	case kindInterval:
		return compareIntervals(a.(Interval), b.(Interval))
	case kindResidues:
		return compareResidues(a.(Residues), b.(Residues)), nil
	}

	return 0, fmt.Errorf("compare %T with %T: %w", a, b, ErrUnorderable)
}

// Less reports a < b, treating unorderable pairs as "not less".
func Less(a, b any) bool {
	c, err := Compare(a, b)
	return err == nil && c < 0
}

// Equal reports whether a and b denote the same key.
// Orderable pairs are equal when Compare returns 0; other pairs fall back to
// reflect.DeepEqual so user-defined key types can still be grouped.
func Equal(a, b any) bool {
	c, err := Compare(a, b)
	if err == nil {
		return c == 0
	}
	if kindOf(a) != kindUnknown && kindOf(b) != kindUnknown {
		return false // known but different kinds
	}

	return reflect.DeepEqual(a, b)
}

// IsNumber reports whether v has a numeric interpretation.
func IsNumber(v any) bool { return kindOf(v) == kindNumber }

// ToFloat converts any numeric kind to float64.
// Returns ErrNotNumeric for everything else.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case time.Duration:
		return float64(x), nil
	}

	return 0, fmt.Errorf("%v (%T): %w", v, v, ErrNotNumeric)
}

// toInt64 converts signed integer kinds exactly; ok=false otherwise.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case time.Duration:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	}

	return 0, false
}

// compareNumbers compares exactly when both sides are signed-representable
// integers and falls back to float64 otherwise. NaN sorts first (cmp.Compare).
func compareNumbers(a, b any) int {
	if ia, ok := toInt64(a); ok {
		if ib, ok := toInt64(b); ok {
			return cmp.Compare(ia, ib)
		}
	}
	fa, _ := ToFloat(a)
	fb, _ := ToFloat(b)

	return cmp.Compare(fa, fb)
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareSeq[S ~[]any](a, b S) (int, error) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		c, err := Compare(a[i], b[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}

	return cmp.Compare(len(a), len(b)), nil
}

func compareIntervals(a, b Interval) (int, error) {
	c, err := Compare(a.Lo, b.Lo)
	if err != nil || c != 0 {
		return c, err
	}
	c, err = Compare(a.Hi, b.Hi)
	if err != nil || c != 0 {
		return c, err
	}

	return cmp.Compare(a.Bounds, b.Bounds), nil
}

func compareResidues(a, b Residues) int {
	if len(a.Values) == 0 || len(b.Values) == 0 {
		return cmp.Compare(len(a.Values), len(b.Values))
	}
	if c := cmp.Compare(a.Values[0], b.Values[0]); c != 0 {
		return c
	}

	return cmp.Compare(len(a.Values), len(b.Values))
}

// isIntegral reports whether f is a finite whole number.
func isIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}
