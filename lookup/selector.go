// SPDX-License-Identifier: MIT

package lookup

import "fmt"

// Selector is a query against a Lookup's coordinates.
// The set is closed: At (exact match) and Contains (containment).
type Selector interface {
	match(coord any) bool
	fmt.Stringer
}

// At selects coordinates Equal to Value.
type At struct{ Value any }

func (s At) match(coord any) bool { return Equal(coord, s.Value) }

func (s At) String() string { return "At(" + Format(s.Value) + ")" }

// Contains selects coordinates that cover Value (see ContainsValue).
type Contains struct{ Value any }

func (s Contains) match(coord any) bool { return ContainsValue(coord, s.Value) }

func (s Contains) String() string { return "Contains(" + Format(s.Value) + ")" }
