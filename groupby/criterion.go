// SPDX-License-Identifier: MIT
// Package: groupby
//
// Purpose:
//   - Criterion is a closed sum type: Func, Explicit, Bins, CyclicBins.
//     Resolve has exactly one branch per variant.
//   - Every variant renders itself for the provenance metadata of a result.

package groupby

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dimgroup/lookup"
)

// KeyFunc maps a coordinate to a group key. It must be pure.
// A KeyFunc returning lookup.Tuple makes the leading components free keys;
// only the last component is binned.
type KeyFunc func(v any) any

// Criterion selects how one dimension is partitioned.
type Criterion interface {
	fmt.Stringer
	criterion()
}

var (
	_ Criterion = Func{}
	_ Criterion = Explicit{}
	_ Criterion = Bins{}
	_ Criterion = CyclicBins{}
)

// Func groups by the distinct values of F, sorted ascending.
// A nil F is the identity.
type Func struct {
	Name string // used for display only
	F    KeyFunc
}

// Identity groups by the coordinates themselves.
func Identity() Func { return Func{Name: "identity"} }

// FuncOf is shorthand for Func{Name: name, F: f}.
func FuncOf(name string, f KeyFunc) Func { return Func{Name: name, F: f} }

func (Func) criterion() {}

func (c Func) String() string {
	if c.Name != "" {
		return c.Name
	}
	if c.F == nil {
		return "identity"
	}

	return "func"
}

// Explicit buckets coordinates into Targets, an ordered lookup of points,
// intervals, sets or residues. Target order is kept as given; when targets
// overlap the first containing target wins.
type Explicit struct {
	Targets *lookup.Lookup
}

// ExplicitOf builds an Explicit criterion from target values.
func ExplicitOf(targets ...any) Explicit { return Explicit{Targets: lookup.New(targets)} }

func (Explicit) criterion() {}

func (c Explicit) String() string {
	if c.Targets == nil {
		return "Explicit()"
	}

	return "Explicit" + lookup.Tuple(c.Targets.Values()).String()
}

// Bins buckets the values of F (identity when nil) into intervals.
// Edges, when non-nil, is used verbatim as the bucket list. Otherwise Count
// equal-width [lo, hi) intervals span the observed range, padded above by
// Pad (DefaultBinPad when <= 0) times the range.
type Bins struct {
	F      KeyFunc
	Count  int
	Edges  []any
	Labels Labels
	Pad    float64
}

// BinCount is shorthand for Bins{Count: n}.
func BinCount(n int) Bins { return Bins{Count: n} }

// BinEdges is shorthand for Bins{Edges: edges}.
func BinEdges(edges ...any) Bins { return Bins{Edges: edges} }

func (Bins) criterion() {}

func (c Bins) String() string {
	if c.Edges != nil {
		return "Bins" + lookup.Tuple(c.Edges).String()
	}

	return "Bins(" + strconv.Itoa(c.Count) + ")"
}

func (c Bins) pad() float64 {
	if c.Pad <= 0 {
		return DefaultBinPad
	}

	return c.Pad
}

// CyclicBins buckets the integral values of F into ceil(Cycle/Step) buckets
// of Step consecutive residues modulo Cycle, the first starting at Start.
// Residues are normalized to 1..Cycle, so 0 and Cycle are the same residue.
type CyclicBins struct {
	F      KeyFunc
	Cycle  int
	Start  int
	Step   int
	Labels Labels
}

func (CyclicBins) criterion() {}

func (c CyclicBins) String() string {
	return fmt.Sprintf("CyclicBins(cycle=%d, step=%d, start=%d)", c.Cycle, c.Step, c.Start)
}
