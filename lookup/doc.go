// SPDX-License-Identifier: MIT

// Package lookup provides the ordered coordinate sequences that back
// dimensions, and the total order used for grouping keys.
//
// What & Why:
//
//	A Lookup is the index of one axis: an immutable, ordered sequence of
//	coordinate values. Grouping needs two things from it: a total order over
//	derived keys (Compare), and positional selection by exact match (At) or
//	containment (Contains). Compound keys (Tuple, Interval, Set, Residues)
//	let bins and multi-part keys participate in both.
//
// Complexity:
//
//	New/FromSlice are O(n) (order inference). Select is O(n). IndexOf is
//	O(log n) for exact selection on forward-ordered point lookups and O(n)
//	otherwise.
package lookup
