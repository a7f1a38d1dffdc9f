// SPDX-License-Identifier: MIT

// Package dimgroup is an in-memory toolkit for grouping dimension-labeled
// dense arrays: split an array along one or more named dimensions, then
// inspect, map or reduce every group.
//
// 🚀 What is dimgroup?
//
//	A deterministic, pure-Go library that brings together:
//		• Lookups: ordered coordinates, intervals, sets and cyclic residues
//		• Dimensions: named lookups with metadata
//		• Arrays: N-d float64 storage with no-copy index-list views
//		• Grouping: identity, key functions, explicit targets, bins, cyclic bins
//		• Presets: years, months, seasons, hours, days of year and month
//
// Packages are layered leaf to root:
//
//	lookup/    coordinate sequences, key shapes, ordering and containment
//	dimension/ Dimension type, Format validation, name helpers
//	ndarray/   Dense storage, Take views, reductions, broadcasting
//	dimarray/  Labeled interface, Array and Stack
//	groupby/   Resolve, Combine, Group and the Grouped container
//
// The dimgroup command (cmd/dimgroup) groups arrays described by YAML
// documents from the shell.
//
// Quick example:
//
//	g, err := groupby.Group(temps, []groupby.Query{groupby.By("Ti", groupby.Seasons(12))})
//	if err != nil { ... }
//	means, err := g.Mean()
package dimgroup
