// SPDX-License-Identifier: MIT

package groupby

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
)

// Query groups one dimension by one criterion.
type Query struct {
	Dim       string
	Criterion Criterion
	Labels    Labels // nil: the criterion's own labels, then WithLabels
}

// By is shorthand for Query{Dim: dim, Criterion: c}.
func By(dim string, c Criterion) Query { return Query{Dim: dim, Criterion: c} }

// Relabel returns a copy of q carrying labels.
func (q Query) Relabel(labels Labels) Query {
	q.Labels = labels

	return q
}

// String renders q as `dim=>criterion`.
func (q Query) String() string {
	if q.Criterion == nil {
		return q.Dim + "=>nil"
	}

	return q.Dim + "=>" + q.Criterion.String()
}

// Group partitions src along the queried dimensions.
// MAIN DESCRIPTION:
//   - Resolves every query (Resolve), combines the partitions (Combine) and
//     wraps the view grid in a *Grouped whose dims are the group dimensions
//     in query order, with no refdims, name DefaultName (or WithName) and
//     metadata {"groupby": Query} for one query or {"groupby": []Query}.
//
// Errors:
//   - ErrNilSource, ErrNoQueries, ErrUnknownDimension (all missing names),
//     plus every Resolve error. No partial result is returned.
//
// Example:
//
//	g, err := groupby.Group(temps, []groupby.Query{
//		groupby.By(dimension.Ti, groupby.Seasons(12)),
//	})
func Group(src dimarray.Labeled, queries []Query, opts ...Option) (*Grouped, error) {
	if src == nil {
		return nil, groupErrorf(opGroup, ErrNilSource)
	}
	if len(queries) == 0 {
		return nil, groupErrorf(opGroup, ErrNoQueries)
	}
	o := gatherOptions(opts...)

	srcDims := src.Dims()
	names := make([]string, len(queries))
	for i, q := range queries {
		names[i] = q.Dim
	}
	if err := dimension.CheckPresent(srcDims, names); err != nil {
		return nil, groupErrorf(opGroup, err)
	}

	resolved := make([]Resolved, len(queries))
	for i, q := range queries {
		d, _ := dimension.Lookup(srcDims, q.Dim)
		labels := q.Labels
		if labels == nil && ownLabels(q.Criterion) == nil {
			labels = o.labels[q.Dim]
		}
		gd, part, err := resolve(d, q.Criterion, labels, o)
		if err != nil {
			return nil, groupErrorf(opGroup, err)
		}
		resolved[i] = Resolved{Dim: gd, Partition: part}
	}

	views, shape, dims, err := Combine(src, resolved)
	if err != nil {
		return nil, groupErrorf(opGroup, err)
	}

	var provenance any = append([]Query(nil), queries...)
	if len(queries) == 1 {
		provenance = queries[0]
	}
	g, err := NewGrouped(views, shape, dims, nil, o.name, dimension.Metadata{MetadataKey: provenance})
	if err != nil {
		return nil, groupErrorf(opGroup, err)
	}
	o.logger.Debug("grouped",
		slog.String("source", src.Name()),
		slog.String("shape", fmt.Sprint(shape)),
		slog.Int("views", len(views)))

	return g, nil
}

// ownLabels returns the labels a criterion carries itself.
func ownLabels(c Criterion) Labels {
	switch cr := c.(type) {
	case Bins:
		return cr.Labels
	case CyclicBins:
		return cr.Labels
	}

	return nil
}
