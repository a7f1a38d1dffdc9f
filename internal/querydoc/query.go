// SPDX-License-Identifier: MIT

package querydoc

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dimgroup/groupby"
	"github.com/katalvlaran/dimgroup/lookup"
)

// Criterion names accepted in `by:`.
const (
	ByIdentity  = "identity"
	ByYear      = "year"
	ByMonth     = "month"
	ByDay       = "day"
	ByHour      = "hour"
	ByYearDay   = "yearday"
	ByYearMonth = "yearmonth"
	ByBins      = "bins"
	ByExplicit  = "explicit"
	ByCyclic    = "cyclic"
	BySeasons   = "seasons"
	ByMonths    = "months"
	ByHours     = "hours"
	ByYearDays  = "yeardays"
	ByMonthDays = "monthdays"
)

// QuerySpec is one `groupby:` entry.
//
// Edges lists buckets for bins/explicit: a two-element entry is the interval
// [lo, hi), a one-element entry a single point. Labels is either a mapping
// (key -> label) or a sequence (one label per key).
type QuerySpec struct {
	Dim    string     `yaml:"dim"`
	By     string     `yaml:"by"`
	Count  int        `yaml:"count,omitempty"`
	Pad    float64    `yaml:"pad,omitempty"`
	Edges  [][]string `yaml:"edges,omitempty"`
	Cycle  int        `yaml:"cycle,omitempty"`
	Step   int        `yaml:"step,omitempty"`
	Start  *int       `yaml:"start,omitempty"`
	Labels yaml.Node  `yaml:"labels,omitempty"`
}

// Query converts the entry to a groupby.Query. kind is the kind of the
// grouped dimension, used to parse edges and label keys.
func (qs QuerySpec) Query(kind string) (groupby.Query, error) {
	if qs.Dim == "" {
		return groupby.Query{}, fmt.Errorf("%w: missing dim", ErrInvalidDocument)
	}
	c, err := qs.criterion(kind)
	if err != nil {
		return groupby.Query{}, err
	}
	labels, err := qs.labels()
	if err != nil {
		return groupby.Query{}, err
	}
	q := groupby.By(qs.Dim, c)
	if labels != nil {
		q = q.Relabel(labels)
	}

	return q, nil
}

func (qs QuerySpec) start(def int) int {
	if qs.Start == nil {
		return def
	}

	return *qs.Start
}

func (qs QuerySpec) step() int {
	if qs.Step == 0 {
		return 1
	}

	return qs.Step
}

func (qs QuerySpec) criterion(kind string) (groupby.Criterion, error) {
	switch qs.By {
	case ByIdentity, "":
		return groupby.Identity(), nil
	case ByYear:
		return groupby.Years(), nil
	case ByMonth:
		return groupby.FuncOf(ByMonth, groupby.Month), nil
	case ByDay:
		return groupby.FuncOf(ByDay, groupby.Day), nil
	case ByHour:
		return groupby.FuncOf(ByHour, groupby.Hour), nil
	case ByYearDay:
		return groupby.FuncOf(ByYearDay, groupby.YearDay), nil
	case ByYearMonth:
		return groupby.YearMonths(), nil
	case ByBins:
		if qs.Edges != nil {
			edges, err := parseEdges(kind, qs.Edges)
			if err != nil {
				return nil, err
			}
			return groupby.Bins{Edges: edges, Pad: qs.Pad}, nil
		}
		return groupby.Bins{Count: qs.Count, Pad: qs.Pad}, nil
	case ByExplicit:
		edges, err := parseEdges(kind, qs.Edges)
		if err != nil {
			return nil, err
		}
		return groupby.Explicit{Targets: lookup.New(edges)}, nil
	case ByCyclic:
		return groupby.CyclicBins{Cycle: qs.Cycle, Step: qs.step(), Start: qs.start(1)}, nil
	case BySeasons:
		return groupby.Seasons(qs.start(12)), nil
	case ByMonths:
		return groupby.Months(qs.step(), qs.start(1)), nil
	case ByHours:
		return groupby.Hours(qs.step(), qs.start(0)), nil
	case ByYearDays:
		return groupby.YearDays(qs.step(), qs.start(1)), nil
	case ByMonthDays:
		return groupby.MonthDays(qs.step(), qs.start(1)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, qs.By)
}

// parseEdges turns [[lo, hi], [v], ...] into intervals and points.
func parseEdges(kind string, raw [][]string) ([]any, error) {
	out := make([]any, len(raw))
	for i, e := range raw {
		switch len(e) {
		case 1:
			v, err := parseValue(kind, e[0])
			if err != nil {
				return nil, fmt.Errorf("edge %d: %w", i, err)
			}
			out[i] = v
		case 2:
			lo, err := parseValue(kind, e[0])
			if err != nil {
				return nil, fmt.Errorf("edge %d: %w", i, err)
			}
			hi, err := parseValue(kind, e[1])
			if err != nil {
				return nil, fmt.Errorf("edge %d: %w", i, err)
			}
			out[i] = lookup.NewInterval(lo, hi)
		default:
			return nil, fmt.Errorf("%w: edge %d has %d values, want 1 or 2", ErrBadValue, i, len(e))
		}
	}

	return out, nil
}

// labels decodes the labels node: mapping -> LabelMap, sequence -> LabelList.
// Mapping keys that are whole numbers become int so they match numeric keys
// and cyclic residues.
func (qs QuerySpec) labels() (groupby.Labels, error) {
	n := qs.Labels
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.SequenceNode:
		var items []string
		if err := n.Decode(&items); err != nil {
			return nil, fmt.Errorf("%w: labels: %w", ErrBadValue, err)
		}
		out := make(groupby.LabelList, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out, nil
	case yaml.MappingNode:
		var raw map[string]string
		if err := n.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: labels: %w", ErrBadValue, err)
		}
		out := make(groupby.LabelMap, len(raw))
		for k, v := range raw {
			if i, err := strconv.Atoi(k); err == nil {
				out[i] = v
				continue
			}
			out[k] = v
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: labels must be a mapping or a sequence", ErrBadValue)
}
