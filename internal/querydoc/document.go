// SPDX-License-Identifier: MIT
// Package querydoc decodes YAML grouping documents.
//
// A document describes one labeled array and the grouping to apply to it:
//
//	name: temperature
//	dims:
//	  - name: Ti
//	    kind: time            # number (default) | time | string
//	    values: [2023-01-15, 2023-02-15]
//	  - name: X
//	    values: [0, 1, 2]
//	data: [1, 2, 3, 4, 5, 6] # row-major
//	groupby:
//	  - dim: Ti
//	    by: seasons
//	    start: 12
//	reduce: mean              # optional
//
// Decoding is strict: unknown fields are rejected.
package querydoc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/groupby"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// Dimension kinds.
const (
	KindNumber = "number"
	KindTime   = "time"
	KindString = "string"
)

// timeLayouts are tried in order when parsing time coordinates.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02", "2006-01"}

// Document is the decoded form of a grouping document.
type Document struct {
	Name    string      `yaml:"name"`
	Dims    []DimSpec   `yaml:"dims"`
	Data    []float64   `yaml:"data"`
	GroupBy []QuerySpec `yaml:"groupby"`
	Reduce  string      `yaml:"reduce,omitempty"`
}

// DimSpec describes one dimension of the array.
type DimSpec struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind,omitempty"`
	Values []string `yaml:"values"`
}

// Decode reads one document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// Array builds the labeled array the document describes.
func (d *Document) Array() (*dimarray.Array, error) {
	if len(d.Dims) == 0 {
		return nil, fmt.Errorf("%w: no dims", ErrInvalidDocument)
	}
	dims := make([]dimension.Dimension, len(d.Dims))
	for i, ds := range d.Dims {
		values, err := ds.coordinates()
		if err != nil {
			return nil, err
		}
		dims[i] = dimension.Of(ds.Name, values).WithMetadata(dimension.Metadata{"kind": ds.kind()})
	}
	a, err := dimarray.FromValues(d.Data, dims, dimarray.WithName(d.Name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return a, nil
}

// Queries builds the grouping queries; at least one is required.
func (d *Document) Queries() ([]groupby.Query, error) {
	if len(d.GroupBy) == 0 {
		return nil, fmt.Errorf("%w: no groupby entries", ErrInvalidDocument)
	}
	out := make([]groupby.Query, len(d.GroupBy))
	for i, qs := range d.GroupBy {
		kind := KindNumber
		for _, ds := range d.Dims {
			if ds.Name == qs.Dim {
				kind = ds.kind()
			}
		}
		q, err := qs.Query(kind)
		if err != nil {
			return nil, fmt.Errorf("groupby[%d] (%s): %w", i, qs.Dim, err)
		}
		out[i] = q
	}

	return out, nil
}

// Reducer returns the requested reducer; ok is false when none was set.
func (d *Document) Reducer() (op ndarray.Reducer, ok bool, err error) {
	if d.Reduce == "" {
		return 0, false, nil
	}
	op, err = ndarray.ParseReducer(d.Reduce)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return op, true, nil
}

func (ds DimSpec) kind() string {
	if ds.Kind == "" {
		return KindNumber
	}

	return ds.Kind
}

// coordinates parses the values according to the dimension kind.
func (ds DimSpec) coordinates() ([]any, error) {
	out := make([]any, len(ds.Values))
	for i, s := range ds.Values {
		v, err := parseValue(ds.kind(), s)
		if err != nil {
			return nil, fmt.Errorf("dim %q value %d: %w", ds.Name, i, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseValue parses one scalar of the given kind. Whole numbers become int so
// keys print without a fractional part.
func parseValue(kind, s string) (any, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case KindString:
		return s, nil
	case KindNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrBadValue, s)
		}
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int(f), nil
		}
		return f, nil
	case KindTime:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%w: %q is not a time", ErrBadValue, s)
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidDocument, kind)
}
