// SPDX-License-Identifier: MIT

package querydoc

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/groupby"
	"github.com/katalvlaran/dimgroup/lookup"
	"github.com/katalvlaran/dimgroup/ndarray"
)

// Result is the printable summary of a grouping.
type Result struct {
	Name    string      `yaml:"name"`
	GroupBy []string    `yaml:"groupby"`
	Dims    []ResultDim `yaml:"dims"`
	Shape   []int       `yaml:"shape"`
	Sizes   []int       `yaml:"sizes"`
	Reduce  string      `yaml:"reduce,omitempty"`
	Values  []float64   `yaml:"values,omitempty"`
}

// ResultDim lists the group keys of one group dimension.
type ResultDim struct {
	Name string   `yaml:"name"`
	Keys []string `yaml:"keys"`
}

// Summarize describes g. Sizes holds the element count of every group in
// row-major order. When op is set, Values holds op over every group.
func Summarize(g *groupby.Grouped, op *ndarray.Reducer) (Result, error) {
	res := Result{Name: g.Name(), Shape: g.Shape()}
	for _, q := range g.Queries() {
		res.GroupBy = append(res.GroupBy, q.String())
	}
	for _, d := range g.Dims() {
		rd := ResultDim{Name: d.Name()}
		for _, k := range d.Values() {
			rd.Keys = append(rd.Keys, lookup.Format(k))
		}
		res.Dims = append(res.Dims, rd)
	}
	for _, el := range g.Elements() {
		res.Sizes = append(res.Sizes, ndarray.SizeOf(el.Shape()))
	}
	if op == nil {
		return res, nil
	}

	reduced, err := g.Reduce(*op)
	if err != nil {
		return Result{}, err
	}
	arr, ok := reduced.(*dimarray.Array)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s does not reduce to scalars", ErrInvalidDocument, op)
	}
	res.Reduce = op.String()
	res.Values = arr.Values()

	return res, nil
}

// EncodeYAML writes r as a YAML document.
func EncodeYAML(w io.Writer, r Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// EncodeText writes r as aligned plain text, one group per line.
func EncodeText(w io.Writer, r Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s by %s\n", r.Name, strings.Join(r.GroupBy, ", "))
	names := make([]string, len(r.Dims))
	for i, d := range r.Dims {
		names[i] = d.Name
	}
	header := strings.Join(names, "\t") + "\tsize"
	if r.Reduce != "" {
		header += "\t" + r.Reduce
	}
	b.WriteString(header + "\n")

	idx := make([]int, len(r.Shape))
	for i, size := range r.Sizes {
		cells := make([]string, len(idx))
		for k, j := range idx {
			cells[k] = r.Dims[k].Keys[j]
		}
		line := strings.Join(cells, "\t") + fmt.Sprintf("\t%d", size)
		if r.Reduce != "" {
			line += fmt.Sprintf("\t%g", r.Values[i])
		}
		b.WriteString(line + "\n")
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < r.Shape[k] {
				break
			}
			idx[k] = 0
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}
