// SPDX-License-Identifier: MIT

package groupby_test

import (
	"fmt"

	"github.com/katalvlaran/dimgroup/dimarray"
	"github.com/katalvlaran/dimgroup/dimension"
	"github.com/katalvlaran/dimgroup/groupby"
)

// ExampleGroup groups twelve monthly values into seasons and sums them.
func ExampleGroup() {
	months := make([]int, 12)
	vals := make([]float64, 12)
	for i := range months {
		months[i] = i + 1
		vals[i] = float64(i + 1)
	}
	a, err := dimarray.FromValues(vals, []dimension.Dimension{dimension.Of(dimension.Ti, months)})
	if err != nil {
		fmt.Println(err)
		return
	}

	g, err := groupby.Group(a, []groupby.Query{groupby.By(dimension.Ti, groupby.Seasons(12))})
	if err != nil {
		fmt.Println(err)
		return
	}
	sums, err := g.Sum()
	if err != nil {
		fmt.Println(err)
		return
	}
	ti, _ := dimension.Lookup(sums.Dims(), dimension.Ti)
	fmt.Println(ti.Values())
	fmt.Println(sums.(*dimarray.Array).Values())
	// Output:
	// [Dec_Jan_Feb Mar_Apr_May Jun_Jul_Aug Sep_Oct_Nov]
	// [15 12 21 30]
}

// ExampleBinCount splits a range into equal-width bins.
func ExampleBinCount() {
	dim := dimension.Of(dimension.X, []float64{0, 2, 4, 6, 8, 10})
	_, part, err := groupby.Resolve(dim, groupby.BinCount(2), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(part.Keys)
	fmt.Println(part.Positions)
	// Output:
	// [[0, 5.005) [5.005, 10.01)]
	// [[0 1 2] [3 4 5]]
}
