// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Provide deterministic reductions (sum, mean, min, max, variance, std,
//     count) over all elements or over a subset of axes.
//   - One accumulator type serves every reducer so traversal logic exists once.
//
// Exposed API:
//   - ReduceAll(op)        -> float64   // whole view
//   - Reduce(op, axes...)  -> *Dense    // reduced axes removed from the shape
//
// Determinism & Performance:
//   - Fixed row-major traversal; Welford updates for mean/variance.
//   - Empty inputs: Sum=0, Count=0, everything else NaN.

package ndarray

import (
	"fmt"
	"math"
)

// Reducer selects a reduction.
type Reducer int

const (
	Sum Reducer = iota
	Mean
	Min
	Max
	Var
	Std
	Count
)

var reducerNames = map[Reducer]string{
	Sum:   "sum",
	Mean:  "mean",
	Min:   "min",
	Max:   "max",
	Var:   "var",
	Std:   "std",
	Count: "count",
}

func (r Reducer) String() string {
	if s, ok := reducerNames[r]; ok {
		return s
	}

	return fmt.Sprintf("Reducer(%d)", int(r))
}

// ParseReducer maps a reducer name (as printed by String) back to a Reducer.
func ParseReducer(name string) (Reducer, error) {
	for r, s := range reducerNames {
		if s == name {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownReducer)
}

// accumulator carries running statistics for one output cell.
type accumulator struct {
	n        int
	sum      float64
	mean, m2 float64 // Welford running mean and sum of squared deviations
	min, max float64
}

func (a *accumulator) add(v float64) {
	if a.n == 0 {
		a.min, a.max = v, v
	} else {
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
	}
	a.n++
	a.sum += v
	delta := v - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (v - a.mean)
}

// result finalizes the accumulator for op. Var/Std use the population form.
func (a *accumulator) result(op Reducer) float64 {
	switch op {
	case Sum:
		return a.sum
	case Count:
		return float64(a.n)
	}
	if a.n == 0 {
		return math.NaN()
	}
	switch op {
	case Mean:
		return a.mean
	case Min:
		return a.min
	case Max:
		return a.max
	case Var:
		return a.m2 / float64(a.n)
	case Std:
		return math.Sqrt(a.m2 / float64(a.n))
	}

	return math.NaN()
}

func validReducer(op Reducer) error {
	if _, ok := reducerNames[op]; !ok {
		return fmt.Errorf("%v: %w", op, ErrUnknownReducer)
	}

	return nil
}

// ReduceAll reduces every element of the view to one value.
// MAIN DESCRIPTION:
//   - Single deterministic pass with a shared accumulator.
//
// Errors:
//   - ErrUnknownReducer for an op outside the defined set.
//
// Complexity:
//   - Time O(n·rank), Space O(1).
func (d *Dense) ReduceAll(op Reducer) (float64, error) {
	if err := validReducer(op); err != nil {
		return 0, ndErrorf(opReduce, err)
	}
	var acc accumulator
	d.Do(func(_ []int, v float64) bool {
		acc.add(v)
		return true
	})

	return acc.result(op), nil
}

// Reduce collapses the listed axes; the result keeps the remaining axes in
// their original order. Reducing no axes returns a compact copy.
// MAIN DESCRIPTION:
//   - One accumulator per output cell; elements are routed to their cell by
//     dropping the reduced components from the index.
//
// Errors:
//   - ErrUnknownReducer; ErrOutOfRange / ErrRankMismatch for bad axes.
//
// Complexity:
//   - Time O(n·rank), Space O(output size).
func (d *Dense) Reduce(op Reducer, axes ...int) (*Dense, error) {
	if err := validReducer(op); err != nil {
		return nil, ndErrorf(opReduce, err)
	}
	if err := ValidateAxes(len(d.shape), axes); err != nil {
		return nil, fmt.Errorf("Dense.%s: axes %v: %w", opReduce, axes, err)
	}

	reduced := make([]bool, len(d.shape))
	for _, a := range axes {
		reduced[a] = true
	}
	var outShape []int
	for k, n := range d.shape {
		if !reduced[k] {
			outShape = append(outShape, n)
		}
	}
	outStrides := rowMajorStrides(outShape)
	accs := make([]accumulator, SizeOf(outShape))

	d.Do(func(idx []int, v float64) bool {
		cell, j := 0, 0
		for k, i := range idx {
			if reduced[k] {
				continue
			}
			cell += i * outStrides[j]
			j++
		}
		accs[cell].add(v)
		return true
	})

	vals := make([]float64, len(accs))
	for i := range accs {
		vals[i] = accs[i].result(op)
	}

	return newOwned(outShape, vals), nil
}
