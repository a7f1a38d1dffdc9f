// SPDX-License-Identifier: MIT
// Package: groupby
//
// Purpose:
//   - Calendar presets: configuration factories over CyclicBins and Func.
//     They hold no state; each call returns a fresh criterion.
//   - Accessors extract calendar fields from time.Time coordinates. Values
//     that are not time.Time pass through unchanged, so a dimension that
//     already holds month numbers groups the same way.

package groupby

import (
	"time"

	"github.com/katalvlaran/dimgroup/lookup"
)

// Calendar cycles.
const (
	MonthsPerYear = 12
	HoursPerDay   = 24
	DaysPerYear   = 366 // leap years included; day 366 is its own residue
	DaysPerMonth  = 31
)

// MonthLabels maps month numbers to their three-letter abbreviations.
func MonthLabels() LabelMap {
	m := make(LabelMap, MonthsPerYear)
	for mo := time.January; mo <= time.December; mo++ {
		m[int(mo)] = mo.String()[:3]
	}

	return m
}

// Year returns the calendar year of a time.Time.
func Year(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Year()
	}

	return v
}

// Month returns the month number (1..12) of a time.Time.
func Month(v any) any {
	if t, ok := v.(time.Time); ok {
		return int(t.Month())
	}

	return v
}

// Day returns the day of the month (1..31) of a time.Time.
func Day(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Day()
	}

	return v
}

// Hour returns the hour (0..23) of a time.Time.
func Hour(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Hour()
	}

	return v
}

// YearDay returns the day of the year (1..366) of a time.Time.
func YearDay(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.YearDay()
	}

	return v
}

// yearMonth keys a time.Time by (year, month).
func yearMonth(v any) any {
	return lookup.Tuple{Year(v), Month(v)}
}

// Years groups by calendar year.
func Years() Func { return FuncOf("year", Year) }

// YearMonths groups by (year, month) tuples, sorted chronologically.
func YearMonths() Func { return FuncOf("yearmonth", yearMonth) }

// Months groups months into buckets of step, the first starting at start,
// labeled with joined month abbreviations (e.g. "Jan_Feb_Mar").
func Months(step, start int) CyclicBins {
	return CyclicBins{F: Month, Cycle: MonthsPerYear, Step: step, Start: start, Labels: MonthLabels()}
}

// Seasons groups months into four three-month seasons, the first starting
// at month start (12 gives Dec_Jan_Feb, Mar_Apr_May, ...).
func Seasons(start int) CyclicBins { return Months(3, start) }

// Hours groups hours of the day into buckets of step. Hour 0 is residue 24.
func Hours(step, start int) CyclicBins {
	return CyclicBins{F: Hour, Cycle: HoursPerDay, Step: step, Start: start}
}

// YearDays groups days of the year into buckets of step.
func YearDays(step, start int) CyclicBins {
	return CyclicBins{F: YearDay, Cycle: DaysPerYear, Step: step, Start: start}
}

// MonthDays groups days of the month into buckets of step.
func MonthDays(step, start int) CyclicBins {
	return CyclicBins{F: Day, Cycle: DaysPerMonth, Step: step, Start: start}
}
