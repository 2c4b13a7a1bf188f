// SPDX-License-Identifier: MIT
// Package grid: descriptive statistics over a View.
//
// Summarize collects the set cells in row-major order and hands them to
// gonum's floats/stat kernels. Unset cells are counted, never treated as 0.

package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of set cells in a heightmap.
type Summary struct {
	Cells  int     // total cells, Dimension²
	Unset  int     // cells without a value
	Min    float64 // smallest set value (NaN when nothing is set)
	Max    float64 // largest set value (NaN when nothing is set)
	Mean   float64 // arithmetic mean of set values
	StdDev float64 // sample standard deviation of set values
}

// Summarize computes a Summary of v. Returns ErrNilGrid for a nil view.
// Complexity: O(side²) time, O(side²) memory for the sample buffer.
func Summarize(v View) (Summary, error) {
	if v == nil {
		return Summary{}, ErrNilGrid
	}
	if g, ok := v.(*Grid); ok && g == nil {
		return Summary{}, ErrNilGrid
	}

	dim := v.Dimension()
	s := Summary{Cells: dim * dim, Min: math.NaN(), Max: math.NaN(), Mean: math.NaN(), StdDev: math.NaN()}
	sample := make([]float64, 0, s.Cells)
	for _, row := range v.Values() {
		for _, x := range row {
			if math.IsNaN(x) {
				s.Unset++
				continue
			}
			sample = append(sample, x)
		}
	}
	if len(sample) == 0 {
		return s, nil
	}

	s.Min = floats.Min(sample)
	s.Max = floats.Max(sample)
	s.Mean, s.StdDev = stat.MeanStdDev(sample, nil)
	if len(sample) == 1 {
		s.StdDev = 0
	}

	return s, nil
}
