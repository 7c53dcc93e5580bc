package pipeline

import (
	"math"
	"sort"
)

// MedianImputer replaces missing (NaN) values with the per-column median
// observed during fitting.
type MedianImputer struct {
	Medians []float64 `json:"medians"`
}

func fitImputer(x [][]float64) *MedianImputer {
	cols := len(x[0])
	medians := make([]float64, cols)
	for j := 0; j < cols; j++ {
		vals := make([]float64, 0, len(x))
		for i := range x {
			if !math.IsNaN(x[i][j]) {
				vals = append(vals, x[i][j])
			}
		}
		medians[j] = median(vals)
	}
	return &MedianImputer{Medians: medians}
}

func (m *MedianImputer) transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		if math.IsNaN(v) {
			out[j] = m.Medians[j]
		} else {
			out[j] = v
		}
	}
	return out
}

// median of vals; 0 when the column held no observed values at all.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
