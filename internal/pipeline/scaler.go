package pipeline

import "math"

// StandardScaler centres each column on its mean and scales to unit
// variance. Columns that were constant during fitting keep scale 1 so the
// transform stays defined.
type StandardScaler struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

func fitScaler(x [][]float64) *StandardScaler {
	cols := len(x[0])
	n := float64(len(x))
	means := make([]float64, cols)
	stds := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := range x {
			sum += x[i][j]
		}
		means[j] = sum / n

		var ss float64
		for i := range x {
			d := x[i][j] - means[j]
			ss += d * d
		}
		stds[j] = math.Sqrt(ss / n)
		if stds[j] == 0 {
			stds[j] = 1
		}
	}
	return &StandardScaler{Means: means, Stds: stds}
}

func (s *StandardScaler) transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Means[j]) / s.Stds[j]
	}
	return out
}
