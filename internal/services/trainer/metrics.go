package trainer

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"physprop/internal/domain"
	"physprop/internal/store"
)

// evaluate computes RMSE and R² of the fitted pipeline on (x, y).
func evaluate(p domain.Pipeline, x [][]float64, y []float64) (store.Metrics, error) {
	est := make([]float64, len(y))
	for i := range x {
		v, err := p.Predict(x[i])
		if err != nil {
			return store.Metrics{}, err
		}
		est[i] = v
	}

	var sse float64
	for i := range y {
		d := est[i] - y[i]
		sse += d * d
	}
	m := store.Metrics{
		RMSE:    math.Sqrt(sse / float64(len(y))),
		R2:      stat.RSquaredFrom(est, y, nil),
		Samples: len(y),
	}
	return m, nil
}
