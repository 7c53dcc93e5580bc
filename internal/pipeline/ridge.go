package pipeline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Ridge is a fitted L2-regularised linear model. Weights apply to the
// (already preprocessed) feature vector; Alpha records the regularisation
// strength selected during fitting.
type Ridge struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
	Alpha     float64   `json:"alpha"`
}

func (r *Ridge) predict(x []float64) float64 {
	v := r.Intercept
	for j, w := range r.Weights {
		v += w * x[j]
	}
	return v
}

// fitRidge solves the regularised normal equations with an unpenalised
// intercept: columns and target are centred, (XᵀX + αI)w = Xᵀy is solved,
// and the intercept absorbs the centring.
func fitRidge(x [][]float64, y []float64, alpha float64) (*Ridge, error) {
	n := len(x)
	p := len(x[0])

	colMeans := make([]float64, p)
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			colMeans[j] += x[i][j]
		}
		colMeans[j] /= float64(n)
	}
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	xc := mat.NewDense(n, p, nil)
	yc := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			xc.Set(i, j, x[i][j]-colMeans[j])
		}
		yc.SetVec(i, y[i]-yMean)
	}

	var xtx mat.Dense
	xtx.Mul(xc.T(), xc)
	for j := 0; j < p; j++ {
		xtx.Set(j, j, xtx.At(j, j)+alpha)
	}
	var xty mat.VecDense
	xty.MulVec(xc.T(), yc)

	var w mat.VecDense
	if err := w.SolveVec(&xtx, &xty); err != nil {
		return nil, fmt.Errorf("ridge solve (alpha=%g): %w", alpha, err)
	}

	weights := make([]float64, p)
	intercept := yMean
	for j := 0; j < p; j++ {
		weights[j] = w.AtVec(j)
		intercept -= weights[j] * colMeans[j]
	}
	return &Ridge{Weights: weights, Intercept: intercept, Alpha: alpha}, nil
}

// defaultAlphas is the log-spaced grid searched during cross-validation,
// 1e-6 through 1e6.
func defaultAlphas() []float64 {
	alphas := make([]float64, 13)
	for i := range alphas {
		alphas[i] = math.Pow(10, float64(i-6))
	}
	return alphas
}

// fitRidgeCV selects alpha by k-fold cross-validation (contiguous folds,
// mean squared error) and refits on the full data with the winner.
func fitRidgeCV(x [][]float64, y []float64, alphas []float64, folds int) (*Ridge, error) {
	n := len(x)
	if len(alphas) == 0 {
		alphas = defaultAlphas()
	}
	if folds > n {
		folds = n
	}
	if folds < 2 {
		// Not enough rows to hold anything out; fall back to a neutral alpha.
		return fitRidge(x, y, 1.0)
	}

	bestAlpha := alphas[0]
	bestMSE := math.Inf(1)
	for _, alpha := range alphas {
		var sse float64
		var count int
		valid := true
		for f := 0; f < folds; f++ {
			lo := f * n / folds
			hi := (f + 1) * n / folds
			trainX := make([][]float64, 0, n-(hi-lo))
			trainY := make([]float64, 0, n-(hi-lo))
			trainX = append(trainX, x[:lo]...)
			trainX = append(trainX, x[hi:]...)
			trainY = append(trainY, y[:lo]...)
			trainY = append(trainY, y[hi:]...)

			model, err := fitRidge(trainX, trainY, alpha)
			if err != nil {
				valid = false
				break
			}
			for i := lo; i < hi; i++ {
				d := model.predict(x[i]) - y[i]
				sse += d * d
				count++
			}
		}
		if !valid || count == 0 {
			continue
		}
		if mse := sse / float64(count); mse < bestMSE {
			bestMSE = mse
			bestAlpha = alpha
		}
	}
	return fitRidge(x, y, bestAlpha)
}
