package pipeline

import (
	"errors"
	"fmt"
	"math"

	"physprop/internal/domain"
)

// SchemaVersion is bumped whenever the serialised pipeline layout changes.
const SchemaVersion = 1

// Config describes how to fit one pipeline.
type Config struct {
	// Inputs names the raw feature columns, in order.
	Inputs []string
	// Degree of the polynomial expansion; 1 disables it.
	Degree int
	// LogTarget fits on log(y) and exponentiates predictions.
	LogTarget bool
	// Engineered expands (X1, X2) into the physics-derived vector before
	// preprocessing. Requires Inputs == [X1, X2].
	Engineered bool
	// Alphas overrides the cross-validated regularisation grid.
	Alphas []float64
	// Folds overrides the cross-validation fold count (default 5).
	Folds int
}

// Pipeline is a fitted regression pipeline: optional feature engineering,
// median imputation, standardisation, polynomial expansion and a ridge
// model, with an optional log transform on the target. All fields are
// exported for JSON persistence; treat a loaded Pipeline as immutable.
type Pipeline struct {
	Schema     int             `json:"schema_version"`
	InputNames []string        `json:"inputs"`
	Engineered bool            `json:"engineered,omitempty"`
	LogTarget  bool            `json:"log_target,omitempty"`
	Degree     int             `json:"degree"`
	Imputer    *MedianImputer  `json:"imputer"`
	Scaler     *StandardScaler `json:"scaler"`
	Model      *Ridge          `json:"ridge"`
}

var _ domain.Pipeline = (*Pipeline)(nil)

// Fit trains a pipeline on rows x (raw feature order per cfg.Inputs) and
// target values y.
func Fit(cfg Config, x [][]float64, y []float64) (*Pipeline, error) {
	if len(x) == 0 {
		return nil, errors.New("no training rows")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("rows/targets mismatch: %d vs %d", len(x), len(y))
	}
	if len(cfg.Inputs) == 0 || len(x[0]) != len(cfg.Inputs) {
		return nil, fmt.Errorf("expected %d feature columns, got %d", len(cfg.Inputs), len(x[0]))
	}
	if cfg.Engineered && len(cfg.Inputs) != 2 {
		return nil, errors.New("engineered features require exactly (X1, X2) inputs")
	}
	degree := cfg.Degree
	if degree < 1 {
		degree = 1
	}
	folds := cfg.Folds
	if folds == 0 {
		folds = 5
	}

	rows := make([][]float64, len(x))
	for i := range x {
		if cfg.Engineered {
			rows[i] = engineerFeatures(x[i][0], x[i][1])
		} else {
			rows[i] = append([]float64(nil), x[i]...)
		}
	}

	imputer := fitImputer(rows)
	for i := range rows {
		rows[i] = imputer.transform(rows[i])
	}
	scaler := fitScaler(rows)
	for i := range rows {
		rows[i] = expandPoly(scaler.transform(rows[i]), degree)
	}

	target := y
	if cfg.LogTarget {
		target = make([]float64, len(y))
		for i, v := range y {
			if v <= 0 {
				return nil, fmt.Errorf("log target requires positive values, got %g", v)
			}
			target[i] = math.Log(v)
		}
	}

	model, err := fitRidgeCV(rows, target, cfg.Alphas, folds)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Schema:     SchemaVersion,
		InputNames: append([]string(nil), cfg.Inputs...),
		Engineered: cfg.Engineered,
		LogTarget:  cfg.LogTarget,
		Degree:     degree,
		Imputer:    imputer,
		Scaler:     scaler,
		Model:      model,
	}, nil
}

// Inputs returns the raw feature columns Predict expects, in order.
func (p *Pipeline) Inputs() []string { return p.InputNames }

// Predict evaluates one raw feature vector. Missing values (NaN) are
// imputed; a non-finite result is an error, never returned as a value.
func (p *Pipeline) Predict(x []float64) (float64, error) {
	if len(x) != len(p.InputNames) {
		return 0, fmt.Errorf("expected %d features, got %d", len(p.InputNames), len(x))
	}
	if p.Imputer == nil || p.Scaler == nil || p.Model == nil {
		return 0, errors.New("pipeline is not fitted")
	}

	row := x
	if p.Engineered {
		row = engineerFeatures(x[0], x[1])
	}
	row = expandPoly(p.Scaler.transform(p.Imputer.transform(row)), p.Degree)
	if len(row) != len(p.Model.Weights) {
		return 0, fmt.Errorf("feature expansion produced %d terms, model has %d weights",
			len(row), len(p.Model.Weights))
	}

	v := p.Model.predict(row)
	if p.LogTarget {
		v = math.Exp(v)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("non-finite prediction")
	}
	return v, nil
}

// Validate checks internal consistency of a loaded pipeline before use.
func (p *Pipeline) Validate() error {
	if p.Schema != SchemaVersion {
		return fmt.Errorf("unsupported pipeline schema %d", p.Schema)
	}
	if len(p.InputNames) == 0 {
		return errors.New("pipeline has no inputs")
	}
	if p.Imputer == nil || p.Scaler == nil || p.Model == nil {
		return errors.New("pipeline is missing fitted stages")
	}
	width := len(p.InputNames)
	if p.Engineered {
		if width != 2 {
			return errors.New("engineered pipeline must take (X1, X2)")
		}
		width = len(engineeredNames)
	}
	if len(p.Imputer.Medians) != width || len(p.Scaler.Means) != width || len(p.Scaler.Stds) != width {
		return errors.New("preprocessing width does not match inputs")
	}
	if want := polyTerms(width, max(p.Degree, 1)); len(p.Model.Weights) != want {
		return fmt.Errorf("model has %d weights, expansion yields %d terms", len(p.Model.Weights), want)
	}
	return nil
}
