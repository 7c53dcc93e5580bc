package trainer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"physprop/internal/dataset"
	"physprop/internal/domain"
	"physprop/internal/pipeline"
	"physprop/internal/store"
	"physprop/internal/units"
)

const testFraction = 0.2

// Service fits pipelines from the dataset directory and writes the store.
type Service struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Service { return &Service{logger: logger} }

// TargetReport summarises one fitted target.
type TargetReport struct {
	Target  string
	Inputs  []string
	Unit    string
	Metrics store.Metrics
}

// Report summarises one training run.
type Report struct {
	ModelPath string
	TrainedAt time.Time
	Targets   []TargetReport
}

// Train fits one pipeline per CSV in dataDir and writes the model file to
// modelPath. Dataset names follow the target naming convention
// (<solution>_<property>.csv); the name picks the feature columns and the
// pipeline shape, mirroring how the historical models were produced.
func (s *Service) Train(dataDir, modelPath string) (*Report, error) {
	paths, err := filepath.Glob(filepath.Join(dataDir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dataset CSVs in %s", dataDir)
	}
	sort.Strings(paths)

	doc := store.Document{
		Version:   store.DocumentVersion,
		TrainedAt: time.Now().UTC(),
		Targets:   make(map[string]store.TargetModel, len(paths)),
	}
	report := &Report{ModelPath: modelPath, TrainedAt: doc.TrainedAt}

	for _, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		tm, tr, err := s.trainOne(stem, path)
		if err != nil {
			return nil, fmt.Errorf("train %s: %w", stem, err)
		}
		doc.Targets[stem] = tm
		report.Targets = append(report.Targets, tr)

		s.logger.Info("trained target",
			zap.String("target", stem),
			zap.Strings("inputs", tr.Inputs),
			zap.Float64("rmse", tr.Metrics.RMSE),
			zap.Float64("r2", tr.Metrics.R2),
			zap.Int("samples", tr.Metrics.Samples),
		)
	}

	if err := store.Write(modelPath, doc); err != nil {
		return nil, fmt.Errorf("write model file: %w", err)
	}
	s.logger.Info("model file written",
		zap.String("path", modelPath),
		zap.Int("targets", len(doc.Targets)),
	)
	return report, nil
}

func (s *Service) trainOne(stem, path string) (store.TargetModel, TargetReport, error) {
	tbl, err := dataset.Load(path)
	if err != nil {
		return store.TargetModel{}, TargetReport{}, err
	}

	cfg := planFor(stem)
	targets := tbl.Others(cfg.Inputs)
	if len(targets) != 1 {
		return store.TargetModel{}, TargetReport{},
			fmt.Errorf("want exactly one target column besides %v, got %v", cfg.Inputs, targets)
	}

	x, err := tbl.Select(cfg.Inputs)
	if err != nil {
		return store.TargetModel{}, TargetReport{}, err
	}
	y, err := tbl.Column(targets[0])
	if err != nil {
		return store.TargetModel{}, TargetReport{}, err
	}

	trainX, trainY, testX, testY := trainTestSplit(x, y, testFraction)
	p, err := pipeline.Fit(cfg, trainX, trainY)
	if err != nil {
		return store.TargetModel{}, TargetReport{}, err
	}

	// Small datasets can leave nothing held out; score on the training rows.
	if len(testX) == 0 {
		testX, testY = trainX, trainY
	}
	m, err := evaluate(p, testX, testY)
	if err != nil {
		return store.TargetModel{}, TargetReport{}, err
	}

	unit := units.ForTarget(stem)
	tm := store.TargetModel{Unit: unit, Metrics: m, Pipeline: p}
	tr := TargetReport{Target: stem, Inputs: cfg.Inputs, Unit: unit, Metrics: m}
	return tm, tr, nil
}

// planFor picks feature columns and pipeline shape from the dataset name.
// Bubble point regresses on concentration and pressure with a reduced
// degree; NaCl concentration inverts density and temperature; HCl vapor
// pressure uses the engineered physics features with a log target; NaOH
// density keeps a lower degree to avoid unphysical extrapolation.
func planFor(stem string) pipeline.Config {
	cfg := pipeline.Config{
		Inputs:    []string{domain.FeatureConcentration, domain.FeatureTemperature},
		Degree:    3,
		LogTarget: strings.Contains(stem, "viscosity"),
	}
	switch {
	case strings.Contains(stem, "bubblepoint"):
		cfg.Inputs = []string{domain.FeatureConcentration, domain.FeaturePressure}
		cfg.Degree = 2
	case strings.Contains(stem, "concentration"):
		cfg.Inputs = []string{domain.FeatureTemperature, domain.FeatureDensity}
	case strings.Contains(stem, "HCl") && units.IsVaporPressure(stem):
		cfg.Engineered = true
		cfg.LogTarget = true
		cfg.Degree = 1
	case strings.Contains(stem, "NaOH_density"):
		cfg.Degree = 2
	}
	return cfg
}
