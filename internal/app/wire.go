package app

import (
	"go.uber.org/zap"

	"physprop/internal/services/predictor"
	"physprop/internal/services/trainer"
	"physprop/internal/store"
	"physprop/internal/validate"
)

// Wire bundles the store, validator and services for the CLI.
type Wire struct {
	Config    Config
	Logger    *zap.Logger
	Store     *store.Store // nil when loading failed; Predictor still works
	Validator *validate.Validator
	Predictor *predictor.Service
	Trainer   *trainer.Service
}

// NewWire constructs the dependency graph from cfg. A missing or corrupt
// model file is not fatal here: the predictor is wired to report
// ErrModelNotLoaded per request, and the train command can still rebuild
// the file.
func NewWire(cfg Config, logger *zap.Logger) *Wire {
	st, loadErr := store.Load(cfg.ModelPath)
	if loadErr != nil {
		logger.Warn("pipeline store unavailable",
			zap.String("path", cfg.ModelPath),
			zap.Error(loadErr),
		)
	}

	validator := validate.New(validate.Limits{
		Concentration: validate.Range{Min: cfg.Limits.ConcentrationMin, Max: cfg.Limits.ConcentrationMax},
		Temperature:   validate.Range{Min: cfg.Limits.TemperatureMin, Max: cfg.Limits.TemperatureMax},
		Pressure:      validate.Range{Min: cfg.Limits.PressureMin, Max: cfg.Limits.PressureMax},
	})

	var ps *predictor.Service
	if loadErr != nil {
		ps = predictor.New(nil, loadErr, logger)
	} else {
		ps = predictor.New(st, nil, logger)
	}

	return &Wire{
		Config:    cfg,
		Logger:    logger,
		Store:     st,
		Validator: validator,
		Predictor: ps,
		Trainer:   trainer.New(logger),
	}
}
