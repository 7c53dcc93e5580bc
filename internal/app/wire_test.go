package app_test

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"physprop/internal/app"
	"physprop/internal/domain"
	"physprop/internal/pipeline"
	"physprop/internal/store"
)

func testConfig(modelPath string) app.Config {
	return app.Config{
		ModelPath: modelPath,
		DataDir:   "data",
		LogLevel:  "info",
		Limits: app.LimitsConfig{
			ConcentrationMin: 0, ConcentrationMax: 100,
			TemperatureMin: -50, TemperatureMax: 400,
			PressureMin: 0, PressureMax: 1000,
		},
	}
}

func TestNewWire_MissingModelFile(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "absent.json"))
	w := app.NewWire(cfg, zap.NewNop())

	if w.Store != nil {
		t.Fatal("expected nil store for missing model file")
	}
	_, err := w.Predictor.Predict(domain.PredictionRequest{Concentration: 30, Temperature: 80})
	if !errors.Is(err, domain.ErrModelNotLoaded) {
		t.Fatalf("expected ErrModelNotLoaded, got %v", err)
	}
}

func TestNewWire_LoadedModelPredicts(t *testing.T) {
	var x [][]float64
	var y []float64
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			x = append(x, []float64{float64(i), float64(j)})
			y = append(y, 1000+float64(i)-float64(j))
		}
	}
	p, err := pipeline.Fit(pipeline.Config{Inputs: []string{"X1", "X2"}, Degree: 1}, x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	path := filepath.Join(t.TempDir(), store.DefaultFileName)
	doc := store.Document{
		Version: store.DocumentVersion,
		Targets: map[string]store.TargetModel{"NaOH_density": {Unit: "kg/m³", Pipeline: p}},
	}
	if err := store.Write(path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	w := app.NewWire(testConfig(path), zap.NewNop())
	if w.Store == nil {
		t.Fatal("expected loaded store")
	}

	res, err := w.Predictor.Predict(domain.PredictionRequest{Concentration: 30, Temperature: 80})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if _, ok := res.Value("NaOH_density"); !ok {
		t.Fatal("missing NaOH_density prediction")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := testConfig("m.json")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := cfg
	bad.Limits.ConcentrationMin = 200
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for empty concentration range")
	}

	bad = cfg
	bad.ModelPath = ""
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for missing model path")
	}
}
