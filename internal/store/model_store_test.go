package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"physprop/internal/pipeline"
	"physprop/internal/store"
)

func fitTestPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	var x [][]float64
	var y []float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			x = append(x, []float64{float64(i), float64(j)})
			y = append(y, 2*float64(i)+float64(j)+1)
		}
	}
	p, err := pipeline.Fit(pipeline.Config{Inputs: []string{"X1", "X2"}, Degree: 1}, x, y)
	if err != nil {
		t.Fatalf("fit pipeline: %v", err)
	}
	return p
}

func TestStore_WriteLoad_OK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.DefaultFileName)
	p := fitTestPipeline(t)

	doc := store.Document{
		Version:   store.DocumentVersion,
		TrainedAt: time.Now().UTC(),
		Targets: map[string]store.TargetModel{
			"NaOH_density":   {Unit: "kg/m³", Metrics: store.Metrics{RMSE: 0.1, R2: 0.99, Samples: 64}, Pipeline: p},
			"NaOH_viscosity": {Unit: "cp", Pipeline: p},
			"HCl_density":    {Unit: "kg/m³", Pipeline: p},
		},
	}
	if err := store.Write(path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := store.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"HCl_density", "NaOH_density", "NaOH_viscosity"}
	got := s.Targets()
	if len(got) != len(want) {
		t.Fatalf("targets: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("targets: got %v, want %v", got, want)
		}
	}

	entry, ok := s.Entry("NaOH_density")
	if !ok {
		t.Fatal("missing NaOH_density entry")
	}
	if entry.Unit != "kg/m³" {
		t.Fatalf("unit: got %q", entry.Unit)
	}
	if _, err := entry.Pipeline.Predict([]float64{3, 4}); err != nil {
		t.Fatalf("predict via loaded pipeline: %v", err)
	}

	m, ok := s.Metrics("NaOH_density")
	if !ok || m.Samples != 64 {
		t.Fatalf("metrics: got %+v ok=%v", m, ok)
	}
}

func TestStore_SolutionFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.DefaultFileName)
	p := fitTestPipeline(t)

	doc := store.Document{
		Version: store.DocumentVersion,
		Targets: map[string]store.TargetModel{
			"NaOH_density": {Pipeline: p},
			"NaCl_density": {Pipeline: p},
			"HCl_density":  {Pipeline: p},
		},
	}
	if err := store.Write(path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := store.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := s.Solution("NaOH"); len(got) != 1 || got[0].Target != "NaOH_density" {
		t.Fatalf("NaOH filter: got %+v", got)
	}
	if got := s.Solution("NaCl"); len(got) != 1 || got[0].Target != "NaCl_density" {
		t.Fatalf("NaCl filter: got %+v", got)
	}
	if got := s.Solution(""); len(got) != 3 {
		t.Fatalf("empty filter: got %d entries", len(got))
	}
}

func TestStore_MissingFile_Fails(t *testing.T) {
	_, err := store.Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing model file")
	}
}

func TestStore_CorruptFile_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(path); err == nil {
		t.Fatal("expected error for corrupt model file")
	}
}

func TestStore_WrongVersion_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultFileName)
	doc := store.Document{
		Version: 99,
		Targets: map[string]store.TargetModel{"NaOH_density": {Pipeline: fitTestPipeline(t)}},
	}
	if err := store.Write(path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(path); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}
