package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"physprop/internal/domain"
	"physprop/internal/pipeline"
)

const (
	// DocumentVersion is the current model-file layout.
	DocumentVersion = 1

	// DefaultFileName is the conventional model file name under the
	// models directory.
	DefaultFileName = "pipelines_by_target.json"
)

// Metrics records hold-out quality for one trained target.
type Metrics struct {
	RMSE    float64 `json:"rmse"`
	R2      float64 `json:"r2"`
	Samples int     `json:"samples"`
}

// TargetModel is one target's serialised pipeline plus display metadata.
type TargetModel struct {
	Unit     string             `json:"unit,omitempty"`
	Metrics  Metrics            `json:"metrics"`
	Pipeline *pipeline.Pipeline `json:"pipeline"`
}

// Document is the on-disk model file.
type Document struct {
	Version   int                    `json:"version"`
	TrainedAt time.Time              `json:"trained_at"`
	Targets   map[string]TargetModel `json:"targets"`
}

// Store is the loaded, immutable pipeline store.
type Store struct {
	doc     Document
	targets []string // sorted
}

var _ domain.PipelineStore = (*Store)(nil)

// Load reads and validates the model file at path. A missing file is an
// error here; callers decide how to surface it (the prediction service
// turns it into ErrModelNotLoaded on every request).
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("model file %s: unsupported version %d", path, doc.Version)
	}
	if len(doc.Targets) == 0 {
		return nil, fmt.Errorf("model file %s holds no targets", path)
	}

	targets := make([]string, 0, len(doc.Targets))
	for name, tm := range doc.Targets {
		if tm.Pipeline == nil {
			return nil, fmt.Errorf("target %q has no pipeline", name)
		}
		if err := tm.Pipeline.Validate(); err != nil {
			return nil, fmt.Errorf("target %q: %w", name, err)
		}
		targets = append(targets, name)
	}
	sort.Strings(targets)

	return &Store{doc: doc, targets: targets}, nil
}

// Write persists the document to path, creating the parent directory.
func Write(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return writeJSON(path, doc, 0o644)
}

// Targets returns every target name, sorted.
func (s *Store) Targets() []string {
	return append([]string(nil), s.targets...)
}

// Entry returns the pipeline and metadata for one target.
func (s *Store) Entry(target string) (domain.ModelEntry, bool) {
	tm, ok := s.doc.Targets[target]
	if !ok {
		return domain.ModelEntry{}, false
	}
	return domain.ModelEntry{Target: target, Unit: tm.Unit, Pipeline: tm.Pipeline}, true
}

// Solution returns entries whose target carries the solution prefix,
// sorted by target. An empty solution selects everything.
func (s *Store) Solution(solution string) []domain.ModelEntry {
	out := make([]domain.ModelEntry, 0, len(s.targets))
	for _, name := range s.targets {
		if solution != "" && !strings.HasPrefix(name, solution) {
			continue
		}
		entry, _ := s.Entry(name)
		out = append(out, entry)
	}
	return out
}

// Metrics returns the recorded hold-out metrics for one target.
func (s *Store) Metrics(target string) (Metrics, bool) {
	tm, ok := s.doc.Targets[target]
	if !ok {
		return Metrics{}, false
	}
	return tm.Metrics, true
}

// TrainedAt reports when the model file was produced.
func (s *Store) TrainedAt() time.Time { return s.doc.TrainedAt }
