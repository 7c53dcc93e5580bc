package domain

// Pipeline is a trained preprocessing + estimator pair. Inputs names the
// raw feature columns it consumes, in the order Predict expects them.
// Predict is deterministic and safe for repeated calls.
type Pipeline interface {
	Inputs() []string
	Predict(x []float64) (float64, error)
}

// ModelEntry is one target's trained pipeline plus display metadata.
type ModelEntry struct {
	Target   string
	Unit     string
	Pipeline Pipeline
}

// PipelineStore is the read-only view of the persisted model file.
// Implementations are immutable after load.
type PipelineStore interface {
	// Targets returns every target name, sorted.
	Targets() []string
	// Entry returns the pipeline for one target.
	Entry(target string) (ModelEntry, bool)
	// Solution returns the entries whose target carries the given solution
	// prefix, sorted by target. An empty solution returns every entry.
	Solution(solution string) []ModelEntry
}

// Predictor runs one validated request against every matching pipeline.
type Predictor interface {
	Predict(req PredictionRequest) (PredictionResult, error)
}
