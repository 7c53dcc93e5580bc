package domain

import "sort"

// Solution names match the prefix convention of the trained model files,
// e.g. target "NaOH_density" belongs to SolutionNaOH.
const (
	SolutionNaOH = "NaOH"
	SolutionNaCl = "NaCl"
	SolutionHCl  = "HCl"
)

// Solutions lists the recognised solution types in display order.
var Solutions = []string{SolutionNaOH, SolutionNaCl, SolutionHCl}

// Feature column names used across datasets and trained pipelines.
// Every pipeline declares which of these it consumes, in order.
const (
	FeatureConcentration = "X1" // solution concentration, %
	FeatureTemperature   = "X2" // temperature, °C
	FeaturePressure      = "X3" // absolute pressure, bar.A
	FeatureDensity       = "X4" // solution density, kg/m³
)

// PredictionRequest carries one validated set of user inputs.
// Concentration and Temperature are always present and finite;
// Pressure is optional and, when set, already normalised to bar.A.
// An empty Solution means "evaluate every target".
type PredictionRequest struct {
	Solution      string
	Concentration float64
	Temperature   float64
	Pressure      *float64
}

// Feature returns the request value for a named feature column.
// The second return is false when the request cannot supply it
// (no pressure entered, or a column no request field maps to).
func (r PredictionRequest) Feature(name string) (float64, bool) {
	switch name {
	case FeatureConcentration:
		return r.Concentration, true
	case FeatureTemperature:
		return r.Temperature, true
	case FeaturePressure:
		if r.Pressure == nil {
			return 0, false
		}
		return *r.Pressure, true
	default:
		return 0, false
	}
}

// Prediction is one predicted property value.
type Prediction struct {
	Target string  // model key, e.g. "NaOH_density"
	Label  string  // human form, e.g. "Naoh Density"
	Unit   string  // display unit, e.g. "kg/m³"; empty if unknown
	Value  float64 // always finite
}

// SkippedTarget records a target whose pipeline needs an input the
// request did not supply (e.g. bubble point without a pressure).
type SkippedTarget struct {
	Target string
	Reason string
}

// PredictionResult maps target names to predicted values, plus the targets
// that were skipped. Created fresh per request and owned by the caller.
type PredictionResult struct {
	Predictions []Prediction
	Skipped     []SkippedTarget
}

// Value returns the predicted value for target.
func (r PredictionResult) Value(target string) (float64, bool) {
	for _, p := range r.Predictions {
		if p.Target == target {
			return p.Value, true
		}
	}
	return 0, false
}

// Targets returns the predicted target names in sorted order.
func (r PredictionResult) Targets() []string {
	out := make([]string, 0, len(r.Predictions))
	for _, p := range r.Predictions {
		out = append(out, p.Target)
	}
	sort.Strings(out)
	return out
}
