package predictor

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"physprop/internal/domain"
)

// Service runs predictions against a loaded pipeline store.
type Service struct {
	store   domain.PipelineStore
	loadErr error
	logger  *zap.Logger
}

var _ domain.Predictor = (*Service)(nil)

// New returns a prediction service. store may be nil when loading failed;
// loadErr then records the cause and every Predict call surfaces it under
// ErrModelNotLoaded.
func New(store domain.PipelineStore, loadErr error, logger *zap.Logger) *Service {
	return &Service{store: store, loadErr: loadErr, logger: logger}
}

// Predict evaluates every pipeline matching the request's solution on the
// request's feature vector. One deterministic pass, no retries. Pipelines
// that need an input the request lacks are skipped, not failed.
func (s *Service) Predict(req domain.PredictionRequest) (domain.PredictionResult, error) {
	var res domain.PredictionResult

	if s.store == nil {
		if s.loadErr != nil {
			return res, fmt.Errorf("%w: %v", domain.ErrModelNotLoaded, s.loadErr)
		}
		return res, domain.ErrModelNotLoaded
	}

	entries := s.store.Solution(req.Solution)
	if len(entries) == 0 {
		return res, fmt.Errorf("%w %q", domain.ErrNoTargets, req.Solution)
	}

	for _, entry := range entries {
		vec, missing := featureVector(entry.Pipeline.Inputs(), req)
		if missing != "" {
			res.Skipped = append(res.Skipped, domain.SkippedTarget{
				Target: entry.Target,
				Reason: missing,
			})
			continue
		}

		v, err := entry.Pipeline.Predict(vec)
		if err != nil {
			return domain.PredictionResult{}, &domain.PredictionError{Target: entry.Target, Err: err}
		}
		res.Predictions = append(res.Predictions, domain.Prediction{
			Target: entry.Target,
			Label:  Label(entry.Target),
			Unit:   entry.Unit,
			Value:  v,
		})
		s.logger.Debug("predicted",
			zap.String("target", entry.Target),
			zap.Float64("value", v),
		)
	}
	return res, nil
}

// featureVector maps the pipeline's input columns onto request values.
// A non-empty second return names the reason an input is unavailable.
func featureVector(inputs []string, req domain.PredictionRequest) ([]float64, string) {
	vec := make([]float64, len(inputs))
	for i, name := range inputs {
		v, ok := req.Feature(name)
		if !ok {
			return nil, skipReason(name)
		}
		vec[i] = v
	}
	return vec, ""
}

func skipReason(input string) string {
	switch input {
	case domain.FeaturePressure:
		return "needs a pressure input"
	case domain.FeatureDensity:
		return "needs a density input"
	default:
		return fmt.Sprintf("needs an unsupported input %q", input)
	}
}

// Label turns a target name into its display form: underscores to spaces,
// each word capitalised ("NaOH_vapor_pressure" → "Naoh Vapor Pressure",
// matching the historical rendering).
func Label(target string) string {
	words := strings.Split(strings.ReplaceAll(target, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
