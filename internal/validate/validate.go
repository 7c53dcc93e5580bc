// Package validate turns raw form input into a typed PredictionRequest,
// rejecting empty, non-numeric, non-finite and out-of-range values before
// any pipeline runs.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"physprop/internal/domain"
	"physprop/internal/units"
)

// Range bounds one numeric input, inclusive.
type Range struct {
	Min, Max float64
}

func (r Range) contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Limits configures the plausible range for each input.
type Limits struct {
	Concentration Range
	Temperature   Range
	Pressure      Range // applied after conversion to bar.A
}

// DefaultLimits bound inputs to physically plausible values for aqueous
// solution work.
func DefaultLimits() Limits {
	return Limits{
		Concentration: Range{Min: 0, Max: 100},
		Temperature:   Range{Min: -50, Max: 400},
		Pressure:      Range{Min: 0, Max: 1000},
	}
}

// Validator parses and range-checks raw user input. It has no side effects
// and is safe for reuse across submissions.
type Validator struct {
	limits Limits
}

func New(limits Limits) *Validator { return &Validator{limits: limits} }

// Input is the raw text pulled from the form fields. Pressure is optional;
// PressureUnit defaults to bar.A.
type Input struct {
	Solution      string
	Concentration string
	Temperature   string
	Pressure      string
	PressureUnit  string
}

// Request validates in and produces a typed PredictionRequest. All failures
// are *domain.ValidationError values naming the offending field.
func (v *Validator) Request(in Input) (domain.PredictionRequest, error) {
	var req domain.PredictionRequest

	sol, err := parseSolution(in.Solution)
	if err != nil {
		return req, err
	}
	req.Solution = sol

	req.Concentration, err = parseField("concentration", in.Concentration, v.limits.Concentration)
	if err != nil {
		return req, err
	}
	req.Temperature, err = parseField("temperature", in.Temperature, v.limits.Temperature)
	if err != nil {
		return req, err
	}

	if strings.TrimSpace(in.Pressure) != "" {
		p, err := parseField("pressure", in.Pressure, Range{Min: math.Inf(-1), Max: math.Inf(1)})
		if err != nil {
			return req, err
		}
		bar, err := units.PressureToBar(p, strings.TrimSpace(in.PressureUnit))
		if err != nil {
			return req, &domain.ValidationError{Field: "pressure", Reason: err.Error()}
		}
		if !v.limits.Pressure.contains(bar) {
			return req, &domain.ValidationError{
				Field:  "pressure",
				Reason: rangeReason(bar, v.limits.Pressure) + " bar.A",
			}
		}
		req.Pressure = &bar
	}

	return req, nil
}

func parseSolution(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	for _, known := range domain.Solutions {
		if strings.EqualFold(s, known) {
			return known, nil
		}
	}
	return "", &domain.ValidationError{
		Field:  "solution",
		Reason: fmt.Sprintf("must be one of %s or all", strings.Join(domain.Solutions, ", ")),
	}
}

func parseField(field, raw string, r Range) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &domain.ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Reason: "must be a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &domain.ValidationError{Field: field, Reason: "must be finite"}
	}
	if !r.contains(v) {
		return 0, &domain.ValidationError{Field: field, Reason: rangeReason(v, r)}
	}
	return v, nil
}

func rangeReason(v float64, r Range) string {
	return fmt.Sprintf("%g is outside the accepted range %g to %g", v, r.Min, r.Max)
}
