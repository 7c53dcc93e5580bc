package form_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"physprop/internal/domain"
	"physprop/internal/form"
	"physprop/internal/validate"
)

// fixedPredictor returns a canned result or error.
type fixedPredictor struct {
	res domain.PredictionResult
	err error
}

func (p fixedPredictor) Predict(domain.PredictionRequest) (domain.PredictionResult, error) {
	return p.res, p.err
}

func newForm(pred domain.Predictor, input string, vaporUnit string) (*form.Form, *bytes.Buffer) {
	var out bytes.Buffer
	f := form.New(
		validate.New(validate.DefaultLimits()),
		pred,
		zap.NewNop(),
		form.Options{In: strings.NewReader(input), Out: &out, VaporUnit: vaporUnit},
	)
	return f, &out
}

func TestRun_RendersPredictions(t *testing.T) {
	pred := fixedPredictor{res: domain.PredictionResult{Predictions: []domain.Prediction{
		{Target: "NaOH_density", Label: "Naoh Density", Unit: "kg/m³", Value: 1297.1234},
		{Target: "NaOH_viscosity", Label: "Naoh Viscosity", Unit: "cp", Value: 3.5},
	}}}

	// One submission (all targets), then quit.
	f, out := newForm(pred, "all\n30\n80\n\nq\n", "")
	require.NoError(t, f.Run())

	s := out.String()
	assert.Contains(t, s, "Naoh Density")
	assert.Contains(t, s, "1297.1234 kg/m³")
	assert.Contains(t, s, "Naoh Viscosity")
	assert.Contains(t, s, "3.5000 cp")
}

func TestRun_ValidationErrorKeepsLooping(t *testing.T) {
	pred := fixedPredictor{res: domain.PredictionResult{Predictions: []domain.Prediction{
		{Target: "NaOH_density", Label: "Naoh Density", Unit: "kg/m³", Value: 1100},
	}}}

	// First submission has a bad concentration; the second succeeds.
	input := "NaOH\nabc\n80\n\nNaOH\n30\n80\n\nq\n"
	f, out := newForm(pred, input, "")
	require.NoError(t, f.Run())

	s := out.String()
	assert.Contains(t, s, "concentration must be a number")
	assert.Contains(t, s, "Naoh Density")
}

func TestRun_ModelNotLoadedShownNotFatal(t *testing.T) {
	pred := fixedPredictor{err: domain.ErrModelNotLoaded}

	input := "NaOH\n30\n80\n\nNaOH\n30\n80\n\nq\n"
	f, out := newForm(pred, input, "")
	require.NoError(t, f.Run())

	assert.Equal(t, 2, strings.Count(out.String(), "model store not loaded"))
}

func TestRun_VaporPressureConversion(t *testing.T) {
	pred := fixedPredictor{res: domain.PredictionResult{Predictions: []domain.Prediction{
		{Target: "HCl_vapor_pressure", Label: "Hcl Vapor Pressure", Unit: "mmHg", Value: 760},
	}}}

	f, out := newForm(pred, "HCl\n20\n25\n\nq\n", "atm")
	require.NoError(t, f.Run())

	s := out.String()
	assert.Contains(t, s, "1.0000 atm")
	// Reference units shown alongside the selected one.
	assert.Contains(t, s, "kPa")
	assert.Contains(t, s, "bar")
}

func TestRun_SkippedTargetsListed(t *testing.T) {
	pred := fixedPredictor{res: domain.PredictionResult{
		Skipped: []domain.SkippedTarget{{Target: "NaOH_bubblepoint", Reason: "needs a pressure input"}},
	}}

	f, out := newForm(pred, "NaOH\n30\n80\n\nq\n", "")
	require.NoError(t, f.Run())

	assert.Contains(t, out.String(), "skipped NaOH_bubblepoint (needs a pressure input)")
}

func TestRun_PredictionErrorShownAndLoopContinues(t *testing.T) {
	pred := fixedPredictor{err: &domain.PredictionError{Target: "NaOH_density", Err: errors.New("boom")}}

	f, out := newForm(pred, "NaOH\n30\n80\n\nq\n", "")
	require.NoError(t, f.Run())

	assert.Contains(t, out.String(), "NaOH_density")
	assert.Contains(t, out.String(), "boom")
}
