package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physprop/internal/domain"
	"physprop/internal/validate"
)

func newValidator() *validate.Validator {
	return validate.New(validate.DefaultLimits())
}

func TestRequest_ValidInputs(t *testing.T) {
	req, err := newValidator().Request(validate.Input{
		Solution:      "NaOH",
		Concentration: "30.0",
		Temperature:   "80.0",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SolutionNaOH, req.Solution)
	assert.Equal(t, 30.0, req.Concentration)
	assert.Equal(t, 80.0, req.Temperature)
	assert.Nil(t, req.Pressure)
}

func TestRequest_WhitespaceAndCaseTolerated(t *testing.T) {
	req, err := newValidator().Request(validate.Input{
		Solution:      " hcl ",
		Concentration: " 12.5 ",
		Temperature:   "  25 ",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SolutionHCl, req.Solution)
	assert.Equal(t, 12.5, req.Concentration)
}

func TestRequest_AllSolutions(t *testing.T) {
	for _, raw := range []string{"", "all", "ALL"} {
		req, err := newValidator().Request(validate.Input{
			Solution: raw, Concentration: "10", Temperature: "20",
		})
		require.NoError(t, err, raw)
		assert.Equal(t, "", req.Solution, raw)
	}
}

func TestRequest_PressureConvertedToBar(t *testing.T) {
	req, err := newValidator().Request(validate.Input{
		Concentration: "30",
		Temperature:   "80",
		Pressure:      "250",
		PressureUnit:  "kPa.A",
	})
	require.NoError(t, err)
	require.NotNil(t, req.Pressure)
	assert.InDelta(t, 2.5, *req.Pressure, 1e-9)
}

func TestRequest_Failures(t *testing.T) {
	cases := []struct {
		name  string
		in    validate.Input
		field string
	}{
		{"empty concentration", validate.Input{Temperature: "80"}, "concentration"},
		{"non-numeric concentration", validate.Input{Concentration: "abc", Temperature: "80"}, "concentration"},
		{"empty temperature", validate.Input{Concentration: "30"}, "temperature"},
		{"non-numeric temperature", validate.Input{Concentration: "30", Temperature: "12x"}, "temperature"},
		{"infinite temperature", validate.Input{Concentration: "30", Temperature: "Inf"}, "temperature"},
		{"concentration above range", validate.Input{Concentration: "130", Temperature: "80"}, "concentration"},
		{"concentration below range", validate.Input{Concentration: "-5", Temperature: "80"}, "concentration"},
		{"temperature below range", validate.Input{Concentration: "30", Temperature: "-273"}, "temperature"},
		{"bad pressure number", validate.Input{Concentration: "30", Temperature: "80", Pressure: "x"}, "pressure"},
		{"bad pressure unit", validate.Input{Concentration: "30", Temperature: "80", Pressure: "1", PressureUnit: "psi"}, "pressure"},
		{"unknown solution", validate.Input{Solution: "KOH", Concentration: "30", Temperature: "80"}, "solution"},
	}

	v := newValidator()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := v.Request(c.in)
			require.Error(t, err)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, c.field, verr.Field)
		})
	}
}

func TestRequest_CustomLimits(t *testing.T) {
	v := validate.New(validate.Limits{
		Concentration: validate.Range{Min: 10, Max: 50},
		Temperature:   validate.Range{Min: 0, Max: 100},
		Pressure:      validate.Range{Min: 0, Max: 10},
	})

	_, err := v.Request(validate.Input{Concentration: "5", Temperature: "20"})
	assert.Error(t, err)

	_, err = v.Request(validate.Input{Concentration: "20", Temperature: "20"})
	assert.NoError(t, err)
}
