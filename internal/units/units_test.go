package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physprop/internal/units"
)

func TestPressureToBar(t *testing.T) {
	cases := []struct {
		unit string
		in   float64
		want float64
	}{
		{"bar.A", 2.5, 2.5},
		{"", 2.5, 2.5},
		{"kPa.A", 250, 2.5},
		{"MPa.A", 0.25, 2.5},
		{"kg/cm2.A", 1, 0.980665},
	}
	for _, c := range cases {
		got, err := units.PressureToBar(c.in, c.unit)
		require.NoError(t, err, c.unit)
		assert.InDelta(t, c.want, got, 1e-9, c.unit)
	}

	_, err := units.PressureToBar(1, "psi")
	assert.Error(t, err)
}

func TestVaporFromMMHg(t *testing.T) {
	cases := []struct {
		unit string
		want float64
	}{
		{"mmHg", 760},
		{"torr", 760},
		{"kPa", 760 * 0.133322},
		{"bar", 760 * 0.00133322},
		{"atm", 760 * 0.00131579},
		{"psi", 760 * 0.0193368},
	}
	for _, c := range cases {
		got, err := units.VaporFromMMHg(760, c.unit)
		require.NoError(t, err, c.unit)
		assert.InDelta(t, c.want, got, 1e-9, c.unit)
	}

	_, err := units.VaporFromMMHg(1, "pascal")
	assert.Error(t, err)
}

func TestForTarget(t *testing.T) {
	assert.Equal(t, "kg/m³", units.ForTarget("NaOH_density"))
	assert.Equal(t, "cp", units.ForTarget("NaCl_viscosity"))
	assert.Equal(t, "kcal/kgNaOH", units.ForTarget("NaOH_enthalpy"))
	assert.Equal(t, "°C", units.ForTarget("NaOH_bubblepoint"))
	assert.Equal(t, "mmHg", units.ForTarget("HCl_vapor_pressure"))
	assert.Equal(t, "", units.ForTarget("NaCl_concentration"))
	assert.True(t, units.IsVaporPressure("HCl_vapor_pressure"))
	assert.False(t, units.IsVaporPressure("NaOH_density"))
}
