// Package units holds the unit tables and conversions the predictor and its
// presentation share: pressure inputs normalised to bar.A, vapor-pressure
// outputs converted from the mmHg the models predict in, and the display
// unit attached to each target family.
package units

import (
	"fmt"
	"strings"
)

// PressureUnits are the accepted absolute-pressure input units.
var PressureUnits = []string{"bar.A", "kPa.A", "MPa.A", "kg/cm2.A"}

// VaporPressureUnits are the selectable vapor-pressure display units.
// Models predict vapor pressure in mmHg.
var VaporPressureUnits = []string{"mmHg", "kPa", "bar", "atm", "psi", "torr"}

// PressureToBar converts an absolute pressure reading to bar.A.
func PressureToBar(v float64, unit string) (float64, error) {
	switch unit {
	case "", "bar.A":
		return v, nil
	case "kPa.A":
		return v / 100, nil
	case "MPa.A":
		return v * 10, nil
	case "kg/cm2.A":
		return v * 0.980665, nil
	default:
		return 0, fmt.Errorf("unknown pressure unit %q (accepted: %s)",
			unit, strings.Join(PressureUnits, ", "))
	}
}

// VaporFromMMHg converts a vapor pressure predicted in mmHg to a display unit.
func VaporFromMMHg(v float64, unit string) (float64, error) {
	switch unit {
	case "", "mmHg", "torr":
		return v, nil
	case "kPa":
		return v * 0.133322, nil
	case "bar":
		return v * 0.00133322, nil
	case "atm":
		return v * 0.00131579, nil
	case "psi":
		return v * 0.0193368, nil
	default:
		return 0, fmt.Errorf("unknown vapor pressure unit %q (accepted: %s)",
			unit, strings.Join(VaporPressureUnits, ", "))
	}
}

// ForTarget returns the display unit for a target name, keyed on the naming
// convention of the trained datasets. Unknown families get no unit.
func ForTarget(target string) string {
	switch {
	case IsVaporPressure(target):
		return "mmHg"
	case strings.Contains(target, "viscosity"):
		return "cp"
	case strings.Contains(target, "enthalpy"):
		return "kcal/kgNaOH"
	case strings.Contains(target, "bubblepoint"):
		return "°C"
	case strings.Contains(target, "density"):
		return "kg/m³"
	default:
		return ""
	}
}

// IsVaporPressure reports whether target is a vapor-pressure model, whose
// raw prediction is in mmHg and convertible for display.
func IsVaporPressure(target string) bool {
	return strings.Contains(target, "vapor_pressure")
}
