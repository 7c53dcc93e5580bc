package pipeline

import "math"

// kelvinOffset converts °C to K for the physics-derived terms.
const kelvinOffset = 273.15

// engineeredNames is the expanded layout used by vapor-pressure models
// trained on physics-derived terms. Order is part of the model schema.
var engineeredNames = []string{
	"X1", "X2",
	"inv_T", "log_T", "sqrt_T",
	"log_X1", "sqrt_X1", "X1_squared",
	"X1_inv_T", "X1_log_T", "X1_sqrt_T",
	"X1_X2", "X1_X2_inv_T",
	"exp_inv_T", "X1_exp_inv_T",
}

// engineerFeatures expands (concentration, temperature °C) into the
// engineered vector, matching engineeredNames positionally.
func engineerFeatures(x1, x2 float64) []float64 {
	tk := x2 + kelvinOffset
	invT := 1 / tk
	logT := math.Log(tk)
	sqrtT := math.Sqrt(tk)
	return []float64{
		x1, x2,
		invT, logT, sqrtT,
		math.Log(x1 + 1), math.Sqrt(x1), x1 * x1,
		x1 * invT, x1 * logT, x1 * sqrtT,
		x1 * x2, x1 * x2 * invT,
		math.Exp(invT), x1 * math.Exp(invT),
	}
}
