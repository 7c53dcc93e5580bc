package app

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"physprop/internal/store"
)

// Config holds the runtime options for building the app. Values come from
// PHYSPROP_* environment variables; flags may override fields afterwards.
type Config struct {
	// ModelPath locates the persisted pipeline store.
	ModelPath string `envconfig:"MODEL_PATH"`
	// DataDir holds the training CSVs for the train command.
	DataDir string `envconfig:"DATA_DIR" default:"data"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Limits LimitsConfig `envconfig:"LIMITS"`
}

// LimitsConfig bounds the accepted inputs. Pressure applies after
// conversion to bar.A.
type LimitsConfig struct {
	ConcentrationMin float64 `envconfig:"CONCENTRATION_MIN" default:"0"`
	ConcentrationMax float64 `envconfig:"CONCENTRATION_MAX" default:"100"`
	TemperatureMin   float64 `envconfig:"TEMPERATURE_MIN" default:"-50"`
	TemperatureMax   float64 `envconfig:"TEMPERATURE_MAX" default:"400"`
	PressureMin      float64 `envconfig:"PRESSURE_MIN" default:"0"`
	PressureMax      float64 `envconfig:"PRESSURE_MAX" default:"1000"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("PHYSPROP", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment config: %w", err)
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = filepath.Join("models", store.DefaultFileName)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model path is required")
	}
	l := c.Limits
	if l.ConcentrationMin >= l.ConcentrationMax {
		return fmt.Errorf("concentration range is empty: %g..%g", l.ConcentrationMin, l.ConcentrationMax)
	}
	if l.TemperatureMin >= l.TemperatureMax {
		return fmt.Errorf("temperature range is empty: %g..%g", l.TemperatureMin, l.TemperatureMax)
	}
	if l.PressureMin >= l.PressureMax {
		return fmt.Errorf("pressure range is empty: %g..%g", l.PressureMin, l.PressureMax)
	}
	return nil
}
