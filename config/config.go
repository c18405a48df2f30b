// SPDX-License-Identifier: MIT

// Package config loads experiment settings for the apcover CLI from an
// optional YAML file, APCOVER_* environment variables and built-in defaults,
// in that order of precedence (env wins over file, file over defaults).
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates a loaded configuration with values outside their domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. APCOVER_EXPERIMENT_TRIALS.
const EnvPrefix = "APCOVER"

// Config is the full CLI configuration.
type Config struct {
	Experiment ExperimentConfig `mapstructure:"experiment"`
	Logger     LoggerConfig     `mapstructure:"logger"`
}

// ExperimentConfig drives the two timing experiments.
type ExperimentConfig struct {
	Trials       int     `mapstructure:"trials"`
	CoverageProb float64 `mapstructure:"coverage_prob"`
	Seed         int64   `mapstructure:"seed"`
	VaryM        VaryM   `mapstructure:"vary_m"`
	VaryN        VaryN   `mapstructure:"vary_n"`
}

// VaryM fixes the room counts and sweeps the AP counts.
type VaryM struct {
	Rooms        []int `mapstructure:"rooms"`
	AccessPoints []int `mapstructure:"access_points"`
}

// VaryN sweeps the room counts for one AP count.
type VaryN struct {
	Rooms        []int `mapstructure:"rooms"`
	AccessPoints int   `mapstructure:"access_points"`
}

// LoggerConfig selects the logrus level and formatter.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads path (if non-empty) on top of the defaults and validates the
// result. A missing path is an error; an empty path means defaults + env.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting files or env.
// Each call returns a fresh copy.
func Default() *Config {
	return &Config{
		Experiment: ExperimentConfig{
			Trials:       3,
			CoverageProb: 0.2,
			Seed:         1,
			VaryM: VaryM{
				Rooms:        []int{200},
				AccessPoints: []int{50, 100, 150, 200, 250, 300, 400, 500},
			},
			VaryN: VaryN{
				Rooms:        []int{50, 100, 150, 200, 300, 400, 500, 600},
				AccessPoints: 200,
			},
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// setDefaults registers Default() with v, so that file and env values layer
// on top of it: 200 rooms against 50..500 APs, then 50..600 rooms against
// 200 APs, 3 trials, 20% coverage.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("experiment.trials", d.Experiment.Trials)
	v.SetDefault("experiment.coverage_prob", d.Experiment.CoverageProb)
	v.SetDefault("experiment.seed", d.Experiment.Seed)
	v.SetDefault("experiment.vary_m.rooms", d.Experiment.VaryM.Rooms)
	v.SetDefault("experiment.vary_m.access_points", d.Experiment.VaryM.AccessPoints)
	v.SetDefault("experiment.vary_n.rooms", d.Experiment.VaryN.Rooms)
	v.SetDefault("experiment.vary_n.access_points", d.Experiment.VaryN.AccessPoints)

	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	e := c.Experiment
	if e.Trials < 1 {
		return fmt.Errorf("experiment.trials=%d < 1: %w", e.Trials, ErrInvalidConfig)
	}
	if math.IsNaN(e.CoverageProb) || e.CoverageProb < 0 || e.CoverageProb > 1 {
		return fmt.Errorf("experiment.coverage_prob=%g not in [0,1]: %w", e.CoverageProb, ErrInvalidConfig)
	}
	if err := nonNegative("experiment.vary_m.rooms", e.VaryM.Rooms...); err != nil {
		return err
	}
	if err := nonNegative("experiment.vary_m.access_points", e.VaryM.AccessPoints...); err != nil {
		return err
	}
	if err := nonNegative("experiment.vary_n.rooms", e.VaryN.Rooms...); err != nil {
		return err
	}
	if err := nonNegative("experiment.vary_n.access_points", e.VaryN.AccessPoints); err != nil {
		return err
	}

	switch strings.ToLower(c.Logger.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("logger.level=%q: %w", c.Logger.Level, ErrInvalidConfig)
	}
	switch c.Logger.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logger.format=%q: %w", c.Logger.Format, ErrInvalidConfig)
	}

	return nil
}

func nonNegative(key string, vals ...int) error {
	for _, v := range vals {
		if v < 0 {
			return fmt.Errorf("%s contains %d: %w", key, v, ErrInvalidConfig)
		}
	}
	return nil
}
