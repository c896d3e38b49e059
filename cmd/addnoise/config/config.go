// Package config loads addnoise settings from flags, environment variables
// (ADDNOISE_*) and an optional YAML file.
package config

import (
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
	"github.com/YuminosukeSato/noisegen/pkg/log"
)

// Log output formats.
const (
	FormatJSON    = "json"    // log/slog JSON lines
	FormatZerolog = "zerolog" // zerolog JSON lines
	FormatConsole = "console" // zerolog human-readable output
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ADDNOISE"

// Config holds the settings of one addnoise run.
type Config struct {
	Ratio     float64 `mapstructure:"amplitude"`
	Input     string  `mapstructure:"input"`
	Output    string  `mapstructure:"output"`
	Seed      uint64  `mapstructure:"seed"`
	LogLevel  string  `mapstructure:"log-level"`
	LogFormat string  `mapstructure:"log-format"`
	Progress  bool    `mapstructure:"progress"`
	Report    bool    `mapstructure:"report"`
	PlotDir   string  `mapstructure:"plot-dir"`
	Bins      int     `mapstructure:"bins"`

	// Seeded is true when a seed was given explicitly.
	Seeded bool `mapstructure:"-"`

	ratioSet bool
}

// keys lists every setting so that environment-only values are seen by Unmarshal.
var keys = []string{
	"amplitude", "input", "output", "seed", "log-level",
	"log-format", "progress", "report", "plot-dir", "bins",
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", FormatJSON)
	v.SetDefault("bins", 40)
}

// Load reads configuration from v, merging cfgFile when it is not empty.
// Flags must already be bound to v.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed to bind environment for %s", key)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}
	cfg.Seeded = v.IsSet("seed")
	cfg.ratioSet = v.IsSet("amplitude")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings. A negative ratio is accepted here; the noise
// pipeline rejects it as an invalid variance.
func (c *Config) Validate() error {
	if !c.ratioSet {
		return errors.NewValidationError("amplitude", "noise amplitude ratio is required", nil)
	}
	if math.IsNaN(c.Ratio) || math.IsInf(c.Ratio, 0) {
		return errors.NewValidationError("amplitude", "must be a finite number", c.Ratio)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatJSON, FormatZerolog, FormatConsole:
	default:
		return errors.NewValidationError("log-format", "must be one of json, zerolog, console", c.LogFormat)
	}
	if c.Bins < 1 {
		return errors.NewValidationError("bins", "must be at least 1", c.Bins)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}
