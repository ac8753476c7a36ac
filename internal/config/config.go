// Package config represents the detector configuration and loads it from
// configuration files and environment variables. Violations are reported at
// setup time; a running detector never sees an invalid configuration.
package config

import (
	"fmt"

	"github.com/MeKo-Tech/lingo/lang"
)

// Config is the complete detector configuration.
type Config struct {
	// Languages enables candidate languages by ISO 639-1 code. Empty means
	// all supported languages.
	Languages []string `mapstructure:"languages" yaml:"languages" json:"languages"`

	// MinimumRelativeDistance is the confidence gap below which a verdict
	// is reported as ambiguous. Must be in [0, 1).
	MinimumRelativeDistance float64 `mapstructure:"minimum_relative_distance" yaml:"minimum_relative_distance" json:"minimum_relative_distance"`

	// PreloadModels loads every enabled language model at build time
	// instead of on first use.
	PreloadModels bool `mapstructure:"preload_models" yaml:"preload_models" json:"preload_models"`

	// ModelsDir points at an external model directory. Empty means the
	// packaged models.
	ModelsDir string `mapstructure:"models_dir" yaml:"models_dir" json:"models_dir"`

	// BackoffPenaltyFactor tunes the unseen-ngram penalty floor.
	BackoffPenaltyFactor float64 `mapstructure:"backoff_penalty_factor" yaml:"backoff_penalty_factor" json:"backoff_penalty_factor"`

	// LogLevel sets the slog level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		Languages:               nil,
		MinimumRelativeDistance: 0,
		PreloadModels:           false,
		ModelsDir:               "",
		BackoffPenaltyFactor:    2.0,
		LogLevel:                "info",
	}
}

// Validate checks the configuration for setup-time errors.
func (c *Config) Validate() error {
	if _, err := c.EnabledLanguages(); err != nil {
		return err
	}
	if c.MinimumRelativeDistance < 0 || c.MinimumRelativeDistance >= 1 {
		return fmt.Errorf("config: minimum_relative_distance must be in [0, 1), got %g",
			c.MinimumRelativeDistance)
	}
	if c.BackoffPenaltyFactor <= 0 {
		return fmt.Errorf("config: backoff_penalty_factor must be positive, got %g",
			c.BackoffPenaltyFactor)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// EnabledLanguages resolves the configured ISO codes. An empty list means
// every supported language; fewer than two resolved languages is a
// configuration error because detection needs at least two candidates.
func (c *Config) EnabledLanguages() ([]lang.Language, error) {
	if len(c.Languages) == 0 {
		return lang.All(), nil
	}
	out := make([]lang.Language, 0, len(c.Languages))
	seen := make(map[lang.Language]struct{}, len(c.Languages))
	for _, code := range c.Languages {
		l, ok := lang.FromIsoCode639_1(code)
		if !ok {
			return nil, fmt.Errorf("config: unknown language code %q", code)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("config: duplicate language code %q", code)
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	if len(out) < 2 {
		return nil, fmt.Errorf("config: at least two languages required, got %d", len(out))
	}
	return out, nil
}
