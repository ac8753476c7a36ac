package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "lingo"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "LINGO"
)

// Loader loads configuration from files and environment variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a configuration loader with its own viper instance.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads configuration from an optional lingo.yaml in the working
// directory, applies LINGO_* environment variables on top of the defaults
// and validates the result.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(".")

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and validates a specific configuration file.
func (l *Loader) LoadFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)

	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) setDefaults() {
	defaults := DefaultConfig()
	l.v.SetDefault("languages", defaults.Languages)
	l.v.SetDefault("minimum_relative_distance", defaults.MinimumRelativeDistance)
	l.v.SetDefault("preload_models", defaults.PreloadModels)
	l.v.SetDefault("models_dir", defaults.ModelsDir)
	l.v.SetDefault("backoff_penalty_factor", defaults.BackoffPenaltyFactor)
	l.v.SetDefault("log_level", defaults.LogLevel)
}
