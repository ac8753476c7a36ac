package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/lingo/lang"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestEnabledLanguages(t *testing.T) {
	cfg := DefaultConfig()

	// Empty list means every supported language.
	languages, err := cfg.EnabledLanguages()
	require.NoError(t, err)
	assert.Len(t, languages, 21)

	cfg.Languages = []string{"en", "de", "fr"}
	languages, err = cfg.EnabledLanguages()
	require.NoError(t, err)
	assert.Equal(t, []lang.Language{lang.English, lang.German, lang.French}, languages)
}

func TestEnabledLanguagesErrors(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
	}{
		{"unknown code", []string{"en", "xx"}},
		{"duplicate code", []string{"en", "en"}},
		{"single language", []string{"en"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Languages = tt.codes
			_, err := cfg.EnabledLanguages()
			assert.Error(t, err)
		})
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"distance too high", func(c *Config) { c.MinimumRelativeDistance = 1 }},
		{"distance negative", func(c *Config) { c.MinimumRelativeDistance = -0.5 }},
		{"penalty factor zero", func(c *Config) { c.BackoffPenaltyFactor = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoaderDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoaderEnvironmentOverride(t *testing.T) {
	t.Setenv("LINGO_MINIMUM_RELATIVE_DISTANCE", "0.25")
	t.Setenv("LINGO_PRELOAD_MODELS", "true")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, cfg.MinimumRelativeDistance, 0)
	assert.True(t, cfg.PreloadModels)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lingo.yaml")
	content := "languages: [en, de]\nminimum_relative_distance: 0.1\npreload_models: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "de"}, cfg.Languages)
	assert.InDelta(t, 0.1, cfg.MinimumRelativeDistance, 0)
	assert.True(t, cfg.PreloadModels)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 2.0, cfg.BackoffPenaltyFactor, 0)
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lingo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: [en]\n"), 0o600))

	_, err := NewLoader().LoadFile(path)
	assert.Error(t, err)
}
