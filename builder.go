package lingo

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/lingo/data"
	"github.com/MeKo-Tech/lingo/internal/config"
	"github.com/MeKo-Tech/lingo/internal/model"
	"github.com/MeKo-Tech/lingo/internal/pipeline"
	"github.com/MeKo-Tech/lingo/internal/scorer"
	"github.com/MeKo-Tech/lingo/lang"
)

// Builder assembles a Detector. The zero builder (NewBuilder) enables every
// supported language, uses the packaged models and loads them lazily on
// first use. Option methods return the builder for chaining; invalid values
// surface as errors from Build, never as panics.
type Builder struct {
	languages               []lang.Language
	minimumRelativeDistance float64
	penaltyFactor           float64
	preload                 bool
	loader                  Loader
	modelsDir               string
}

// NewBuilder returns a builder with the default configuration: all supported
// languages, no minimum relative distance, lazy model loading.
func NewBuilder() *Builder {
	return &Builder{
		languages:     lang.All(),
		penaltyFactor: scorer.DefaultConfig().PenaltyFactor,
	}
}

// NewBuilderFromEnvironment builds a configuration from an optional
// lingo.yaml in the working directory and LINGO_* environment variables.
func NewBuilderFromEnvironment() (*Builder, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	return builderFromConfig(cfg)
}

// NewBuilderFromConfigFile builds a configuration from a specific file.
func NewBuilderFromConfigFile(path string) (*Builder, error) {
	cfg, err := config.NewLoader().LoadFile(path)
	if err != nil {
		return nil, err
	}
	return builderFromConfig(cfg)
}

func builderFromConfig(cfg *config.Config) (*Builder, error) {
	languages, err := cfg.EnabledLanguages()
	if err != nil {
		return nil, err
	}
	if level, ok := logLevels[cfg.LogLevel]; ok {
		// slog.SetLogLoggerLevel needs Go 1.22; with the 1.21 toolchain the
		// default logger's level is set by installing a handler at that level.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
	b := NewBuilder().
		WithLanguages(languages...).
		WithMinimumRelativeDistance(cfg.MinimumRelativeDistance).
		WithBackoffPenaltyFactor(cfg.BackoffPenaltyFactor)
	if cfg.PreloadModels {
		b = b.WithPreloadedModels()
	}
	b.modelsDir = cfg.ModelsDir
	return b, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// WithLanguages restricts detection to the given candidate languages. At
// least two are required.
func (b *Builder) WithLanguages(languages ...lang.Language) *Builder {
	b.languages = languages
	return b
}

// WithAllLanguages enables every supported language.
func (b *Builder) WithAllLanguages() *Builder {
	b.languages = lang.All()
	return b
}

// WithMinimumRelativeDistance sets the confidence gap between the two
// top-ranked candidates below which a verdict is reported as ambiguous.
// Must be in [0, 1); zero (the default) always yields a single winner for
// scorable text.
func (b *Builder) WithMinimumRelativeDistance(distance float64) *Builder {
	b.minimumRelativeDistance = distance
	return b
}

// WithBackoffPenaltyFactor tunes the penalty floor applied to n-grams absent
// from a language model. Must be positive; larger values punish unseen
// n-grams harder.
func (b *Builder) WithBackoffPenaltyFactor(factor float64) *Builder {
	b.penaltyFactor = factor
	return b
}

// WithPreloadedModels loads every enabled language model during Build, so
// missing or corrupt model assets fail construction instead of the first
// detection that needs them.
func (b *Builder) WithPreloadedModels() *Builder {
	b.preload = true
	return b
}

// WithLoader swaps in a custom model payload source, replacing the packaged
// models.
func (b *Builder) WithLoader(loader Loader) *Builder {
	b.loader = loader
	return b
}

// WithModelsDirectory reads models from a directory laid out like the
// packaged data: <dir>/<iso639-1>/<order>.json plus a manifest.yaml.
func (b *Builder) WithModelsDirectory(dir string) *Builder {
	b.modelsDir = dir
	return b
}

// Build validates the configuration and assembles the detector.
func (b *Builder) Build() (*Detector, error) {
	loader, err := b.resolveLoader()
	if err != nil {
		return nil, err
	}

	scorerCfg := scorer.DefaultConfig()
	scorerCfg.PenaltyFactor = b.penaltyFactor

	store := model.NewStore(loader)
	p, err := pipeline.New(pipeline.Config{
		Languages:               b.languages,
		MinimumRelativeDistance: b.minimumRelativeDistance,
		Scorer:                  scorerCfg,
	}, store)
	if err != nil {
		return nil, err
	}

	if b.preload {
		if err := store.Preload(b.languages); err != nil {
			return nil, fmt.Errorf("lingo: preload models: %w", err)
		}
	}
	return &Detector{pipeline: p, store: store}, nil
}

func (b *Builder) resolveLoader() (model.Loader, error) {
	switch {
	case b.loader != nil:
		return b.loader, nil
	case b.modelsDir != "":
		return model.NewFSLoader(b.modelsDir)
	default:
		return data.Embedded()
	}
}
