// Package pipeline runs the full detection flow: normalize the input, filter
// candidate languages by script, score the survivors against the n-gram
// models and turn the ranked scores into a verdict. A Pipeline carries no
// per-call state; everything mutable lives on the stack of a single Detect
// call, so one instance serves any number of goroutines.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/lingo/internal/model"
	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/internal/scorer"
	"github.com/MeKo-Tech/lingo/internal/script"
	"github.com/MeKo-Tech/lingo/lang"
)

// Config holds the pipeline configuration fixed at construction time.
type Config struct {
	// Languages are the enabled candidate languages. At least two are
	// required for detection to be meaningful.
	Languages []lang.Language

	// MinimumRelativeDistance is the minimum confidence gap between the
	// top-ranked and second-ranked candidate below which the verdict is
	// reported as ambiguous instead of a single winner. Must be in [0, 1).
	MinimumRelativeDistance float64

	// Scorer holds the statistical scoring parameters.
	Scorer scorer.Config
}

// DefaultConfig returns a pipeline config with all languages enabled and no
// minimum relative distance.
func DefaultConfig() Config {
	return Config{
		Languages:               lang.All(),
		MinimumRelativeDistance: 0,
		Scorer:                  scorer.DefaultConfig(),
	}
}

// Validate checks the configuration. Violations are configuration errors
// reported at setup, never during detection.
func (c Config) Validate() error {
	if len(c.Languages) < 2 {
		return fmt.Errorf("pipeline: at least two languages required, got %d", len(c.Languages))
	}
	seen := make(map[lang.Language]struct{}, len(c.Languages))
	for _, l := range c.Languages {
		if l == lang.Unknown || l.IsoCode639_1() == "" {
			return fmt.Errorf("pipeline: unsupported language %s", l)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("pipeline: duplicate language %s", l)
		}
		seen[l] = struct{}{}
	}
	if c.MinimumRelativeDistance < 0 || c.MinimumRelativeDistance >= 1 {
		return fmt.Errorf("pipeline: minimum relative distance must be in [0, 1), got %g",
			c.MinimumRelativeDistance)
	}
	return c.Scorer.Validate()
}

// Pipeline is the detection orchestrator.
type Pipeline struct {
	cfg     Config
	scripts []lang.Script
	scorer  *scorer.Scorer
}

// New creates a pipeline over the given model store.
func New(cfg Config, store *model.Store) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc, err := scorer.New(store, cfg.Scorer)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:     cfg,
		scripts: enabledScripts(cfg.Languages),
		scorer:  sc,
	}, nil
}

// Languages returns the enabled languages.
func (p *Pipeline) Languages() []lang.Language {
	out := make([]lang.Language, len(p.cfg.Languages))
	copy(out, p.cfg.Languages)
	return out
}

// enabledScripts returns the union of the scripts of the given languages.
func enabledScripts(languages []lang.Language) []lang.Script {
	seen := make(map[lang.Script]struct{})
	var out []lang.Script
	for _, l := range languages {
		for _, s := range l.Scripts() {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}

// Detect runs the full pipeline on a single text. It is deterministic and
// never fails for a valid configuration unless a language model asset turns
// out to be missing or corrupt on first use.
func (p *Pipeline) Detect(text string) (Result, error) {
	// START: no alphabetic content ends the pipeline immediately.
	normalized := ngram.Normalize(text, p.scripts)
	if normalized == "" {
		detectionsTotal.WithLabelValues(outcomeUndetermined).Inc()
		return undeterminedResult(), nil
	}

	// SCRIPT_FILTERED: candidates from observed scripts, narrowed by
	// characteristic letters.
	candidates := script.Candidates(script.Classify(text), p.cfg.Languages)
	script.NarrowByCharacteristics(normalized, candidates)

	if candidates.Len() == 0 {
		detectionsTotal.WithLabelValues(outcomeUndetermined).Inc()
		return undeterminedResult(), nil
	}
	if single, ok := candidates.Single(); ok {
		// Unique alphabet or characteristic letter: statistical scoring
		// cannot add anything.
		detectionsTotal.WithLabelValues(outcomeSingle).Inc()
		return Result{
			Language:   single,
			Confidence: 1.0,
			Candidates: []ConfidenceValue{{Language: single, Confidence: 1.0}},
		}, nil
	}

	// SCORED.
	scores, err := p.scorer.Score(candidates.Slice(), normalized)
	if err != nil {
		detectionsTotal.WithLabelValues(outcomeError).Inc()
		return Result{}, err
	}

	// DECIDED.
	result := decide(scores, p.cfg.MinimumRelativeDistance)
	slog.Debug("detection decided",
		"language", result.Language.String(),
		"confidence", result.Confidence,
		"ambiguous", result.Ambiguous,
		"candidates", len(result.Candidates))
	if result.Ambiguous {
		detectionsTotal.WithLabelValues(outcomeAmbiguous).Inc()
	} else {
		detectionsTotal.WithLabelValues(outcomeSingle).Inc()
	}
	return result, nil
}

// ConfidenceValues runs the pipeline and returns the full ranked candidate
// list, regardless of ambiguity.
func (p *Pipeline) ConfidenceValues(text string) ([]ConfidenceValue, error) {
	result, err := p.Detect(text)
	if err != nil {
		return nil, err
	}
	return result.Candidates, nil
}
