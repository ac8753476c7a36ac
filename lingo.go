// Package lingo detects the natural language of text. Detection combines a
// script pre-filter with statistical n-gram models (orders one through five)
// for 21 languages; models are packaged with the library, so the default
// detector needs no external files.
//
// A Detector is built once and shared:
//
//	detector, err := lingo.NewBuilder().
//		WithLanguages(lang.English, lang.German, lang.French).
//		Build()
//	if err != nil {
//		return err
//	}
//	result, err := detector.Detect("languages are awesome")
//
// Detector is safe for concurrent use. Language constants and ISO code
// helpers live in the lang subpackage.
package lingo

import (
	"context"
	"log/slog"

	"github.com/MeKo-Tech/lingo/internal/model"
	"github.com/MeKo-Tech/lingo/internal/pipeline"
	"github.com/MeKo-Tech/lingo/internal/version"
	"github.com/MeKo-Tech/lingo/lang"
)

// Version reports the library version, git commit and build date as set at
// build time via ldflags.
func Version() (string, string, string) {
	return version.Info()
}

// Result is the verdict for a single text.
type Result = pipeline.Result

// ConfidenceValue pairs a candidate language with its relative confidence.
type ConfidenceValue = pipeline.ConfidenceValue

// Span marks a contiguous single-language section of a mixed-language text.
type Span = pipeline.Span

// BatchConfig tunes parallel batch detection.
type BatchConfig = pipeline.BatchConfig

// DefaultBatchConfig returns the default batch settings.
func DefaultBatchConfig() BatchConfig { return pipeline.DefaultBatchConfig() }

// Loader supplies serialized model payloads for (language, n-gram order)
// pairs. Implementations must be safe for concurrent use. The zero
// configuration uses the packaged models; a custom Loader swaps in external
// model data.
type Loader interface {
	Load(language lang.Language, order int) ([]byte, error)
}

// Detector detects the language of text against a fixed set of candidate
// languages. Build one with a Builder and share it; all methods are safe for
// concurrent use.
type Detector struct {
	pipeline *pipeline.Pipeline
	store    *model.Store
}

// Detect returns the full verdict for a text: the winning language (or
// lang.Unknown), its confidence, the ambiguity flag and the ranked candidate
// list. An error means a model asset could not be loaded, never a property
// of the input.
func (d *Detector) Detect(text string) (Result, error) {
	return d.pipeline.Detect(text)
}

// DetectLanguageOf is the simple form of Detect: the most likely language
// and whether the verdict is reliable. It reports false when the text yields
// no verdict, when the top candidates are too close together, and when model
// loading fails.
func (d *Detector) DetectLanguageOf(text string) (lang.Language, bool) {
	result, err := d.pipeline.Detect(text)
	if err != nil {
		slog.Warn("detection failed", "error", err)
		return lang.Unknown, false
	}
	if result.Language == lang.Unknown {
		return lang.Unknown, false
	}
	return result.Language, true
}

// ComputeLanguageConfidenceValues returns every enabled candidate that was
// scored for the text, ranked by confidence. The top entry has confidence
// 1.0; an empty slice means the text yielded no candidates at all.
func (d *Detector) ComputeLanguageConfidenceValues(text string) ([]ConfidenceValue, error) {
	return d.pipeline.ConfidenceValues(text)
}

// DetectMultipleLanguagesOf splits a mixed-language text into contiguous
// single-language spans. The spans partition the text exactly: they are
// adjacent, non-overlapping and cover every byte.
func (d *Detector) DetectMultipleLanguagesOf(text string) ([]Span, error) {
	return d.pipeline.DetectMultipleLanguages(text)
}

// DetectAll detects every text independently in parallel, preserving input
// order.
func (d *Detector) DetectAll(texts []string) ([]Result, error) {
	return d.pipeline.DetectAll(texts)
}

// DetectAllContext is DetectAll with an explicit context and batch
// configuration. Cancelling the context abandons unscheduled texts.
func (d *Detector) DetectAllContext(ctx context.Context, texts []string, cfg BatchConfig) ([]Result, error) {
	return d.pipeline.DetectAllContext(ctx, texts, cfg)
}

// Languages returns the enabled candidate languages.
func (d *Detector) Languages() []lang.Language {
	return d.pipeline.Languages()
}

// LoadedModels returns how many language models are currently materialized
// in memory. With preloading enabled this is languages times five right
// after Build.
func (d *Detector) LoadedModels() int {
	return d.store.CachedModels()
}
