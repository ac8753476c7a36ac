// Package model holds the per-language n-gram frequency models and the
// process-wide store that lazily materializes them from a Loader.
//
// Two model forms exist. TrainingModel carries exact relative frequencies as
// fractions and is what offline corpus processing serializes. Model is the
// immutable runtime form holding log-probabilities, built once per
// (language, order) pair and shared by all detections afterwards.
package model

import (
	"fmt"
	"math"

	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/lang"
)

// Model is an immutable mapping from n-gram to log-probability for one
// (language, order) pair. Safe for concurrent use once built.
type Model struct {
	language lang.Language
	order    int
	probs    map[ngram.Ngram]float64
}

// Language returns the language the model belongs to.
func (m *Model) Language() lang.Language { return m.language }

// Order returns the n-gram order of the model.
func (m *Model) Order() int { return m.order }

// Distinct returns the number of distinct n-grams in the model. The scorer
// derives its unseen-ngram back-off floor from this count.
func (m *Model) Distinct() int { return len(m.probs) }

// Lookup returns the stored log-probability of ng. Absence is not an error;
// it drives back-off in the scorer.
func (m *Model) Lookup(ng ngram.Ngram) (float64, bool) {
	p, ok := m.probs[ng]
	return p, ok
}

// TrainingModel carries the exact relative n-gram frequencies of one
// (language, order) pair as reduced fractions.
type TrainingModel struct {
	language lang.Language
	order    int
	relative map[ngram.Ngram]fraction
}

// Train builds a TrainingModel from normalized corpus text. The relative
// frequency of an n-gram is its count divided by the count of its
// (order-1)-prefix; unigram counts divide by the total letter count.
func Train(language lang.Language, order int, normalized string) (*TrainingModel, error) {
	if order < ngram.MinOrder || order > ngram.MaxOrder {
		return nil, fmt.Errorf("model: unsupported n-gram order %d", order)
	}
	absolute := countNgrams(normalized, order)
	relative := make(map[ngram.Ngram]fraction, len(absolute))

	if order == 1 {
		var total uint32
		for _, c := range absolute {
			total += c
		}
		for ng, c := range absolute {
			relative[ng] = reduce(c, total)
		}
	} else {
		lower := countNgrams(normalized, order-1)
		for ng, c := range absolute {
			prefix := ngram.Ngram([]rune(string(ng))[:order-1])
			relative[ng] = reduce(c, lower[prefix])
		}
	}

	return &TrainingModel{language: language, order: order, relative: relative}, nil
}

// Language returns the language the training model belongs to.
func (t *TrainingModel) Language() lang.Language { return t.language }

// Order returns the n-gram order of the training model.
func (t *TrainingModel) Order() int { return t.order }

// Distinct returns the number of distinct n-grams in the training model.
func (t *TrainingModel) Distinct() int { return len(t.relative) }

// RelativeFrequency returns the relative frequency of ng as a float, or 0 if
// ng is absent.
func (t *TrainingModel) RelativeFrequency(ng ngram.Ngram) float64 {
	f, ok := t.relative[ng]
	if !ok {
		return 0
	}
	return float64(f.num) / float64(f.den)
}

// Runtime converts the training model into its immutable runtime form.
func (t *TrainingModel) Runtime() *Model {
	probs := make(map[ngram.Ngram]float64, len(t.relative))
	for ng, f := range t.relative {
		probs[ng] = math.Log(float64(f.num) / float64(f.den))
	}
	return &Model{language: t.language, order: t.order, probs: probs}
}

func countNgrams(normalized string, order int) map[ngram.Ngram]uint32 {
	counts := make(map[ngram.Ngram]uint32)
	for _, ng := range ngram.Extract(normalized, order) {
		counts[ng]++
	}
	return counts
}

// fraction is a reduced rational number in (0, 1].
type fraction struct {
	num, den uint32
}

func (f fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

func reduce(num, den uint32) fraction {
	g := gcd(num, den)
	if g == 0 {
		return fraction{num: num, den: den}
	}
	return fraction{num: num / g, den: den / g}
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
