// Package scorer computes per-language combined log-probabilities from
// multiple n-gram orders, with a back-off floor for n-grams absent from a
// model.
package scorer

import (
	"fmt"
	"math"

	"github.com/MeKo-Tech/lingo/internal/model"
	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/lang"
)

// Config holds tunable scoring parameters.
type Config struct {
	// PenaltyFactor controls the back-off floor for unseen n-grams:
	// log(1 / (PenaltyFactor * distinctNgramCount)). It scales with the
	// model size of each language, so a language with sparse but present
	// coverage is not unfairly penalized.
	PenaltyFactor float64

	// MinOrder and MaxOrder bound the n-gram orders combined per query.
	MinOrder int
	MaxOrder int
}

// DefaultConfig returns the default scoring parameters.
func DefaultConfig() Config {
	return Config{
		PenaltyFactor: 2.0,
		MinOrder:      ngram.MinOrder,
		MaxOrder:      ngram.MaxOrder,
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.PenaltyFactor <= 0 {
		return fmt.Errorf("scorer: penalty factor must be positive, got %g", c.PenaltyFactor)
	}
	if c.MinOrder < ngram.MinOrder || c.MaxOrder > ngram.MaxOrder || c.MinOrder > c.MaxOrder {
		return fmt.Errorf("scorer: invalid order range [%d, %d]", c.MinOrder, c.MaxOrder)
	}
	return nil
}

// Scorer scores candidate languages against normalized text. Stateless apart
// from the read-only model store; safe for concurrent use.
type Scorer struct {
	store *model.Store
	cfg   Config
}

// New creates a scorer backed by the given model store.
func New(store *model.Store, cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{store: store, cfg: cfg}, nil
}

// Score sums, for every candidate language, the log-probabilities of all
// n-grams of every configured order extracted from the normalized text.
// An n-gram absent from a model contributes the model's back-off floor
// instead; an order the text is too short to produce contributes nothing, so
// short inputs degrade gracefully toward unigram statistics. The summation
// across orders is a product of probabilities in log space, a naive-Bayes
// style combination under an independence assumption.
func (s *Scorer) Score(candidates []lang.Language, normalized string) (map[lang.Language]float64, error) {
	scores := make(map[lang.Language]float64, len(candidates))

	for order := s.cfg.MaxOrder; order >= s.cfg.MinOrder; order-- {
		ngrams := ngram.Extract(normalized, order)
		if len(ngrams) == 0 {
			continue
		}
		for _, candidate := range candidates {
			m, err := s.store.Get(candidate, order)
			if err != nil {
				return nil, err
			}
			scores[candidate] += sumLogProbs(m, ngrams, s.cfg.PenaltyFactor)
		}
	}
	return scores, nil
}

func sumLogProbs(m *model.Model, ngrams []ngram.Ngram, penaltyFactor float64) float64 {
	floor := backoffFloor(m, penaltyFactor)
	var sum float64
	for _, ng := range ngrams {
		if p, ok := m.Lookup(ng); ok {
			sum += p
		} else {
			sum += floor
		}
	}
	return sum
}

// backoffFloor derives the unseen-ngram penalty from the model's distinct
// n-gram count for its order.
func backoffFloor(m *model.Model, penaltyFactor float64) float64 {
	distinct := m.Distinct()
	if distinct == 0 {
		distinct = 1
	}
	return math.Log(1 / (penaltyFactor * float64(distinct)))
}
