package model

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MeKo-Tech/lingo/internal/ngram"
	"github.com/MeKo-Tech/lingo/lang"
)

type storeKey struct {
	language lang.Language
	order    int
}

// Store lazily materializes runtime models from a Loader and caches them for
// the process lifetime. Concurrent first accesses to the same
// (language, order) pair are coalesced so exactly one load runs; once a model
// is cached it is served without further loader calls. A failed load is
// cached as well: a corrupt or missing asset cannot heal by retrying.
type Store struct {
	loader Loader

	mu     sync.RWMutex
	models map[storeKey]*Model
	errs   map[storeKey]error

	group singleflight.Group
}

// NewStore creates a store backed by the given loader.
func NewStore(loader Loader) *Store {
	return &Store{
		loader: loader,
		models: make(map[storeKey]*Model),
		errs:   make(map[storeKey]error),
	}
}

// Get returns the model for a (language, order) pair, loading it on first
// access. The first caller loads; concurrent callers for the same pair wait
// and receive the same instance.
func (s *Store) Get(language lang.Language, order int) (*Model, error) {
	key := storeKey{language: language, order: order}

	s.mu.RLock()
	m, err, cached := s.models[key], s.errs[key], false
	if m != nil || err != nil {
		cached = true
	}
	s.mu.RUnlock()
	if cached {
		// Cached failures short-circuit too, but only a served model counts
		// as a cache hit.
		if m != nil {
			cacheHitsTotal.Inc()
		}
		return m, err
	}

	v, err, _ := s.group.Do(fmt.Sprintf("%d/%d", language, order), func() (any, error) {
		return s.load(key)
	})
	if err != nil {
		return nil, err
	}
	loaded, ok := v.(*Model)
	if !ok {
		return nil, fmt.Errorf("model: unexpected store entry for %s order %d", language, order)
	}
	return loaded, nil
}

func (s *Store) load(key storeKey) (*Model, error) {
	// A waiter that lost the singleflight race may re-enter after the
	// winner populated the cache.
	s.mu.RLock()
	m, err := s.models[key], s.errs[key]
	s.mu.RUnlock()
	if m != nil || err != nil {
		return m, err
	}

	start := time.Now()
	m, err = s.loadUncached(key)
	duration := time.Since(start)

	s.mu.Lock()
	if err != nil {
		s.errs[key] = err
	} else {
		s.models[key] = m
	}
	s.mu.Unlock()

	if err != nil {
		modelLoadsTotal.WithLabelValues(key.language.IsoCode639_1(), fmt.Sprint(key.order), "error").Inc()
		return nil, err
	}
	modelLoadsTotal.WithLabelValues(key.language.IsoCode639_1(), fmt.Sprint(key.order), "ok").Inc()
	modelLoadDuration.Observe(duration.Seconds())
	slog.Debug("language model loaded",
		"language", key.language.String(),
		"order", key.order,
		"ngrams", m.Distinct(),
		"duration", duration)
	return m, nil
}

func (s *Store) loadUncached(key storeKey) (*Model, error) {
	data, err := s.loader.Load(key.language, key.order)
	if err != nil {
		return nil, fmt.Errorf("model: load %s order %d: %w", key.language, key.order, err)
	}
	m, err := Parse(data, key.language, key.order)
	if err != nil {
		return nil, fmt.Errorf("model: parse %s order %d: %w", key.language, key.order, err)
	}
	return m, nil
}

// Preload eagerly loads every (language, order) pair so that asset problems
// surface at setup instead of on first detection.
func (s *Store) Preload(languages []lang.Language) error {
	var g errgroup.Group
	for _, language := range languages {
		for order := ngram.MinOrder; order <= ngram.MaxOrder; order++ {
			language, order := language, order
			g.Go(func() error {
				_, err := s.Get(language, order)
				return err
			})
		}
	}
	return g.Wait()
}

// CachedModels returns how many models are currently materialized.
func (s *Store) CachedModels() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.models)
}
