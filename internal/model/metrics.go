package model

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	modelLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingo_model_loads_total",
			Help: "Total number of language model load attempts",
		},
		[]string{"language", "order", "status"},
	)

	modelLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lingo_model_load_duration_seconds",
			Help:    "Language model load and parse duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	cacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lingo_model_cache_hits_total",
			Help: "Total number of model store cache hits",
		},
	)
)
