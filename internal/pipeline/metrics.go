package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSingle       = "single"
	outcomeAmbiguous    = "ambiguous"
	outcomeUndetermined = "undetermined"
	outcomeError        = "error"
)

var detectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lingo_detections_total",
		Help: "Total number of single-text detections by outcome",
	},
	[]string{"outcome"},
)
