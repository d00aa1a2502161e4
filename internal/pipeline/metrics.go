package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runTotal counts pipeline stages by result
	runTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pangraph_stage_total",
		Help: "Total pipeline stages run, by stage and result",
	}, []string{"stage", "result"})

	// stageDuration tracks stage latency
	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pangraph_stage_duration_seconds",
		Help:    "Pipeline stage duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	}, []string{"stage"})

	// featuresDetected tracks features found per linearized assembly
	featuresDetected = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pangraph_features_per_assembly",
		Help:    "Structural features detected per linearized assembly",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
	})

	// diagnosticsTotal counts recoverable problems by kind
	diagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pangraph_diagnostics_total",
		Help: "Recoverable problems reported by the core, by kind",
	}, []string{"kind"})
)
