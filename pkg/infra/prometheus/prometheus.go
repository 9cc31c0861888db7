package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Common labels for all detector metrics
	detectorLabels = []string{"detector_id", "detector_type"}

	// Latency buckets in milliseconds; detection calls range from in-process
	// stubs (sub-millisecond) to batched GPU inference (seconds)
	latencyBuckets = []float64{
		1, 5, 10,
		25, 50, 100,
		250, 500, 1000,
		2500, 5000, 10000,
	}

	DetectorFitTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "evasionguard_fit_total",
			Help: "Total number of detector training calls",
		},
		detectorLabels,
	)

	DetectorDetectTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "evasionguard_detect_total",
			Help: "Total number of detection calls",
		},
		detectorLabels,
	)

	DetectorFailuresTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "evasionguard_failures_total",
			Help: "Total number of detector calls that returned an error",
		},
		append(detectorLabels, "operation"),
	)

	DetectorAdversarialTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "evasionguard_adversarial_total",
			Help: "Total number of samples flagged as adversarial",
		},
		detectorLabels,
	)

	DetectorDetectLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "evasionguard_detect_latency_ms",
			Help:    "Detection call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		detectorLabels,
	)
)

// Registry returns the registry all EvasionGuard metrics are registered on.
// This module exposes no endpoint of its own; embedding applications gather
// from this registry however they serve metrics.
func Registry() *prometheus.Registry {
	return registry
}
