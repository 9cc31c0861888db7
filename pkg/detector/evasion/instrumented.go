package evasion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NeuralTrust/EvasionGuard/pkg/classifier"
	"github.com/NeuralTrust/EvasionGuard/pkg/infra/prometheus"
)

// InstrumentedDetector decorates a Detector with Prometheus metrics. The
// wrapped detector's behavior is unchanged; errors pass through untouched.
type InstrumentedDetector struct {
	id       string
	detector Detector
}

// Instrument wraps detector in a metrics-emitting decorator. Each wrapper
// gets its own instance id, used as the detector_id metric label.
func Instrument(detector Detector) *InstrumentedDetector {
	return &InstrumentedDetector{
		id:       uuid.New().String(),
		detector: detector,
	}
}

func (w *InstrumentedDetector) ID() string {
	return w.id
}

func (w *InstrumentedDetector) Name() string {
	return w.detector.Name()
}

func (w *InstrumentedDetector) Fit(ctx context.Context, x, y [][]float64, opts classifier.FitOptions) error {
	if err := w.detector.Fit(ctx, x, y, opts); err != nil {
		prometheus.DetectorFailuresTotal.WithLabelValues(w.id, w.detector.Name(), "fit").Inc()
		return err
	}
	prometheus.DetectorFitTotal.WithLabelValues(w.id, w.detector.Name()).Inc()
	return nil
}

func (w *InstrumentedDetector) Detect(ctx context.Context, x [][]float64, opts classifier.PredictOptions) (Report, []bool, error) {
	start := time.Now()
	report, decisions, err := w.detector.Detect(ctx, x, opts)
	if err != nil {
		prometheus.DetectorFailuresTotal.WithLabelValues(w.id, w.detector.Name(), "detect").Inc()
		return nil, nil, err
	}

	flagged := 0
	for _, adversarial := range decisions {
		if adversarial {
			flagged++
		}
	}

	labels := []string{w.id, w.detector.Name()}
	prometheus.DetectorDetectTotal.WithLabelValues(labels...).Inc()
	prometheus.DetectorAdversarialTotal.WithLabelValues(labels...).Add(float64(flagged))
	prometheus.DetectorDetectLatency.WithLabelValues(labels...).Observe(float64(time.Since(start).Milliseconds()))

	return report, decisions, nil
}
