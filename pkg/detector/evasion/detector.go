package evasion

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/NeuralTrust/EvasionGuard/pkg/classifier"
)

// ReportKeyPredictions is the single entry every detection report carries: the
// raw per-sample score rows returned by the underlying classifier, before
// thresholding.
const ReportKeyPredictions = "predictions"

// Report is the detection output mapping.
type Report map[string]any

// Predictions returns the raw score rows stored in the report.
func (r Report) Predictions() ([][]float64, bool) {
	predictions, ok := r[ReportKeyPredictions].([][]float64)
	return predictions, ok
}

// Detector is the shared contract of all evasion detectors: train on labeled
// clean/adversarial samples, then flag new samples. The wrappers implementing
// it hold no trainable state of their own; all model state lives in the
// injected classifiers.
type Detector interface {
	Name() string
	Fit(ctx context.Context, x, y [][]float64, opts classifier.FitOptions) error
	Detect(ctx context.Context, x [][]float64, opts classifier.PredictOptions) (Report, []bool, error)
}

var (
	_ Detector = (*BinaryInputDetector)(nil)
	_ Detector = (*BinaryActivationDetector)(nil)
	_ Detector = (*InstrumentedDetector)(nil)
)

// isAdversarial applies the decision rule: a sample is adversarial iff the
// highest-scoring class index is 1. Ties resolve to the lowest index.
func isAdversarial(predictions [][]float64) []bool {
	decisions := make([]bool, len(predictions))
	for i, scores := range predictions {
		if len(scores) == 0 {
			continue
		}
		decisions[i] = floats.MaxIdx(scores) == 1
	}
	return decisions
}
