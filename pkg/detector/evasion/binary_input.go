package evasion

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/EvasionGuard/pkg/classifier"
)

const BinaryInputDetectorName = "binary_input_detector"

// BinaryInputDetector performs binary clean/adversarial classification
// directly on input samples. The detector architecture is provided by the
// caller and trained on data labeled as clean (label 0) or adversarial
// (label 1).
type BinaryInputDetector struct {
	logger   *logrus.Logger
	detector classifier.Classifier
}

func NewBinaryInputDetector(logger *logrus.Logger, detector classifier.Classifier) *BinaryInputDetector {
	return &BinaryInputDetector{
		logger:   logger,
		detector: detector,
	}
}

func (d *BinaryInputDetector) Name() string {
	return BinaryInputDetectorName
}

// Fit trains the underlying detector classifier on clean and adversarial
// samples. Any training error surfaces to the caller unchanged.
func (d *BinaryInputDetector) Fit(ctx context.Context, x, y [][]float64, opts classifier.FitOptions) error {
	opts = opts.WithDefaults()
	d.logger.WithFields(logrus.Fields{
		"detector":   d.Name(),
		"samples":    len(x),
		"batch_size": opts.BatchSize,
		"nb_epochs":  opts.Epochs,
	}).Debug("fitting detector")
	return d.detector.Fit(ctx, x, y, opts)
}

// Detect scores x with the underlying classifier and flags each sample whose
// top-scoring class is 1. The report holds the raw predictions untouched.
func (d *BinaryInputDetector) Detect(ctx context.Context, x [][]float64, opts classifier.PredictOptions) (Report, []bool, error) {
	opts = opts.WithDefaults()
	predictions, err := d.detector.Predict(ctx, x, opts)
	if err != nil {
		return nil, nil, err
	}
	decisions := isAdversarial(predictions)
	d.logger.WithFields(logrus.Fields{
		"detector": d.Name(),
		"samples":  len(x),
	}).Debug("detection completed")
	return Report{ReportKeyPredictions: predictions}, decisions, nil
}
