package evasion

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/EvasionGuard/pkg/classifier"
)

const BinaryActivationDetectorName = "binary_activation_detector"

// BinaryActivationDetector performs binary clean/adversarial classification on
// the activations a separate feature-extracting model produces at a fixed
// layer. The detector classifier's input shape has to match the output shape
// of the chosen layer.
type BinaryActivationDetector struct {
	logger    *logrus.Logger
	extractor classifier.FeatureExtractor
	detector  classifier.Classifier
	layerName string
}

// NewBinaryActivationDetector resolves layer, an int index or a string name,
// against the extractor's layer-name list once; the canonical name stays fixed
// for the detector's lifetime.
func NewBinaryActivationDetector(
	logger *logrus.Logger,
	extractor classifier.FeatureExtractor,
	detector classifier.Classifier,
	layer any,
) (*BinaryActivationDetector, error) {
	if extractor == nil {
		return nil, fmt.Errorf("no layer names identified")
	}
	layerNames := extractor.LayerNames()
	if layerNames == nil {
		return nil, fmt.Errorf("no layer names identified")
	}

	var layerName string
	switch l := layer.(type) {
	case int:
		if l < 0 || l >= len(layerNames) {
			return nil, fmt.Errorf("layer index %d is outside of range (0 to %d included)", l, len(layerNames)-1)
		}
		layerName = layerNames[l]
	case string:
		if !slices.Contains(layerNames, l) {
			return nil, fmt.Errorf("layer name %s is not part of the graph", l)
		}
		layerName = l
	default:
		return nil, fmt.Errorf("layer must be an int index or a string name, got %T", layer)
	}

	return &BinaryActivationDetector{
		logger:    logger,
		extractor: extractor,
		detector:  detector,
		layerName: layerName,
	}, nil
}

func (d *BinaryActivationDetector) Name() string {
	return BinaryActivationDetectorName
}

// LayerName returns the canonical name the layer reference resolved to.
func (d *BinaryActivationDetector) LayerName() string {
	return d.layerName
}

// Fit computes activations of x at the resolved layer and trains the detector
// classifier on them. Errors from either collaborator surface unchanged.
func (d *BinaryActivationDetector) Fit(ctx context.Context, x, y [][]float64, opts classifier.FitOptions) error {
	opts = opts.WithDefaults()
	d.logger.WithFields(logrus.Fields{
		"detector":   d.Name(),
		"layer":      d.layerName,
		"samples":    len(x),
		"batch_size": opts.BatchSize,
		"nb_epochs":  opts.Epochs,
	}).Debug("fitting detector on activations")

	activations, err := d.extractor.GetActivations(ctx, x, d.layerName, opts.BatchSize)
	if err != nil {
		return err
	}
	return d.detector.Fit(ctx, activations, y, opts)
}

// Detect computes activations of x at the resolved layer, scores them with
// the detector classifier, and flags each sample whose top-scoring class is 1.
func (d *BinaryActivationDetector) Detect(ctx context.Context, x [][]float64, opts classifier.PredictOptions) (Report, []bool, error) {
	opts = opts.WithDefaults()
	activations, err := d.extractor.GetActivations(ctx, x, d.layerName, opts.BatchSize)
	if err != nil {
		return nil, nil, err
	}
	predictions, err := d.detector.Predict(ctx, activations, opts)
	if err != nil {
		return nil, nil, err
	}
	decisions := isAdversarial(predictions)
	d.logger.WithFields(logrus.Fields{
		"detector": d.Name(),
		"layer":    d.layerName,
		"samples":  len(x),
	}).Debug("detection completed")
	return Report{ReportKeyPredictions: predictions}, decisions, nil
}
