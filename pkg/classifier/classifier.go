package classifier

import "context"

// Classifier is the contract any injected detector model must satisfy. All
// training and inference happens inside the implementation; callers own the
// model lifecycle (initialization, training state, persistence).
type Classifier interface {
	// Fit trains the model on a batch of samples with one label row per sample.
	Fit(ctx context.Context, x, y [][]float64, opts FitOptions) error
	// Predict returns one score row per sample. Detector models are expected
	// to score exactly two classes: clean (0) and adversarial (1).
	Predict(ctx context.Context, x [][]float64, opts PredictOptions) ([][]float64, error)
}

// FeatureExtractor is the contract for models whose intermediate activations
// are used as detection features.
type FeatureExtractor interface {
	// LayerNames returns the ordered, immutable list of layer names of the
	// underlying model graph.
	LayerNames() []string
	// GetActivations computes the activations of x at the given layer,
	// processed in batches of batchSize.
	GetActivations(ctx context.Context, x [][]float64, layerName string, batchSize int) ([][]float64, error)
}
