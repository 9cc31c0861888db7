package classifier

const (
	DefaultBatchSize = 128
	DefaultEpochs    = 20
)

// FitOptions configures a training call. Extra carries keys this module does
// not interpret; they are forwarded verbatim and recognized entirely at the
// classifier's discretion.
type FitOptions struct {
	BatchSize int
	Epochs    int
	Extra     map[string]any
}

// PredictOptions configures a prediction call. See FitOptions for Extra.
type PredictOptions struct {
	BatchSize int
	Extra     map[string]any
}

func DefaultFitOptions() FitOptions {
	return FitOptions{BatchSize: DefaultBatchSize, Epochs: DefaultEpochs}
}

func DefaultPredictOptions() PredictOptions {
	return PredictOptions{BatchSize: DefaultBatchSize}
}

// WithDefaults replaces unset fields so the classifier always receives
// concrete values.
func (o FitOptions) WithDefaults() FitOptions {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Epochs <= 0 {
		o.Epochs = DefaultEpochs
	}
	return o
}

// WithDefaults replaces unset fields so the classifier always receives
// concrete values.
func (o PredictOptions) WithDefaults() PredictOptions {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	return o
}
