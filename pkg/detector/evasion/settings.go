package evasion

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/NeuralTrust/EvasionGuard/pkg/classifier"
)

type fitSettings struct {
	BatchSize int            `mapstructure:"batch_size"`
	Epochs    int            `mapstructure:"nb_epochs"`
	Extra     map[string]any `mapstructure:",remain"`
}

type detectSettings struct {
	BatchSize int            `mapstructure:"batch_size"`
	Extra     map[string]any `mapstructure:",remain"`
}

// FitOptionsFromSettings decodes a generic settings map into fit options.
// batch_size and nb_epochs are interpreted here; every other key lands in
// Extra untouched and is forwarded verbatim to the classifier. Absent keys
// take the package defaults.
func FitOptionsFromSettings(settings map[string]any) (classifier.FitOptions, error) {
	var s fitSettings
	if err := mapstructure.Decode(settings, &s); err != nil {
		return classifier.FitOptions{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.BatchSize < 0 {
		return classifier.FitOptions{}, fmt.Errorf("batch_size must be positive")
	}
	if s.Epochs < 0 {
		return classifier.FitOptions{}, fmt.Errorf("nb_epochs must be positive")
	}
	opts := classifier.FitOptions{
		BatchSize: s.BatchSize,
		Epochs:    s.Epochs,
		Extra:     s.Extra,
	}
	return opts.WithDefaults(), nil
}

// DetectOptionsFromSettings decodes a generic settings map into prediction
// options. See FitOptionsFromSettings for the passthrough rule.
func DetectOptionsFromSettings(settings map[string]any) (classifier.PredictOptions, error) {
	var s detectSettings
	if err := mapstructure.Decode(settings, &s); err != nil {
		return classifier.PredictOptions{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.BatchSize < 0 {
		return classifier.PredictOptions{}, fmt.Errorf("batch_size must be positive")
	}
	opts := classifier.PredictOptions{
		BatchSize: s.BatchSize,
		Extra:     s.Extra,
	}
	return opts.WithDefaults(), nil
}
