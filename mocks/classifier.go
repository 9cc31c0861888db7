package mocks

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/NeuralTrust/EvasionGuard/pkg/classifier"
)

type Classifier struct {
	mock.Mock
}

func (m *Classifier) Fit(ctx context.Context, x, y [][]float64, opts classifier.FitOptions) error {
	args := m.Called(ctx, x, y, opts)
	return args.Error(0)
}

func (m *Classifier) Predict(ctx context.Context, x [][]float64, opts classifier.PredictOptions) ([][]float64, error) {
	args := m.Called(ctx, x, opts)
	predictions, ok := args.Get(0).([][]float64)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected [][]float64, got %T", args.Get(0))
	}
	return predictions, args.Error(1)
}
