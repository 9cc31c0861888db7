package mocks

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
)

type FeatureExtractor struct {
	mock.Mock
}

func (m *FeatureExtractor) LayerNames() []string {
	args := m.Called()
	names, _ := args.Get(0).([]string)
	return names
}

func (m *FeatureExtractor) GetActivations(ctx context.Context, x [][]float64, layerName string, batchSize int) ([][]float64, error) {
	args := m.Called(ctx, x, layerName, batchSize)
	activations, ok := args.Get(0).([][]float64)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected [][]float64, got %T", args.Get(0))
	}
	return activations, args.Error(1)
}
