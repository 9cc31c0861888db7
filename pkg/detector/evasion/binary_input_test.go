package evasion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NeuralTrust/EvasionGuard/mocks"
	"github.com/NeuralTrust/EvasionGuard/pkg/classifier"
	"github.com/NeuralTrust/EvasionGuard/pkg/detector/evasion"
)

func TestBinaryInputDetector_Name(t *testing.T) {
	detector := evasion.NewBinaryInputDetector(logrus.New(), new(mocks.Classifier))

	assert.Equal(t, "binary_input_detector", detector.Name())
}

func TestBinaryInputDetector_Fit_DelegatesToClassifier(t *testing.T) {
	classifierMock := new(mocks.Classifier)
	detector := evasion.NewBinaryInputDetector(logrus.New(), classifierMock)

	x := [][]float64{{0.1, 0.2}, {0.3, 0.4}}
	y := [][]float64{{1, 0}, {0, 1}}
	expectedOpts := classifier.FitOptions{BatchSize: 128, Epochs: 20}
	classifierMock.On("Fit", mock.Anything, x, y, expectedOpts).Return(nil)

	err := detector.Fit(context.Background(), x, y, classifier.FitOptions{})

	assert.NoError(t, err)
	classifierMock.AssertExpectations(t)
}

func TestBinaryInputDetector_Fit_ForwardsOptionsVerbatim(t *testing.T) {
	classifierMock := new(mocks.Classifier)
	detector := evasion.NewBinaryInputDetector(logrus.New(), classifierMock)

	x := [][]float64{{0.1}}
	y := [][]float64{{0, 1}}
	opts := classifier.FitOptions{
		BatchSize: 64,
		Epochs:    5,
		Extra:     map[string]any{"learning_rate": 0.01, "shuffle": true},
	}
	classifierMock.On("Fit", mock.Anything, x, y, opts).Return(nil)

	err := detector.Fit(context.Background(), x, y, opts)

	assert.NoError(t, err)
	classifierMock.AssertExpectations(t)
}

func TestBinaryInputDetector_Fit_PropagatesError(t *testing.T) {
	classifierMock := new(mocks.Classifier)
	detector := evasion.NewBinaryInputDetector(logrus.New(), classifierMock)

	trainErr := errors.New("model not compiled")
	classifierMock.On("Fit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(trainErr)

	err := detector.Fit(context.Background(), [][]float64{{0.1}}, [][]float64{{1, 0}}, classifier.FitOptions{})

	assert.Equal(t, trainErr, err)
}

func TestBinaryInputDetector_Detect(t *testing.T) {
	classifierMock := new(mocks.Classifier)
	detector := evasion.NewBinaryInputDetector(logrus.New(), classifierMock)

	x := [][]float64{{0.1}, {0.2}, {0.3}}
	predictions := [][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.5, 0.5}}
	classifierMock.On("Predict", mock.Anything, x, classifier.PredictOptions{BatchSize: 128}).
		Return(predictions, nil)

	report, isAdversarial, err := detector.Detect(context.Background(), x, classifier.PredictOptions{})

	assert.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, isAdversarial)
	classifierMock.AssertExpectations(t)

	reported, ok := report.Predictions()
	assert.True(t, ok)
	assert.Equal(t, predictions, reported)
	assert.Same(t, &predictions[0][0], &reported[0][0])
	assert.Len(t, report, 1)
}

func TestBinaryInputDetector_Detect_PropagatesPredictError(t *testing.T) {
	classifierMock := new(mocks.Classifier)
	detector := evasion.NewBinaryInputDetector(logrus.New(), classifierMock)

	predictErr := errors.New("input shape mismatch")
	classifierMock.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return(nil, predictErr)

	report, isAdversarial, err := detector.Detect(context.Background(), [][]float64{{0.1}}, classifier.PredictOptions{})

	assert.Equal(t, predictErr, err)
	assert.Nil(t, report)
	assert.Nil(t, isAdversarial)
}
