package recorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stock-price-predictor/internal/models"
	"stock-price-predictor/internal/recorder"
	"stock-price-predictor/internal/recorder/mocks"
)

func TestMultiRecordPrediction(t *testing.T) {
	rec := &models.PredictionRecord{Id: "a", Ticker: "ACME"}
	sinkErr := errors.New("sink down")

	testCases := []struct {
		name        string
		setup       func(first, second *mocks.Recorder)
		expectedErr error
	}{
		{
			name: "every recorder receives the record",
			setup: func(first, second *mocks.Recorder) {
				first.On("RecordPrediction", mock.Anything, rec).Return(nil)
				second.On("RecordPrediction", mock.Anything, rec).Return(nil)
			},
		},
		{
			name: "a failing recorder does not stop the others",
			setup: func(first, second *mocks.Recorder) {
				first.On("RecordPrediction", mock.Anything, rec).Return(sinkErr)
				second.On("RecordPrediction", mock.Anything, rec).Return(nil)
			},
			expectedErr: sinkErr,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			first := mocks.NewRecorder(t)
			second := mocks.NewRecorder(t)
			tt.setup(first, second)

			err := recorder.Multi{first, second}.RecordPrediction(context.Background(), rec)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMultiClose(t *testing.T) {
	first := mocks.NewRecorder(t)
	second := mocks.NewRecorder(t)
	closeErr := errors.New("close failed")
	first.On("Close").Return(closeErr)
	second.On("Close").Return(nil)

	assert.ErrorIs(t, recorder.Multi{first, second}.Close(), closeErr)
}

func TestNoopRecorder(t *testing.T) {
	r := recorder.NewNoopRecorder()
	assert.NoError(t, r.RecordPrediction(context.Background(), &models.PredictionRecord{}))
	assert.NoError(t, r.Close())
}
