package recorder

import (
	"context"

	"stock-price-predictor/internal/models"
)

// NoopRecorder is used when no audit sink is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPrediction(_ context.Context, _ *models.PredictionRecord) error {
	return nil
}
func (n *NoopRecorder) Close() error { return nil }
