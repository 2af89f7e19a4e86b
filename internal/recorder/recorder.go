// Package recorder keeps a write-only audit trail of served predictions.
package recorder

import (
	"context"
	"errors"

	"stock-price-predictor/internal/models"
)

// Recorder persists prediction records. Nothing in the service reads them
// back.
type Recorder interface {
	RecordPrediction(ctx context.Context, rec *models.PredictionRecord) error
	Close() error
}

// Multi fans every record out to all of its recorders.
type Multi []Recorder

func (m Multi) RecordPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	var errs []error
	for _, r := range m {
		if err := r.RecordPrediction(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, r := range m {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
