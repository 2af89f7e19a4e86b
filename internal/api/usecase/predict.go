package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"stock-price-predictor/internal/api/repo"
	"stock-price-predictor/internal/id"
	"stock-price-predictor/internal/models"
	"stock-price-predictor/internal/recorder"
	"stock-price-predictor/internal/regression"
)

// MinHistoryRecords is the shortest fetched history a model is fit on.
const MinHistoryRecords = 10

type UsecaseItf interface {
	TrainModel(ctx context.Context, ticker string) (*regression.Model, error)
	Predict(ctx context.Context, ticker string, model *regression.Model, features []float64) (float64, error)
}

type Usecase struct {
	rp     repo.RepoItf
	rec    recorder.Recorder
	period models.Period
	now    func() time.Time
}

func NewUsecase(rp repo.RepoItf, rec recorder.Recorder, period models.Period) *Usecase {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Usecase{rp: rp, rec: rec, period: period, now: time.Now}
}

// TrainModel fits close ~ open + high + low on the ticker's history. Every
// call fetches and fits from scratch.
func (uc *Usecase) TrainModel(ctx context.Context, ticker string) (*regression.Model, error) {
	history, err := uc.rp.FetchHistory(ctx, ticker, uc.period)
	if err != nil {
		return nil, err
	}
	if len(history) < MinHistoryRecords {
		return nil, &InsufficientDataError{Ticker: ticker}
	}

	x := make([][]float64, 0, len(history))
	y := make([]float64, 0, len(history))
	for _, rec := range history {
		if !rec.Complete() {
			continue
		}
		x = append(x, rec.Features())
		y = append(y, rec.Close)
	}

	model, err := regression.Fit(x, y)
	if err != nil {
		return nil, fmt.Errorf("fit model for ticker %s: %w", ticker, err)
	}
	log.Printf("Trained model for %s on %d of %d records (r2=%.4f)",
		ticker, model.Samples, len(history), model.RSquared)
	return model, nil
}

// Predict applies model to [open, high, low] and records the result. A
// recording failure is logged and does not fail the prediction.
func (uc *Usecase) Predict(ctx context.Context, ticker string, model *regression.Model, features []float64) (float64, error) {
	predicted, err := model.Predict(features)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(predicted) || math.IsInf(predicted, 0) {
		return 0, fmt.Errorf("%w: ticker %s", ErrNonFinite, ticker)
	}

	now := uc.now().UTC()
	rec := &models.PredictionRecord{
		Id:             id.New(now),
		Ticker:         ticker,
		Open:           features[0],
		High:           features[1],
		Low:            features[2],
		PredictedClose: predicted,
		Samples:        model.Samples,
		RSquared:       model.RSquared,
		CreatedAt:      now,
	}
	if err := uc.rec.RecordPrediction(ctx, rec); err != nil {
		log.Printf("Could not record prediction %s for %s: %v", rec.Id, ticker, err)
	}

	return predicted, nil
}
