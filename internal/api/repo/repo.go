package repo

import (
	"context"

	"stock-price-predictor/internal/models"
)

// RepoItf fetches a ticker's daily price history over a lookback period.
// Unknown tickers yield an empty slice and no error.
type RepoItf interface {
	FetchHistory(ctx context.Context, ticker string, period models.Period) ([]models.PriceRecord, error)
}
