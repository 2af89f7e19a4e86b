package models

import (
	"math"
	"time"
)

// PriceRecord is one trading day of a ticker's history. Prices the provider
// reported as missing hold NaN.
type PriceRecord struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Complete reports whether open, high, low and close are all present.
func (p PriceRecord) Complete() bool {
	return !math.IsNaN(p.Open) && !math.IsNaN(p.High) &&
		!math.IsNaN(p.Low) && !math.IsNaN(p.Close)
}

// Features returns the regression inputs of the record.
func (p PriceRecord) Features() []float64 {
	return []float64{p.Open, p.High, p.Low}
}

type PredictionRecord struct {
	Id             string    `bson:"_id" json:"id"`
	Ticker         string    `bson:"ticker" json:"ticker"`
	Open           float64   `bson:"open" json:"open"`
	High           float64   `bson:"high" json:"high"`
	Low            float64   `bson:"low" json:"low"`
	PredictedClose float64   `bson:"predicted_close" json:"predicted_close"`
	Samples        int       `bson:"samples" json:"samples"`
	RSquared       float64   `bson:"r_squared" json:"r_squared"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
