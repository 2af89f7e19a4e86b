package dto

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotNumeric = errors.New("price is not numeric")

// Predict

// PredictReq keeps the prices raw so presence is validated before any
// numeric parsing happens. JSON null counts as missing.
type PredictReq struct {
	Ticker *string          `json:"ticker" binding:"required"`
	Open   *json.RawMessage `json:"open" binding:"required"`
	High   *json.RawMessage `json:"high" binding:"required"`
	Low    *json.RawMessage `json:"low" binding:"required"`
}

// Features parses [open, high, low]. Each price may be a JSON number or a
// string holding one; non-finite values are rejected.
func (r PredictReq) Features() ([]float64, error) {
	features := make([]float64, 0, 3)
	for _, raw := range []*json.RawMessage{r.Open, r.High, r.Low} {
		if raw == nil {
			return nil, errNotNumeric
		}
		v, err := parsePrice(*raw)
		if err != nil {
			return nil, err
		}
		features = append(features, v)
	}
	return features, nil
}

func parsePrice(raw json.RawMessage) (float64, error) {
	var v float64
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if isHex(s) {
			return 0, errNotNumeric
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errNotNumeric
		}
		v = f
	} else {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, errNotNumeric
		}
		f, err := n.Float64()
		if err != nil {
			return 0, errNotNumeric
		}
		v = f
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotNumeric
	}
	return v, nil
}

// isHex reports a 0x prefix after an optional sign. Prices are decimal only.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

type PredictRes struct {
	Ticker         string  `json:"ticker"`
	PredictedClose float64 `json:"predicted_close"`
}

// Error

type ErrorRes struct {
	Error string `json:"error"`
}
