package models

// YahooChart is the response of the Yahoo Finance v8 chart endpoint. Quote
// values are pointers because the provider sends null for missing prices.
type YahooChart struct {
	Chart struct {
		Result []YahooChartResult `json:"result"`
		Error  *YahooChartError   `json:"error"`
	} `json:"chart"`
}

type YahooChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote    []YahooQuote    `json:"quote"`
		AdjClose []YahooAdjClose `json:"adjclose"`
	} `json:"indicators"`
}

type YahooQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

// YahooAdjClose holds closes adjusted for splits and dividends.
type YahooAdjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

type YahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
