package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"stock-price-predictor/internal/models"
)

const yahooNotFound = "Not Found"

// YahooRepo reads daily bars from the Yahoo Finance chart API.
type YahooRepo struct {
	BaseURL string
	Client  *http.Client
	// AutoAdjust scales every bar by adjclose/close so the whole series is
	// split and dividend adjusted.
	AutoAdjust bool
}

// NewYahooRepo creates a Yahoo Finance repo with optional proxy support.
func NewYahooRepo(baseURL, proxyURL string, timeout time.Duration, autoAdjust bool) *YahooRepo {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooRepo{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		AutoAdjust: autoAdjust,
	}
}

func (rp *YahooRepo) FetchHistory(ctx context.Context, ticker string, period models.Period) ([]models.PriceRecord, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		rp.BaseURL, url.PathEscape(ticker), url.QueryEscape(string(period)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := rp.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}

	var chart models.YahooChart
	decodeErr := json.Unmarshal(body, &chart)

	if resp.StatusCode == http.StatusNotFound {
		return []models.PriceRecord{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && chart.Chart.Error != nil {
			return nil, fmt.Errorf("yahoo: status %d: %s", resp.StatusCode, chart.Chart.Error.Description)
		}
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo decode: %w", decodeErr)
	}
	if e := chart.Chart.Error; e != nil {
		if e.Code == yahooNotFound {
			return []models.PriceRecord{}, nil
		}
		return nil, fmt.Errorf("yahoo api error: %s", e.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return []models.PriceRecord{}, nil
	}

	return chartRecords(chart.Chart.Result[0], rp.AutoAdjust), nil
}

func chartRecords(result models.YahooChartResult, autoAdjust bool) []models.PriceRecord {
	if len(result.Indicators.Quote) == 0 {
		return []models.PriceRecord{}
	}
	quote := result.Indicators.Quote[0]

	// Without an adjclose series the raw bars are used as they are.
	var adjClose []*float64
	if autoAdjust && len(result.Indicators.AdjClose) > 0 {
		adjClose = result.Indicators.AdjClose[0].AdjClose
	}

	records := make([]models.PriceRecord, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		rec := models.PriceRecord{
			Time:  time.Unix(ts, 0).UTC(),
			Open:  valueAt(quote.Open, i),
			High:  valueAt(quote.High, i),
			Low:   valueAt(quote.Low, i),
			Close: valueAt(quote.Close, i),
		}
		if len(adjClose) > 0 {
			adj := valueAt(adjClose, i)
			ratio := adj / rec.Close
			rec.Open *= ratio
			rec.High *= ratio
			rec.Low *= ratio
			rec.Close = adj
		}
		records = append(records, rec)
	}

	// Ensure chronological order
	sort.SliceStable(records, func(i, j int) bool { return records[i].Time.Before(records[j].Time) })
	return records
}

// valueAt returns NaN for null or absent entries.
func valueAt(values []*float64, i int) float64 {
	if i >= len(values) || values[i] == nil {
		return math.NaN()
	}
	return *values[i]
}
