package repo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"stock-price-predictor/internal/models"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// CSVRepo serves history from <Dir>/<TICKER>.csv files with a
// Date,Open,High,Low,Close header. Extra columns are ignored. The period is
// applied relative to the latest row so fixtures never age out.
type CSVRepo struct {
	Dir string
}

func NewCSVRepo(dir string) *CSVRepo {
	return &CSVRepo{Dir: dir}
}

func (rp *CSVRepo) FetchHistory(ctx context.Context, ticker string, period models.Period) ([]models.PriceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Tickers come from the request body; keep them inside Dir.
	if ticker == "" || strings.ContainsAny(ticker, `/\`) || strings.Contains(ticker, "..") {
		return []models.PriceRecord{}, nil
	}

	f, err := os.Open(filepath.Join(rp.Dir, strings.ToUpper(ticker)+".csv"))
	if errors.Is(err, os.ErrNotExist) {
		return []models.PriceRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []models.PriceRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.PriceRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return []models.PriceRecord{}, nil
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Time.Before(records[j].Time) })

	start := period.Start(records[len(records)-1].Time)
	first := sort.Search(len(records), func(i int) bool { return !records[i].Time.Before(start) })
	return records[first:], nil
}

// columnIndex maps date, open, high, low, close to their header positions.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, 5)
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range []string{"date", "open", "high", "low", "close"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("history header is missing column %q", col)
		}
	}
	return idx, nil
}

func parseRow(row []string, idx map[string]int) (models.PriceRecord, error) {
	var rec models.PriceRecord

	ts, err := parseDate(cell(row, idx["date"]))
	if err != nil {
		return rec, err
	}
	rec.Time = ts

	prices := []*float64{&rec.Open, &rec.High, &rec.Low, &rec.Close}
	for i, col := range []string{"open", "high", "low", "close"} {
		v, err := parsePrice(cell(row, idx[col]))
		if err != nil {
			return rec, fmt.Errorf("column %s: %w", col, err)
		}
		*prices[i] = v
	}
	return rec, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// parsePrice maps blank, null and NaN cells to NaN.
func parsePrice(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "", "null", "nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
