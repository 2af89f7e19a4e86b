package models

import "time"

// Period is a lookback window in the notation market-data providers use
// for chart ranges.
type Period string

const (
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
	Period2y  Period = "2y"
	Period5y  Period = "5y"
	Period10y Period = "10y"
	PeriodYtd Period = "ytd"
	PeriodMax Period = "max"
)

const DefaultPeriod = Period1y

func (p Period) Valid() bool {
	switch p {
	case Period1mo, Period3mo, Period6mo, Period1y, Period2y,
		Period5y, Period10y, PeriodYtd, PeriodMax:
		return true
	}
	return false
}

// Start returns the first instant of the window ending at end. The zero
// time is returned for PeriodMax and for invalid periods.
func (p Period) Start(end time.Time) time.Time {
	switch p {
	case Period1mo:
		return end.AddDate(0, -1, 0)
	case Period3mo:
		return end.AddDate(0, -3, 0)
	case Period6mo:
		return end.AddDate(0, -6, 0)
	case Period1y:
		return end.AddDate(-1, 0, 0)
	case Period2y:
		return end.AddDate(-2, 0, 0)
	case Period5y:
		return end.AddDate(-5, 0, 0)
	case Period10y:
		return end.AddDate(-10, 0, 0)
	case PeriodYtd:
		return time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location())
	}
	return time.Time{}
}
