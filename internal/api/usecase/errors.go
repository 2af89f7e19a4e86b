package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientData = errors.New("not enough historical data")
	ErrNonFinite        = errors.New("prediction is not a finite number")
)

// InsufficientDataError reports a history too short to fit a model on.
type InsufficientDataError struct {
	Ticker string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("Not enough historical data for ticker: %s", e.Ticker)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}
