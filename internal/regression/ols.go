// Package regression fits ordinary least squares linear models.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoSamples   = errors.New("regression: no samples to fit")
	ErrNoFeatures  = errors.New("regression: samples have no features")
	ErrFactorize   = errors.New("regression: singular value decomposition failed")
	ErrFeatureSize = errors.New("regression: feature count does not match model")
)

// Model is a fitted linear model y = Intercept + Coef·x.
type Model struct {
	Coef      []float64
	Intercept float64
	// Samples is the number of rows the model was fit on.
	Samples int
	// RSquared is the in-sample coefficient of determination.
	RSquared float64
}

// Fit estimates a linear model of y on x by ordinary least squares with an
// intercept. Inputs and target are centred and the centred problem is solved
// through a thin SVD, discarding singular values below eps·max(n,p)·σmax.
// Collinear inputs therefore yield the minimum-norm coefficients instead of
// an error.
func Fit(x [][]float64, y []float64) (*Model, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrNoSamples
	}
	if len(y) != n {
		return nil, fmt.Errorf("regression: %d samples but %d targets", n, len(y))
	}
	p := len(x[0])
	if p == 0 {
		return nil, ErrNoFeatures
	}

	xMean := make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		for i, row := range x {
			if len(row) != p {
				return nil, fmt.Errorf("regression: sample %d has %d features, want %d", i, len(row), p)
			}
			col[i] = row[j]
		}
		xMean[j] = stat.Mean(col, nil)
	}
	yMean := stat.Mean(y, nil)

	a := mat.NewDense(n, p, nil)
	b := mat.NewVecDense(n, nil)
	for i, row := range x {
		for j, v := range row {
			a.Set(i, j, v-xMean[j])
		}
		b.SetVec(i, y[i]-yMean)
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, ErrFactorize
	}

	coef := make([]float64, p)
	rcond := math.Nextafter(1, 2) - 1
	rcond *= float64(max(n, p))
	if rank := svd.Rank(rcond); rank > 0 {
		var w mat.VecDense
		svd.SolveVecTo(&w, b, rank)
		for j := range coef {
			coef[j] = w.AtVec(j)
		}
	}

	m := &Model{
		Coef:      coef,
		Intercept: yMean - floats.Dot(coef, xMean),
		Samples:   n,
	}

	fitted := make([]float64, n)
	for i, row := range x {
		fitted[i] = m.predict(row)
	}
	m.RSquared = stat.RSquaredFrom(fitted, y, nil)
	if math.IsNaN(m.RSquared) {
		// constant target
		m.RSquared = 0
	}

	return m, nil
}

// Predict applies the model to one feature vector.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coef) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureSize, len(features), len(m.Coef))
	}
	return m.predict(features), nil
}

func (m *Model) predict(features []float64) float64 {
	return m.Intercept + floats.Dot(m.Coef, features)
}
