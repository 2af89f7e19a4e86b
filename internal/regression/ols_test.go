package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds rows whose features are not collinear.
func sample(n int, target func(o, h, l float64) float64) ([][]float64, []float64) {
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		o := 100 + float64(i)
		h := o + 1 + float64(i%3)
		l := o - 1 - float64(i%5)*0.5
		x[i] = []float64{o, h, l}
		y[i] = target(o, h, l)
	}
	return x, y
}

func TestFitRecoversExactModel(t *testing.T) {
	x, y := sample(30, func(o, h, l float64) float64 {
		return 2 + 0.5*o + 0.3*h + 0.2*l
	})

	m, err := Fit(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, m.Coef[0], 1e-8)
	assert.InDelta(t, 0.3, m.Coef[1], 1e-8)
	assert.InDelta(t, 0.2, m.Coef[2], 1e-8)
	assert.InDelta(t, 2, m.Intercept, 1e-6)
	assert.Equal(t, 30, m.Samples)
	assert.InDelta(t, 1, m.RSquared, 1e-9)

	got, err := m.Predict([]float64{10, 12, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2+5+3.6+1.8, got, 1e-6)
}

func TestFitCollinearFeatures(t *testing.T) {
	// high duplicates open, so the design matrix is rank deficient.
	x := make([][]float64, 20)
	y := make([]float64, 20)
	for i := range x {
		o := 50 + float64(i)
		l := o - 1 - float64(i%4)
		x[i] = []float64{o, o, l}
		y[i] = o + l
	}

	m, err := Fit(x, y)
	require.NoError(t, err)

	// Minimum-norm solution splits the weight evenly between the twins.
	assert.InDelta(t, 0.5, m.Coef[0], 1e-8)
	assert.InDelta(t, 0.5, m.Coef[1], 1e-8)
	assert.InDelta(t, 1, m.Coef[2], 1e-8)

	for i := range x {
		got, err := m.Predict(x[i])
		require.NoError(t, err)
		assert.InDelta(t, y[i], got, 1e-8)
	}
}

func TestFitConstantFeatures(t *testing.T) {
	x := [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	y := []float64{3, 4, 5}

	m, err := Fit(x, y)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, m.Coef)
	assert.InDelta(t, 4, m.Intercept, 1e-12)
}

func TestFitIsDeterministic(t *testing.T) {
	x, y := sample(40, func(o, h, l float64) float64 {
		return 0.9*o + 0.05*h + 0.04*l + float64(int(o)%7)*0.1
	})

	first, err := Fit(x, y)
	require.NoError(t, err)
	second, err := Fit(x, y)
	require.NoError(t, err)

	a, _ := first.Predict([]float64{10, 12, 9})
	b, _ := second.Predict([]float64{10, 12, 9})
	assert.Equal(t, a, b)
}

func TestFitErrors(t *testing.T) {
	testCases := []struct {
		name        string
		x           [][]float64
		y           []float64
		expectedErr error
	}{
		{
			name:        "no samples",
			x:           nil,
			y:           nil,
			expectedErr: ErrNoSamples,
		},
		{
			name:        "no features",
			x:           [][]float64{{}, {}},
			y:           []float64{1, 2},
			expectedErr: ErrNoFeatures,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Fit(tt.x, tt.y)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	_, err := Fit([][]float64{{1, 2}, {3}}, []float64{1, 2})
	assert.Error(t, err)
	_, err = Fit([][]float64{{1}, {2}}, []float64{1})
	assert.Error(t, err)
}

func TestPredictFeatureSize(t *testing.T) {
	m := &Model{Coef: []float64{1, 2, 3}}
	_, err := m.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, ErrFeatureSize)
}
