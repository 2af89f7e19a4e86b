package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stock-price-predictor/internal/api/dto"
	"stock-price-predictor/internal/api/repo"
	"stock-price-predictor/internal/api/usecase"
	"stock-price-predictor/internal/config"
	"stock-price-predictor/internal/models"
	"stock-price-predictor/internal/recorder/mocks"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := usecase.NewUsecase(repo.NewCSVRepo("testdata"), nil, models.DefaultPeriod)
	return NewRouter(uc, config.ServerConfig{})
}

func doPredict(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPredictEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name               string
		body               string
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:               "missing key is reported before anything else",
			body:               `{"ticker":"ACME","open":"10","low":"9"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Missing key: high",
		},
		{
			name:               "non numeric open with enough history",
			body:               `{"ticker":"ACME","open":"not-a-number","high":"12","low":"9"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Open, high, and low prices must be numeric.",
		},
		{
			name:               "short history",
			body:               `{"ticker":"TINY","open":"10","high":"12","low":"9"}`,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Not enough historical data for ticker: TINY",
		},
		{
			name:               "short history wins over non numeric price",
			body:               `{"ticker":"TINY","open":"abc","high":"12","low":"9"}`,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Not enough historical data for ticker: TINY",
		},
		{
			name:               "unknown ticker has no history",
			body:               `{"ticker":"NOPE","open":"10","high":"12","low":"9"}`,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Not enough historical data for ticker: NOPE",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doPredict(router, tt.body)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
			var res dto.ErrorRes
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.expectedError, res.Error)
		})
	}
}

func TestPredictEndToEndSuccess(t *testing.T) {
	router := newTestRouter(t)
	body := `{"ticker":"ACME","open":"10","high":"12","low":"9"}`

	first := doPredict(router, body)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())

	var res dto.PredictRes
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &res))
	assert.Equal(t, "ACME", res.Ticker)
	assert.False(t, math.IsNaN(res.PredictedClose) || math.IsInf(res.PredictedClose, 0))
	// The fixture's closes follow 1 + 0.5*open + 0.3*high + 0.2*low.
	assert.InDelta(t, 11.4, res.PredictedClose, 1e-6)

	// Same history, same request: byte-identical responses.
	for i := 0; i < 3; i++ {
		again := doPredict(router, body)
		require.Equal(t, http.StatusOK, again.Code)
		assert.Equal(t, first.Body.String(), again.Body.String())
	}
}

func TestPredictRecorderFailureDoesNotChangeResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := mocks.NewRecorder(t)
	rec.On("RecordPrediction", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewUsecase(repo.NewCSVRepo("testdata"), rec, models.DefaultPeriod)
	router := NewRouter(uc, config.ServerConfig{})

	w := doPredict(router, `{"ticker":"ACME","open":10,"high":12,"low":9}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var res dto.PredictRes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.InDelta(t, 11.4, res.PredictedClose, 1e-6)
}

func TestRouterMethodsAndCORS(t *testing.T) {
	router := newTestRouter(t)

	t.Run("GET is not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/predict", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	})

	t.Run("unknown path", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/train", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cross origin POST", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/predict",
			strings.NewReader(`{"ticker":"ACME","open":"10","high":"12","low":"9"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "http://dashboard.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
		req.Header.Set("Origin", "http://dashboard.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}

func TestNewRouterWithTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewUsecase(blockingRepo{}, nil, models.DefaultPeriod)
	router := NewRouter(uc, config.ServerConfig{RequestTimeout: 20 * time.Millisecond})

	for i := 0; i < 20; i++ {
		w := doPredict(router, `{"ticker":"ACME","open":"10","high":"12","low":"9"}`)

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.JSONEq(t, `{"error":"request timed out"}`, w.Body.String())
	}

}

func TestNewRouterWithTimeoutServesFastRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewUsecase(repo.NewCSVRepo("testdata"), nil, models.DefaultPeriod)
	router := NewRouter(uc, config.ServerConfig{RequestTimeout: 5 * time.Second})

	w := doPredict(router, `{"ticker":"ACME","open":"10","high":"12","low":"9"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var res dto.PredictRes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.InDelta(t, 11.4, res.PredictedClose, 1e-6)
}

// blockingRepo waits for the request context to end.
type blockingRepo struct{}

func (blockingRepo) FetchHistory(ctx context.Context, _ string, _ models.Period) ([]models.PriceRecord, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
