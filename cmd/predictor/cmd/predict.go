package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/spf13/cobra"

	"stock-price-predictor/internal/api/dto"
	"stock-price-predictor/internal/api/usecase"
	"stock-price-predictor/internal/recorder"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict one closing price and print it as JSON",
	Long: `Train on the ticker's history and print the same JSON body the
service returns for POST /predict. Nothing is recorded.

Example:
  predictor predict --ticker AAPL --open 189.5 --high 191.2 --low 188.7`,
	RunE: runPredict,
}

var (
	pTicker string
	pOpen   float64
	pHigh   float64
	pLow    float64
)

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().StringVarP(&pTicker, "ticker", "t", "", "stock ticker symbol (required)")
	predictCmd.Flags().Float64Var(&pOpen, "open", math.NaN(), "candidate day's open price (required)")
	predictCmd.Flags().Float64Var(&pHigh, "high", math.NaN(), "candidate day's high price (required)")
	predictCmd.Flags().Float64Var(&pLow, "low", math.NaN(), "candidate day's low price (required)")

	for _, name := range []string{"ticker", "open", "high", "low"} {
		predictCmd.MarkFlagRequired(name)
	}
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	features := []float64{pOpen, pHigh, pLow}
	for _, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("open, high, and low prices must be finite numbers")
		}
	}

	uc := usecase.NewUsecase(newRepo(cfg.DataSource), recorder.NewNoopRecorder(), cfg.DataSource.Period)

	model, err := uc.TrainModel(cmd.Context(), pTicker)
	if err != nil {
		return err
	}
	log.Printf("Model for %s: coef=%v intercept=%.6f samples=%d r2=%.4f",
		pTicker, model.Coef, model.Intercept, model.Samples, model.RSquared)

	predicted, err := uc.Predict(cmd.Context(), pTicker, model, features)
	if err != nil {
		return err
	}

	out, err := json.Marshal(dto.PredictRes{Ticker: pTicker, PredictedClose: predicted})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
