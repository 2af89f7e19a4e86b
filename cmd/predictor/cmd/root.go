package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "predictor",
	Short: "Predict a stock's closing price from its open, high and low",
	Long: `Predictor fits a linear regression of close on (open, high, low) over
about a year of daily history for a ticker and applies it to a candidate
day's prices.

It can run as an HTTP service exposing POST /predict, or answer a single
prediction from the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.yml", "path to YAML config file")
}
