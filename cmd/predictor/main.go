package main

import (
	"os"

	"stock-price-predictor/cmd/predictor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
