package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"stock-price-predictor/internal/api"
	"stock-price-predictor/internal/api/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the prediction HTTP service",
	Long: `Serve POST /predict on the configured address (default 0.0.0.0:5000).

Example:
  predictor serve -c config/config.yml
  PORT=8080 DATA_PROVIDER=csv DATA_CSV_DIR=./data predictor serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// - Load Configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.GinMode)

	// - Setup audit recorders
	rec, err := newRecorder(cfg)
	if err != nil {
		return fmt.Errorf("setup recorders: %w", err)
	}
	defer func() {
		if err := rec.Close(); err != nil {
			log.Printf("Error closing recorders: %v", err)
		}
	}()

	// - Setup layers
	rp := newRepo(cfg.DataSource)
	uc := usecase.NewUsecase(rp, rec, cfg.DataSource.Period)
	router := api.NewRouter(uc, cfg.Server)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("Server stopped.")
	return nil
}
