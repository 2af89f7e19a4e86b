package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"stock-price-predictor/internal/api/repo"
	"stock-price-predictor/internal/config"
	"stock-price-predictor/internal/kafka"
	mongoGo "stock-price-predictor/internal/mongo"
	"stock-price-predictor/internal/recorder"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newRepo(cfg config.DataSourceConfig) repo.RepoItf {
	if cfg.Provider == config.ProviderCSV {
		log.Printf("Reading price history from %s", cfg.CSVDir)
		return repo.NewCSVRepo(cfg.CSVDir)
	}
	log.Printf("Fetching price history from %s", cfg.BaseURL)
	return repo.NewYahooRepo(cfg.BaseURL, cfg.Proxy, cfg.Timeout, !cfg.RawPrices)
}

// newRecorder opens every configured audit sink. Sinks opened before a
// failure are closed again.
func newRecorder(cfg *config.Config) (recorder.Recorder, error) {
	var sinks recorder.Multi
	fail := func(err error) (recorder.Recorder, error) {
		if cerr := sinks.Close(); cerr != nil {
			log.Printf("Error closing recorders: %v", cerr)
		}
		return nil, err
	}

	// - SQLite
	if cfg.Recorder.SQLitePath != "" {
		r, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath)
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, r)
	}

	// - MongoDB
	if cfg.Recorder.MongoDB.URL != "" {
		client, err := mongoGo.ConnectDB(cfg.Recorder.MongoDB.URL)
		if err != nil {
			return fail(err)
		}
		collection := mongoGo.GetCollection(client, cfg.Recorder.MongoDB.DatabaseName,
			cfg.Recorder.MongoDB.CollectionName)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		sinks = append(sinks, recorder.NewMongoRecorder(ctx, client, collection))
		cancel()
	}

	// - Kafka
	if cfg.Kafka.BrokerURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := kafka.EnsureTopic(ctx, cfg.Kafka)
		cancel()
		if err != nil {
			return fail(fmt.Errorf("ensure kafka topic: %w", err))
		}
		sinks = append(sinks, recorder.NewKafkaRecorder(kafka.NewWriter(cfg.Kafka)))
	}

	switch len(sinks) {
	case 0:
		return recorder.NewNoopRecorder(), nil
	case 1:
		return sinks[0], nil
	}
	return sinks, nil
}
