package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"stock-price-predictor/internal/models"
)

const (
	ProviderYahoo = "yahoo"
	ProviderCSV   = "csv"
)

// Config is the top-level struct that holds all configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	DataSource DataSourceConfig `yaml:"data_source"`
	Recorder   RecorderConfig   `yaml:"recorder"`
	Kafka      KafkaConfig      `yaml:"kafka"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// RequestTimeout of zero disables the timeout middleware.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	GinMode        string        `yaml:"gin_mode"`
}

// DataSourceConfig selects where historical prices come from.
type DataSourceConfig struct {
	Provider string        `yaml:"provider"`
	BaseURL  string        `yaml:"base_url"`
	Period   models.Period `yaml:"period"`
	Proxy    string        `yaml:"proxy"`
	Timeout  time.Duration `yaml:"timeout"`
	CSVDir   string        `yaml:"csv_dir"`

	// RawPrices skips split and dividend adjustment of Yahoo bars.
	RawPrices bool `yaml:"raw_prices"`
}

type RecorderConfig struct {
	SQLitePath string      `yaml:"sqlite_path"`
	MongoDB    MongoConfig `yaml:"mongodb"`
}

// MongoConfig holds the configuration for the MongoDB audit collection.
type MongoConfig struct {
	URL            string `yaml:"url"`
	DatabaseName   string `yaml:"database_name"`
	CollectionName string `yaml:"collection_name"`
}

// KafkaConfig holds the configuration for the Kafka connection.
type KafkaConfig struct {
	BrokerURL         string `yaml:"broker_url"`
	Topic             string `yaml:"topic"`
	Partitions        int    `yaml:"partitions"`
	ReplicationFactor int    `yaml:"replication_factor"`
}

// Load reads the configuration file from the given path, applies
// environment overrides (a .env file in the working directory is honoured)
// and fills in defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = "0.0.0.0:" + v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.GinMode = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		c.DataSource.Provider = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		c.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_PERIOD"); v != "" {
		c.DataSource.Period = models.Period(v)
	}
	if v := os.Getenv("DATA_CSV_DIR"); v != "" {
		c.DataSource.CSVDir = v
	}
	if v := os.Getenv("DATA_RAW_PRICES"); v != "" {
		if raw, err := strconv.ParseBool(v); err == nil {
			c.DataSource.RawPrices = raw
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.DataSource.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Recorder.SQLitePath = v
	}
	if v := os.Getenv("MONGO_URL"); v != "" {
		c.Recorder.MongoDB.URL = v
	}
	if v := os.Getenv("KAFKA_BROKER_URL"); v != "" {
		c.Kafka.BrokerURL = v
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "0.0.0.0:5000"
	}
	if c.Server.GinMode == "" {
		c.Server.GinMode = "release"
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = ProviderYahoo
	}
	if c.DataSource.BaseURL == "" {
		c.DataSource.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.DataSource.Period == "" {
		c.DataSource.Period = models.DefaultPeriod
	}
	if c.DataSource.Timeout == 0 {
		c.DataSource.Timeout = 30 * time.Second
	}
	if c.Recorder.MongoDB.DatabaseName == "" {
		c.Recorder.MongoDB.DatabaseName = "stockPredictor"
	}
	if c.Recorder.MongoDB.CollectionName == "" {
		c.Recorder.MongoDB.CollectionName = "predictions"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "predictions"
	}
	if c.Kafka.Partitions == 0 {
		c.Kafka.Partitions = 1
	}
	if c.Kafka.ReplicationFactor == 0 {
		c.Kafka.ReplicationFactor = 1
	}
}

// Validate checks that the configuration can be served.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case ProviderYahoo:
		if c.DataSource.BaseURL == "" {
			return errors.New("data_source.base_url is required for the yahoo provider")
		}
	case ProviderCSV:
		if c.DataSource.CSVDir == "" {
			return errors.New("data_source.csv_dir is required for the csv provider")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if !c.DataSource.Period.Valid() {
		return fmt.Errorf("data_source.period %q is not a valid period", c.DataSource.Period)
	}
	if c.DataSource.Timeout < 0 {
		return errors.New("data_source.timeout must not be negative")
	}
	if c.Server.RequestTimeout < 0 {
		return errors.New("server.request_timeout must not be negative")
	}
	if c.Kafka.Partitions < 1 {
		return errors.New("kafka.partitions must be at least 1")
	}
	if c.Kafka.ReplicationFactor < 1 {
		return errors.New("kafka.replication_factor must be at least 1")
	}
	return nil
}
