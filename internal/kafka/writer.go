package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"stock-price-predictor/internal/config"
	"stock-price-predictor/internal/models"
)

// NewWriter returns a writer for the configured topic that keeps messages of
// one ticker on one partition. Writes are asynchronous: once the topic's
// partitions are known WriteMessages only enqueues, and delivery failures are
// reported through logDelivery. The partition lookup is bounded by the
// transport's dial timeout.
func NewWriter(cfg config.KafkaConfig) *kafkaGo.Writer {
	return &kafkaGo.Writer{
		Addr:         kafkaGo.TCP(cfg.BrokerURL),
		Topic:        cfg.Topic,
		Balancer:     &kafkaGo.Hash{},
		RequiredAcks: kafkaGo.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  3,
		WriteTimeout: 5 * time.Second,
		Async:        true,
		Completion:   logDelivery,
		Transport:    &kafkaGo.Transport{DialTimeout: time.Second},
	}
}

func logDelivery(messages []kafkaGo.Message, err error) {
	if err == nil {
		return
	}
	for _, m := range messages {
		log.Printf("Could not publish prediction for %s to %s: %v", m.Key, m.Topic, err)
	}
}

// PredictionMessage encodes a prediction record keyed by ticker.
func PredictionMessage(rec *models.PredictionRecord) (kafkaGo.Message, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("encode prediction %s: %w", rec.Id, err)
	}
	return kafkaGo.Message{
		Key:   []byte(rec.Ticker),
		Value: value,
		Time:  rec.CreatedAt,
	}, nil
}
