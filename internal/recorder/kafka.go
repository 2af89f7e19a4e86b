package recorder

import (
	"context"
	"fmt"

	kafkaGo "github.com/segmentio/kafka-go"

	"stock-price-predictor/internal/kafka"
	"stock-price-predictor/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// KafkaRecorder publishes every prediction as a JSON message keyed by ticker.
type KafkaRecorder struct {
	w messageWriter
}

func NewKafkaRecorder(w *kafkaGo.Writer) *KafkaRecorder {
	return &KafkaRecorder{w: w}
}

func (r *KafkaRecorder) RecordPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	msg, err := kafka.PredictionMessage(rec)
	if err != nil {
		return err
	}
	if err := r.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish prediction: %w", err)
	}
	return nil
}

func (r *KafkaRecorder) Close() error {
	return r.w.Close()
}
