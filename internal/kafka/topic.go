package kafka

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"

	kafkaGo "github.com/segmentio/kafka-go"

	"stock-price-predictor/internal/config"
)

// EnsureTopic creates the prediction audit topic on the cluster controller.
// Every dial is bounded by ctx. A topic that already exists is left as is.
func EnsureTopic(ctx context.Context, cfg config.KafkaConfig) error {
	if cfg.BrokerURL == "" {
		return errors.New("kafka broker url is empty")
	}

	conn, err := kafkaGo.DialContext(ctx, "tcp", cfg.BrokerURL)
	if err != nil {
		return fmt.Errorf("dial kafka broker %s: %w", cfg.BrokerURL, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set broker deadline: %w", err)
		}
	}

	// Topic creation must go through the controller broker.
	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("find kafka controller: %w", err)
	}
	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))

	ctrl, err := kafkaGo.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial kafka controller %s: %w", addr, err)
	}
	defer ctrl.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := ctrl.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set controller deadline: %w", err)
		}
	}

	err = ctrl.CreateTopics(kafkaGo.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     cfg.Partitions,
		ReplicationFactor: cfg.ReplicationFactor,
	})
	if err != nil {
		return fmt.Errorf("create topic %s: %w", cfg.Topic, err)
	}

	log.Printf("Kafka topic '%s' is ready (%d partitions, replication %d)",
		cfg.Topic, cfg.Partitions, cfg.ReplicationFactor)
	return nil
}
