package kafka

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-price-predictor/internal/config"
)

// closedAddr returns a local address nothing is listening on.
func closedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestEnsureTopicDialFailure(t *testing.T) {
	addr := closedAddr(t)
	cfg := config.KafkaConfig{BrokerURL: addr, Topic: "predictions", Partitions: 1, ReplicationFactor: 1}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := EnsureTopic(ctx, cfg)

	assert.ErrorContains(t, err, "dial kafka broker "+addr)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestEnsureTopicCancelledContext(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = EnsureTopic(ctx, config.KafkaConfig{
		BrokerURL: l.Addr().String(), Topic: "predictions", Partitions: 1, ReplicationFactor: 1,
	})

	assert.ErrorContains(t, err, "dial kafka broker")
}

func TestEnsureTopicRequiresBroker(t *testing.T) {
	err := EnsureTopic(context.Background(), config.KafkaConfig{Topic: "predictions"})
	assert.EqualError(t, err, "kafka broker url is empty")
}
