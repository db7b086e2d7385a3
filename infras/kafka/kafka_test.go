package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/config"
	"innkeep/infras/kafka"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.ConsumerGroup = "innkeep-workers"

	return cfg
}

func TestReader(t *testing.T) {
	client := kafka.New(newTestConfig())

	t.Run("falls back to the configured consumer group", func(t *testing.T) {
		reader := client.Reader("", "booking-events")
		assert.NotNil(t, reader)

		defer reader.Close()

		assert.Equal(t, "innkeep-workers", reader.Config().GroupID)
		assert.Equal(t, "booking-events", reader.Config().Topic)
	})

	t.Run("explicit consumer group wins", func(t *testing.T) {
		reader := client.Reader("email-senders", "booking-events")
		assert.NotNil(t, reader)

		defer reader.Close()

		assert.Equal(t, "email-senders", reader.Config().GroupID)
	})

	t.Run("empty topic yields no reader", func(t *testing.T) {
		assert.Nil(t, client.Reader("email-senders", ""))
	})
}
