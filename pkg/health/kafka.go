package health

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type KafkaChecker struct {
	brokers []string
}

func NewKafkaChecker(brokers []string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers}
}

func (c *KafkaChecker) Name() string {
	return "kafka"
}

// Check is up as soon as one broker accepts a connection.
func (c *KafkaChecker) Check(ctx context.Context) Result {
	if len(c.brokers) == 0 {
		return Down("no brokers configured")
	}
	var lastErr error
	for _, broker := range c.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err == nil {
			_ = conn.Close()
			return Up()
		}
		lastErr = err
	}
	return Down(fmt.Sprintf("all brokers unreachable: %v", lastErr))
}
