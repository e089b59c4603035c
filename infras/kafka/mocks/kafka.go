package mocks

import (
	"context"

	"dronline/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
)

type clientImpl struct {
}

// SendMessages implements kafka.Client.
func (c *clientImpl) SendMessages(_ context.Context, _ string, _ ...kafka.Message) error {
	return nil
}

// Consume implements kafka.Client.
func (c *clientImpl) Consume(_ context.Context, _, _ string, _ func(message kafkaGo.Message)) {
}

// Reader implements kafka.Client.
func (c *clientImpl) Reader(_, _ string) *kafkaGo.Reader {
	return nil
}

func NewClient() kafka.Client {
	return &clientImpl{}
}
