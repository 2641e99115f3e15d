package events

import (
	"context"
	"encoding/json"

	"storefront/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.EventPublisher = (*LogPublisher)(nil)

// LogPublisher is used when no broker is configured. It only logs.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, events ...ports.Event) error {
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return err
		}
		p.logger.Info("event published",
			zap.String("topic", e.Topic()),
			zap.String("key", e.Key()),
			zap.ByteString("payload", payload),
		)
	}
	return nil
}
