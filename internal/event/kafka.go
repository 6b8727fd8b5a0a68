package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sommelier-srv/pkg/kafka"
	"sommelier-srv/pkg/log"

	"github.com/google/uuid"
)

type kafkaPublisher struct {
	producer kafka.IProducer
	l        log.Logger
	now      func() time.Time
}

// NewKafkaPublisher publishes events as JSON to the producer's topic.
func NewKafkaPublisher(producer kafka.IProducer, l log.Logger) Publisher {
	return &kafkaPublisher{producer: producer, l: l, now: time.Now}
}

func (p *kafkaPublisher) Publish(ctx context.Context, evt Event) error {
	if evt.Type == "" {
		return ErrTypeRequired
	}
	if evt.UserID == "" {
		return ErrUserIDRequired
	}
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = p.now().UTC()
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.Type, err)
	}

	if err := p.producer.Publish([]byte(evt.UserID), value); err != nil {
		p.l.Warnf(ctx, "event.kafka.Publish: %s for user %s failed: %v", evt.Type, evt.UserID, err)
		return err
	}
	p.l.Debugf(ctx, "event.kafka.Publish: %s %s", evt.Type, evt.ID)
	return nil
}
