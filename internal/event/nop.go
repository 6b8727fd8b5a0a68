package event

import "context"

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event. Used when Kafka is disabled.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(ctx context.Context, evt Event) error {
	return nil
}
