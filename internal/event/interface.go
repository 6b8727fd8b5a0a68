package event

import "context"

// Publisher emits domain events. Delivery is best effort: callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}
