package ports

import "context"

// Event is something other systems may want to react to.
type Event interface {
	// Topic names the stream the event goes to, e.g. "order.placed".
	Topic() string
	// Key orders events for the same entity.
	Key() string
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}
