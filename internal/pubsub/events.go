// Package pubsub provides a generic publish/subscribe event system used to
// fan out window lifecycle and log events to the UI loop.
package pubsub

import (
	"context"
	"time"
)

// EventType identifies what happened.
type EventType string

const (
	ShownEvent    EventType = "shown"
	ClosedEvent   EventType = "closed"
	ResolvedEvent EventType = "resolved"
	LoggedEvent   EventType = "logged"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
