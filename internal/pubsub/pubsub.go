// Package pubsub fans out editor events (log lines, config reloads) to
// any number of subscribers without ever blocking the publisher.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened.
type EventType string

const (
	// LogEntry carries one formatted debug log line.
	LogEntry EventType = "log.entry"
	// ConfigReloaded carries a freshly loaded configuration.
	ConfigReloaded EventType = "config.reloaded"
	// ConfigFailed carries a configuration that could not be loaded.
	ConfigFailed EventType = "config.failed"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Err       error
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}
