package events

import "time"

// Event is the base interface for all corporation events.
type Event interface {
	// Type returns the event type as a string for filtering and logging
	Type() string
	// Timestamp returns when the event occurred
	Timestamp() time.Time
	// CorporationID returns the id of the corporation this event belongs to
	CorporationID() string
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Corp      string    `json:"corporation_id"`
}

// Type implements Event.
func (e BaseEvent) Type() string { return e.EventType }

// Timestamp implements Event.
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// CorporationID implements Event.
func (e BaseEvent) CorporationID() string { return e.Corp }

// EventHandler is a function that processes events.
type EventHandler func(Event)

// Subscriber is an entity that can receive events.
type Subscriber interface {
	// ID returns a unique identifier for this subscriber
	ID() string
	// HandleEvent processes an event
	HandleEvent(Event)
	// InterestedIn returns true if the subscriber wants this event type
	InterestedIn(eventType string) bool
}

// Publisher is the interface the action layer publishes through.
type Publisher interface {
	Publish(Event)
}
