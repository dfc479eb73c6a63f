package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "LOG_INGESTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic wrapper used when reconstructing events off the
// wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string               { return e.Type }
func (e BaseEvent) Payload() map[string]interface{} { return e.Data }
func (e BaseEvent) Timestamp() time.Time            { return e.OccurredAt }

// LogIngested announces a durably persisted log event; consumers run alarm
// evaluation off it.
type LogIngested struct {
	EventId    string
	ProjectId  string
	OccurredAt time.Time
}

func (e LogIngested) EventType() string { return "LOG_INGESTED" }

func (e LogIngested) Payload() map[string]interface{} {
	return map[string]interface{}{
		"eventId":   e.EventId,
		"projectId": e.ProjectId,
	}
}

func (e LogIngested) Timestamp() time.Time { return e.OccurredAt }
