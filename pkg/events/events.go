package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MATCH_RUN_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeMatchRunCompleted = "MATCH_RUN_COMPLETED"
	TypeMatchRunFailed    = "MATCH_RUN_FAILED"
	TypeCatalogIndexed    = "CATALOG_INDEXED"
)

func NewMatchRunCompleted(farmerId string, matches int) BaseEvent {
	return BaseEvent{
		Type: TypeMatchRunCompleted,
		Data: map[string]interface{}{
			"farmer_id": farmerId,
			"matches":   matches,
		},
		OccurredAt: time.Now(),
	}
}

func NewMatchRunFailed(farmerId, stage, kind, reason string) BaseEvent {
	return BaseEvent{
		Type: TypeMatchRunFailed,
		Data: map[string]interface{}{
			"farmer_id": farmerId,
			"stage":     stage,
			"kind":      kind,
			"reason":    reason,
		},
		OccurredAt: time.Now(),
	}
}

func NewCatalogIndexed(schemeName string, chunks int) BaseEvent {
	return BaseEvent{
		Type: TypeCatalogIndexed,
		Data: map[string]interface{}{
			"scheme_name": schemeName,
			"chunks":      chunks,
		},
		OccurredAt: time.Now(),
	}
}
