package models

import "time"

// RequestEvent is the NATS payload published on every lifecycle transition
// the relay observes. The archiver consumes the completed variant; the rest
// exist for ops tooling.
type RequestEvent struct {
	EventID     string        `json:"event_id"`
	RequestID   string        `json:"request_id"`
	RequesterID string        `json:"requester_id"`
	ProviderID  string        `json:"provider_id,omitempty"`
	Status      RequestStatus `json:"status"`
	DistanceKm  float64       `json:"distance_km"`
	Price       float64       `json:"price"`
	Destination string        `json:"destination,omitempty"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// ProviderEvent is published when a provider toggles presence.
type ProviderEvent struct {
	EventID    string    `json:"event_id"`
	ProviderID string    `json:"provider_id"`
	Online     bool      `json:"online"`
	OccurredAt time.Time `json:"occurred_at"`
}
