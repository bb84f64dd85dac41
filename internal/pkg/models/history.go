package models

import "time"

// CompletedRide is one row of the local ride archive. The archiver writes
// it from the completion event; the history screens read it back without
// touching the backend of record.
type CompletedRide struct {
	ID          string    `json:"id" db:"id"`
	RequestID   string    `json:"request_id" db:"request_id"`
	RequesterID string    `json:"requester_id" db:"requester_id"`
	ProviderID  string    `json:"provider_id" db:"provider_id"`
	DistanceKm  float64   `json:"distance_km" db:"distance_km"`
	Price       float64   `json:"price" db:"price"`
	Destination string    `json:"destination" db:"destination"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
}
