package dispatch

import "context"

// DispatchRepo guards the one-open-request-per-requester rule. The backend
// of record enforces it too; the local guard fails the second create fast
// without a round trip.
type DispatchRepo interface {
	// AcquireActive claims the requester's active slot for requestID.
	// Returns false when another request already holds it.
	AcquireActive(ctx context.Context, requesterID, requestID string) (bool, error)

	// RecordActive overwrites the slot with the definitive request id once
	// the backend has assigned one.
	RecordActive(ctx context.Context, requesterID, requestID string) error

	// ActiveRequestID returns the id holding the slot, or "" when free.
	ActiveRequestID(ctx context.Context, requesterID string) (string, error)

	// ReleaseActive frees the requester's slot.
	ReleaseActive(ctx context.Context, requesterID string) error
}
