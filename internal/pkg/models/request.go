package models

import (
	"strings"
	"time"

	"github.com/guinchoja/backend/internal/pkg/constants"
)

// RequestStatus represents the lifecycle state of a service request as the
// backend of record reports it.
type RequestStatus string

const (
	StatusPending   RequestStatus = constants.StatusPendente
	StatusAccepted  RequestStatus = constants.StatusAceite
	StatusRejected  RequestStatus = constants.StatusRecusado
	StatusCancelled RequestStatus = constants.StatusCancelada
	StatusInTransit RequestStatus = constants.StatusEmAndamento
	StatusCompleted RequestStatus = constants.StatusFinalizada
	StatusUnknown   RequestStatus = ""
)

// ParseStatus normalizes a wire status string. The backend does not enforce a
// strict enumeration, so anything unrecognized maps to StatusUnknown rather
// than failing the caller.
func ParseStatus(s string) RequestStatus {
	switch strings.TrimSpace(s) {
	case constants.StatusPendente:
		return StatusPending
	case constants.StatusAceite:
		return StatusAccepted
	case constants.StatusRecusado:
		return StatusRejected
	case constants.StatusCancelada:
		return StatusCancelled
	case constants.StatusEmAndamento:
		return StatusInTransit
	case constants.StatusFinalizada, constants.StatusFinalizado:
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// IsTerminal reports whether no further transitions are accepted from s.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Actor identifies which party may cause a transition.
type Actor string

const (
	ActorRequester Actor = "requester"
	ActorProvider  Actor = "provider"
)

type transition struct {
	to    RequestStatus
	actor Actor
}

// transitions is the legal transition table. The backend of record is the
// authority on preconditions (stale state, validation codes); this table is
// what the relay checks before it even bothers calling out.
var transitions = map[RequestStatus][]transition{
	StatusPending: {
		{StatusAccepted, ActorProvider},
		{StatusRejected, ActorProvider},
		{StatusCancelled, ActorRequester},
	},
	StatusAccepted: {
		{StatusInTransit, ActorProvider},
		{StatusCancelled, ActorRequester},
	},
	StatusInTransit: {
		{StatusCompleted, ActorProvider},
	},
}

// CanTransition reports whether moving from one status to another is legal at
// all, regardless of who asks.
func CanTransition(from, to RequestStatus) bool {
	for _, t := range transitions[from] {
		if t.to == to {
			return true
		}
	}
	return false
}

// CanTransitionBy reports whether the given actor may cause the transition.
func CanTransitionBy(from, to RequestStatus, actor Actor) bool {
	for _, t := range transitions[from] {
		if t.to == to && t.actor == actor {
			return true
		}
	}
	return false
}

// ServiceRequest is the lifecycle entity tracking one assistance episode. The
// backend exposes it at two granularities (pre-request and merged corrida);
// both parse into this struct, with the validation codes only populated by
// the corrida endpoint.
type ServiceRequest struct {
	ID                string        `json:"id"`
	RequesterID       string        `json:"requester_id"`
	ProviderID        string        `json:"provider_id,omitempty"`
	RequesterLocation *Location     `json:"requester_location,omitempty"`
	ProviderLocation  *Location     `json:"provider_location,omitempty"`
	Destination       *Location     `json:"destination,omitempty"`
	DistanceKm        float64       `json:"distance_km"`
	Price             float64       `json:"price"`
	Status            RequestStatus `json:"status"`
	StartCode         string        `json:"start_code,omitempty"`
	EndCode           string        `json:"end_code,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}
