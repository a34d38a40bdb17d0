package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a notification emitted after a committed transition.
type EventType string

const (
	EventBusinessRegistered   EventType = "business.registered"
	EventBusinessApproved     EventType = "business.approved"
	EventBusinessRejected     EventType = "business.rejected"
	EventBusinessRevoked      EventType = "business.revoked"
	EventLinkRequested        EventType = "recruiter_link.requested"
	EventLinkApproved         EventType = "recruiter_link.approved"
	EventLinkRejected         EventType = "recruiter_link.rejected"
	EventLinkUnlinked         EventType = "recruiter_link.unlinked"
	EventLinkReset            EventType = "recruiter_link.reset"
	EventJobCreated           EventType = "job.created"
	EventJobApproved          EventType = "job.approved"
	EventJobRejected          EventType = "job.rejected"
	EventApplicationSubmitted EventType = "application.submitted"
	EventApplicationReviewed  EventType = "application.under_review"
	EventApplicationShortlist EventType = "application.shortlisted"
	EventApplicationRound     EventType = "application.round_updated"
	EventApplicationHired     EventType = "application.hired"
	EventApplicationRejected  EventType = "application.rejected"
	EventApplicationWithdrawn EventType = "application.withdrawn"
)

func (e EventType) String() string { return string(e) }

// Event is a best-effort notification. Delivery failures never affect the transition that produced it.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	EntityType EntityType     `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	ActorID    uuid.UUID      `json:"actor_id"`
	Recipients []uuid.UUID    `json:"recipients,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewEvent builds an Event stamped with a fresh ID and the current time.
func NewEvent(typ EventType, entity EntityType, entityID, actorID uuid.UUID, recipients ...uuid.UUID) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		EntityType: entity,
		EntityID:   entityID,
		ActorID:    actorID,
		Recipients: recipients,
		OccurredAt: time.Now().UTC(),
	}
}

// With adds a payload attribute and returns the event.
func (e Event) With(key string, value any) Event {
	if e.Payload == nil {
		e.Payload = make(map[string]any)
	}
	e.Payload[key] = value
	return e
}
