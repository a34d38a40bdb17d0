package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a state change on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// StatusChange is the Changes payload for a status transition.
func StatusChange[S ~string](from, to S) map[string]any {
	return map[string]any{
		"status": map[string]any{"old": string(from), "new": string(to)},
	}
}
