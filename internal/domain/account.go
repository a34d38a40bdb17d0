package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a Directory record. The core reads accounts but never mutates them.
type Account struct {
	ID          uuid.UUID
	Role        Role
	Email       string
	DisplayName string
	Headline    *string
	Skills      []string
	CreatedAt   time.Time
}

// Snapshot captures the account's profile fields at the given instant.
func (a *Account) Snapshot(at time.Time) ProfileSnapshot {
	skills := make([]string, len(a.Skills))
	copy(skills, a.Skills)
	return ProfileSnapshot{
		DisplayName: a.DisplayName,
		Email:       a.Email,
		Headline:    a.Headline,
		Skills:      skills,
		CapturedAt:  at,
	}
}

// ProfileSnapshot is the immutable copy of an applicant's profile stored on an application.
type ProfileSnapshot struct {
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Headline    *string   `json:"headline,omitempty"`
	Skills      []string  `json:"skills"`
	CapturedAt  time.Time `json:"captured_at"`
}
