package domain

import "github.com/google/uuid"

// JobFilter contains filtering/pagination parameters for job listings.
type JobFilter struct {
	BusinessID *uuid.UUID
	PostedBy   *uuid.UUID
	Status     JobStatus
	Limit      int
	Offset     int
}
