package job

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// RoundInput describes one round of a new posting. Order follows slice position.
type RoundInput struct {
	Type  domain.RoundType
	Title string
}

// CreateInput holds the parameters for posting a job.
type CreateInput struct {
	BusinessID  uuid.UUID
	Title       string
	Description string
	Location    *string
	Rounds      []RoundInput
}

// Validate checks all fields and collects all errors. maxRounds of zero allows no rounds.
func (i CreateInput) Validate(maxRounds int) error {
	var errs []domain.FieldError

	if i.BusinessID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "business_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(description) > 10000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	if i.Location != nil && len(strings.TrimSpace(*i.Location)) > 200 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 200 characters"})
	}

	if len(i.Rounds) > maxRounds {
		errs = append(errs, domain.FieldError{Field: "rounds", Message: fmt.Sprintf("max %d rounds", maxRounds)})
	}
	for idx, r := range i.Rounds {
		field := fmt.Sprintf("rounds[%d]", idx)
		if !r.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".type", Message: "unknown round type"})
		}
		rt := strings.TrimSpace(r.Title)
		if rt == "" {
			errs = append(errs, domain.FieldError{Field: field + ".title", Message: "required"})
		}
		if len(rt) > 200 {
			errs = append(errs, domain.FieldError{Field: field + ".title", Message: "max 200 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// rounds numbers the round inputs 1..n in the order given.
func (i CreateInput) rounds() []domain.Round {
	out := make([]domain.Round, len(i.Rounds))
	for idx, r := range i.Rounds {
		out[idx] = domain.Round{Order: idx + 1, Type: r.Type, Title: strings.TrimSpace(r.Title)}
	}
	return out
}

// DecisionInput holds the parameters of a business owner's decision on a posting.
type DecisionInput struct {
	JobID           uuid.UUID
	Reason          *string
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i DecisionInput) Validate() error {
	var errs []domain.FieldError

	if i.JobID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "required"})
	}
	if i.Reason != nil && len(*i.Reason) > 1000 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination for job listings.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return defaultListLimit
	}
	return i.Limit
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
