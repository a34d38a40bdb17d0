package business

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

// RegisterInput holds the parameters for registering a business profile.
type RegisterInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DecisionInput holds the parameters of an admin verification decision.
type DecisionInput struct {
	BusinessID      uuid.UUID
	Reason          *string
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i DecisionInput) Validate() error {
	var errs []domain.FieldError

	if i.BusinessID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "business_id", Message: "required"})
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
