package recruiterlink

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

// RequestInput holds the parameters for requesting a link to a business.
type RequestInput struct {
	BusinessID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RequestInput) Validate() error {
	if i.BusinessID == uuid.Nil {
		return domain.NewValidationError("business_id", "required")
	}
	return nil
}

// DecisionInput holds the parameters of a link decision: approve, reject or unlink.
type DecisionInput struct {
	LinkID          uuid.UUID
	Reason          *string
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i DecisionInput) Validate() error {
	var errs []domain.FieldError

	if i.LinkID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "link_id", Message: "required"})
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
