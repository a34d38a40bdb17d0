package application

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

const maxSkillLength = 100

// ApplyInput holds the parameters of a job application.
type ApplyInput struct {
	JobID          uuid.UUID
	CoverLetter    string
	SelectedSkills []string
}

// Validate checks all fields against the limits and collects all errors.
func (i ApplyInput) Validate(l Limits) error {
	var errs []domain.FieldError

	if i.JobID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "required"})
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(i.CoverLetter)); n > l.MaxCoverLetterChars {
		errs = append(errs, domain.FieldError{Field: "cover_letter", Message: fmt.Sprintf("max %d characters", l.MaxCoverLetterChars)})
	}

	skills := i.skills()
	if len(skills) > l.MaxSelectedSkills {
		errs = append(errs, domain.FieldError{Field: "selected_skills", Message: fmt.Sprintf("max %d skills", l.MaxSelectedSkills)})
	}
	for _, s := range skills {
		if utf8.RuneCountInString(s) > maxSkillLength {
			errs = append(errs, domain.FieldError{Field: "selected_skills", Message: fmt.Sprintf("each skill max %d characters", maxSkillLength)})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// skills returns the trimmed, non-empty skills with duplicates removed, in input order.
func (i ApplyInput) skills() []string {
	out := make([]string, 0, len(i.SelectedSkills))
	seen := make(map[string]struct{}, len(i.SelectedSkills))
	for _, s := range i.SelectedSkills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// DecisionInput holds the parameters of a pipeline move or a withdrawal.
type DecisionInput struct {
	ApplicationID   uuid.UUID
	Reason          *string
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i DecisionInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
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

// RoundResultInput holds the parameters of a round result.
type RoundResultInput struct {
	ApplicationID uuid.UUID
	RoundNumber   int
	Result        domain.RoundResult
	Note          *string
	AdvanceToNext bool
}

// Validate checks all fields and collects all errors.
func (i RoundResultInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if i.RoundNumber < 0 {
		errs = append(errs, domain.FieldError{Field: "round_number", Message: "must be non-negative"})
	}
	if !i.Result.IsValid() {
		errs = append(errs, domain.FieldError{Field: "result", Message: "must be one of scheduled, pending, passed, failed"})
	}
	if i.Note != nil && len(*i.Note) > 2000 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
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
