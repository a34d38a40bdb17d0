package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrTerminalState      = errors.New("terminal state")
)

// ErrStaleRound is returned when a round update targets a round other than
// the application's current one. It matches ErrConflict via errors.Is.
var ErrStaleRound = fmt.Errorf("stale round: %w", ErrConflict)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError reports a state transition that the current state does not allow.
// Cause is one of ErrPreconditionFailed, ErrTerminalState or ErrConflict.
type TransitionError struct {
	Entity EntityType
	From   string
	Action string
	Cause  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %q: %v", e.Entity, e.Action, e.From, e.Cause)
}

func (e *TransitionError) Unwrap() error { return e.Cause }

// NewTransitionError builds a TransitionError.
func NewTransitionError(entity EntityType, from, action string, cause error) *TransitionError {
	return &TransitionError{Entity: entity, From: from, Action: action, Cause: cause}
}
