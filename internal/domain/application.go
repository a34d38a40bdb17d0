package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application actions.
const (
	ApplicationActionReview    = "review"
	ApplicationActionShortlist = "shortlist"
	ApplicationActionReject    = "reject"
	ApplicationActionWithdraw  = "withdraw"
	ApplicationActionRound     = "update_round"
)

var nonTerminalApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusUnderReview,
	ApplicationStatusShortlisted,
	ApplicationStatusRoundUpdate,
}

var applicationTransitions = map[string]transitionRule[ApplicationStatus]{
	ApplicationActionReview: {
		from: []ApplicationStatus{ApplicationStatusApplied},
		to:   ApplicationStatusUnderReview,
	},
	ApplicationActionShortlist: {
		from: []ApplicationStatus{ApplicationStatusApplied, ApplicationStatusUnderReview},
		to:   ApplicationStatusShortlisted,
	},
	ApplicationActionReject:   {from: nonTerminalApplicationStatuses, to: ApplicationStatusRejected},
	ApplicationActionWithdraw: {from: nonTerminalApplicationStatuses, to: ApplicationStatusWithdrawn},
}

// Application is a jobseeker's candidacy for a job.
type Application struct {
	ID             uuid.UUID
	JobID          uuid.UUID
	JobseekerID    uuid.UUID
	Status         ApplicationStatus
	CurrentRound   int
	CoverLetter    string
	SelectedSkills []string
	Profile        ProfileSnapshot
	StatusReason   *string
	RoundLog       []RoundUpdate
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RoundUpdate is one append-only entry of an application's round log.
type RoundUpdate struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	RoundNumber   int
	Result        RoundResult
	Note          *string
	RecordedBy    uuid.UUID
	RecordedAt    time.Time
}

// RoundOutcome is the state an application moves to after a round result.
type RoundOutcome struct {
	Status       ApplicationStatus
	CurrentRound int
}

// Transition returns the status the action leads to from the current status.
// Every action on a finished application fails with ErrTerminalState.
func (a *Application) Transition(action string) (ApplicationStatus, error) {
	if a.Status.IsTerminal() {
		return a.Status, NewTransitionError(EntityTypeApplication, string(a.Status), action, ErrTerminalState)
	}
	return checkTransition(EntityTypeApplication, action, a.Status, ApplicationStatusApplied, applicationTransitions)
}

// ApplyRoundResult computes the outcome of recording result for roundNumber
// on a job that defines totalRounds rounds. The application is not modified.
func (a *Application) ApplyRoundResult(totalRounds, roundNumber int, result RoundResult, advance bool) (RoundOutcome, error) {
	current := RoundOutcome{Status: a.Status, CurrentRound: a.CurrentRound}

	if a.Status.IsTerminal() {
		return current, NewTransitionError(EntityTypeApplication, string(a.Status), ApplicationActionRound, ErrTerminalState)
	}
	if a.Status != ApplicationStatusShortlisted && a.Status != ApplicationStatusRoundUpdate {
		return current, NewTransitionError(EntityTypeApplication, string(a.Status), ApplicationActionRound, ErrPreconditionFailed)
	}
	if roundNumber != a.CurrentRound {
		return current, NewTransitionError(EntityTypeApplication, string(a.Status), ApplicationActionRound, ErrStaleRound)
	}

	switch result {
	case RoundResultFailed:
		return RoundOutcome{Status: ApplicationStatusRejected, CurrentRound: a.CurrentRound}, nil
	case RoundResultPassed:
		if totalRounds == 0 || roundNumber >= totalRounds {
			return RoundOutcome{Status: ApplicationStatusHired, CurrentRound: a.CurrentRound}, nil
		}
		if advance {
			return RoundOutcome{Status: ApplicationStatusRoundUpdate, CurrentRound: a.CurrentRound + 1}, nil
		}
		return RoundOutcome{Status: ApplicationStatusRoundUpdate, CurrentRound: a.CurrentRound}, nil
	case RoundResultScheduled, RoundResultPending:
		return current, nil
	}
	return current, NewValidationError("result", "unknown round result")
}
