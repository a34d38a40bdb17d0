package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recruiter link actions.
const (
	LinkActionApprove = "approve"
	LinkActionReject  = "reject"
	LinkActionUnlink  = "unlink"
	LinkActionReset   = "reset"
)

var linkTransitions = map[string]transitionRule[LinkStatus]{
	LinkActionApprove: {from: []LinkStatus{LinkStatusPending}, to: LinkStatusApproved},
	LinkActionReject:  {from: []LinkStatus{LinkStatusPending}, to: LinkStatusRejected},
	LinkActionUnlink:  {from: []LinkStatus{LinkStatusApproved}, to: LinkStatusUnlinked},
	LinkActionReset:   {from: []LinkStatus{LinkStatusApproved}, to: LinkStatusPending},
}

// RecruiterLink is the approval relationship between a recruiter and a business.
type RecruiterLink struct {
	ID           uuid.UUID
	RecruiterID  uuid.UUID
	BusinessID   uuid.UUID
	Status       LinkStatus
	StatusReason *string
	Version      int
	RequestedAt  time.Time
	UpdatedAt    time.Time
}

// LinkReset reports the move the business revoke cascade applies to every
// link of the business, as declared by the reset rule.
func LinkReset() (from, to LinkStatus) {
	rule := linkTransitions[LinkActionReset]
	return rule.from[0], rule.to
}

// Transition returns the status the action leads to from the current status.
func (l *RecruiterLink) Transition(action string) (LinkStatus, error) {
	return checkTransition(EntityTypeRecruiterLink, action, l.Status, LinkStatusPending, linkTransitions)
}
