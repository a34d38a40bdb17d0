package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business actions.
const (
	BusinessActionApprove = "approve"
	BusinessActionReject  = "reject"
	BusinessActionRevoke  = "revoke"
)

var businessTransitions = map[string]transitionRule[BusinessStatus]{
	BusinessActionApprove: {from: []BusinessStatus{BusinessStatusPending}, to: BusinessStatusApproved},
	BusinessActionReject:  {from: []BusinessStatus{BusinessStatusPending}, to: BusinessStatusRejected},
	BusinessActionRevoke:  {from: []BusinessStatus{BusinessStatusApproved}, to: BusinessStatusPending},
}

// Business is the verification profile of a business-role account.
type Business struct {
	ID               uuid.UUID
	OwnerAccountID   uuid.UUID
	Name             string
	Description      *string
	Status           BusinessStatus
	StatusReason     *string
	Version          int
	CreatedAt        time.Time
	LastTransitionAt time.Time
}

// Transition returns the status the action leads to from the current status.
func (b *Business) Transition(action string) (BusinessStatus, error) {
	return checkTransition(EntityTypeBusiness, action, b.Status, BusinessStatusPending, businessTransitions)
}

// IsOwnedBy reports whether accountID owns the business.
func (b *Business) IsOwnedBy(accountID uuid.UUID) bool {
	return b.OwnerAccountID == accountID
}
