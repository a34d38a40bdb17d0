package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Capability is a permission checked by the authorization gate before an operation runs.
type Capability string

const (
	CapRegisterBusiness Capability = "business:register"
	CapVerifyBusiness   Capability = "business:verify"
	CapDecideLink       Capability = "recruiter_link:decide"
	CapRequestLink      Capability = "recruiter_link:request"
	CapPostJob          Capability = "job:post"
	CapDecideJob        Capability = "job:decide"
	CapApply            Capability = "application:apply"
	CapWithdraw         Capability = "application:withdraw"
	CapManagePipeline   Capability = "application:manage"
	CapViewAudit        Capability = "audit:view"
)

var roleCapabilities = map[Role][]Capability{
	RoleJobseeker: {CapApply, CapWithdraw},
	RoleRecruiter: {CapRequestLink, CapPostJob, CapManagePipeline},
	RoleBusiness:  {CapRegisterBusiness, CapDecideLink, CapDecideJob},
	RoleAdmin:     {CapVerifyBusiness, CapViewAudit},
}

// Actor is the authenticated caller of an operation, with its role resolved from the Directory.
type Actor struct {
	AccountID uuid.UUID
	Role      Role
}

// Can reports whether the actor's role grants the capability.
func (a Actor) Can(c Capability) bool {
	return slices.Contains(roleCapabilities[a.Role], c)
}

// IsAdmin reports whether the actor is a platform admin.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
