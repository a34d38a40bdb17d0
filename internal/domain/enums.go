package domain

// Role is the immutable role tag of a Directory account.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleBusiness  Role = "business"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleJobseeker, RoleRecruiter, RoleBusiness, RoleAdmin:
		return true
	}
	return false
}

// BusinessStatus is the verification status of a business profile.
type BusinessStatus string

const (
	BusinessStatusPending  BusinessStatus = "pending"
	BusinessStatusApproved BusinessStatus = "approved"
	BusinessStatusRejected BusinessStatus = "rejected"
)

func (s BusinessStatus) String() string { return string(s) }

func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusApproved, BusinessStatusRejected:
		return true
	}
	return false
}

// LinkStatus is the status of a recruiter-to-business link.
// Unlinked is the cleared state left behind by a recruiter-initiated unlink.
type LinkStatus string

const (
	LinkStatusPending  LinkStatus = "pending"
	LinkStatusApproved LinkStatus = "approved"
	LinkStatusRejected LinkStatus = "rejected"
	LinkStatusUnlinked LinkStatus = "unlinked"
)

func (s LinkStatus) String() string { return string(s) }

func (s LinkStatus) IsValid() bool {
	switch s {
	case LinkStatusPending, LinkStatusApproved, LinkStatusRejected, LinkStatusUnlinked:
		return true
	}
	return false
}

// IsActive reports whether the link counts toward the one-active-link-per-recruiter rule.
func (s LinkStatus) IsActive() bool {
	return s == LinkStatusPending || s == LinkStatusApproved
}

// JobStatus is the publication status of a job posting.
type JobStatus string

const (
	JobStatusPendingBusiness  JobStatus = "pending_business"
	JobStatusApproved         JobStatus = "approved"
	JobStatusRejectedBusiness JobStatus = "rejected_business"
)

func (s JobStatus) String() string { return string(s) }

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPendingBusiness, JobStatusApproved, JobStatusRejectedBusiness:
		return true
	}
	return false
}

// ApplicationStatus is the lifecycle status of an application.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRoundUpdate ApplicationStatus = "round_update"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview, ApplicationStatusShortlisted,
		ApplicationStatusRoundUpdate, ApplicationStatusHired, ApplicationStatusRejected,
		ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

// RoundResult is the outcome recorded for a hiring round.
type RoundResult string

const (
	RoundResultScheduled RoundResult = "scheduled"
	RoundResultPending   RoundResult = "pending"
	RoundResultPassed    RoundResult = "passed"
	RoundResultFailed    RoundResult = "failed"
)

func (r RoundResult) String() string { return string(r) }

func (r RoundResult) IsValid() bool {
	switch r {
	case RoundResultScheduled, RoundResultPending, RoundResultPassed, RoundResultFailed:
		return true
	}
	return false
}

// RoundType classifies a round definition on a job.
type RoundType string

const (
	RoundTypeScreening  RoundType = "screening"
	RoundTypeTechnical  RoundType = "technical"
	RoundTypeAssignment RoundType = "assignment"
	RoundTypeHR         RoundType = "hr"
	RoundTypeFinal      RoundType = "final"
	RoundTypeOther      RoundType = "other"
)

func (t RoundType) String() string { return string(t) }

func (t RoundType) IsValid() bool {
	switch t {
	case RoundTypeScreening, RoundTypeTechnical, RoundTypeAssignment, RoundTypeHR, RoundTypeFinal, RoundTypeOther:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs and events).
type EntityType string

const (
	EntityTypeBusiness      EntityType = "business"
	EntityTypeRecruiterLink EntityType = "recruiter_link"
	EntityTypeJob           EntityType = "job"
	EntityTypeApplication   EntityType = "application"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBusiness, EntityTypeRecruiterLink, EntityTypeJob, EntityTypeApplication:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionTransition AuditAction = "transition"
	AuditActionCascade    AuditAction = "cascade"
	AuditActionRoundEntry AuditAction = "round_entry"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionTransition, AuditActionCascade, AuditActionRoundEntry:
		return true
	}
	return false
}
