package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job actions.
const (
	JobActionApprove = "approve"
	JobActionReject  = "reject"
)

var jobTransitions = map[string]transitionRule[JobStatus]{
	JobActionApprove: {from: []JobStatus{JobStatusPendingBusiness}, to: JobStatusApproved},
	JobActionReject:  {from: []JobStatus{JobStatusPendingBusiness}, to: JobStatusRejectedBusiness},
}

// Round is one step of a job's hiring process. Order is 1-based.
type Round struct {
	Order int       `json:"order"`
	Type  RoundType `json:"type"`
	Title string    `json:"title"`
}

// Job is a posting created by a linked recruiter on behalf of a business.
type Job struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	PostedBy     uuid.UUID
	Title        string
	Description  string
	Location     *string
	Status       JobStatus
	StatusReason *string
	Rounds       []Round
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Transition returns the status the action leads to from the current status.
func (j *Job) Transition(action string) (JobStatus, error) {
	return checkTransition(EntityTypeJob, action, j.Status, JobStatusPendingBusiness, jobTransitions)
}

// IsLive reports whether the job is visible on the public listing and accepts applications.
func (j *Job) IsLive() bool {
	return j.Status == JobStatusApproved
}

// FirstRound is the initial currentRound for applications to this job.
func (j *Job) FirstRound() int {
	if len(j.Rounds) == 0 {
		return 0
	}
	return 1
}
