package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type decisionRequest struct {
	Reason          *string `json:"reason"          validate:"omitempty,max=1000"`
	Note            *string `json:"note"            validate:"omitempty,max=1000"`
	ExpectedVersion *int    `json:"expectedVersion" validate:"omitempty,min=1"`
}

// reason accepts either field; pipeline clients send a note.
func (r decisionRequest) reason() *string {
	if r.Reason != nil {
		return r.Reason
	}
	return r.Note
}

type registerBusinessRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type requestLinkRequest struct {
	BusinessID string `json:"businessId" validate:"required,uuid"`
}

type roundRequest struct {
	Type  string `json:"type"  validate:"required,is-round-type"`
	Title string `json:"title" validate:"required,max=200"`
}

type createJobRequest struct {
	BusinessID  string         `json:"businessId"  validate:"required,uuid"`
	Title       string         `json:"title"       validate:"required,max=200"`
	Description string         `json:"description" validate:"max=10000"`
	Location    *string        `json:"location"    validate:"omitempty,max=200"`
	Rounds      []roundRequest `json:"rounds"      validate:"omitempty,dive"`
}

type applyRequest struct {
	JobID          string   `json:"jobId"          validate:"required,uuid"`
	CoverLetter    string   `json:"coverLetter"`
	SelectedSkills []string `json:"selectedSkills" validate:"omitempty,dive,max=100"`
}

type roundResultRequest struct {
	RoundNumber   *int    `json:"roundNumber"   validate:"required,min=0"`
	Result        string  `json:"result"        validate:"required,is-round-result"`
	Note          *string `json:"note"          validate:"omitempty,max=2000"`
	AdvanceToNext bool    `json:"advanceToNext"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type businessResponse struct {
	ID               uuid.UUID `json:"id"`
	OwnerAccountID   uuid.UUID `json:"ownerAccountId"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	Status           string    `json:"status"`
	StatusReason     *string   `json:"statusReason,omitempty"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"createdAt"`
	LastTransitionAt time.Time `json:"lastTransitionAt"`
}

func toBusinessResponse(b *domain.Business) businessResponse {
	return businessResponse{
		ID:               b.ID,
		OwnerAccountID:   b.OwnerAccountID,
		Name:             b.Name,
		Description:      b.Description,
		Status:           b.Status.String(),
		StatusReason:     b.StatusReason,
		Version:          b.Version,
		CreatedAt:        b.CreatedAt,
		LastTransitionAt: b.LastTransitionAt,
	}
}

type linkResponse struct {
	ID           uuid.UUID `json:"id"`
	RecruiterID  uuid.UUID `json:"recruiterId"`
	BusinessID   uuid.UUID `json:"businessId"`
	Status       string    `json:"status"`
	StatusReason *string   `json:"statusReason,omitempty"`
	Version      int       `json:"version"`
	RequestedAt  time.Time `json:"requestedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toLinkResponse(l *domain.RecruiterLink) linkResponse {
	return linkResponse{
		ID:           l.ID,
		RecruiterID:  l.RecruiterID,
		BusinessID:   l.BusinessID,
		Status:       l.Status.String(),
		StatusReason: l.StatusReason,
		Version:      l.Version,
		RequestedAt:  l.RequestedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func toLinkResponses(links []domain.RecruiterLink) []linkResponse {
	out := make([]linkResponse, 0, len(links))
	for i := range links {
		out = append(out, toLinkResponse(&links[i]))
	}
	return out
}

type roundResponse struct {
	Order int    `json:"order"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

type jobResponse struct {
	ID           uuid.UUID       `json:"id"`
	BusinessID   uuid.UUID       `json:"businessId"`
	PostedBy     uuid.UUID       `json:"postedBy"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Location     *string         `json:"location,omitempty"`
	Status       string          `json:"status"`
	StatusReason *string         `json:"statusReason,omitempty"`
	Rounds       []roundResponse `json:"rounds"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toJobResponse(j *domain.Job) jobResponse {
	rounds := make([]roundResponse, 0, len(j.Rounds))
	for _, r := range j.Rounds {
		rounds = append(rounds, roundResponse{Order: r.Order, Type: r.Type.String(), Title: r.Title})
	}
	return jobResponse{
		ID:           j.ID,
		BusinessID:   j.BusinessID,
		PostedBy:     j.PostedBy,
		Title:        j.Title,
		Description:  j.Description,
		Location:     j.Location,
		Status:       j.Status.String(),
		StatusReason: j.StatusReason,
		Rounds:       rounds,
		Version:      j.Version,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func toJobResponses(jobs []domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return out
}

type profileResponse struct {
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Headline    *string   `json:"headline,omitempty"`
	Skills      []string  `json:"skills"`
	CapturedAt  time.Time `json:"capturedAt"`
}

type roundUpdateResponse struct {
	RoundNumber int       `json:"roundNumber"`
	Result      string    `json:"result"`
	Note        *string   `json:"note,omitempty"`
	RecordedBy  uuid.UUID `json:"recordedBy"`
	RecordedAt  time.Time `json:"recordedAt"`
}

type applicationResponse struct {
	ID             uuid.UUID             `json:"id"`
	JobID          uuid.UUID             `json:"jobId"`
	JobseekerID    uuid.UUID             `json:"jobseekerId"`
	Status         string                `json:"status"`
	CurrentRound   int                   `json:"currentRound"`
	CoverLetter    string                `json:"coverLetter"`
	SelectedSkills []string              `json:"selectedSkills"`
	Profile        profileResponse       `json:"profile"`
	StatusReason   *string               `json:"statusReason,omitempty"`
	RoundLog       []roundUpdateResponse `json:"roundLog"`
	Version        int                   `json:"version"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	roundLog := make([]roundUpdateResponse, 0, len(a.RoundLog))
	for _, u := range a.RoundLog {
		roundLog = append(roundLog, roundUpdateResponse{
			RoundNumber: u.RoundNumber,
			Result:      u.Result.String(),
			Note:        u.Note,
			RecordedBy:  u.RecordedBy,
			RecordedAt:  u.RecordedAt,
		})
	}
	skills := a.SelectedSkills
	if skills == nil {
		skills = []string{}
	}
	profileSkills := a.Profile.Skills
	if profileSkills == nil {
		profileSkills = []string{}
	}
	return applicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		JobseekerID:    a.JobseekerID,
		Status:         a.Status.String(),
		CurrentRound:   a.CurrentRound,
		CoverLetter:    a.CoverLetter,
		SelectedSkills: skills,
		Profile: profileResponse{
			DisplayName: a.Profile.DisplayName,
			Email:       a.Profile.Email,
			Headline:    a.Profile.Headline,
			Skills:      profileSkills,
			CapturedAt:  a.Profile.CapturedAt,
		},
		StatusReason: a.StatusReason,
		RoundLog:     roundLog,
		Version:      a.Version,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toApplicationResponses(apps []domain.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}
	return out
}

type auditRecordResponse struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    uuid.UUID      `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   uuid.UUID      `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponses(records []domain.AuditRecord) []auditRecordResponse {
	out := make([]auditRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, auditRecordResponse{
			ID:         r.ID,
			ActorID:    r.ActorID,
			EntityType: r.EntityType.String(),
			EntityID:   r.EntityID,
			Action:     r.Action.String(),
			Changes:    r.Changes,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out
}

// listResponse is the JSON shape of every collection.
type listResponse[T any] struct {
	Items []T `json:"items"`
}
