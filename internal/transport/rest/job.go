package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/job"
)

type jobService interface {
	Create(ctx context.Context, input job.CreateInput) (*domain.Job, error)
	Approve(ctx context.Context, input job.DecisionInput) (*domain.Job, error)
	Reject(ctx context.Context, input job.DecisionInput) (*domain.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListApproved(ctx context.Context, input job.ListInput) ([]domain.Job, error)
	ListMine(ctx context.Context, input job.ListInput) ([]domain.Job, error)
}

// JobHandler serves job posting endpoints.
type JobHandler struct {
	svc jobService
	log *slog.Logger
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(svc jobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{svc: svc, log: logger.With("handler", "job")}
}

// Create handles POST /jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rounds := make([]job.RoundInput, 0, len(req.Rounds))
	for _, rr := range req.Rounds {
		rounds = append(rounds, job.RoundInput{Type: domain.RoundType(rr.Type), Title: rr.Title})
	}

	j, err := h.svc.Create(r.Context(), job.CreateInput{
		BusinessID:  uuid.MustParse(req.BusinessID),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Rounds:      rounds,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toJobResponse(j))
}

// Approve handles POST /jobs/{id}/approve.
func (h *JobHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve)
}

// Reject handles POST /jobs/{id}/reject.
func (h *JobHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

// Get handles GET /jobs/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	j, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(j))
}

// List handles GET /jobs?limit=&offset=.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListApproved)
}

// ListMine handles GET /me/jobs?limit=&offset=.
func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListMine)
}

func (h *JobHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, job.ListInput) ([]domain.Job, error),
) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	jobs, err := op(r.Context(), job.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[jobResponse]{Items: toJobResponses(jobs)})
}

func (h *JobHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, job.DecisionInput) (*domain.Job, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req decisionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	j, err := op(r.Context(), job.DecisionInput{
		JobID:           id,
		Reason:          req.reason(),
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(j))
}
