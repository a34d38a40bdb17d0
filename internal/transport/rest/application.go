package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/application"
)

type applicationService interface {
	Apply(ctx context.Context, input application.ApplyInput) (*domain.Application, error)
	Review(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	Shortlist(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	Reject(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	Withdraw(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	UpdateRound(ctx context.Context, input application.RoundResultInput) (*domain.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)
	ListMine(ctx context.Context) ([]domain.Application, error)
}

// ApplicationHandler serves the application pipeline endpoints.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "application")}
}

// Apply handles POST /applications.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Apply(r.Context(), application.ApplyInput{
		JobID:          uuid.MustParse(req.JobID),
		CoverLetter:    req.CoverLetter,
		SelectedSkills: req.SelectedSkills,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// Review handles POST /applications/{id}/review.
func (h *ApplicationHandler) Review(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.svc.Review)
}

// Shortlist handles POST /applications/{id}/shortlist.
func (h *ApplicationHandler) Shortlist(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.svc.Shortlist)
}

// Reject handles POST /applications/{id}/reject.
func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.svc.Reject)
}

// Withdraw handles PATCH /applications/{id}/withdraw.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.svc.Withdraw)
}

// RoundResult handles PATCH /applications/{id}/round-result.
func (h *ApplicationHandler) RoundResult(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req roundResultRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	app, err := h.svc.UpdateRound(r.Context(), application.RoundResultInput{
		ApplicationID: id,
		RoundNumber:   *req.RoundNumber,
		Result:        domain.RoundResult(req.Result),
		Note:          req.Note,
		AdvanceToNext: req.AdvanceToNext,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// ListByJob handles GET /jobs/{id}/applications.
func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	apps, err := h.svc.ListByJob(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[applicationResponse]{Items: toApplicationResponses(apps)})
}

// ListMine handles GET /me/applications.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListMine(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[applicationResponse]{Items: toApplicationResponses(apps)})
}

func (h *ApplicationHandler) move(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, application.DecisionInput) (*domain.Application, error),
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

	app, err := op(r.Context(), application.DecisionInput{
		ApplicationID:   id,
		Reason:          req.reason(),
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}
