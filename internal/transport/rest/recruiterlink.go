package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/recruiterlink"
)

type linkService interface {
	Request(ctx context.Context, input recruiterlink.RequestInput) (recruiterlink.RequestResult, error)
	Approve(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error)
	Reject(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error)
	Unlink(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error)
	Mine(ctx context.Context) (*domain.RecruiterLink, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error)
}

// LinkHandler serves recruiter link endpoints.
type LinkHandler struct {
	svc linkService
	log *slog.Logger
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(svc linkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{svc: svc, log: logger.With("handler", "recruiter_link")}
}

// Request handles POST /recruiter-links. A new link answers 201; an
// existing active link is returned unchanged with 200.
func (h *LinkHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req requestLinkRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Request(r.Context(), recruiterlink.RequestInput{
		BusinessID: uuid.MustParse(req.BusinessID),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toLinkResponse(res.Link))
}

// Approve handles POST /recruiter-links/{id}/approve.
func (h *LinkHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve)
}

// Reject handles POST /recruiter-links/{id}/reject.
func (h *LinkHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

// Unlink handles POST /recruiter-links/{id}/unlink.
func (h *LinkHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Unlink)
}

// Get handles GET /recruiter-links/{id}.
func (h *LinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	link, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLinkResponse(link))
}

// Mine handles GET /recruiter-links/me.
func (h *LinkHandler) Mine(w http.ResponseWriter, r *http.Request) {
	link, err := h.svc.Mine(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLinkResponse(link))
}

type listLinksQuery struct {
	Status string `json:"status" validate:"is-link-status"`
}

// ListByBusiness handles GET /businesses/{id}/recruiter-links?status=.
func (h *LinkHandler) ListByBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	q := listLinksQuery{Status: r.URL.Query().Get("status")}
	if err := validateStruct(&q); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	links, err := h.svc.ListByBusiness(r.Context(), id, domain.LinkStatus(q.Status))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[linkResponse]{Items: toLinkResponses(links)})
}

func (h *LinkHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, recruiterlink.DecisionInput) (*domain.RecruiterLink, error),
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

	link, err := op(r.Context(), recruiterlink.DecisionInput{
		LinkID:          id,
		Reason:          req.reason(),
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLinkResponse(link))
}
