package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/business"
)

type businessService interface {
	Register(ctx context.Context, input business.RegisterInput) (*domain.Business, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	Approve(ctx context.Context, input business.DecisionInput) (*domain.Business, error)
	Reject(ctx context.Context, input business.DecisionInput) (*domain.Business, error)
	Revoke(ctx context.Context, input business.DecisionInput) (*domain.Business, error)
}

// BusinessHandler serves business verification endpoints.
type BusinessHandler struct {
	svc businessService
	log *slog.Logger
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc businessService, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{svc: svc, log: logger.With("handler", "business")}
}

// Register handles POST /businesses.
func (h *BusinessHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerBusinessRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	b, err := h.svc.Register(r.Context(), business.RegisterInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBusinessResponse(b))
}

// Get handles GET /businesses/{id}.
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// Approve handles POST /businesses/{id}/approve.
func (h *BusinessHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve)
}

// Reject handles POST /businesses/{id}/reject.
func (h *BusinessHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

// Revoke handles POST /businesses/{id}/revoke.
func (h *BusinessHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Revoke)
}

func (h *BusinessHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, business.DecisionInput) (*domain.Business, error),
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

	b, err := op(r.Context(), business.DecisionInput{
		BusinessID:      id,
		Reason:          req.reason(),
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}
