package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

type auditService interface {
	History(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.AuditRecord, error)
}

// AuditHandler serves the audit trail to admins.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

type auditPath struct {
	EntityType string `json:"entityType" validate:"required,is-entity-type"`
}

// History handles GET /audit/{entityType}/{id}.
func (h *AuditHandler) History(w http.ResponseWriter, r *http.Request) {
	p := auditPath{EntityType: r.PathValue("entityType")}
	if err := validateStruct(&p); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), domain.EntityType(p.EntityType), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[auditRecordResponse]{Items: toAuditResponses(records)})
}
