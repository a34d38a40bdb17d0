// Package audit exposes the audit trail to admins.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

type auditRepo interface {
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// Service reads audit records.
type Service struct {
	records auditRepo
	limit   int
	log     *slog.Logger
}

// NewService creates a new Audit service. limit caps the records returned per entity.
func NewService(log *slog.Logger, records auditRepo, limit int) *Service {
	return &Service{
		records: records,
		limit:   limit,
		log:     log.With("service", "audit"),
	}
}

// History returns the newest audit records of an entity.
func (s *Service) History(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.AuditRecord, error) {
	if _, err := access.Require(ctx, domain.CapViewAudit); err != nil {
		return nil, err
	}
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	if entityID == uuid.Nil {
		return nil, domain.NewValidationError("entity_id", "required")
	}

	records, err := s.records.GetByEntity(ctx, entityType, entityID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("get audit history: %w", err)
	}
	return records, nil
}
