// Package business drives the verification lifecycle of business profiles.
package business

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

type businessRepo interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.BusinessStatus, reason *string) (*domain.Business, error)
}

type linkRepo interface {
	ResetApprovedByBusiness(ctx context.Context, businessID uuid.UUID, reason *string) ([]domain.RecruiterLink, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

// Service provides business registration and verification.
type Service struct {
	businesses businessRepo
	links      linkRepo
	audit      auditLogger
	tx         txManager
	notify     notifier
	log        *slog.Logger
}

// NewService creates a new Business service.
func NewService(
	log *slog.Logger,
	businesses businessRepo,
	links linkRepo,
	audit auditLogger,
	tx txManager,
	notify notifier,
) *Service {
	return &Service{
		businesses: businesses,
		links:      links,
		audit:      audit,
		tx:         tx,
		notify:     notify,
		log:        log.With("service", "business"),
	}
}
