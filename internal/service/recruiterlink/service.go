// Package recruiterlink manages the approval relationship between recruiters and businesses.
package recruiterlink

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

type linkRepo interface {
	Create(ctx context.Context, l *domain.RecruiterLink) (*domain.RecruiterLink, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error)
	GetActiveByRecruiter(ctx context.Context, recruiterID uuid.UUID) (*domain.RecruiterLink, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.LinkStatus, reason *string) (*domain.RecruiterLink, error)
}

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetForShare(ctx context.Context, id uuid.UUID) (*domain.Business, error)
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

// Service provides recruiter link operations.
type Service struct {
	links      linkRepo
	businesses businessRepo
	audit      auditLogger
	tx         txManager
	notify     notifier
	log        *slog.Logger
}

// NewService creates a new RecruiterLink service.
func NewService(
	log *slog.Logger,
	links linkRepo,
	businesses businessRepo,
	audit auditLogger,
	tx txManager,
	notify notifier,
) *Service {
	return &Service{
		links:      links,
		businesses: businesses,
		audit:      audit,
		tx:         tx,
		notify:     notify,
		log:        log.With("service", "recruiter_link"),
	}
}
