// Package job drives the approval lifecycle of job postings.
package job

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

type jobRepo interface {
	Create(ctx context.Context, j *domain.Job) (*domain.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.JobStatus, reason *string) (*domain.Job, error)
	List(ctx context.Context, f domain.JobFilter) ([]domain.Job, error)
}

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetForShare(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

type linkRepo interface {
	GetApprovedForShare(ctx context.Context, recruiterID, businessID uuid.UUID) (*domain.RecruiterLink, error)
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

// Service provides job posting and approval.
type Service struct {
	jobs       jobRepo
	businesses businessRepo
	links      linkRepo
	audit      auditLogger
	tx         txManager
	notify     notifier
	log        *slog.Logger
	maxRounds  int
}

// NewService creates a new Job service. maxRounds caps the rounds a posting may define.
func NewService(
	log *slog.Logger,
	jobs jobRepo,
	businesses businessRepo,
	links linkRepo,
	audit auditLogger,
	tx txManager,
	notify notifier,
	maxRounds int,
) *Service {
	return &Service{
		jobs:       jobs,
		businesses: businesses,
		links:      links,
		audit:      audit,
		tx:         tx,
		notify:     notify,
		log:        log.With("service", "job"),
		maxRounds:  maxRounds,
	}
}
