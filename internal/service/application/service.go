// Package application drives a candidate's application from submission
// through the job's hiring rounds.
package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

type applicationRepo interface {
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	UpdateState(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.ApplicationStatus, currentRound int, reason *string) (*domain.Application, error)
	AppendRoundUpdate(ctx context.Context, u *domain.RoundUpdate) (*domain.RoundUpdate, error)
	ListRoundUpdates(ctx context.Context, applicationID uuid.UUID) ([]domain.RoundUpdate, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)
	ListByJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]domain.Application, error)
}

type jobRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	GetForShare(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

type directory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
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

// Limits bounds what an applicant may submit.
type Limits struct {
	MaxSelectedSkills   int
	MaxCoverLetterChars int
}

// Service provides the application pipeline.
type Service struct {
	applications applicationRepo
	jobs         jobRepo
	accounts     directory
	audit        auditLogger
	tx           txManager
	notify       notifier
	log          *slog.Logger
	limits       Limits
}

// NewService creates a new Application service.
func NewService(
	log *slog.Logger,
	applications applicationRepo,
	jobs jobRepo,
	accounts directory,
	audit auditLogger,
	tx txManager,
	notify notifier,
	limits Limits,
) *Service {
	return &Service{
		applications: applications,
		jobs:         jobs,
		accounts:     accounts,
		audit:        audit,
		tx:           tx,
		notify:       notify,
		log:          log.With("service", "application"),
		limits:       limits,
	}
}
