package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// Get returns an application with its round log to the applicant, the
// posting recruiter or an admin.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if actor.IsAdmin() || app.JobseekerID == actor.AccountID {
		return app, nil
	}

	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if j.PostedBy != actor.AccountID {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrForbidden)
	}
	return app, nil
}

// ListByJob returns the applications to a job, oldest first, to the recruiter who posted it.
func (s *Service) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	actor, err := access.Require(ctx, domain.CapManagePipeline)
	if err != nil {
		return nil, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if j.PostedBy != actor.AccountID {
		return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrForbidden)
	}

	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications by job: %w", err)
	}
	return apps, nil
}

// ListMine returns the calling jobseeker's applications, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.Application, error) {
	actor, err := access.Require(ctx, domain.CapApply)
	if err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByJobseeker(ctx, actor.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list my applications: %w", err)
	}
	return apps, nil
}
