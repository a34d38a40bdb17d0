package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// Get returns a job. Approved jobs are public; any other status is visible
// only to the posting recruiter, the business owner and admins.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if j.IsLive() {
		return j, nil
	}

	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		// Unpublished postings do not exist for anonymous readers.
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	if actor.IsAdmin() || j.PostedBy == actor.AccountID {
		return j, nil
	}

	b, err := s.businesses.GetByID(ctx, j.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if !b.IsOwnedBy(actor.AccountID) {
		return nil, fmt.Errorf("job %s: %w", id, domain.ErrForbidden)
	}
	return j, nil
}

// ListApproved returns the public listing of approved jobs, newest first.
func (s *Service) ListApproved(ctx context.Context, input ListInput) ([]domain.Job, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	jobs, err := s.jobs.List(ctx, domain.JobFilter{
		Status: domain.JobStatusApproved,
		Limit:  input.limit(),
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list approved jobs: %w", err)
	}
	return jobs, nil
}

// ListMine returns every job the calling recruiter posted, in any status.
func (s *Service) ListMine(ctx context.Context, input ListInput) ([]domain.Job, error) {
	actor, err := access.Require(ctx, domain.CapPostJob)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	jobs, err := s.jobs.List(ctx, domain.JobFilter{
		PostedBy: &actor.AccountID,
		Limit:    input.limit(),
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list posted jobs: %w", err)
	}
	return jobs, nil
}
