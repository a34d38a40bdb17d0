package recruiterlink

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// Get returns a link visible to its recruiter, the business owner or an admin.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recruiter link: %w", err)
	}
	if actor.IsAdmin() || link.RecruiterID == actor.AccountID {
		return link, nil
	}

	b, err := s.businesses.GetByID(ctx, link.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if !b.IsOwnedBy(actor.AccountID) {
		return nil, fmt.Errorf("recruiter link %s: %w", id, domain.ErrForbidden)
	}
	return link, nil
}

// Mine returns the calling recruiter's pending or approved link.
func (s *Service) Mine(ctx context.Context) (*domain.RecruiterLink, error) {
	actor, err := access.Require(ctx, domain.CapRequestLink)
	if err != nil {
		return nil, err
	}
	link, err := s.links.GetActiveByRecruiter(ctx, actor.AccountID)
	if err != nil {
		return nil, fmt.Errorf("get active link: %w", err)
	}
	return link, nil
}

// ListByBusiness returns the links of a business to its owner or an admin.
// An empty status returns every status.
func (s *Service) ListByBusiness(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown link status")
	}

	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if !actor.IsAdmin() && !b.IsOwnedBy(actor.AccountID) {
		return nil, fmt.Errorf("business %s: %w", businessID, domain.ErrForbidden)
	}

	links, err := s.links.ListByBusiness(ctx, businessID, status)
	if err != nil {
		return nil, fmt.Errorf("list recruiter links: %w", err)
	}
	return links, nil
}
