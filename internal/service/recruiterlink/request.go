package recruiterlink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// RequestResult is the outcome of a link request.
type RequestResult struct {
	Link *domain.RecruiterLink
	// Created is false when the recruiter already held an active link and
	// that link was returned unchanged.
	Created bool
}

// Request asks an approved business to link the calling recruiter.
// If the recruiter already has a pending or approved link, that link is
// returned and nothing is written.
func (s *Service) Request(ctx context.Context, input RequestInput) (RequestResult, error) {
	actor, err := access.Require(ctx, domain.CapRequestLink)
	if err != nil {
		return RequestResult{}, err
	}

	if err := input.Validate(); err != nil {
		return RequestResult{}, err
	}

	if existing, err := s.activeLink(ctx, actor.AccountID); err != nil || existing != nil {
		return RequestResult{Link: existing}, err
	}

	var (
		created *domain.RecruiterLink
		ownerID uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, getErr := s.businesses.GetForShare(txCtx, input.BusinessID)
		if getErr != nil {
			return fmt.Errorf("get business: %w", getErr)
		}
		if b.Status != domain.BusinessStatusApproved {
			return fmt.Errorf("business %s is %s: %w", b.ID, b.Status, domain.ErrPreconditionFailed)
		}

		var createErr error
		created, createErr = s.links.Create(txCtx, &domain.RecruiterLink{
			ID:          uuid.New(),
			RecruiterID: actor.AccountID,
			BusinessID:  b.ID,
		})
		if createErr != nil {
			return fmt.Errorf("create recruiter link: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeRecruiterLink,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"business_id": b.ID.String(),
				"status":      map[string]any{"new": string(created.Status)},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		ownerID = b.OwnerAccountID
		return nil
	})
	// A concurrent request from the same recruiter won the unique index.
	if errors.Is(err, domain.ErrAlreadyExists) {
		existing, getErr := s.activeLink(ctx, actor.AccountID)
		if getErr != nil {
			return RequestResult{}, getErr
		}
		if existing != nil {
			return RequestResult{Link: existing}, nil
		}
	}
	if err != nil {
		return RequestResult{}, err
	}

	s.log.InfoContext(ctx, "recruiter link requested",
		slog.String("link_id", created.ID.String()),
		slog.String("recruiter_id", actor.AccountID.String()),
		slog.String("business_id", created.BusinessID.String()),
	)

	s.notify.Notify(ctx, domain.NewEvent(domain.EventLinkRequested, domain.EntityTypeRecruiterLink,
		created.ID, actor.AccountID, ownerID).With("business_id", created.BusinessID.String()))

	return RequestResult{Link: created, Created: true}, nil
}

// activeLink returns the recruiter's active link, or nil if there is none.
func (s *Service) activeLink(ctx context.Context, recruiterID uuid.UUID) (*domain.RecruiterLink, error) {
	l, err := s.links.GetActiveByRecruiter(ctx, recruiterID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active link: %w", err)
	}
	return l, nil
}
