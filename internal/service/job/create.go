package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// Create posts a job on behalf of a business. The caller must hold an
// approved link to that business. The job starts in pending_business.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Job, error) {
	actor, err := access.Require(ctx, domain.CapPostJob)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.maxRounds); err != nil {
		return nil, err
	}

	var (
		created *domain.Job
		ownerID uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Business before link, the same order the revoke cascade locks in.
		b, getErr := s.businesses.GetForShare(txCtx, input.BusinessID)
		if getErr != nil {
			return fmt.Errorf("get business: %w", getErr)
		}
		ownerID = b.OwnerAccountID

		if _, linkErr := s.links.GetApprovedForShare(txCtx, actor.AccountID, b.ID); linkErr != nil {
			if errors.Is(linkErr, domain.ErrNotFound) {
				return fmt.Errorf("recruiter %s has no approved link to business %s: %w",
					actor.AccountID, b.ID, domain.ErrPreconditionFailed)
			}
			return fmt.Errorf("get approved link: %w", linkErr)
		}

		var createErr error
		created, createErr = s.jobs.Create(txCtx, &domain.Job{
			ID:          uuid.New(),
			BusinessID:  b.ID,
			PostedBy:    actor.AccountID,
			Title:       strings.TrimSpace(input.Title),
			Description: strings.TrimSpace(input.Description),
			Location:    trimOrNil(input.Location),
			Rounds:      input.rounds(),
		})
		if createErr != nil {
			return fmt.Errorf("create job: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeJob,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"business_id": b.ID.String(),
				"title":       created.Title,
				"rounds":      len(created.Rounds),
				"status":      map[string]any{"new": string(created.Status)},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job created",
		slog.String("job_id", created.ID.String()),
		slog.String("business_id", created.BusinessID.String()),
		slog.String("posted_by", actor.AccountID.String()),
	)

	s.notify.Notify(ctx, domain.NewEvent(domain.EventJobCreated, domain.EntityTypeJob,
		created.ID, actor.AccountID, ownerID).With("title", created.Title))

	return created, nil
}
