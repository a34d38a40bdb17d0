package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// Apply submits the caller's application to an approved job. The applicant's
// Directory profile is copied onto the application and never refreshed.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*domain.Application, error) {
	actor, err := access.Require(ctx, domain.CapApply)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	var (
		created  *domain.Application
		postedBy uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		j, getErr := s.jobs.GetForShare(txCtx, input.JobID)
		if getErr != nil {
			return fmt.Errorf("get job: %w", getErr)
		}
		if !j.IsLive() {
			return fmt.Errorf("job %s is %s: %w", j.ID, j.Status, domain.ErrPreconditionFailed)
		}
		postedBy = j.PostedBy

		account, getErr := s.accounts.GetByID(txCtx, actor.AccountID)
		if getErr != nil {
			return fmt.Errorf("get applicant account: %w", getErr)
		}

		var createErr error
		created, createErr = s.applications.Create(txCtx, &domain.Application{
			ID:             uuid.New(),
			JobID:          j.ID,
			JobseekerID:    actor.AccountID,
			CurrentRound:   j.FirstRound(),
			CoverLetter:    strings.TrimSpace(input.CoverLetter),
			SelectedSkills: input.skills(),
			Profile:        account.Snapshot(time.Now().UTC()),
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrAlreadyExists) {
				return fmt.Errorf("jobseeker %s already applied to job %s: %w", actor.AccountID, j.ID, createErr)
			}
			return fmt.Errorf("create application: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeApplication,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"job_id":        j.ID.String(),
				"current_round": created.CurrentRound,
				"status":        map[string]any{"new": string(created.Status)},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", created.ID.String()),
		slog.String("job_id", created.JobID.String()),
		slog.String("jobseeker_id", actor.AccountID.String()),
	)

	s.notify.Notify(ctx, domain.NewEvent(domain.EventApplicationSubmitted, domain.EntityTypeApplication,
		created.ID, actor.AccountID, postedBy).With("job_id", created.JobID.String()))

	return created, nil
}
