package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

var moveEvents = map[string]domain.EventType{
	domain.ApplicationActionReview:    domain.EventApplicationReviewed,
	domain.ApplicationActionShortlist: domain.EventApplicationShortlist,
	domain.ApplicationActionReject:    domain.EventApplicationRejected,
	domain.ApplicationActionWithdraw:  domain.EventApplicationWithdrawn,
}

// Review moves an applied application under review.
func (s *Service) Review(ctx context.Context, input DecisionInput) (*domain.Application, error) {
	return s.move(ctx, domain.ApplicationActionReview, input)
}

// Shortlist moves an applied or reviewed application to the shortlist.
func (s *Service) Shortlist(ctx context.Context, input DecisionInput) (*domain.Application, error) {
	return s.move(ctx, domain.ApplicationActionShortlist, input)
}

// Reject ends a non-terminal application.
func (s *Service) Reject(ctx context.Context, input DecisionInput) (*domain.Application, error) {
	return s.move(ctx, domain.ApplicationActionReject, input)
}

// Withdraw lets the applicant end their own non-terminal application.
func (s *Service) Withdraw(ctx context.Context, input DecisionInput) (*domain.Application, error) {
	return s.move(ctx, domain.ApplicationActionWithdraw, input)
}

// move applies a status-only transition. Withdrawal belongs to the applicant;
// every other move belongs to the recruiter who posted the job.
func (s *Service) move(ctx context.Context, action string, input DecisionInput) (*domain.Application, error) {
	capability := domain.CapManagePipeline
	if action == domain.ApplicationActionWithdraw {
		capability = domain.CapWithdraw
	}
	actor, err := access.Require(ctx, capability)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := trimOrNil(input.Reason)

	var (
		updated  *domain.Application
		from     domain.ApplicationStatus
		postedBy uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		app, getErr := s.applications.GetForUpdate(txCtx, input.ApplicationID)
		if getErr != nil {
			return fmt.Errorf("get application: %w", getErr)
		}
		j, getErr := s.jobs.GetByID(txCtx, app.JobID)
		if getErr != nil {
			return fmt.Errorf("get job: %w", getErr)
		}
		postedBy = j.PostedBy

		if action == domain.ApplicationActionWithdraw {
			if app.JobseekerID != actor.AccountID {
				return fmt.Errorf("application %s belongs to another jobseeker: %w", app.ID, domain.ErrForbidden)
			}
		} else if j.PostedBy != actor.AccountID {
			return fmt.Errorf("job %s was posted by another recruiter: %w", j.ID, domain.ErrForbidden)
		}

		if vErr := domain.CheckVersion(domain.EntityTypeApplication, app.Version, input.ExpectedVersion); vErr != nil {
			return vErr
		}
		to, tErr := app.Transition(action)
		if tErr != nil {
			return tErr
		}
		from = app.Status

		var updErr error
		updated, updErr = s.applications.UpdateState(txCtx, app.ID, app.Version, to, app.CurrentRound, reason)
		if updErr != nil {
			return fmt.Errorf("update application state: %w", updErr)
		}

		changes := domain.StatusChange(from, to)
		if reason != nil {
			changes["reason"] = *reason
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeApplication,
			EntityID:   app.ID,
			Action:     domain.AuditActionTransition,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		roundLog, listErr := s.applications.ListRoundUpdates(txCtx, app.ID)
		if listErr != nil {
			return fmt.Errorf("list round updates: %w", listErr)
		}
		updated.RoundLog = roundLog
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application "+action,
		slog.String("application_id", updated.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)),
	)

	recipient := updated.JobseekerID
	if action == domain.ApplicationActionWithdraw {
		recipient = postedBy
	}
	ev := domain.NewEvent(moveEvents[action], domain.EntityTypeApplication, updated.ID,
		actor.AccountID, recipient).With("job_id", updated.JobID.String())
	if reason != nil {
		ev = ev.With("reason", *reason)
	}
	s.notify.Notify(ctx, ev)

	return updated, nil
}
