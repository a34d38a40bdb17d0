package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

var decisionEvents = map[string]domain.EventType{
	domain.JobActionApprove: domain.EventJobApproved,
	domain.JobActionReject:  domain.EventJobRejected,
}

// Approve publishes a pending job. The business must currently be approved.
func (s *Service) Approve(ctx context.Context, input DecisionInput) (*domain.Job, error) {
	return s.decide(ctx, domain.JobActionApprove, input)
}

// Reject refuses a pending job. Rejection is final.
func (s *Service) Reject(ctx context.Context, input DecisionInput) (*domain.Job, error) {
	return s.decide(ctx, domain.JobActionReject, input)
}

func (s *Service) decide(ctx context.Context, action string, input DecisionInput) (*domain.Job, error) {
	actor, err := access.Require(ctx, domain.CapDecideJob)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := trimOrNil(input.Reason)

	var (
		updated *domain.Job
		from    domain.JobStatus
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		j, getErr := s.jobs.GetByID(txCtx, input.JobID)
		if getErr != nil {
			return fmt.Errorf("get job: %w", getErr)
		}
		b, getErr := s.businesses.GetForShare(txCtx, j.BusinessID)
		if getErr != nil {
			return fmt.Errorf("get business: %w", getErr)
		}
		if !b.IsOwnedBy(actor.AccountID) {
			return fmt.Errorf("business %s is not owned by caller: %w", b.ID, domain.ErrForbidden)
		}

		j, getErr = s.jobs.GetForUpdate(txCtx, input.JobID)
		if getErr != nil {
			return fmt.Errorf("lock job: %w", getErr)
		}
		if vErr := domain.CheckVersion(domain.EntityTypeJob, j.Version, input.ExpectedVersion); vErr != nil {
			return vErr
		}

		to, tErr := j.Transition(action)
		if tErr != nil {
			return tErr
		}
		if action == domain.JobActionApprove && b.Status != domain.BusinessStatusApproved {
			return fmt.Errorf("business %s is %s: %w", b.ID, b.Status, domain.ErrPreconditionFailed)
		}
		from = j.Status

		var updErr error
		updated, updErr = s.jobs.UpdateStatus(txCtx, j.ID, j.Version, to, reason)
		if updErr != nil {
			return fmt.Errorf("update job status: %w", updErr)
		}

		changes := domain.StatusChange(from, to)
		if reason != nil {
			changes["reason"] = *reason
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeJob,
			EntityID:   j.ID,
			Action:     domain.AuditActionTransition,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job "+action,
		slog.String("job_id", updated.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)),
	)

	ev := domain.NewEvent(decisionEvents[action], domain.EntityTypeJob, updated.ID,
		actor.AccountID, updated.PostedBy).With("business_id", updated.BusinessID.String())
	if reason != nil {
		ev = ev.With("reason", *reason)
	}
	s.notify.Notify(ctx, ev)

	return updated, nil
}
