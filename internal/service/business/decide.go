package business

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

var decisionEvents = map[string]domain.EventType{
	domain.BusinessActionApprove: domain.EventBusinessApproved,
	domain.BusinessActionReject:  domain.EventBusinessRejected,
	domain.BusinessActionRevoke:  domain.EventBusinessRevoked,
}

// Approve moves a pending business to approved.
func (s *Service) Approve(ctx context.Context, input DecisionInput) (*domain.Business, error) {
	return s.decide(ctx, domain.BusinessActionApprove, input)
}

// Reject moves a pending business to rejected. Rejection is final.
func (s *Service) Reject(ctx context.Context, input DecisionInput) (*domain.Business, error) {
	return s.decide(ctx, domain.BusinessActionReject, input)
}

// Revoke moves an approved business back to pending and resets every approved
// recruiter link of the business to pending in the same transaction. Jobs
// already approved stay live.
func (s *Service) Revoke(ctx context.Context, input DecisionInput) (*domain.Business, error) {
	return s.decide(ctx, domain.BusinessActionRevoke, input)
}

func (s *Service) decide(ctx context.Context, action string, input DecisionInput) (*domain.Business, error) {
	actor, err := access.Require(ctx, domain.CapVerifyBusiness)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := trimOrNil(input.Reason)

	var (
		updated *domain.Business
		from    domain.BusinessStatus
		reset   []domain.RecruiterLink
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.businesses.GetForUpdate(txCtx, input.BusinessID)
		if getErr != nil {
			return fmt.Errorf("get business: %w", getErr)
		}
		if vErr := domain.CheckVersion(domain.EntityTypeBusiness, current.Version, input.ExpectedVersion); vErr != nil {
			return vErr
		}

		to, tErr := current.Transition(action)
		if tErr != nil {
			return tErr
		}
		from = current.Status

		var updErr error
		updated, updErr = s.businesses.UpdateStatus(txCtx, current.ID, current.Version, to, reason)
		if updErr != nil {
			return fmt.Errorf("update business status: %w", updErr)
		}

		changes := domain.StatusChange(from, to)
		if reason != nil {
			changes["reason"] = *reason
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeBusiness,
			EntityID:   current.ID,
			Action:     domain.AuditActionTransition,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		if action != domain.BusinessActionRevoke {
			return nil
		}

		var resetErr error
		reset, resetErr = s.links.ResetApprovedByBusiness(txCtx, current.ID, reason)
		if resetErr != nil {
			return fmt.Errorf("reset recruiter links: %w", resetErr)
		}
		linkFrom, linkTo := domain.LinkReset()
		for _, l := range reset {
			linkChanges := domain.StatusChange(linkFrom, linkTo)
			linkChanges["business_id"] = current.ID.String()
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				ActorID:    actor.AccountID,
				EntityType: domain.EntityTypeRecruiterLink,
				EntityID:   l.ID,
				Action:     domain.AuditActionCascade,
				Changes:    linkChanges,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "business "+action,
		slog.String("business_id", updated.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)),
		slog.Int("links_reset", len(reset)),
	)

	ev := domain.NewEvent(decisionEvents[action], domain.EntityTypeBusiness, updated.ID,
		actor.AccountID, updated.OwnerAccountID).With("status", string(updated.Status))
	if reason != nil {
		ev = ev.With("reason", *reason)
	}
	s.notify.Notify(ctx, ev)
	for _, l := range reset {
		s.notify.Notify(ctx, domain.NewEvent(domain.EventLinkReset, domain.EntityTypeRecruiterLink, l.ID,
			actor.AccountID, l.RecruiterID, updated.OwnerAccountID).With("business_id", updated.ID.String()))
	}

	return updated, nil
}
