package recruiterlink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

var decisionEvents = map[string]domain.EventType{
	domain.LinkActionApprove: domain.EventLinkApproved,
	domain.LinkActionReject:  domain.EventLinkRejected,
	domain.LinkActionUnlink:  domain.EventLinkUnlinked,
}

// Approve accepts a pending link. Only the owner of an approved business may approve.
func (s *Service) Approve(ctx context.Context, input DecisionInput) (*domain.RecruiterLink, error) {
	return s.decide(ctx, domain.LinkActionApprove, input)
}

// Reject refuses a pending link. Only the owner of the business may reject.
func (s *Service) Reject(ctx context.Context, input DecisionInput) (*domain.RecruiterLink, error) {
	return s.decide(ctx, domain.LinkActionReject, input)
}

// Unlink clears the calling recruiter's approved link so a fresh request can follow.
func (s *Service) Unlink(ctx context.Context, input DecisionInput) (*domain.RecruiterLink, error) {
	return s.decide(ctx, domain.LinkActionUnlink, input)
}

func (s *Service) decide(ctx context.Context, action string, input DecisionInput) (*domain.RecruiterLink, error) {
	capability := domain.CapDecideLink
	if action == domain.LinkActionUnlink {
		capability = domain.CapRequestLink
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
		updated *domain.RecruiterLink
		from    domain.LinkStatus
		ownerID uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The business row is locked before the link so this path and the
		// revoke cascade take locks in the same order.
		link, getErr := s.links.GetByID(txCtx, input.LinkID)
		if getErr != nil {
			return fmt.Errorf("get recruiter link: %w", getErr)
		}
		b, getErr := s.businesses.GetForShare(txCtx, link.BusinessID)
		if getErr != nil {
			return fmt.Errorf("get business: %w", getErr)
		}
		ownerID = b.OwnerAccountID

		if action == domain.LinkActionUnlink {
			if link.RecruiterID != actor.AccountID {
				return fmt.Errorf("link %s belongs to another recruiter: %w", link.ID, domain.ErrForbidden)
			}
		} else if !b.IsOwnedBy(actor.AccountID) {
			return fmt.Errorf("business %s is not owned by caller: %w", b.ID, domain.ErrForbidden)
		}

		link, getErr = s.links.GetForUpdate(txCtx, input.LinkID)
		if getErr != nil {
			return fmt.Errorf("lock recruiter link: %w", getErr)
		}
		if vErr := domain.CheckVersion(domain.EntityTypeRecruiterLink, link.Version, input.ExpectedVersion); vErr != nil {
			return vErr
		}

		to, tErr := link.Transition(action)
		if tErr != nil {
			return tErr
		}
		if action == domain.LinkActionApprove && b.Status != domain.BusinessStatusApproved {
			return fmt.Errorf("business %s is %s: %w", b.ID, b.Status, domain.ErrPreconditionFailed)
		}
		from = link.Status

		var updErr error
		updated, updErr = s.links.UpdateStatus(txCtx, link.ID, link.Version, to, reason)
		if updErr != nil {
			return fmt.Errorf("update recruiter link status: %w", updErr)
		}

		changes := domain.StatusChange(from, to)
		if reason != nil {
			changes["reason"] = *reason
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeRecruiterLink,
			EntityID:   link.ID,
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

	s.log.InfoContext(ctx, "recruiter link "+action,
		slog.String("link_id", updated.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)),
	)

	recipient := updated.RecruiterID
	if action == domain.LinkActionUnlink {
		recipient = ownerID
	}
	ev := domain.NewEvent(decisionEvents[action], domain.EntityTypeRecruiterLink, updated.ID,
		actor.AccountID, recipient).With("business_id", updated.BusinessID.String())
	if reason != nil {
		ev = ev.With("reason", *reason)
	}
	s.notify.Notify(ctx, ev)

	return updated, nil
}
