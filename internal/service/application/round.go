package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// UpdateRound records a result for the application's current round and
// moves the application accordingly. The entry is appended to the round log
// whatever the outcome. A roundNumber other than the current round fails
// with ErrStaleRound.
func (s *Service) UpdateRound(ctx context.Context, input RoundResultInput) (*domain.Application, error) {
	actor, err := access.Require(ctx, domain.CapManagePipeline)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	note := trimOrNil(input.Note)

	var (
		updated *domain.Application
		before  domain.RoundOutcome
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
		if j.PostedBy != actor.AccountID {
			return fmt.Errorf("job %s was posted by another recruiter: %w", j.ID, domain.ErrForbidden)
		}

		before = domain.RoundOutcome{Status: app.Status, CurrentRound: app.CurrentRound}
		outcome, rErr := app.ApplyRoundResult(len(j.Rounds), input.RoundNumber, input.Result, input.AdvanceToNext)
		if rErr != nil {
			return rErr
		}

		entry, appendErr := s.applications.AppendRoundUpdate(txCtx, &domain.RoundUpdate{
			ApplicationID: app.ID,
			RoundNumber:   input.RoundNumber,
			Result:        input.Result,
			Note:          note,
			RecordedBy:    actor.AccountID,
		})
		if appendErr != nil {
			return fmt.Errorf("append round update: %w", appendErr)
		}

		// Version bumps even when status and round are unchanged.
		var updErr error
		updated, updErr = s.applications.UpdateState(txCtx, app.ID, app.Version, outcome.Status, outcome.CurrentRound, app.StatusReason)
		if updErr != nil {
			return fmt.Errorf("update application state: %w", updErr)
		}

		changes := domain.StatusChange(before.Status, outcome.Status)
		changes["round_number"] = entry.RoundNumber
		changes["result"] = string(entry.Result)
		changes["current_round"] = map[string]any{"old": before.CurrentRound, "new": outcome.CurrentRound}
		if note != nil {
			changes["note"] = *note
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeApplication,
			EntityID:   app.ID,
			Action:     domain.AuditActionRoundEntry,
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

	s.log.InfoContext(ctx, "application round updated",
		slog.String("application_id", updated.ID.String()),
		slog.Int("round_number", input.RoundNumber),
		slog.String("result", string(input.Result)),
		slog.String("from", string(before.Status)),
		slog.String("to", string(updated.Status)),
		slog.Int("current_round", updated.CurrentRound),
	)

	s.notify.Notify(ctx, domain.NewEvent(roundEvent(updated.Status), domain.EntityTypeApplication,
		updated.ID, actor.AccountID, updated.JobseekerID).
		With("job_id", updated.JobID.String()).
		With("round_number", input.RoundNumber).
		With("result", string(input.Result)))

	return updated, nil
}

func roundEvent(status domain.ApplicationStatus) domain.EventType {
	switch status {
	case domain.ApplicationStatusHired:
		return domain.EventApplicationHired
	case domain.ApplicationStatusRejected:
		return domain.EventApplicationRejected
	default:
		return domain.EventApplicationRound
	}
}
