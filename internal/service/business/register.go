package business

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/access"
)

// Register creates the caller's business profile in pending state.
// A business account may register only once.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Business, error) {
	actor, err := access.Require(ctx, domain.CapRegisterBusiness)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var created *domain.Business
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.businesses.Create(txCtx, &domain.Business{
			ID:             uuid.New(),
			OwnerAccountID: actor.AccountID,
			Name:           name,
			Description:    trimOrNil(input.Description),
		})
		if createErr != nil {
			return fmt.Errorf("create business: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor.AccountID,
			EntityType: domain.EntityTypeBusiness,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":   map[string]any{"new": name},
				"status": map[string]any{"new": string(created.Status)},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "business registered",
		slog.String("business_id", created.ID.String()),
		slog.String("owner_id", actor.AccountID.String()),
	)

	s.notify.Notify(ctx, domain.NewEvent(domain.EventBusinessRegistered, domain.EntityTypeBusiness,
		created.ID, actor.AccountID, actor.AccountID).With("name", name))

	return created, nil
}

// Get returns a business profile. Any authenticated caller may read it.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if _, err := access.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	b, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}
