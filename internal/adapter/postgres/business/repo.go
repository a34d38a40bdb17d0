// Package business implements the BusinessProfile repository using PostgreSQL.
package business

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/hireflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

const (
	table  = "businesses"
	entity = "business"
)

var columns = []string{
	"id", "owner_account_id", "name", "description", "status", "status_reason",
	"version", "created_at", "last_transition_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides business profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new business repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID `db:"id"`
	OwnerAccountID   uuid.UUID `db:"owner_account_id"`
	Name             string    `db:"name"`
	Description      *string   `db:"description"`
	Status           string    `db:"status"`
	StatusReason     *string   `db:"status_reason"`
	Version          int       `db:"version"`
	CreatedAt        time.Time `db:"created_at"`
	LastTransitionAt time.Time `db:"last_transition_at"`
}

func (r row) toDomain() *domain.Business {
	return &domain.Business{
		ID:               r.ID,
		OwnerAccountID:   r.OwnerAccountID,
		Name:             r.Name,
		Description:      r.Description,
		Status:           domain.BusinessStatus(r.Status),
		StatusReason:     r.StatusReason,
		Version:          r.Version,
		CreatedAt:        r.CreatedAt,
		LastTransitionAt: r.LastTransitionAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new business profile in pending state.
func (r *Repo) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "owner_account_id", "name", "description", "status").
		Values(b.ID, b.OwnerAccountID, b.Name, b.Description, string(domain.BusinessStatusPending)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert business: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, b.ID)
	}
	return out.toDomain(), nil
}

// UpdateStatus moves the business to status if its version still equals expectedVersion.
// A stale version yields domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.BusinessStatus, reason *string) (*domain.Business, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("status_reason", reason).
		Set("version", squirrel.Expr("version + 1")).
		Set("last_transition_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update business: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, postgres.ErrVersionMismatch(entity, id, expectedVersion)
		}
		return nil, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the business without locking.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return r.getOne(ctx, id, squirrel.Eq{"id": id}, "")
}

// GetForUpdate returns the business and locks its row until the transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return r.getOne(ctx, id, squirrel.Eq{"id": id}, "FOR UPDATE")
}

// GetForShare returns the business and blocks concurrent status writes until the transaction ends.
func (r *Repo) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return r.getOne(ctx, id, squirrel.Eq{"id": id}, "FOR SHARE")
}

// GetByOwner returns the business owned by the given account.
func (r *Repo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Business, error) {
	return r.getOne(ctx, ownerID, squirrel.Eq{"owner_account_id": ownerID}, "")
}

func (r *Repo) getOne(ctx context.Context, key uuid.UUID, where squirrel.Eq, lock string) (*domain.Business, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(where)
	if lock != "" {
		b = b.Suffix(lock)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select business: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return out.toDomain(), nil
}
