// Package recruiterlink implements the RecruiterLink repository using PostgreSQL.
package recruiterlink

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
	table  = "recruiter_links"
	entity = "recruiter_link"
)

var columns = []string{
	"id", "recruiter_id", "business_id", "status", "status_reason",
	"version", "requested_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides recruiter link persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new recruiter link repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	RecruiterID  uuid.UUID `db:"recruiter_id"`
	BusinessID   uuid.UUID `db:"business_id"`
	Status       string    `db:"status"`
	StatusReason *string   `db:"status_reason"`
	Version      int       `db:"version"`
	RequestedAt  time.Time `db:"requested_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.RecruiterLink {
	return &domain.RecruiterLink{
		ID:           r.ID,
		RecruiterID:  r.RecruiterID,
		BusinessID:   r.BusinessID,
		Status:       domain.LinkStatus(r.Status),
		StatusReason: r.StatusReason,
		Version:      r.Version,
		RequestedAt:  r.RequestedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainList(rows []row) []domain.RecruiterLink {
	out := make([]domain.RecruiterLink, len(rows))
	for i, r := range rows {
		out[i] = *r.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending link. A second active link for the same recruiter
// violates ux_recruiter_links_active and yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l *domain.RecruiterLink) (*domain.RecruiterLink, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "recruiter_id", "business_id", "status").
		Values(l.ID, l.RecruiterID, l.BusinessID, string(domain.LinkStatusPending)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert recruiter_link: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, l.ID)
	}
	return out.toDomain(), nil
}

// UpdateStatus moves the link to status if its version still equals expectedVersion.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.LinkStatus, reason *string) (*domain.RecruiterLink, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("status_reason", reason).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update recruiter_link: %w", err)
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

// ResetApprovedByBusiness applies the link reset rule to every link of the
// business (approved back to pending) and returns the links it changed.
// Must run inside the transaction that revokes the business.
func (r *Repo) ResetApprovedByBusiness(ctx context.Context, businessID uuid.UUID, reason *string) ([]domain.RecruiterLink, error) {
	from, to := domain.LinkReset()
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("status_reason", reason).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"business_id": businessID, "status": string(from)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reset recruiter_links: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, businessID)
	}
	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the link without locking.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error) {
	return r.getOne(ctx, id, squirrel.Eq{"id": id}, "")
}

// GetForUpdate returns the link and locks its row until the transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error) {
	return r.getOne(ctx, id, squirrel.Eq{"id": id}, "FOR UPDATE")
}

// GetActiveByRecruiter returns the recruiter's pending or approved link.
func (r *Repo) GetActiveByRecruiter(ctx context.Context, recruiterID uuid.UUID) (*domain.RecruiterLink, error) {
	return r.getOne(ctx, recruiterID, squirrel.Eq{
		"recruiter_id": recruiterID,
		"status":       []string{string(domain.LinkStatusPending), string(domain.LinkStatusApproved)},
	}, "")
}

// GetApprovedForShare returns the approved link between recruiter and business
// and holds a share lock so the link cannot be reset or unlinked concurrently.
func (r *Repo) GetApprovedForShare(ctx context.Context, recruiterID, businessID uuid.UUID) (*domain.RecruiterLink, error) {
	return r.getOne(ctx, recruiterID, squirrel.Eq{
		"recruiter_id": recruiterID,
		"business_id":  businessID,
		"status":       string(domain.LinkStatusApproved),
	}, "FOR SHARE")
}

// ListByBusiness returns the links of a business, newest first. An empty
// status filter returns all statuses.
func (r *Repo) ListByBusiness(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error) {
	where := squirrel.Eq{"business_id": businessID}
	if status != "" {
		where["status"] = string(status)
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("requested_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recruiter_links: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list recruiter_links by business: %w", err)
	}
	return toDomainList(rows), nil
}

func (r *Repo) getOne(ctx context.Context, key uuid.UUID, where squirrel.Eq, lock string) (*domain.RecruiterLink, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(where)
	if lock != "" {
		b = b.Suffix(lock)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select recruiter_link: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return out.toDomain(), nil
}
