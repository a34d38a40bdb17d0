// Package account implements the Directory of accounts using PostgreSQL.
package account

import (
	"context"
	"errors"
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
	table  = "accounts"
	entity = "account"
)

var columns = []string{"id", "role", "email", "display_name", "headline", "skills", "created_at"}

// Repo is the PostgreSQL-backed Directory.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	Role        string    `db:"role"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	Headline    *string   `db:"headline"`
	Skills      []string  `db:"skills"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Account {
	return &domain.Account{
		ID:          r.ID,
		Role:        domain.Role(r.Role),
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Headline:    r.Headline,
		Skills:      r.Skills,
		CreatedAt:   r.CreatedAt,
	}
}

// GetByID returns the account with the given ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getOne(ctx, id, squirrel.Eq{"id": id})
}

// GetByEmail returns the account registered under email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, email, squirrel.Eq{"email": email})
}

func (r *Repo) getOne(ctx context.Context, key any, where squirrel.Eq) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select account: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return out.toDomain(), nil
}

// hiringRecords matches accounts referenced by any hiring entity. Such
// accounts keep their role for life.
var hiringRecords = []string{
	"SELECT 1 FROM businesses b WHERE b.owner_account_id = accounts.id",
	"SELECT 1 FROM recruiter_links l WHERE l.recruiter_id = accounts.id",
	"SELECT 1 FROM jobs j WHERE j.posted_by = accounts.id",
	"SELECT 1 FROM applications a WHERE a.jobseeker_id = accounts.id",
}

// SetRole changes the role of the account registered under email. Only
// accounts that own no business, hold no link, posted no job and filed no
// application may change role; anything else fails with
// ErrPreconditionFailed. The hiring services never call it.
func (r *Repo) SetRole(ctx context.Context, email string, role domain.Role) (*domain.Account, error) {
	where := squirrel.And{squirrel.Eq{"email": email}}
	for _, sub := range hiringRecords {
		where = append(where, squirrel.Expr("NOT EXISTS (" + sub + ")"))
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Where(where).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update account role: %w", err)
	}

	var out row
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...)
	if err == nil {
		return out.toDomain(), nil
	}
	mapped := postgres.MapError(err, entity, email)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	current, getErr := r.GetByEmail(ctx, email)
	if getErr != nil {
		return nil, getErr
	}
	if current.Role == role {
		return current, nil
	}
	return nil, fmt.Errorf("account %s has hiring records, role %s is fixed: %w",
		email, current.Role, domain.ErrPreconditionFailed)
}

// Create inserts an account. Used by provisioning tooling and tests; the
// hiring services never write accounts.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "role", "email", "display_name", "headline", "skills").
		Values(a.ID, string(a.Role), a.Email, a.DisplayName, a.Headline, skills).
		Suffix("RETURNING id, role, email, display_name, headline, skills, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert account: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, a.ID)
	}
	return out.toDomain(), nil
}
