// Package job implements the JobPosting repository using PostgreSQL.
package job

import (
	"context"
	"encoding/json"
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
	table  = "jobs"
	entity = "job"
)

var columns = []string{
	"id", "business_id", "posted_by", "title", "description", "location",
	"status", "status_reason", "rounds", "version", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides job posting persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new job repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	BusinessID   uuid.UUID `db:"business_id"`
	PostedBy     uuid.UUID `db:"posted_by"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Location     *string   `db:"location"`
	Status       string    `db:"status"`
	StatusReason *string   `db:"status_reason"`
	Rounds       []byte    `db:"rounds"`
	Version      int       `db:"version"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() (*domain.Job, error) {
	var rounds []domain.Round
	if len(r.Rounds) > 0 {
		if err := json.Unmarshal(r.Rounds, &rounds); err != nil {
			return nil, fmt.Errorf("job %s unmarshal rounds: %w", r.ID, err)
		}
	}
	return &domain.Job{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		PostedBy:     r.PostedBy,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Status:       domain.JobStatus(r.Status),
		StatusReason: r.StatusReason,
		Rounds:       rounds,
		Version:      r.Version,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a job in pending_business state. Rounds are stored as JSONB.
func (r *Repo) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}

	rounds := j.Rounds
	if rounds == nil {
		rounds = []domain.Round{}
	}
	roundsJSON, err := json.Marshal(rounds)
	if err != nil {
		return nil, fmt.Errorf("job marshal rounds: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "business_id", "posted_by", "title", "description", "location", "status", "rounds").
		Values(j.ID, j.BusinessID, j.PostedBy, j.Title, j.Description, j.Location,
			string(domain.JobStatusPendingBusiness), roundsJSON).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert job: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, j.ID)
	}
	return out.toDomain()
}

// UpdateStatus moves the job to status if its version still equals expectedVersion.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.JobStatus, reason *string) (*domain.Job, error) {
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
		return nil, fmt.Errorf("build update job: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, postgres.ErrVersionMismatch(entity, id, expectedVersion)
		}
		return nil, postgres.MapError(err, entity, id)
	}
	return out.toDomain()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the job without locking.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate returns the job and locks its row until the transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

// GetForShare returns the job and blocks concurrent status writes until the
// transaction ends. Used when submitting an application.
func (r *Repo) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return r.getOne(ctx, id, "FOR SHARE")
}

// List returns jobs matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.JobFilter) ([]domain.Job, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id")
	if f.Status != "" {
		b = b.Where(squirrel.Eq{"status": string(f.Status)})
	}
	if f.BusinessID != nil {
		b = b.Where(squirrel.Eq{"business_id": *f.BusinessID})
	}
	if f.PostedBy != nil {
		b = b.Where(squirrel.Eq{"posted_by": *f.PostedBy})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list jobs: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, rw := range rows {
		j, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, lock string) (*domain.Job, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if lock != "" {
		b = b.Suffix(lock)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select job: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return out.toDomain()
}
