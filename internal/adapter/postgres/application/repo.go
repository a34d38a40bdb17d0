// Package application implements the Application repository using PostgreSQL.
// Round updates live in an append-only child table.
package application

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
	table       = "applications"
	roundsTable = "application_round_updates"
	entity      = "application"
)

var columns = []string{
	"id", "job_id", "jobseeker_id", "status", "current_round", "cover_letter",
	"selected_skills", "profile_snapshot", "status_reason", "version", "created_at", "updated_at",
}

var roundColumns = []string{
	"id", "application_id", "round_number", "result", "note", "recorded_by", "recorded_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID `db:"id"`
	JobID          uuid.UUID `db:"job_id"`
	JobseekerID    uuid.UUID `db:"jobseeker_id"`
	Status         string    `db:"status"`
	CurrentRound   int       `db:"current_round"`
	CoverLetter    string    `db:"cover_letter"`
	SelectedSkills []string  `db:"selected_skills"`
	Profile        []byte    `db:"profile_snapshot"`
	StatusReason   *string   `db:"status_reason"`
	Version        int       `db:"version"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() (*domain.Application, error) {
	var profile domain.ProfileSnapshot
	if err := json.Unmarshal(r.Profile, &profile); err != nil {
		return nil, fmt.Errorf("application %s unmarshal profile: %w", r.ID, err)
	}
	return &domain.Application{
		ID:             r.ID,
		JobID:          r.JobID,
		JobseekerID:    r.JobseekerID,
		Status:         domain.ApplicationStatus(r.Status),
		CurrentRound:   r.CurrentRound,
		CoverLetter:    r.CoverLetter,
		SelectedSkills: r.SelectedSkills,
		Profile:        profile,
		StatusReason:   r.StatusReason,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}

type roundRow struct {
	ID            uuid.UUID `db:"id"`
	ApplicationID uuid.UUID `db:"application_id"`
	RoundNumber   int       `db:"round_number"`
	Result        string    `db:"result"`
	Note          *string   `db:"note"`
	RecordedBy    uuid.UUID `db:"recorded_by"`
	RecordedAt    time.Time `db:"recorded_at"`
}

func (r roundRow) toDomain() domain.RoundUpdate {
	return domain.RoundUpdate{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		RoundNumber:   r.RoundNumber,
		Result:        domain.RoundResult(r.Result),
		Note:          r.Note,
		RecordedBy:    r.RecordedBy,
		RecordedAt:    r.RecordedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an application in applied state. A second application by the
// same jobseeker to the same job yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	profileJSON, err := json.Marshal(a.Profile)
	if err != nil {
		return nil, fmt.Errorf("application marshal profile: %w", err)
	}
	skills := a.SelectedSkills
	if skills == nil {
		skills = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "job_id", "jobseeker_id", "status", "current_round", "cover_letter",
			"selected_skills", "profile_snapshot").
		Values(a.ID, a.JobID, a.JobseekerID, string(domain.ApplicationStatusApplied), a.CurrentRound,
			a.CoverLetter, skills, profileJSON).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert application: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, a.ID)
	}
	return out.toDomain()
}

// UpdateState writes a new status and current round if the version still
// equals expectedVersion.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.ApplicationStatus, currentRound int, reason *string) (*domain.Application, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("current_round", currentRound).
		Set("status_reason", reason).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update application: %w", err)
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

// AppendRoundUpdate adds an entry to the application's round log.
func (r *Repo) AppendRoundUpdate(ctx context.Context, u *domain.RoundUpdate) (*domain.RoundUpdate, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(roundsTable).
		Columns("id", "application_id", "round_number", "result", "note", "recorded_by").
		Values(u.ID, u.ApplicationID, u.RoundNumber, string(u.Result), u.Note, u.RecordedBy).
		Suffix("RETURNING " + strings.Join(roundColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert round update: %w", err)
	}

	var out roundRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "round_update", u.ID)
	}
	ru := out.toDomain()
	return &ru, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the application together with its round log.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := r.getOne(ctx, id, "")
	if err != nil {
		return nil, err
	}
	app.RoundLog, err = r.ListRoundUpdates(ctx, id)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// GetForUpdate returns the application and locks its row until the
// transaction ends. The round log is not loaded.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

// ListByJob returns the applications to a job in submission order.
func (r *Repo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	return r.list(ctx, squirrel.Eq{"job_id": jobID}, "created_at ASC")
}

// ListByJobseeker returns a jobseeker's applications, newest first.
func (r *Repo) ListByJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]domain.Application, error) {
	return r.list(ctx, squirrel.Eq{"jobseeker_id": jobseekerID}, "created_at DESC")
}

// ListRoundUpdates returns the round log of an application in recording order.
func (r *Repo) ListRoundUpdates(ctx context.Context, applicationID uuid.UUID) ([]domain.RoundUpdate, error) {
	query, args, err := postgres.Builder().
		Select(roundColumns...).
		From(roundsTable).
		Where(squirrel.Eq{"application_id": applicationID}).
		OrderBy("recorded_at ASC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list round updates: %w", err)
	}

	var rows []roundRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list round updates: %w", err)
	}

	out := make([]domain.RoundUpdate, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, where squirrel.Eq, order string) ([]domain.Application, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(order, "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list applications: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	apps := make([]domain.Application, 0, len(rows))
	for _, rw := range rows {
		a, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, lock string) (*domain.Application, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if lock != "" {
		b = b.Suffix(lock)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select application: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return out.toDomain()
}
