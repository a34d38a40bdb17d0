package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount inserts a Directory account with the given role.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	acc := domain.Account{
		ID:          uuid.New(),
		Role:        role,
		Email:       string(role) + "-" + suffix + "@example.com",
		DisplayName: "Test " + string(role) + " " + suffix,
		Skills:      []string{"go", "postgres"},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO accounts (id, role, email, display_name, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		acc.ID, string(acc.Role), acc.Email, acc.DisplayName, acc.Skills,
	).Scan(&acc.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return acc
}

// SeedBusiness inserts a business owned by a fresh business account.
func SeedBusiness(t *testing.T, pool *pgxpool.Pool, status domain.BusinessStatus) domain.Business {
	t.Helper()
	ctx := context.Background()

	owner := SeedAccount(t, pool, domain.RoleBusiness)
	b := domain.Business{
		ID:             uuid.New(),
		OwnerAccountID: owner.ID,
		Name:           "Acme " + uniqueSuffix(),
		Status:         status,
		Version:        1,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO businesses (id, owner_account_id, name, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, last_transition_at`,
		b.ID, b.OwnerAccountID, b.Name, string(b.Status),
	).Scan(&b.CreatedAt, &b.LastTransitionAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBusiness: %v", err)
	}

	return b
}

// SeedLink inserts a link between a fresh recruiter and the business.
func SeedLink(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID, status domain.LinkStatus) domain.RecruiterLink {
	t.Helper()
	ctx := context.Background()

	recruiter := SeedAccount(t, pool, domain.RoleRecruiter)
	l := domain.RecruiterLink{
		ID:          uuid.New(),
		RecruiterID: recruiter.ID,
		BusinessID:  businessID,
		Status:      status,
		Version:     1,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO recruiter_links (id, recruiter_id, business_id, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING requested_at, updated_at`,
		l.ID, l.RecruiterID, l.BusinessID, string(l.Status),
	).Scan(&l.RequestedAt, &l.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLink: %v", err)
	}

	return l
}

// SeedJob inserts a job with the given number of rounds posted through the link.
func SeedJob(t *testing.T, pool *pgxpool.Pool, link domain.RecruiterLink, status domain.JobStatus, rounds int) domain.Job {
	t.Helper()
	ctx := context.Background()

	j := domain.Job{
		ID:          uuid.New(),
		BusinessID:  link.BusinessID,
		PostedBy:    link.RecruiterID,
		Title:       "Backend Engineer " + uniqueSuffix(),
		Description: "Build things",
		Status:      status,
		Rounds:      make([]domain.Round, 0, rounds),
		Version:     1,
	}
	for i := 1; i <= rounds; i++ {
		j.Rounds = append(j.Rounds, domain.Round{Order: i, Type: domain.RoundTypeTechnical, Title: "Round"})
	}
	roundsJSON, err := json.Marshal(j.Rounds)
	if err != nil {
		t.Fatalf("testhelper: SeedJob marshal rounds: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO jobs (id, business_id, posted_by, title, description, status, rounds)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		j.ID, j.BusinessID, j.PostedBy, j.Title, j.Description, string(j.Status), roundsJSON,
	).Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedJob: %v", err)
	}

	return j
}
