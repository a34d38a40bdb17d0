// Package seeder provisions Directory accounts from a YAML seed file.
// It backs local development and the end-to-end environment; production
// accounts come from the identity provider.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

// AccountRepo is the write side of the Directory used by the seeder.
type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
}

// Result summarises a seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Errors   int
}

// Seeder creates accounts listed in Config.
type Seeder struct {
	log  *slog.Logger
	repo AccountRepo
	cfg  Config
}

// New creates a Seeder.
func New(log *slog.Logger, repo AccountRepo, cfg Config) *Seeder {
	return &Seeder{log: log.With("component", "seeder"), repo: repo, cfg: cfg}
}

// Run creates every account. Existing emails are skipped. Invalid entries
// are counted as errors and do not stop the run; a cancelled context does.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	for i, spec := range s.cfg.Accounts {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		acc, err := spec.toDomain()
		if err != nil {
			res.Errors++
			s.log.Warn("invalid account entry", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}

		if s.cfg.DryRun {
			s.log.Info("dry run: would create account", slog.String("email", acc.Email), slog.String("role", acc.Role.String()))
			res.Skipped++
			continue
		}

		created, err := s.repo.Create(ctx, acc)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			res.Skipped++
			s.log.Info("account exists", slog.String("email", acc.Email))
		case err != nil:
			res.Errors++
			s.log.Error("create account", slog.String("email", acc.Email), slog.String("error", err.Error()))
		default:
			res.Inserted++
			s.log.Info("account created",
				slog.String("email", created.Email),
				slog.String("account_id", created.ID.String()),
				slog.String("role", created.Role.String()),
			)
		}
	}

	return res, nil
}

func (a AccountSpec) toDomain() (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(a.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("email %q: %w", a.Email, domain.ErrValidation)
	}
	role := domain.Role(a.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("role %q: %w", a.Role, domain.ErrValidation)
	}
	name := strings.TrimSpace(a.DisplayName)
	if name == "" {
		name = email
	}

	acc := &domain.Account{
		Role:        role,
		Email:       email,
		DisplayName: name,
		Skills:      a.Skills,
	}
	if h := strings.TrimSpace(a.Headline); h != "" {
		acc.Headline = &h
	}
	return acc, nil
}
