// Command promote sets the Directory role of an account by email address.
// It is used to bootstrap the first admin and to fix roles assigned by
// mistake. Roles are fixed once an account owns a business, holds a
// recruiter link, posted a job or applied to one.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hireflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/hireflow-backend/internal/app"
	"github.com/heartmarshall/hireflow-backend/internal/config"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to update")
	roleFlag := flag.String("role", string(domain.RoleAdmin), "new role: jobseeker, recruiter, business or admin")
	flag.Parse()

	role := domain.Role(*roleFlag)
	if *email == "" || !role.IsValid() {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	acc, err := account.New(pool).SetRole(ctx, *email, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("No account found with email %q.\n", *email)
			os.Exit(1)
		}
		if errors.Is(err, domain.ErrPreconditionFailed) {
			fmt.Printf("Account %q already has hiring records; its role cannot change.\n", *email)
			os.Exit(1)
		}
		logger.Error("update role", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Account %q is now %s.\n", acc.Email, acc.Role)
}
