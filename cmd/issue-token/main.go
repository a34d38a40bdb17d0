// Command issue-token mints a bearer token for an existing Directory account.
// It is meant for local development and operator tooling; production tokens
// come from the identity provider that shares the signing secret.
//
// Usage:
//
//	issue-token --email=recruiter@example.com
//	issue-token --id=6f1c...
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/hireflow-backend/internal/app"
	"github.com/heartmarshall/hireflow-backend/internal/auth"
	"github.com/heartmarshall/hireflow-backend/internal/config"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account")
	idFlag := flag.String("id", "", "ID of the account")
	flag.Parse()

	if (*email == "") == (*idFlag == "") {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --email=user@example.com | --id=<uuid>")
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

	directory := account.New(pool)

	var acc *domain.Account
	if *idFlag != "" {
		id, perr := uuid.Parse(*idFlag)
		if perr != nil {
			logger.Error("invalid account id", slog.String("id", *idFlag))
			os.Exit(1)
		}
		acc, err = directory.GetByID(ctx, id)
	} else {
		acc, err = directory.GetByEmail(ctx, *email)
	}
	if err != nil {
		logger.Error("look up account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwtManager.GenerateAccessToken(acc.ID)
	if err != nil {
		logger.Error("sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token issued",
		slog.String("account_id", acc.ID.String()),
		slog.String("role", acc.Role.String()),
		slog.Duration("ttl", jwtManager.TTL()),
	)
	fmt.Println(token)
}
