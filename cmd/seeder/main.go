// Command seeder provisions Directory accounts from a YAML seed file.
// It is intended for local development and test environments.
//
// Flags:
//
//	--seeder-config  path to the seed YAML file (required)
//	--dry-run        validate the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hireflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/hireflow-backend/internal/app"
	"github.com/heartmarshall/hireflow-backend/internal/app/seeder"
	"github.com/heartmarshall/hireflow-backend/internal/config"
)

var _ seeder.AccountRepo = (*account.Repo)(nil)

func main() {
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate without writing to DB")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	res, err := seeder.New(logger, account.New(pool), *seederCfg).Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding finished",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
	)
	if res.Errors > 0 {
		os.Exit(1)
	}
}
