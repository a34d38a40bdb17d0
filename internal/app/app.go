package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hireflow-backend/internal/adapter/notify"
	"github.com/heartmarshall/hireflow-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/account"
	applicationrepo "github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/application"
	auditrepo "github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/audit"
	businessrepo "github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/business"
	jobrepo "github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/job"
	linkrepo "github.com/heartmarshall/hireflow-backend/internal/adapter/postgres/recruiterlink"
	"github.com/heartmarshall/hireflow-backend/internal/auth"
	"github.com/heartmarshall/hireflow-backend/internal/config"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/application"
	"github.com/heartmarshall/hireflow-backend/internal/service/audit"
	"github.com/heartmarshall/hireflow-backend/internal/service/business"
	"github.com/heartmarshall/hireflow-backend/internal/service/job"
	"github.com/heartmarshall/hireflow-backend/internal/service/recruiterlink"
	"github.com/heartmarshall/hireflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/hireflow-backend/internal/transport/rest"
)

// EventSink receives domain events after their transaction commits.
type EventSink interface {
	Notify(ctx context.Context, event domain.Event)
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires the services and serves the
// HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	g, gctx := errgroup.WithContext(ctx)

	health := rest.NewHealthHandler(pool, BuildVersion())

	var sink EventSink
	if cfg.Redis.Enabled() {
		client, err := notify.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()

		redisSink := notify.NewRedisSink(logger, client, cfg.Redis.Channel, cfg.Redis.BufferSize, cfg.Redis.PublishTimeout)
		g.Go(func() error { return redisSink.Run(gctx) })

		sink = redisSink
		health = health.WithRedis(client)
		logger.Info("notifications published to redis", slog.String("channel", cfg.Redis.Channel))
	} else {
		sink = notify.NewLogSink(logger)
		logger.Info("redis not configured, notifications are logged only")
	}

	handler, stop := NewHandler(logger, cfg, pool, sink, health)
	defer stop()

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewHandler wires repositories, services and REST handlers on top of pool and
// wraps them in the middleware chain. The returned func releases background
// resources held by the middleware.
func NewHandler(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, sink EventSink, health *rest.HealthHandler) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	accounts := accountrepo.New(pool)
	businesses := businessrepo.New(pool)
	links := linkrepo.New(pool)
	jobs := jobrepo.New(pool)
	applications := applicationrepo.New(pool)
	auditRecords := auditrepo.New(pool)

	businessSvc := business.NewService(logger, businesses, links, auditRecords, txm, sink)
	linkSvc := recruiterlink.NewService(logger, links, businesses, auditRecords, txm, sink)
	jobSvc := job.NewService(logger, jobs, businesses, links, auditRecords, txm, sink, cfg.Hiring.MaxRoundsPerJob)
	applicationSvc := application.NewService(logger, applications, jobs, accounts, auditRecords, txm, sink, application.Limits{
		MaxSelectedSkills:   cfg.Hiring.MaxSelectedSkills,
		MaxCoverLetterChars: cfg.Hiring.MaxCoverLetterChars,
	})
	auditSvc := audit.NewService(logger, auditRecords, cfg.Hiring.AuditHistoryLimit)

	mux := rest.NewRouter(rest.Handlers{
		Health:      health,
		Business:    rest.NewBusinessHandler(businessSvc, logger),
		Link:        rest.NewLinkHandler(linkSvc, logger),
		Job:         rest.NewJobHandler(jobSvc, logger),
		Application: rest.NewApplicationHandler(applicationSvc, logger),
		Audit:       rest.NewAuditHandler(auditSvc, logger),
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, accounts, logger),
		middleware.Logger(logger),
		limiter.Limit(cfg.RateLimit.WritesPerMinute),
	)(mux)

	return handler, limiter.Stop
}
