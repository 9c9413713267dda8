package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"golang.org/x/sync/errgroup"

	"github.com/probelab/gqlprobe/internal/adapter/postgres"
	"github.com/probelab/gqlprobe/internal/adapter/postgres/record"
	"github.com/probelab/gqlprobe/internal/adapter/postgres/session"
	"github.com/probelab/gqlprobe/internal/auth"
	"github.com/probelab/gqlprobe/internal/config"
	authsvc "github.com/probelab/gqlprobe/internal/service/auth"
	"github.com/probelab/gqlprobe/internal/service/echo"
	"github.com/probelab/gqlprobe/internal/transport/graphql"
	"github.com/probelab/gqlprobe/internal/transport/graphql/dataloader"
	"github.com/probelab/gqlprobe/internal/transport/graphql/resolver"
	"github.com/probelab/gqlprobe/internal/transport/middleware"
	"github.com/probelab/gqlprobe/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and the GraphQL transport,
// and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting gqlprobe",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := migrate(ctx, logger, cfg.Database.DSN); err != nil {
			return err
		}
	}

	recordRepo := record.New(pool)
	sessionRepo := session.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	users := auth.NewUserRegistry(cfg.Auth.Credentials)
	if users.Len() == 0 {
		logger.Warn("no test users configured, login will always fail")
	}

	echoSvc := echo.NewService(logger, recordRepo, sessionRepo, txManager, cfg.Echo)
	authSvc := authsvc.NewService(logger, users, jwtManager)

	schema, err := graphql.LoadSchema()
	if err != nil {
		return err
	}
	executor := graphql.NewExecutor(logger, schema, resolver.New(echoSvc, authSvc))

	mux := http.NewServeMux()

	health := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle(cfg.GraphQL.QueryPath, graphql.NewHandler(logger, executor))
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", playground.Handler("gqlprobe", cfg.GraphQL.QueryPath))
		logger.Info("playground enabled", slog.String("path", "/playground"))
	}

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.SessionID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	mws = append(mws,
		middleware.Auth(jwtManager),
		dataloader.Middleware(&dataloader.Repos{Record: recordRepo}),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
