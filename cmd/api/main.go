package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"artigos-api/internal/config"
	pgRepo "artigos-api/internal/infra/adapter/persistence/postgres"
	"artigos-api/internal/infra/db"
	"artigos-api/internal/observability/logging"
	"artigos-api/internal/observability/tracing"

	artUC "artigos-api/internal/usecase/article"
	userUC "artigos-api/internal/usecase/user"

	hhttp "artigos-api/internal/handler/http"
	hartigo "artigos-api/internal/handler/http/artigo"
	hauth "artigos-api/internal/handler/http/auth"
	"artigos-api/internal/handler/http/requestid"
	husuario "artigos-api/internal/handler/http/usuario"
	svcauth "artigos-api/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	database := initDatabase(cfg, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(cfg, database, logger)
	runServer(cfg, handler, logger)
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(cfg *config.Config, logger *slog.Logger) *sql.DB {
	database, err := db.Open(cfg, logger)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires repositories, services and handlers and returns the
// root handler with the middleware chain applied.
func setupServer(cfg *config.Config, database *sql.DB, logger *slog.Logger) http.Handler {
	hasher := svcauth.NewHasher(cfg.BcryptCost)
	tokens := svcauth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenLifetime)

	userRepo := pgRepo.NewUserRepo(database)
	articleRepo := pgRepo.NewArticleRepo(database)

	userSvc := &userUC.Service{Repo: userRepo, Hasher: hasher}
	articleSvc := &artUC.Service{Repo: articleRepo, OpenEditing: cfg.OpenEditing}
	authn := svcauth.NewAuthenticator(userRepo, hasher)

	// Credential endpoints get a tighter per-IP budget than the rest of
	// the API.
	loginLimiter := hhttp.NewIPRateLimiter(cfg.LoginRatePerMinute)
	authz := hauth.Bearer(tokens)

	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	husuario.Register(mux, husuario.Deps{
		Users:        userSvc,
		Articles:     articleSvc,
		Authn:        authn,
		Tokens:       tokens,
		Logger:       logger,
		Authz:        authz,
		LoginLimiter: loginLimiter.Limit,
	})
	hartigo.Register(mux, articleSvc, authz)

	logger.Info("routes registered",
		slog.Bool("open_editing", cfg.OpenEditing),
		slog.Int("login_rate_per_minute", cfg.LoginRatePerMinute),
	)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain, outermost
// first: request ID, tracing, recovery, logging, body limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Applied in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and blocks until shutdown.
func runServer(cfg *config.Config, handler http.Handler, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
