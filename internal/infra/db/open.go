// Package db opens the database connection pool and manages the schema.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"artigos-api/internal/config"
)

// Open creates and configures a new database connection pool from the given
// configuration and verifies connectivity with a short ping.
func Open(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	pool, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pool.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	pool.SetConnMaxIdleTime(cfg.DB.ConnMaxIdleTime)

	logger.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.DB.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.DB.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.DB.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.DB.ConnMaxIdleTime))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connection established")
	return pool, nil
}
