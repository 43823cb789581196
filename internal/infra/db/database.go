package db

import (
	"context"
	"fmt"
	"time"

	"spigot-link/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The ledger schema is ensured at connect time rather than through a separate
// migration step; the tables are small and append-only, and the unique
// constraints here are the real arbiter of link races.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS user_payments (
		resource_id BIGINT NOT NULL,
		spigot_name TEXT NOT NULL,
		bought_at   TIMESTAMPTZ NOT NULL,
		paid        NUMERIC(8, 2) NOT NULL,
		fee         NUMERIC(8, 2) NOT NULL,
		provider    TEXT NOT NULL,
		PRIMARY KEY (resource_id, spigot_name)
	)`,
	`CREATE TABLE IF NOT EXISTS user_links (
		discord_id  BIGINT NOT NULL UNIQUE,
		spigot_name TEXT NOT NULL UNIQUE,
		linked_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT NOT NULL PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
