package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationName tags every schedh session in pg_stat_activity.
const ApplicationName = "schedh"

// A load is one COPY stream plus bookkeeping statements.
const maxLoadConns = 4

// NewPool connects to dsn for a filings load. Sessions carry ApplicationName
// and run without a statement timeout so a long COPY is never cut short.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	params := cfg.ConnConfig.RuntimeParams
	if params["application_name"] == "" {
		params["application_name"] = ApplicationName
	}
	params["statement_timeout"] = "0"
	if cfg.MaxConns > maxLoadConns {
		cfg.MaxConns = maxLoadConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.ConnConfig.Host, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.ConnConfig.Host, err)
	}
	return pool, nil
}
