package db

import (
	"context"
	"log/slog"
	"time"

	"coupon-processor/internal/pkg/config"
	"coupon-processor/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open database")
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	slog.Info("database connected",
		"host", cfg.Host,
		"db", cfg.DBName,
		"max_conns", poolCfg.MaxConns,
		"min_conns", poolCfg.MinConns)

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
