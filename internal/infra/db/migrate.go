package db

import (
	"context"
	"io/fs"
	"log/slog"
	"path"

	"coupon-processor/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
)

// Migrate applies the pending goose migrations found at the root of
// migrations and returns the file names it applied. A Postgres session lock
// keeps concurrently starting instances from applying the same file twice.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) ([]string, error) {
	// closing this handle leaves the pool open
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create migration lock")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations, goose.WithSessionLocker(locker))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load migrations")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to apply migrations")
	}

	applied := make([]string, 0, len(results))
	for _, r := range results {
		file := path.Base(r.Source.Path)
		slog.Info("migration applied", "version", r.Source.Version, "file", file, "duration", r.Duration)
		applied = append(applied, file)
	}
	return applied, nil
}
