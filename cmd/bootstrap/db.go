package bootstrap

import (
	"context"

	"coupon-processor/internal/infra/db"
	"coupon-processor/internal/pkg/config"
	"coupon-processor/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}

// RunMigrations brings the coupons schema up to date before the HTTP server starts.
func RunMigrations(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool) {
	if !cfg.DB.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := db.Migrate(ctx, pool, migrations.FS)
			return err
		},
	})
}
