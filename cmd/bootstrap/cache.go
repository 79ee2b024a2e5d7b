package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"coupon-processor/internal/infra/cache"
	"coupon-processor/internal/pkg/config"
	"coupon-processor/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCouponCache,
	),
)

const redisPingTimeout = 3 * time.Second

// NewCouponCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewCouponCache(lc fx.Lifecycle, cfg config.Config) shared.CouponCache {
	if !cfg.Cache.Enabled() {
		slog.Info("coupon cache disabled")
		return cache.NewNoopCouponCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				slog.Warn("redis unreachable, coupon reads fall back to the database", "addr", cfg.Cache.Addr, "error", err.Error())
				return nil
			}
			slog.Info("coupon cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisCouponCache(client, cfg.Cache.TTL)
}
