package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/usecase/readmodel"
	"coupon-processor/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const couponKeyPrefix = "coupon:"

// RedisClient is the subset of redis.Cmdable used by the coupon cache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisCouponCache struct {
	client RedisClient
	ttl    time.Duration
}

func NewRedisCouponCache(client RedisClient, ttl time.Duration) *RedisCouponCache {
	return &RedisCouponCache{client: client, ttl: ttl}
}

func (c *RedisCouponCache) Get(ctx context.Context, id int64) (*readmodel.CouponRM, bool, error) {
	raw, err := c.client.Get(ctx, couponKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrapf(err, "redis get coupon %d", id)
	}

	var rm readmodel.CouponRM
	if err := json.Unmarshal(raw, &rm); err != nil {
		slog.Warn("dropping undecodable coupon cache entry", "coupon_id", id, "error", err.Error())
		_ = c.client.Del(ctx, couponKey(id)).Err()
		return nil, false, nil
	}
	return &rm, true, nil
}

func (c *RedisCouponCache) Set(ctx context.Context, rm *readmodel.CouponRM) error {
	payload, err := json.Marshal(rm)
	if err != nil {
		return errs.Wrapf(err, "encode coupon %d", rm.ID)
	}
	if err := c.client.Set(ctx, couponKey(rm.ID), payload, c.ttl).Err(); err != nil {
		return errs.Wrapf(err, "redis set coupon %d", rm.ID)
	}
	return nil
}

func (c *RedisCouponCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, couponKey(id)).Err(); err != nil {
		return errs.Wrapf(err, "redis del coupon %d", id)
	}
	return nil
}

func couponKey(id int64) string {
	return couponKeyPrefix + strconv.FormatInt(id, 10)
}

// NoopCouponCache is used when no Redis address is configured.
type NoopCouponCache struct{}

func NewNoopCouponCache() shared.CouponCache {
	return NoopCouponCache{}
}

func (NoopCouponCache) Get(context.Context, int64) (*readmodel.CouponRM, bool, error) {
	return nil, false, nil
}

func (NoopCouponCache) Set(context.Context, *readmodel.CouponRM) error { return nil }

func (NoopCouponCache) Invalidate(context.Context, int64) error { return nil }
