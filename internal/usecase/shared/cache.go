package shared

import (
	"context"

	"coupon-processor/internal/usecase/readmodel"
)

//go:generate mockgen -source=cache.go -destination=../../../tests/mock/shared/cache.go -package=sharedmock

// CouponCache is a best-effort read cache; callers treat its errors as misses.
type CouponCache interface {
	Get(ctx context.Context, id int64) (*readmodel.CouponRM, bool, error)
	Set(ctx context.Context, rm *readmodel.CouponRM) error
	Invalidate(ctx context.Context, id int64) error
}
