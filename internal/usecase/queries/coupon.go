package queries

import (
	"context"
	"log/slog"

	"coupon-processor/internal/domain/coupon"
	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/usecase/readmodel"
	"coupon-processor/internal/usecase/shared"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon.go -package=queriesmock

type CouponReadStore interface {
	FindByID(ctx context.Context, id int64) (*readmodel.CouponRM, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id int64) (*readmodel.CouponRM, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	cache shared.CouponCache
}

func NewCouponQueries(store CouponReadStore, cache shared.CouponCache) CouponQueries {
	return &couponQueriesImpl{store: store, cache: cache}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id int64) (*readmodel.CouponRM, error) {
	if rm, ok, err := q.cache.Get(ctx, id); err != nil {
		slog.WarnContext(ctx, "coupon cache read failed", "coupon_id", id, "error", err.Error())
	} else if ok {
		return rm, nil
	}

	rm, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrCouponNotFound) {
			return nil, coupon.NotFoundError(id)
		}
		return nil, err
	}

	if err := q.cache.Set(ctx, rm); err != nil {
		slog.WarnContext(ctx, "coupon cache write failed", "coupon_id", id, "error", err.Error())
	}
	return rm, nil
}
