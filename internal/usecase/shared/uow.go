package shared

import (
	"context"

	"coupon-processor/internal/domain/coupon"
	sqlc "coupon-processor/internal/infra/sqlc/generated"
	"coupon-processor/internal/usecase/readmodel"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Coupons() CouponRepository
	DB() sqlc.DBTX
}

type CouponRepository interface {
	Store(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (*readmodel.CouponRM, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*coupon.Coupon, error)
	SoftDelete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error)
}
