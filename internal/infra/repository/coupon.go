package repository

import (
	"context"

	"coupon-processor/internal/domain/coupon"
	"coupon-processor/internal/infra"
	"coupon-processor/internal/infra/converter"
	sqlc "coupon-processor/internal/infra/sqlc/generated"
	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/pkg/pgconv"
	"coupon-processor/internal/usecase/readmodel"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/repository/coupon.go -package=repositorymock

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	GetCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Coupons, error)
	SoftDeleteCoupon(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
}

func NewCouponRepository(queries CouponWriteQueries) *CouponRepository {
	return &CouponRepository{
		queries: queries,
	}
}

// Store inserts a new coupon; the database assigns its id.
func (r *CouponRepository) Store(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (*readmodel.CouponRM, error) {
	row, err := r.queries.CreateCoupon(ctx, tx, converter.CouponToCreateParams(c))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}

	rm, err := converter.CouponRMFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return rm, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *CouponRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound(err)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}

	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return c, nil
}

// SoftDelete flips ACTIVE to DELETED in a single conditional update and
// reports how many rows changed; zero means the coupon was not ACTIVE.
func (r *CouponRepository) SoftDelete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error) {
	affected, err := r.queries.SoftDeleteCoupon(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to soft delete coupon", err)
	}
	return affected, nil
}

func notFound(err error) error {
	return errs.Mark(infra.WrapRepoErr("coupon not found", err, infra.KindNotFound), errs.ErrCouponNotFound)
}
