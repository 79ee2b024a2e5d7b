package readstore

import (
	"context"

	"coupon-processor/internal/infra"
	"coupon-processor/internal/infra/converter"
	sqlc "coupon-processor/internal/infra/sqlc/generated"
	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/pkg/pgconv"
	"coupon-processor/internal/usecase/readmodel"
)

type CouponReadQueries interface {
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id int64) (*readmodel.CouponRM, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("coupon not found", err, infra.KindNotFound), errs.ErrCouponNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon by id", err)
	}

	rm, err := converter.CouponRMFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return rm, nil
}
