package converter

import (
	"coupon-processor/internal/domain/coupon"
	sqlc "coupon-processor/internal/infra/sqlc/generated"
	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/pkg/pgconv"
	"coupon-processor/internal/usecase/readmodel"
)

func CouponToCreateParams(c *coupon.Coupon) sqlc.CreateCouponParams {
	return sqlc.CreateCouponParams{
		Code:           c.Code().String(),
		Description:    pgconv.StringPtrToPgtype(c.Description()),
		DiscountValue:  pgconv.DecimalToNumeric(c.DiscountValue()),
		ExpirationDate: pgconv.TimeToPgtype(c.ExpirationDate()),
		Status:         c.Status().String(),
		Published:      c.Published(),
		Redeemed:       c.Redeemed(),
	}
}

func CouponRMFromRow(row sqlc.Coupons) (*readmodel.CouponRM, error) {
	discount, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "coupon %d: discount_value", row.ID)
	}
	return &readmodel.CouponRM{
		ID:             row.ID,
		Code:           row.Code,
		Description:    pgconv.StringPtrFromPgtype(row.Description),
		DiscountValue:  discount,
		ExpirationDate: pgconv.TimeFromPgtype(row.ExpirationDate),
		Status:         row.Status,
		Published:      row.Published,
		Redeemed:       row.Redeemed,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func CouponFromRow(row sqlc.Coupons) (*coupon.Coupon, error) {
	discount, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "coupon %d: discount_value", row.ID)
	}
	status, err := coupon.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "coupon %d: status %q", row.ID, row.Status)
	}
	return coupon.ReconstructCoupon(
		row.ID,
		row.Code,
		pgconv.StringPtrFromPgtype(row.Description),
		discount,
		pgconv.TimeFromPgtype(row.ExpirationDate),
		status,
		row.Published,
		row.Redeemed,
	), nil
}
