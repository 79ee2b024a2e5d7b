//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "coupon-processor/internal/domain/coupon"
	reqdto "coupon-processor/internal/handler/dto/request"
	sqlc "coupon-processor/internal/infra/sqlc/generated"
	"coupon-processor/internal/pkg/pgconv"
	"coupon-processor/internal/usecase/commands"
	"coupon-processor/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID             int64
	Code           string
	Description    *string
	DiscountValue  decimal.Decimal
	ExpirationDate time.Time
	Status         domcoupon.Status
	Published      bool
	Redeemed       bool
	Now            time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	description := "Summer sale"
	return &CouponBuilder{
		ID:             1,
		Code:           "ABC123",
		Description:    &description,
		DiscountValue:  decimal.RequireFromString("0.8"),
		ExpirationDate: now.Add(30 * 24 * time.Hour),
		Status:         domcoupon.StatusActive,
		Published:      false,
		Now:            now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(nil, b.Code, b.Description, b.DiscountValue, b.ExpirationDate, b.Status, b.Published, b.Now)
}

func (b *CouponBuilder) BuildStored() *domcoupon.Coupon {
	return domcoupon.ReconstructCoupon(b.ID, b.Code, b.Description, b.DiscountValue, b.ExpirationDate, b.Status, b.Published, b.Redeemed)
}

func (b *CouponBuilder) BuildRow() sqlc.Coupons {
	description := pgtype.Text{}
	if b.Description != nil {
		description = pgtype.Text{String: *b.Description, Valid: true}
	}
	return sqlc.Coupons{
		ID:             b.ID,
		Code:           b.Code,
		Description:    description,
		DiscountValue:  pgconv.DecimalToNumeric(b.DiscountValue),
		ExpirationDate: pgtype.Timestamptz{Time: b.ExpirationDate, Valid: true},
		Status:         b.Status.String(),
		Published:      b.Published,
		Redeemed:       b.Redeemed,
		CreatedAt:      pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *CouponBuilder) BuildRM() *readmodel.CouponRM {
	return &readmodel.CouponRM{
		ID:             b.ID,
		Code:           b.Code,
		Description:    b.Description,
		DiscountValue:  b.DiscountValue,
		ExpirationDate: b.ExpirationDate,
		Status:         b.Status.String(),
		Published:      b.Published,
		Redeemed:       b.Redeemed,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

func (b *CouponBuilder) BuildCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Code:           b.Code,
		Description:    b.Description,
		DiscountValue:  b.DiscountValue,
		ExpirationDate: b.ExpirationDate,
		Published:      b.Published,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	code := b.Code
	discount := b.DiscountValue
	expiration := b.ExpirationDate
	published := b.Published
	return reqdto.CreateCouponRequest{
		Code:           &code,
		Description:    b.Description,
		DiscountValue:  &discount,
		ExpirationDate: &expiration,
		Published:      &published,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithID(id int64) *CouponBuilder {
	b.ID = id
	return b
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithDescription(description *string) *CouponBuilder {
	b.Description = description
	return b
}

func (b *CouponBuilder) WithDiscountValue(v string) *CouponBuilder {
	b.DiscountValue = decimal.RequireFromString(v)
	return b
}

func (b *CouponBuilder) WithExpirationDate(t time.Time) *CouponBuilder {
	b.ExpirationDate = t
	return b
}

func (b *CouponBuilder) WithStatus(status domcoupon.Status) *CouponBuilder {
	b.Status = status
	return b
}

func (b *CouponBuilder) WithPublished(published bool) *CouponBuilder {
	b.Published = published
	return b
}

func (b *CouponBuilder) WithNow(now time.Time) *CouponBuilder {
	b.Now = now
	return b
}

func (b *CouponBuilder) AsDeleted() *CouponBuilder {
	b.Status = domcoupon.StatusDeleted
	return b
}
