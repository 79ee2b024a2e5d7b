package commands

import (
	"context"
	"log/slog"
	"time"

	"coupon-processor/internal/domain/coupon"
	"coupon-processor/internal/pkg/clock"
	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/usecase/readmodel"
	"coupon-processor/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon.go -package=commandsmock

type CreateCouponRequest struct {
	Code           string
	Description    *string
	DiscountValue  decimal.Decimal
	ExpirationDate time.Time
	Published      bool
}

type CouponCommands interface {
	Create(ctx context.Context, req CreateCouponRequest) (*readmodel.CouponRM, error)
	Delete(ctx context.Context, id int64) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.CouponCache
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, cache shared.CouponCache, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// Create always starts a coupon as ACTIVE and without an id; storage assigns it.
func (uc *couponCommandsImpl) Create(ctx context.Context, req CreateCouponRequest) (*readmodel.CouponRM, error) {
	c, err := coupon.NewCoupon(
		nil,
		req.Code,
		req.Description,
		req.DiscountValue,
		req.ExpirationDate,
		coupon.StatusActive,
		req.Published,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	var stored *readmodel.CouponRM
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, derr := tx.Coupons().Store(ctx, tx.DB(), c)
		if derr != nil {
			return derr
		}
		stored = rm
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "coupon created", "coupon_id", stored.ID, "code", stored.Code)
	return stored, nil
}

// Delete locks the row, applies the domain transition, then persists it with
// a conditional update so two concurrent deletes cannot both succeed.
func (uc *couponCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Coupons().FindByIDForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			if errs.Is(derr, errs.ErrCouponNotFound) {
				return coupon.NotFoundError(id)
			}
			return derr
		}

		if derr = c.Delete(); derr != nil {
			return derr
		}

		affected, derr := tx.Coupons().SoftDelete(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			return coupon.ErrCouponAlreadyDeleted
		}
		return nil
	})
	if err != nil {
		return err
	}

	if cerr := uc.cache.Invalidate(ctx, id); cerr != nil {
		slog.WarnContext(ctx, "failed to invalidate coupon cache", "coupon_id", id, "error", cerr.Error())
	}
	slog.InfoContext(ctx, "coupon deleted", "coupon_id", id)
	return nil
}
