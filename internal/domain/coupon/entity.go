package coupon

import (
	"time"

	"coupon-processor/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	id             *int64
	code           Code
	description    *string
	discountValue  DiscountValue
	expirationDate time.Time
	status         Status
	published      bool
	redeemed       bool
}

// NewCoupon validates in a fixed order and reports only the first violated
// rule: code, discount, expiration, status.
func NewCoupon(
	id *int64,
	code string,
	description *string,
	discountValue decimal.Decimal,
	expirationDate time.Time,
	status Status,
	published bool,
	now time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscountValue(discountValue)
	if err != nil {
		return nil, err
	}

	if !expirationDate.After(now) {
		return nil, ErrExpirationInPast
	}

	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Coupon{
		id:             id,
		code:           couponCode,
		description:    description,
		discountValue:  discount,
		expirationDate: expirationDate,
		status:         status,
		published:      published,
		redeemed:       false,
	}, nil
}

// ReconstructCoupon rehydrates a stored coupon without re-running the
// construction rules; a stored coupon may have expired since it was created.
func ReconstructCoupon(
	id int64,
	code string,
	description *string,
	discountValue decimal.Decimal,
	expirationDate time.Time,
	status Status,
	published bool,
	redeemed bool,
) *Coupon {
	return &Coupon{
		id:             &id,
		code:           Code(code),
		description:    description,
		discountValue:  DiscountValue{value: discountValue},
		expirationDate: expirationDate,
		status:         status,
		published:      published,
		redeemed:       redeemed,
	}
}

// Delete moves an ACTIVE coupon to DELETED. A second call fails and leaves
// the coupon untouched.
func (c *Coupon) Delete() error {
	if !c.IsActive() {
		return ErrCouponAlreadyDeleted
	}
	c.status = StatusDeleted
	return nil
}

// Revision holds optional field changes. Nil fields keep the current value.
type Revision struct {
	Code           *string
	Description    *string
	DiscountValue  *decimal.Decimal
	ExpirationDate *time.Time
	Published      *bool
}

// Revise returns a new coupon with the revision applied. The result goes
// through NewCoupon, so all construction rules are checked again.
func (c *Coupon) Revise(r Revision, now time.Time) (*Coupon, error) {
	if c.IsDeleted() {
		return nil, ErrCouponAlreadyDeleted
	}
	description := c.description
	if r.Description != nil {
		description = r.Description
	}
	return NewCoupon(
		c.id,
		ptr.Deref(r.Code, c.code.String()),
		description,
		ptr.Deref(r.DiscountValue, c.discountValue.Decimal()),
		ptr.Deref(r.ExpirationDate, c.expirationDate),
		c.status,
		ptr.Deref(r.Published, c.published),
		now,
	)
}


func (c *Coupon) IsActive() bool  { return c.status == StatusActive }
func (c *Coupon) IsDeleted() bool { return c.status == StatusDeleted }

func (c *Coupon) ID() *int64                     { return c.id }
func (c *Coupon) Code() Code                     { return c.code }
func (c *Coupon) Description() *string           { return c.description }
func (c *Coupon) DiscountValue() decimal.Decimal { return c.discountValue.Decimal() }
func (c *Coupon) ExpirationDate() time.Time      { return c.expirationDate }
func (c *Coupon) Status() Status                 { return c.status }
func (c *Coupon) Published() bool                { return c.published }
func (c *Coupon) Redeemed() bool                 { return c.redeemed }
