package coupon

import (
	"coupon-processor/internal/pkg/errs"
)

var (
	ErrInvalidCodeLength    = errs.Mark(errs.New("code must have exactly 6 characters"), errs.ErrDomainValidation)
	ErrDiscountBelowMinimum = errs.Mark(errs.New("minimum discount value is 0.5"), errs.ErrDomainValidation)
	ErrExpirationInPast     = errs.Mark(errs.New("expiration date cannot be in the past"), errs.ErrDomainValidation)
	ErrInvalidStatus        = errs.Mark(errs.New("invalid coupon status"), errs.ErrDomainValidation)

	ErrCouponAlreadyDeleted = errs.ErrCouponAlreadyDeleted
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDeleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// NotFoundError reports a missing coupon; it matches errs.ErrCouponNotFound.
func NotFoundError(id int64) error {
	return errs.Mark(errs.Newf("coupon not found with id: %d", id), errs.ErrCouponNotFound)
}
