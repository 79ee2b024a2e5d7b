package errs

import "errors"

// Category sentinels shared by the domain, usecase and handler layers.
// Concrete errors are attached to a category with Mark.
var (
	// Coupon errors
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponAlreadyDeleted = errors.New("coupon is already deleted")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
