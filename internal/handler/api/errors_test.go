//go:build unit

package api

import (
	"errors"
	"net/http"
	"testing"

	"coupon-processor/internal/domain/coupon"
	"coupon-processor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCouponErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: coupon.ErrExpirationInPast, wantStatus: http.StatusBadRequest, wantMsg: "expiration date cannot be in the past"},
		{name: "not found", err: coupon.NotFoundError(12), wantStatus: http.StatusNotFound, wantMsg: "coupon not found with id: 12"},
		{name: "already deleted", err: coupon.ErrCouponAlreadyDeleted, wantStatus: http.StatusConflict, wantMsg: "coupon is already deleted"},
		{name: "database failure hides details", err: errs.Mark(errors.New("pq: password authentication failed"), errs.ErrDatabaseOperationFailed), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{name: "database failure wins over validation mark", err: errs.Mark(coupon.ErrInvalidStatus, errs.ErrDatabaseOperationFailed), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := couponErrorStatus(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
