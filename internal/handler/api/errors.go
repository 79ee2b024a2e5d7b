package api

import (
	"net/http"

	"coupon-processor/internal/handler/httperr"
	"coupon-processor/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Storage failures are checked first: a wrapped driver error can carry
// other category marks from the layers below.
func couponErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrDatabaseOperationFailed):
		return http.StatusInternalServerError, httperr.InternalMessage
	case errs.Is(err, errs.ErrCouponNotFound):
		return http.StatusNotFound, err.Error()
	case errs.Is(err, errs.ErrCouponAlreadyDeleted):
		return http.StatusConflict, err.Error()
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, httperr.InternalMessage
	}
}

func abortWithCouponError(c *gin.Context, err error) {
	status, msg := couponErrorStatus(err)
	httperr.AbortWithError(c, status, err, msg)
}
