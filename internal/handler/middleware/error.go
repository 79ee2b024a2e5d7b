package middleware

import (
	"log/slog"
	"net/http"

	"coupon-processor/internal/handler/httperr"
	"coupon-processor/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxLoggedStackLines = 12

// ErrorHandler renders the latest public error when the handler did not write a
// response, and logs the cause of every 5xx with the top of its stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		// latest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(c, http.StatusInternalServerError, httperr.InternalMessage))
	}
}

func logServerErrors(c *gin.Context) {
	for _, ginErr := range c.Errors {
		resp, ok := ginErr.Meta.(httperr.Response)
		if ok && resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", GetRequestID(c),
			"route", c.FullPath(),
			"error", ginErr.Err.Error(),
			"stack", errs.ExtractStackLines(ginErr.Err, maxLoggedStackLines))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.New(c, http.StatusInternalServerError, httperr.InternalMessage)
				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
