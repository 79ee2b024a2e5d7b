package httperr

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const InternalMessage = "Internal server error"

// RequestIDKey is the gin context key the logging middleware stores the request id under.
const RequestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
		RequestID string    `json:"requestId,omitempty"`
	} `json:"error"`
}

func New(c *gin.Context, status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Status = status
	resp.Error.Message = msg
	resp.Error.Timestamp = time.Now().UTC()
	resp.Error.RequestID = c.GetString(RequestIDKey)
	return resp
}

// AbortWithError writes msg to the client and keeps err on the gin context
// so the logging middleware can report the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(c, status, msg)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortInternal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, InternalMessage)
}
