//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"coupon-processor/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target when given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	if target == nil {
		return
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "error body is not JSON: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}

func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	assert.Equal(t, expected, w.Header().Get("Location"))
}

func AssertEmptyBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Zero(t, w.Body.Len(), "expected empty body, got %s", w.Body.String())
}
