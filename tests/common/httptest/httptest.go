//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// encodes body as JSON when it is not nil
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		return PerformRawRequest(t, router, method, path, nil)
	}

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err, "Failed to encode request body to JSON")
	return PerformRawRequest(t, router, method, path, jsonBody)
}

// sends body untouched, for malformed payloads
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
