//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the API error shape {"error": ..., "details": ...}.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details"`

	hasDetails bool
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), "error body is not JSON: %s", w.Body.String())

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	_, body.hasDetails = raw["details"]
	return body
}

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "cannot decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains wantMsg.
// An empty wantMsg only checks the body shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, wantMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	body := decodeErrorBody(t, w)
	if wantMsg != "" {
		assert.Contains(t, body.Error, wantMsg)
	}
	return body
}

// asserts the error body carries (or omits) the details field
func AssertErrorDetails(t *testing.T, w *httptest.ResponseRecorder, wantDetails bool) {
	t.Helper()

	body := decodeErrorBody(t, w)
	assert.Equal(t, wantDetails, body.hasDetails, "details presence mismatch: %s", w.Body.String())
}

// AssertRateLimited checks a 429 with a positive Retry-After and nothing left in the bucket.
func AssertRateLimited(t *testing.T, w *httptest.ResponseRecorder, wantMsg string) {
	t.Helper()

	AssertErrorResponse(t, w, http.StatusTooManyRequests, wantMsg)

	retry, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err, "Retry-After must be whole seconds")
	assert.Positive(t, retry)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}
