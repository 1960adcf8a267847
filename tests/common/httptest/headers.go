//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks exact values; an empty expected value means absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderListContains checks a comma-separated header such as
// Access-Control-Expose-Headers, ignoring case and order.
func AssertHeaderListContains(t *testing.T, w *httptest.ResponseRecorder, header string, want ...string) {
	t.Helper()

	got := map[string]bool{}
	for _, v := range w.Header().Values(header) {
		for _, item := range strings.Split(v, ",") {
			got[strings.ToLower(strings.TrimSpace(item))] = true
		}
	}
	for _, name := range want {
		assert.True(t, got[strings.ToLower(name)], "%s does not list %s", header, name)
	}
}
