//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"rincon-reservas/internal/handler/httperr"
	"rincon-reservas/internal/handler/middleware"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewLogger(config.NewTestConfig().Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/boom", func(_ *gin.Context) { panic("kaboom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/boom", nil)

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, middleware.MsgInternalError)
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine()
	engine.GET("/public", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("bad"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, "conflicto"),
		})
	})
	engine.GET("/silent", func(_ *gin.Context) {})

	t.Run("public error meta is rendered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/public", nil)

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "conflicto")
	})

	t.Run("handler that writes nothing yields 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/silent", nil)

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, middleware.MsgInternalError)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	engine := newEngine()
	engine.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})

	t.Run("generates a request id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ok", nil)

		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, id)
		assert.Contains(t, rec.Body.String(), id)
	})
}

func TestRateLimiterDisabled(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.RateLimit.Enabled = true

	engine := newEngine()
	engine.POST("/limited", middleware.NewRateLimiter(cfg.RateLimit, cfg.Redis.KeyPrefix, nil), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for range cfg.RateLimit.Capacity + 5 {
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/limited", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get(middleware.HeaderRateLimit))
	}
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	engine := newEngine()
	engine.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})

	rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ok", nil,
		map[string]string{middleware.RequestIDHeader: "upstream-42"})

	httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "upstream-42"})
	assert.Contains(t, rec.Body.String(), "upstream-42")
}

func TestErrorHandler_StatusWithoutBody(t *testing.T) {
	engine := newEngine()
	engine.GET("/gone", func(c *gin.Context) {
		_ = c.Error(errors.New("private detail"))
		c.Status(http.StatusNotFound)
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/gone", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "private detail")
}

func TestCORSMiddleware(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.CORS.AllowOrigins = []string{"https://haciendarincongrande.com"}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("allowed origin can read request id and rate headers", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ok", nil,
			map[string]string{"Origin": "https://haciendarincongrande.com"})

		httptest.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin": "https://haciendarincongrande.com",
		})
		httptest.AssertHeaderListContains(t, rec, "Access-Control-Expose-Headers",
			middleware.RequestIDHeader, middleware.HeaderRateLimit, middleware.HeaderRetryAfter)
	})

	t.Run("other origins are refused", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ok", nil,
			map[string]string{"Origin": "https://evil.example"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": ""})
	})

	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		wild := cfg.CORS
		wild.AllowOrigins = []string{"*"}
		wild.AllowCredentials = true

		e := gin.New()
		e.Use(middleware.NewCORSMiddleware(wild))
		e.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.PerformRequestWithHeaders(t, e, http.MethodGet, "/ok", nil,
			map[string]string{"Origin": "https://any.example"})

		httptest.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "",
		})
	})
}

func TestBodyLimit(t *testing.T) {
	engine := newEngine()
	reached := false
	engine.POST("/quote", middleware.BodyLimit(64), func(c *gin.Context) {
		reached = true
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			assert.True(t, middleware.IsBodyTooLarge(err))
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusNoContent)
	})
	big := `{"note":"` + strings.Repeat("x", 128) + `"}`

	t.Run("declared oversize body is rejected before the handler", func(t *testing.T) {
		reached = false
		rec := httptest.PerformRawRequest(t, engine, http.MethodPost, "/quote", big)

		httptest.AssertErrorResponse(t, rec, http.StatusRequestEntityTooLarge, middleware.MsgPayloadTooLarge)
		assert.False(t, reached)
	})

	t.Run("undeclared oversize body fails when read", func(t *testing.T) {
		reached = false
		req := nethttptest.NewRequest(http.MethodPost, "/quote", io.MultiReader(strings.NewReader(big)))
		req.ContentLength = -1
		req.Header.Set("Content-Type", "application/json")
		rec := nethttptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.True(t, reached)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("small body passes", func(t *testing.T) {
		rec := httptest.PerformRawRequest(t, engine, http.MethodPost, "/quote", `{"entradas":2}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("non positive limit falls back to the default", func(t *testing.T) {
		e := newEngine()
		e.POST("/quote", middleware.BodyLimit(0), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.PerformRawRequest(t, e, http.MethodPost, "/quote", big)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
