package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"rincon-reservas/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	MsgInternalError = "Error interno del servidor"

	panicStackLines = 12
)

// ErrorHandler renders the newest public httperr.Response a handler attached.
// A handler that set neither body nor status gets a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}

		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			slog.Error("unrendered request error",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"errors", private.String())
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, MsgInternalError))
	}
}

func lastPublicResponse(errs []*gin.Error) (httperr.Response, bool) {
	for i := len(errs) - 1; i >= 0; i-- {
		if !errs[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errs[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", fmt.Sprint(rec),
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", stackHead(debug.Stack(), panicStackLines))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, MsgInternalError))
			}
		}()
		c.Next()
	}
}

func stackHead(stack []byte, n int) string {
	lines := strings.SplitN(string(stack), "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
